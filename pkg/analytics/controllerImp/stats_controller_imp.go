package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"bitacora/pkg/analytics/serviceImp"
)

type StatsCtrl struct{ svc *serviceImp.StatsSvc }

func New(svc *serviceImp.StatsSvc) *StatsCtrl { return &StatsCtrl{svc} }

func (h *StatsCtrl) Detailed(c echo.Context) error {
	year, _ := strconv.Atoi(c.QueryParam("year"))
	if year == 0 {
		year = time.Now().Year()
	}
	var bid *uint
	if q := c.QueryParam("bitacoraId"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid bitacoraId"})
		}
		u := uint(v)
		bid = &u
	}
	return c.JSON(http.StatusOK, h.svc.DetailedStats(year, bid))
}
