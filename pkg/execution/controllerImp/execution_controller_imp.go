package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bitacora/pkg/execution/serviceImp"
)

type ExecutionCtrl struct{ svc *serviceImp.ExecutionSvc }

func New(svc *serviceImp.ExecutionSvc) *ExecutionCtrl { return &ExecutionCtrl{svc} }

type logReq struct {
	TimeMinutes  int      `json:"time_minutes"`
	TMMinutes    int      `json:"tm_minutes"`
	Observations string   `json:"observations"`
	DataDisplay  *float64 `json:"data_display"`
	DataReal     *float64 `json:"data_real"`
}

func (h *ExecutionCtrl) Log(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authorized"})
	}
	pid, _ := strconv.Atoi(c.Param("id"))
	var req logReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }

	l, err := h.svc.LogExecution(serviceImp.LogReq{
		PlanID:       uint(pid),
		Actor:        uid,
		TimeMinutes:  req.TimeMinutes,
		TMMinutes:    req.TMMinutes,
		Observations: req.Observations,
		DisplayValue: req.DataDisplay,
		RealValue:    req.DataReal,
	})
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "log": l})
}
