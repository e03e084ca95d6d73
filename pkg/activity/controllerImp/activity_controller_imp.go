package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bitacora/entities"
	"bitacora/pkg/activity/repository"
)

type ActivityCtrl struct{ repo repository.ActivityRepository }

func New(repo repository.ActivityRepository) *ActivityCtrl { return &ActivityCtrl{repo} }

type createReq struct {
	BitacoraID    uint   `json:"bitacora_id"`
	Description   string `json:"description"`
	FrequencyType string `json:"frequency_type"`
	RiskLevel     string `json:"risk_level"`
	StandardCode  string `json:"standard_code"`
}

func validFrequency(f string) bool {
	return f == entities.FreqDaily || f == entities.FreqWeekly || f == entities.FreqMonthly
}

func validRisk(r string) bool {
	return r == entities.RiskLow || r == entities.RiskMedium || r == entities.RiskHigh
}

func (h *ActivityCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if len(req.Description) < 3 { return c.JSON(http.StatusBadRequest, map[string]string{"error": "description too short"}) }
	if !validFrequency(req.FrequencyType) { return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid frequency_type"}) }
	if !validRisk(req.RiskLevel) { return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid risk_level"}) }

	a := &entities.Activity{
		BitacoraID:    req.BitacoraID,
		Description:   req.Description,
		FrequencyType: req.FrequencyType,
		RiskLevel:     req.RiskLevel,
		StandardCode:  req.StandardCode,
	}
	out, err := h.repo.UpsertByDescription(a)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "id": out.ActivityID})
}

func (h *ActivityCtrl) ListByBitacora(c echo.Context) error {
	bid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.ListByBitacora(uint(bid))
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}
