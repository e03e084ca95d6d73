package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"bitacora/entities"
	"bitacora/pkg/importer"
	"bitacora/pkg/plan/repository"
	"bitacora/pkg/plan/serviceImp"
	"bitacora/pkg/plan/types"
)

type PlanCtrl struct {
	svc  *serviceImp.PlanSvc
	repo repository.PlanRepository
}

func NewPlanCtrl(svc *serviceImp.PlanSvc, repo repository.PlanRepository) *PlanCtrl {
	return &PlanCtrl{svc: svc, repo: repo}
}

// Generate runs the month batch for every activity.
func (h *PlanCtrl) Generate(c echo.Context) error {
	var body struct {
		Year  int `json:"year"`
		Month int `json:"month"` // 1-12
	}
	if err := c.Bind(&body); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if body.Year == 0 || body.Month < 1 || body.Month > 12 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "year and month (1-12) are required"})
	}
	count, err := h.svc.GenerateMonthlyPlan(body.Year, time.Month(body.Month))
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, map[string]any{"success": true, "count": count})
}

// Manual creates (or extends) a single activity from the task form and
// expands it through the rest of the year.
func (h *PlanCtrl) Manual(c echo.Context) error {
	var req types.ManualTaskReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if req.BitacoraID == 0 { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bitacora_id is required"}) }
	if len(req.Description) < 3 { return c.JSON(http.StatusBadRequest, map[string]string{"error": "description too short"}) }
	if len(req.Date) < 10 { return c.JSON(http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"}) }
	inserted, err := h.svc.UpsertManualTask(req)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "count": inserted})
}

// ListMonth feeds the calendar grid, grouped by day. The bitácora scope
// comes from the route param when the nested route is used, otherwise from
// the bitacoraId query param; zero means all bitácoras.
func (h *PlanCtrl) ListMonth(c echo.Context) error {
	year, _ := strconv.Atoi(c.QueryParam("year"))
	month, _ := strconv.Atoi(c.QueryParam("month"))
	if year == 0 || month < 1 || month > 12 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "year and month (1-12) are required"})
	}
	bid, _ := strconv.Atoi(c.Param("id"))
	if bid == 0 {
		bid, _ = strconv.Atoi(c.QueryParam("bitacoraId"))
	}
	plans, err := h.repo.ListMonthWithActivity(year, time.Month(month), uint(bid))
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }

	type calItem struct {
		PlanID      uint   `json:"plan_id"`
		ActivityID  uint   `json:"activity_id"`
		Description string `json:"description"`
		RiskLevel   string `json:"risk_level"`
		Status      string `json:"status"`
	}
	cal := map[string][]calItem{} // "YYYY-MM-DD" -> items
	for _, p := range plans {
		it := calItem{PlanID: p.PlanID, ActivityID: p.ActivityID, Status: p.Status}
		if p.Activity != nil {
			it.Description = p.Activity.Description
			it.RiskLevel = p.Activity.RiskLevel
		}
		ds := p.ScheduledDate.Format("2006-01-02")
		cal[ds] = append(cal[ds], it)
	}
	return c.JSON(http.StatusOK, map[string]any{"year": year, "month": month, "calendar": cal})
}

// PatchStatus lets a supervisor mark an entry NO_REALIZADO (or back to
// PENDIENTE). Completion goes through the execution log instead.
func (h *PlanCtrl) PatchStatus(c echo.Context) error {
	pid, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	switch body.Status {
	case "": // default mirrors the common case on the dashboard
		body.Status = entities.StatusNotPerformed
	case entities.StatusPending, entities.StatusNotPerformed:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid status"})
	}
	if _, err := h.repo.FindByID(uint(pid)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "plan not found"})
	}
	if err := h.repo.PatchStatus(uint(pid), body.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Import accepts a multipart xlsx upload and runs the full-year import.
// Without a bitácora id in the route the service creates one for the
// target year on first use.
func (h *PlanCtrl) Import(c echo.Context) error {
	bid, _ := strconv.Atoi(c.Param("id"))
	year, _ := strconv.Atoi(c.FormValue("year"))
	month, _ := strconv.Atoi(c.FormValue("month"))
	if year == 0 { return c.JSON(http.StatusBadRequest, map[string]string{"error": "year is required"}) }
	if month < 1 || month > 12 { month = 1 }

	fh, err := c.FormFile("file")
	if err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "no file uploaded"}) }
	f, err := fh.Open()
	if err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()}) }
	defer f.Close()

	rows, err := importer.Parse(f)
	if err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read workbook: " + err.Error()}) }

	res, err := h.svc.ImportRows(uint(bid), year, time.Month(month), rows)
	if err != nil {
		// earlier rows stay committed; the count tells the caller how far it got
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error(), "created": res.Created})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "created": res.Created, "skipped": res.Skipped})
}
