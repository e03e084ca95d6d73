package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bitacora/entities"
	"bitacora/pkg/bitacora/repository"
)

type BitacoraCtrl struct{ repo repository.BitacoraRepository }

func New(repo repository.BitacoraRepository) *BitacoraCtrl { return &BitacoraCtrl{repo} }

type createReq struct {
	Name        string  `json:"name"`
	Year        int     `json:"year"`
	DailyHours  float64 `json:"daily_hours"`
	Description string  `json:"description"`
}

func (h *BitacoraCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"}) }
	if req.Name == "" { return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"}) }
	if req.Year < 2000 || req.Year > 2100 { return c.JSON(http.StatusBadRequest, map[string]string{"error": "year out of range"}) }
	if req.DailyHours < 0 { return c.JSON(http.StatusBadRequest, map[string]string{"error": "daily_hours must be >= 0"}) }
	if req.DailyHours == 0 { req.DailyHours = 4 }
	b := &entities.Bitacora{Name: req.Name, Year: req.Year, DailyHours: req.DailyHours, Description: req.Description}
	if err := h.repo.Create(b); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "id": b.BitacoraID})
}

func (h *BitacoraCtrl) List(c echo.Context) error {
	out, err := h.repo.List()
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}

func (h *BitacoraCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	b, err := h.repo.FindByID(uint(id))
	if err != nil { return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"}) }
	return c.JSON(http.StatusOK, b)
}
