package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bitacora/entities"
)

func TestHealthReportsPendingPlans(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.MaintenancePlan{}))

	day := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&entities.MaintenancePlan{ActivityID: 1, ScheduledDate: day, Status: entities.StatusPending}).Error)
	require.NoError(t, db.Create(&entities.MaintenancePlan{ActivityID: 1, ScheduledDate: day.AddDate(0, 0, 1), Status: entities.StatusPending}).Error)
	require.NoError(t, db.Create(&entities.MaintenancePlan{ActivityID: 1, ScheduledDate: day.AddDate(0, 0, 2), Status: entities.StatusCompleted}).Error)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewHealthCtrl(db).Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["pending_plans"])
}

func TestHealthNilDB(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, NewHealthCtrl(nil).Health(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
