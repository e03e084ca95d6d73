package serviceImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bitacora/entities"
	execRepoImp "bitacora/pkg/execution/repositoryImp"
	planRepoImp "bitacora/pkg/plan/repositoryImp"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Activity{},
		&entities.MaintenancePlan{},
		&entities.ExecutionLog{},
	))
	return db
}

func TestNewCalibration(t *testing.T) {
	cal := NewCalibration(100.4, 100)
	require.NotNil(t, cal)
	assert.Equal(t, 0.4, cal.ErrorPercentage)
	assert.True(t, cal.WithinTolerance)

	cal = NewCalibration(101, 100)
	require.NotNil(t, cal)
	assert.Equal(t, 1.0, cal.ErrorPercentage)
	assert.False(t, cal.WithinTolerance)

	// exactly on the band edge counts as within
	cal = NewCalibration(100.5, 100)
	require.NotNil(t, cal)
	assert.True(t, cal.WithinTolerance)

	assert.Nil(t, NewCalibration(100, 0))
}

func TestLogExecutionMarksPlanCompleted(t *testing.T) {
	db := newTestDB(t)
	svc := NewExecutionService(execRepoImp.New(db), planRepoImp.New(db))

	p := entities.MaintenancePlan{ActivityID: 1, ScheduledDate: time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), Status: entities.StatusPending}
	require.NoError(t, db.Create(&p).Error)

	display, real := 100.2, 100.0
	l, err := svc.LogExecution(LogReq{
		PlanID:       p.PlanID,
		Actor:        "tech-7",
		TimeMinutes:  45,
		TMMinutes:    15,
		Observations: "sin novedades",
		DisplayValue: &display,
		RealValue:    &real,
	})
	require.NoError(t, err)
	assert.Equal(t, "tech-7", l.ExecutedBy)
	assert.True(t, l.IsCompleted)
	require.NotNil(t, l.Calibration)
	assert.Equal(t, 0.2, l.Calibration.ErrorPercentage)

	var got entities.MaintenancePlan
	require.NoError(t, db.First(&got, p.PlanID).Error)
	assert.Equal(t, entities.StatusCompleted, got.Status)

	// calibration survives the round trip through the json serializer
	var stored entities.ExecutionLog
	require.NoError(t, db.First(&stored, l.LogID).Error)
	require.NotNil(t, stored.Calibration)
	assert.True(t, stored.Calibration.WithinTolerance)
}

func TestLogExecutionUnknownPlan(t *testing.T) {
	db := newTestDB(t)
	svc := NewExecutionService(execRepoImp.New(db), planRepoImp.New(db))
	_, err := svc.LogExecution(LogReq{PlanID: 999, Actor: "tech-1"})
	assert.Error(t, err)
}

func TestLogExecutionWithoutReadings(t *testing.T) {
	db := newTestDB(t)
	svc := NewExecutionService(execRepoImp.New(db), planRepoImp.New(db))

	p := entities.MaintenancePlan{ActivityID: 1, ScheduledDate: time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC), Status: entities.StatusPending}
	require.NoError(t, db.Create(&p).Error)

	l, err := svc.LogExecution(LogReq{PlanID: p.PlanID, Actor: "tech-2", TimeMinutes: 30})
	require.NoError(t, err)
	assert.Nil(t, l.Calibration)
}
