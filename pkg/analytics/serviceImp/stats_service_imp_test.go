package serviceImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bitacora/entities"
	bitRepoImp "bitacora/pkg/bitacora/repositoryImp"
	planRepoImp "bitacora/pkg/plan/repositoryImp"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Bitacora{},
		&entities.Activity{},
		&entities.MaintenancePlan{},
		&entities.ExecutionLog{},
	))
	return db
}

func newSvc(t *testing.T, cfg Config) (*StatsSvc, *gorm.DB) {
	db := newTestDB(t)
	return NewStatsService(planRepoImp.New(db), bitRepoImp.New(db), cfg), db
}

func seedCompleted(t *testing.T, db *gorm.DB, bitacoraID uint, day time.Time, dias, trMin, tmMin int) uint {
	t.Helper()
	a := entities.Activity{BitacoraID: bitacoraID, Description: "Mantenimiento preventivo", FrequencyType: entities.FreqMonthly, RiskLevel: entities.RiskLow}
	require.NoError(t, db.Create(&a).Error)
	p := entities.MaintenancePlan{ActivityID: a.ActivityID, ScheduledDate: day, Status: entities.StatusCompleted, OperationalDays: dias}
	require.NoError(t, db.Create(&p).Error)
	require.NoError(t, db.Create(&entities.ExecutionLog{
		PlanID: p.PlanID, ExecutedBy: "tech-1", ExecutionTimeMinutes: trMin, TMMinutes: tmMin,
		IsCompleted: true, LoggedAt: day.Add(10 * time.Hour),
	}).Error)
	return p.PlanID
}

func TestDetailedStatsArithmetic(t *testing.T) {
	s, db := newSvc(t, Config{UseActualOutcomeHours: true})
	require.NoError(t, db.Create(&entities.Bitacora{Name: "Compresor", Year: 2025, DailyHours: 4}).Error)
	seedCompleted(t, db, 1, time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), 2, 90, 30)

	rep := s.DetailedStats(2025, nil)
	require.Len(t, rep.Rows, 1)
	r := rep.Rows[0]
	assert.Equal(t, 8.0, r.TO)   // 2 días * 4 h
	assert.Equal(t, 1.5, r.TR)   // 90 min
	assert.Equal(t, 0.5, r.TM)   // 30 min
	assert.Equal(t, 2.0, r.TP)   // TR + TM
	assert.Equal(t, "Mayo", r.Month)
	assert.Equal(t, "12/05/2025", r.Date)

	assert.Equal(t, 8.0, rep.Totals.TO)
	assert.Equal(t, 2, rep.Totals.Dias)
	assert.Equal(t, 1.5, rep.Averages.TR)
}

func TestDetailedStatsEmptyYear(t *testing.T) {
	s, _ := newSvc(t, Config{UseActualOutcomeHours: true})
	rep := s.DetailedStats(2025, nil)
	assert.Empty(t, rep.Rows)
	assert.Equal(t, 0.0, rep.Totals.TO)
	assert.Equal(t, 0, rep.Totals.Dias)
	assert.Equal(t, 0.0, rep.Averages.TP) // divisor clamps to 1, no fault
}

func TestDetailedStatsExcludesNotCompleted(t *testing.T) {
	s, db := newSvc(t, Config{UseActualOutcomeHours: true})
	a := entities.Activity{BitacoraID: 1, Description: "Ajuste de bandas", FrequencyType: entities.FreqWeekly, RiskLevel: entities.RiskLow}
	require.NoError(t, db.Create(&a).Error)
	for _, status := range []string{entities.StatusPending, entities.StatusNotPerformed} {
		p := entities.MaintenancePlan{ActivityID: a.ActivityID, ScheduledDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), Status: status, OperationalDays: 3}
		require.NoError(t, db.Create(&p).Error)
		// an attached log must not rescue a non-completed entry
		require.NoError(t, db.Create(&entities.ExecutionLog{PlanID: p.PlanID, ExecutionTimeMinutes: 60, IsCompleted: false, LoggedAt: time.Now()}).Error)
	}
	rep := s.DetailedStats(2025, nil)
	assert.Empty(t, rep.Rows)
}

func TestDetailedStatsMonthOrdering(t *testing.T) {
	s, db := newSvc(t, Config{UseActualOutcomeHours: true})
	// inserted out of order on purpose
	seedCompleted(t, db, 1, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), 1, 30, 0)
	seedCompleted(t, db, 1, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), 1, 30, 0)
	seedCompleted(t, db, 1, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), 1, 30, 0)

	rep := s.DetailedStats(2025, nil)
	require.Len(t, rep.Rows, 3)
	assert.Equal(t, "Enero", rep.Rows[0].Month)
	assert.Equal(t, "Marzo", rep.Rows[1].Month)
	assert.Equal(t, "05/03/2025", rep.Rows[1].Date)
	assert.Equal(t, "20/03/2025", rep.Rows[2].Date)
}

func TestDetailedStatsScopeFilter(t *testing.T) {
	s, db := newSvc(t, Config{UseActualOutcomeHours: true})
	require.NoError(t, db.Create(&entities.Bitacora{Name: "Torno", Year: 2025, DailyHours: 6}).Error)
	require.NoError(t, db.Create(&entities.Bitacora{Name: "Fresadora", Year: 2025, DailyHours: 4}).Error)
	seedCompleted(t, db, 1, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 1, 60, 0)
	seedCompleted(t, db, 2, time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC), 1, 60, 0)

	scope := uint(1)
	rep := s.DetailedStats(2025, &scope)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, "10/02/2025", rep.Rows[0].Date)
	assert.Equal(t, 6.0, rep.Rows[0].TO) // scope's daily hours, not the default
}

func TestDetailedStatsPlannedHoursVariant(t *testing.T) {
	s, db := newSvc(t, Config{UseActualOutcomeHours: false})
	a := entities.Activity{BitacoraID: 1, Description: "Calibración", FrequencyType: entities.FreqMonthly, RiskLevel: entities.RiskHigh, TRHours: 2.25, TMHours: 0.75}
	require.NoError(t, db.Create(&a).Error)
	p := entities.MaintenancePlan{ActivityID: a.ActivityID, ScheduledDate: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Status: entities.StatusCompleted, OperationalDays: 1}
	require.NoError(t, db.Create(&p).Error)
	// actual log exists but the planned variant ignores it
	require.NoError(t, db.Create(&entities.ExecutionLog{PlanID: p.PlanID, ExecutionTimeMinutes: 600, IsCompleted: true, LoggedAt: time.Now()}).Error)

	rep := s.DetailedStats(2025, nil)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 2.25, rep.Rows[0].TR)
	assert.Equal(t, 0.75, rep.Rows[0].TM)
	assert.Equal(t, 3.0, rep.Rows[0].TP)
}

func TestDetailedStatsNoLogMeansZeroHours(t *testing.T) {
	s, db := newSvc(t, Config{UseActualOutcomeHours: true})
	a := entities.Activity{BitacoraID: 1, Description: "Engrase", FrequencyType: entities.FreqDaily, RiskLevel: entities.RiskLow}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&entities.MaintenancePlan{
		ActivityID: a.ActivityID, ScheduledDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Status: entities.StatusCompleted, OperationalDays: 2,
	}).Error)

	rep := s.DetailedStats(2025, nil)
	require.Len(t, rep.Rows, 1)
	assert.Equal(t, 0.0, rep.Rows[0].TR)
	assert.Equal(t, 0.0, rep.Rows[0].TM)
	assert.Equal(t, 8.0, rep.Rows[0].TO) // default 4h, no bitácora seeded
}
