package repositoryImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bitacora/entities"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Bitacora{},
		&entities.Activity{},
		&entities.MaintenancePlan{},
	))
	return db
}

func TestListMonthWithActivityScope(t *testing.T) {
	db := newTestDB(t)
	repo := New(db)

	require.NoError(t, db.Create(&entities.Bitacora{Name: "Planta A", Year: 2025, DailyHours: 4}).Error)
	require.NoError(t, db.Create(&entities.Bitacora{Name: "Planta B", Year: 2025, DailyHours: 4}).Error)
	require.NoError(t, db.Create(&entities.Activity{BitacoraID: 1, Description: "Engrase de rodamientos", FrequencyType: entities.FreqWeekly, RiskLevel: entities.RiskLow}).Error)
	require.NoError(t, db.Create(&entities.Activity{BitacoraID: 2, Description: "Inspección eléctrica", FrequencyType: entities.FreqMonthly, RiskLevel: entities.RiskHigh}).Error)

	day := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&entities.MaintenancePlan{ActivityID: 1, ScheduledDate: day, Status: entities.StatusPending}).Error)
	require.NoError(t, db.Create(&entities.MaintenancePlan{ActivityID: 2, ScheduledDate: day, Status: entities.StatusPending}).Error)

	all, err := repo.ListMonthWithActivity(2025, time.May, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := repo.ListMonthWithActivity(2025, time.May, 2)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	require.NotNil(t, scoped[0].Activity)
	assert.Equal(t, "Inspección eléctrica", scoped[0].Activity.Description)
	assert.Equal(t, uint(2), scoped[0].Activity.BitacoraID)

	none, err := repo.ListMonthWithActivity(2025, time.May, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}
