package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"bitacora/entities"
	"bitacora/pkg/calendar"
	"bitacora/pkg/plan/repository"
)

type planRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlanRepository { return &planRepo{db} }

func (r *planRepo) InsertPlans(ps []entities.MaintenancePlan) (int, error) {
	inserted := 0
	for i := range ps {
		if err := r.db.Create(&ps[i]).Error; err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func (r *planRepo) ExistingKeys(from, to time.Time) (map[string]struct{}, error) {
	var rows []entities.MaintenancePlan
	if err := r.db.Select("activity_id, scheduled_date").
		Where("scheduled_date >= ? AND scheduled_date <= ?", from, endOfDay(to)).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	keys := make(map[string]struct{}, len(rows))
	for _, p := range rows {
		keys[calendar.DateKey(p.ActivityID, calendar.DateOnly(p.ScheduledDate))] = struct{}{}
	}
	return keys, nil
}

func (r *planRepo) ListRange(from, to time.Time) ([]entities.MaintenancePlan, error) {
	var out []entities.MaintenancePlan
	if err := r.db.Where("scheduled_date >= ? AND scheduled_date <= ?", from, endOfDay(to)).
		Order("scheduled_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planRepo) ListMonthWithActivity(year int, month time.Month, bitacoraID uint) ([]entities.MaintenancePlan, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)
	var out []entities.MaintenancePlan
	if err := r.db.Preload("Activity").
		Where("scheduled_date >= ? AND scheduled_date <= ?", from, to).
		Order("scheduled_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	if bitacoraID == 0 {
		return out, nil
	}
	scoped := out[:0]
	for _, p := range out {
		if p.Activity != nil && p.Activity.BitacoraID == bitacoraID {
			scoped = append(scoped, p)
		}
	}
	return scoped, nil
}

func (r *planRepo) ListYearWithActivity(year int) ([]entities.MaintenancePlan, error) {
	from := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC)
	var out []entities.MaintenancePlan
	if err := r.db.Preload("Activity").
		Preload("Logs", func(tx *gorm.DB) *gorm.DB { return tx.Order("logged_at ASC") }).
		Where("scheduled_date >= ? AND scheduled_date <= ?", from, to).
		Order("scheduled_date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *planRepo) PatchStatus(planID uint, status string) error {
	return r.db.Model(&entities.MaintenancePlan{}).Where("plan_id = ?", planID).
		Update("status", status).Error
}

func (r *planRepo) FindByID(planID uint) (*entities.MaintenancePlan, error) {
	var p entities.MaintenancePlan
	if err := r.db.Where("plan_id = ?", planID).First(&p).Error; err != nil { return nil, err }
	return &p, nil
}

// endOfDay widens the range upper bound so rows stored with a time-of-day
// component still match a date-only query.
func endOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
}
