package repository

import (
	"time"

	"bitacora/entities"
)

type PlanRepository interface {
	// InsertPlans writes rows one at a time and reports how many were
	// committed before any failure. There is no rollback of earlier rows.
	InsertPlans(ps []entities.MaintenancePlan) (int, error)
	// ExistingKeys returns day-precision (activity, date) keys for every
	// plan scheduled inside [from, to].
	ExistingKeys(from, to time.Time) (map[string]struct{}, error)
	ListRange(from, to time.Time) ([]entities.MaintenancePlan, error)
	// ListMonthWithActivity feeds the calendar view. A non-zero bitacoraID
	// keeps only plans whose activity belongs to that bitácora.
	ListMonthWithActivity(year int, month time.Month, bitacoraID uint) ([]entities.MaintenancePlan, error)
	// ListYearWithActivity feeds the KPI aggregator: plans joined with
	// their activity and execution logs, ascending by date.
	ListYearWithActivity(year int) ([]entities.MaintenancePlan, error)
	PatchStatus(planID uint, status string) error
	FindByID(planID uint) (*entities.MaintenancePlan, error)
}
