package entities

import "time"

const (
	StatusPending      = "PENDIENTE"
	StatusCompleted    = "COMPLETADO"
	StatusNotPerformed = "NO_REALIZADO"
)

// MaintenancePlan is one scheduled occurrence of an Activity on a calendar
// date. ScheduledDate carries date precision only; the time component is
// stripped before any comparison.
type MaintenancePlan struct {
	PlanID          uint      `gorm:"primaryKey" json:"plan_id"`
	ActivityID      uint      `json:"activity_id" gorm:"index"`
	ScheduledDate   time.Time `json:"scheduled_date" gorm:"index"`
	Status          string    `json:"status"` // PENDIENTE|COMPLETADO|NO_REALIZADO
	OperationalDays int       `json:"operational_days"`

	Activity *Activity      `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
	Logs     []ExecutionLog `gorm:"foreignKey:PlanID" json:"logs,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
