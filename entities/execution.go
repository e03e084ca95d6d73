package entities

import "time"

// Calibration holds the instrument readings captured with an execution,
// stored as a structured column instead of the legacy JSON fragment that
// used to be appended to the observations text.
type Calibration struct {
	Display         float64 `json:"display"`
	Real            float64 `json:"real"`
	ErrorPercentage float64 `json:"error_percentage"`
	WithinTolerance bool    `json:"within_tolerance"`
}

// ExecutionLog records what actually happened for a plan entry. Immutable
// once written; at most the first log per plan is consulted by reports.
type ExecutionLog struct {
	LogID                uint         `gorm:"primaryKey" json:"log_id"`
	PlanID               uint         `json:"plan_id" gorm:"index"`
	ExecutedBy           string       `json:"executed_by"`
	ExecutionTimeMinutes int          `json:"execution_time_minutes"`
	TMMinutes            int          `json:"tm_minutes"`
	Observations         string       `json:"observations"`
	Calibration          *Calibration `gorm:"serializer:json" json:"calibration,omitempty"`
	IsCompleted          bool         `json:"is_completed"`
	LoggedAt             time.Time    `json:"logged_at"`
}
