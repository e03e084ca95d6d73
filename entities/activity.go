package entities

import "time"

const (
	FreqDaily   = "DIARIA"
	FreqWeekly  = "SEMANAL"
	FreqMonthly = "MENSUAL"

	RiskLow    = "BAJO"
	RiskMedium = "MEDIO"
	RiskHigh   = "ALTO"
)

// Activity is a reusable maintenance task definition. Description is unique
// within its bitácora; the upsert path enforces that, not the schema.
type Activity struct {
	ActivityID    uint    `gorm:"primaryKey" json:"activity_id"`
	BitacoraID    uint    `json:"bitacora_id" gorm:"index"`
	Description   string  `json:"description"`
	FrequencyType string  `json:"frequency_type"` // DIARIA|SEMANAL|MENSUAL
	RiskLevel     string  `json:"risk_level"`     // BAJO|MEDIO|ALTO
	StandardCode  string  `json:"standard_code"`
	TRHours       float64 `json:"tr_hours"` // planned repair hours
	TMHours       float64 `json:"tm_hours"` // planned downtime hours

	CreatedAt time.Time
	UpdatedAt time.Time
}
