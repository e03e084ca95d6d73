package types

import "time"

// Candidate is an (activity, date) pair the expander proposes and the
// dedup guard filters before insertion.
type Candidate struct {
	ActivityID      uint
	Date            time.Time
	OperationalDays int
}

type ManualTaskReq struct {
	BitacoraID      uint    `json:"bitacora_id"`
	Year            int     `json:"year"`
	Description     string  `json:"description"`
	FrequencyType   string  `json:"frequency_type"`
	RiskLevel       string  `json:"risk_level"`
	Date            string  `json:"date"` // YYYY-MM-DD
	TRHours         float64 `json:"tr_hours"`
	TMHours         float64 `json:"tm_hours"`
	OperationalDays int     `json:"operational_days"`
	DailyHours      float64 `json:"daily_hours"`
}

type ImportResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
