package entities

import "time"

type Bitacora struct {
	BitacoraID  uint    `gorm:"primaryKey" json:"bitacora_id"`
	Name        string  `json:"name"`
	Year        int     `json:"year" gorm:"index"`
	DailyHours  float64 `json:"daily_hours"` // hours per operational day, >= 0
	Description string  `json:"description"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
