package types

// DetailedRow is one completed plan entry in the yearly report. Hour values
// are rounded to 2 decimals for display; summation happens on raw values.
type DetailedRow struct {
	PlanID   uint    `json:"plan_id"`
	Month    string  `json:"month"`
	Activity string  `json:"activity"`
	Date     string  `json:"date"` // dd/mm/yyyy
	Dias     int     `json:"dias"`
	TO       float64 `json:"to"` // dias * daily hours
	TP       float64 `json:"tp"` // TR + TM
	TR       float64 `json:"tr"`
	TM       float64 `json:"tm"`
}

type Totals struct {
	TO   float64 `json:"to"`
	TP   float64 `json:"tp"`
	TR   float64 `json:"tr"`
	TM   float64 `json:"tm"`
	Dias int     `json:"dias"`
}

type Averages struct {
	TO float64 `json:"to"`
	TP float64 `json:"tp"`
	TR float64 `json:"tr"`
	TM float64 `json:"tm"`
}

type DetailedReport struct {
	Rows     []DetailedRow `json:"rows"`
	Totals   Totals        `json:"totals"`
	Averages Averages      `json:"averages"`
}
