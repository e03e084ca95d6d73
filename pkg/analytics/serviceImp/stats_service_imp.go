package serviceImp

import (
	"log"
	"math"

	"bitacora/entities"
	"bitacora/pkg/analytics/types"
	bitrepo "bitacora/pkg/bitacora/repository"
	"bitacora/pkg/calendar"
	planrepo "bitacora/pkg/plan/repository"
)

// DefaultDailyHours is used when no bitácora resolves for the requested
// scope or year.
const DefaultDailyHours = 4

// Config selects between the two KPI formulas found in the field: actual
// hours from the execution log, or the activity's planned hours. Legacy
// imports may lack outcome data, so the caller chooses.
type Config struct {
	UseActualOutcomeHours bool
}

type StatsSvc struct {
	plans     planrepo.PlanRepository
	bitacoras bitrepo.BitacoraRepository
	cfg       Config
}

func NewStatsService(pr planrepo.PlanRepository, br bitrepo.BitacoraRepository, cfg Config) *StatsSvc {
	return &StatsSvc{plans: pr, bitacoras: br, cfg: cfg}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// DetailedStats builds the yearly report: completed plan entries only,
// grouped by month in chronological order, with per-row hour metrics and
// the year's totals and averages. A store failure degrades to the empty
// report rather than breaking the dashboard.
func (s *StatsSvc) DetailedStats(year int, bitacoraID *uint) types.DetailedReport {
	dailyHours := float64(DefaultDailyHours)
	if bitacoraID != nil {
		if b, err := s.bitacoras.FindByID(*bitacoraID); err == nil {
			dailyHours = b.DailyHours
		}
	} else if b, err := s.bitacoras.FindByYear(year); err == nil {
		dailyHours = b.DailyHours
	}

	plans, err := s.plans.ListYearWithActivity(year)
	if err != nil {
		log.Printf("[stats] year %d query failed, returning empty report: %v", year, err)
		return types.DetailedReport{Rows: []types.DetailedRow{}}
	}

	rows := []types.DetailedRow{}
	var sumTO, sumTP, sumTR, sumTM float64
	sumDias := 0

	for _, p := range plans {
		if bitacoraID != nil && (p.Activity == nil || p.Activity.BitacoraID != *bitacoraID) {
			continue
		}
		if p.Status != entities.StatusCompleted {
			continue
		}

		var tr, tm float64
		if s.cfg.UseActualOutcomeHours {
			if len(p.Logs) > 0 {
				// only the first log is consulted
				tr = float64(p.Logs[0].ExecutionTimeMinutes) / 60
				tm = float64(p.Logs[0].TMMinutes) / 60
			}
		} else if p.Activity != nil {
			tr = p.Activity.TRHours
			tm = p.Activity.TMHours
		}
		tp := tr + tm
		to := float64(p.OperationalDays) * dailyHours

		sumTO += to
		sumTP += tp
		sumTR += tr
		sumTM += tm
		sumDias += p.OperationalDays

		d := calendar.DateOnly(p.ScheduledDate)
		desc := "Desconocida"
		if p.Activity != nil {
			desc = p.Activity.Description
		}
		rows = append(rows, types.DetailedRow{
			PlanID:   p.PlanID,
			Month:    calendar.MonthNameES(d.Month()),
			Activity: desc,
			Date:     calendar.FormatDateES(d),
			Dias:     p.OperationalDays,
			TO:       round2(to),
			TP:       round2(tp),
			TR:       round2(tr),
			TM:       round2(tm),
		})
	}

	count := float64(len(rows))
	if count == 0 {
		count = 1 // keeps the averages well-defined
	}
	return types.DetailedReport{
		Rows: rows,
		Totals: types.Totals{
			TO: round2(sumTO), TP: round2(sumTP), TR: round2(sumTR), TM: round2(sumTM),
			Dias: sumDias,
		},
		Averages: types.Averages{
			TO: round2(sumTO / count), TP: round2(sumTP / count),
			TR: round2(sumTR / count), TM: round2(sumTM / count),
		},
	}
}
