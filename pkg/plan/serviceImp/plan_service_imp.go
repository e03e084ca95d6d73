package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"time"

	"bitacora/entities"
	actrepo "bitacora/pkg/activity/repository"
	bitrepo "bitacora/pkg/bitacora/repository"
	"bitacora/pkg/calendar"
	"bitacora/pkg/importer"
	planrepo "bitacora/pkg/plan/repository"
	"bitacora/pkg/plan/types"
)

type PlanSvc struct {
	plans      planrepo.PlanRepository
	activities actrepo.ActivityRepository
	bitacoras  bitrepo.BitacoraRepository
}

func NewPlanService(pr planrepo.PlanRepository, ar actrepo.ActivityRepository, br bitrepo.BitacoraRepository) *PlanSvc {
	return &PlanSvc{plans: pr, activities: ar, bitacoras: br}
}

// Daily hours assigned to a bitácora created on the fly during an import.
const defaultDailyHours = 4

// ExpandForYear steps an anchor date forward by the activity's cadence,
// inclusive of the anchor, until December 31 of the target year. Literal
// stepping: DIARIA walks every calendar day, SEMANAL every 7 days, MENSUAL
// one calendar month at a time. An unknown cadence yields the anchor alone,
// and so does an anchor already past the bound, so a manually entered task
// never expands to zero rows.
func (s *PlanSvc) ExpandForYear(frequency string, anchor time.Time, year int) []time.Time {
	limit := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	d := calendar.DateOnly(anchor)
	if d.After(limit) {
		return []time.Time{d}
	}
	var out []time.Time
	for !d.After(limit) {
		out = append(out, d)
		switch frequency {
		case entities.FreqDaily:
			d = d.AddDate(0, 0, 1)
		case entities.FreqWeekly:
			d = d.AddDate(0, 0, 7)
		case entities.FreqMonthly:
			d = d.AddDate(0, 1, 0)
		default:
			return out
		}
	}
	return out
}

// ExpandForMonth is the month-batch variant used when generating a plan for
// all activities at once, with no anchor: DIARIA lands on working days only,
// SEMANAL on Mondays, MENSUAL on the month's first working day.
func (s *PlanSvc) ExpandForMonth(frequency string, year int, month time.Month) []time.Time {
	var out []time.Time
	switch frequency {
	case entities.FreqDaily:
		for _, d := range calendar.DaysInMonth(year, month) {
			if calendar.IsWorkingDay(d) {
				out = append(out, d)
			}
		}
	case entities.FreqWeekly:
		for _, d := range calendar.DaysInMonth(year, month) {
			if d.Weekday() == time.Monday {
				out = append(out, d)
			}
		}
	case entities.FreqMonthly:
		d, err := calendar.FirstWorkingDayOfMonth(year, month)
		if err == nil {
			out = append(out, d)
		}
	}
	return out
}

// FilterNew is the dedup guard: candidates whose (activity, day) pair is
// already persisted inside [from, to] are dropped. Comparison is by calendar
// day, so rows stored with a time component still match.
func (s *PlanSvc) FilterNew(cands []types.Candidate, from, to time.Time) ([]types.Candidate, error) {
	existing, err := s.plans.ExistingKeys(from, to)
	if err != nil { return nil, err }
	out := make([]types.Candidate, 0, len(cands))
	for _, c := range cands {
		if _, dup := existing[calendar.DateKey(c.ActivityID, c.Date)]; !dup {
			out = append(out, c)
		}
	}
	return out, nil
}

// GenerateMonthlyPlan expands every known activity into the target month,
// filters out already-persisted pairs, and inserts the remainder. Returns
// the candidate count (pre-dedup), matching what the UI reports.
func (s *PlanSvc) GenerateMonthlyPlan(year int, month time.Month) (int, error) {
	activities, err := s.activities.List()
	if err != nil { return 0, err }
	if len(activities) == 0 {
		return 0, errors.New("no activities to schedule")
	}

	var cands []types.Candidate
	for _, a := range activities {
		for _, d := range s.ExpandForMonth(a.FrequencyType, year, month) {
			cands = append(cands, types.Candidate{ActivityID: a.ActivityID, Date: d})
		}
	}
	if len(cands) == 0 {
		return 0, nil
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	fresh, err := s.FilterNew(cands, from, to)
	if err != nil { return 0, err }

	inserted, err := s.insertCandidates(fresh)
	if err != nil {
		log.Printf("[plan] monthly batch aborted after %d of %d inserts: %v", inserted, len(fresh), err)
		return 0, err
	}
	return len(cands), nil
}

// UpsertManualTask handles the single-task form: upserts the activity,
// expands it across the rest of the bitácora year, and inserts whatever the
// guard lets through.
func (s *PlanSvc) UpsertManualTask(req types.ManualTaskReq) (int, error) {
	anchor, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}
	if req.DailyHours > 0 {
		if err := s.bitacoras.UpdateDailyHours(req.BitacoraID, req.DailyHours); err != nil {
			return 0, err
		}
	}

	a, err := s.activities.UpsertByDescription(&entities.Activity{
		BitacoraID:    req.BitacoraID,
		Description:   req.Description,
		FrequencyType: req.FrequencyType,
		RiskLevel:     req.RiskLevel,
		TRHours:       req.TRHours,
		TMHours:       req.TMHours,
	})
	if err != nil { return 0, err }

	dates := s.ExpandForYear(a.FrequencyType, anchor, req.Year)
	cands := make([]types.Candidate, 0, len(dates))
	for _, d := range dates {
		cands = append(cands, types.Candidate{ActivityID: a.ActivityID, Date: d, OperationalDays: req.OperationalDays})
	}
	fresh, err := s.FilterNew(cands, dates[0], dates[len(dates)-1])
	if err != nil { return 0, err }
	return s.insertCandidates(fresh)
}

// ImportRows runs the spreadsheet flow: one activity upsert plus a full-year
// expansion per row. The bitácora is resolved first, created for the target
// year if the caller gave no explicit one. Rows without a description are
// skipped; unparseable dates fall back to the first of the target month.
// Inserts are per row, so a failure leaves earlier rows committed and the
// returned count says how far it got.
func (s *PlanSvc) ImportRows(bitacoraID uint, targetYear int, targetMonth time.Month, rows []importer.Row) (types.ImportResult, error) {
	var res types.ImportResult

	if bitacoraID == 0 {
		b, err := s.bitacoras.EnsureForYear(targetYear, defaultDailyHours)
		if err != nil { return res, err }
		bitacoraID = b.BitacoraID
	} else if _, err := s.bitacoras.FindByID(bitacoraID); err != nil {
		return res, err
	}

	for _, row := range rows {
		if row.Description == "" {
			res.Skipped++
			continue
		}
		if row.DailyHours > 0 {
			if err := s.bitacoras.UpdateDailyHours(bitacoraID, row.DailyHours); err != nil {
				return res, err
			}
		}

		a, err := s.activities.UpsertByDescription(&entities.Activity{
			BitacoraID:    bitacoraID,
			Description:   row.Description,
			FrequencyType: row.Frequency,
			RiskLevel:     row.Risk,
			StandardCode:  row.Standard,
			TRHours:       row.TRHours,
			TMHours:       row.TMHours,
		})
		if err != nil { return res, err }

		anchor := importer.ResolveDate(row.DateRaw, targetYear, targetMonth)
		dates := s.ExpandForYear(a.FrequencyType, anchor, targetYear)
		cands := make([]types.Candidate, 0, len(dates))
		for _, d := range dates {
			cands = append(cands, types.Candidate{ActivityID: a.ActivityID, Date: d, OperationalDays: row.OperationalDays})
		}
		fresh, err := s.FilterNew(cands, dates[0], dates[len(dates)-1])
		if err != nil { return res, err }
		n, err := s.insertCandidates(fresh)
		res.Created += n
		if err != nil {
			log.Printf("[import] row %q aborted after %d inserts: %v", row.Description, n, err)
			return res, err
		}
	}
	log.Printf("[import] created=%d skipped=%d", res.Created, res.Skipped)
	return res, nil
}

func (s *PlanSvc) insertCandidates(cands []types.Candidate) (int, error) {
	if len(cands) == 0 {
		return 0, nil
	}
	ps := make([]entities.MaintenancePlan, 0, len(cands))
	for _, c := range cands {
		ps = append(ps, entities.MaintenancePlan{
			ActivityID:      c.ActivityID,
			ScheduledDate:   c.Date,
			Status:          entities.StatusPending,
			OperationalDays: c.OperationalDays,
		})
	}
	return s.plans.InsertPlans(ps)
}
