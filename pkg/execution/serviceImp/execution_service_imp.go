package serviceImp

import (
	"math"
	"time"

	"bitacora/entities"
	execrepo "bitacora/pkg/execution/repository"
	planrepo "bitacora/pkg/plan/repository"
)

// CalibrationTolerancePct is the instrument acceptance band (±0.5%).
const CalibrationTolerancePct = 0.5

type ExecutionSvc struct {
	logs  execrepo.ExecutionRepository
	plans planrepo.PlanRepository
}

func NewExecutionService(er execrepo.ExecutionRepository, pr planrepo.PlanRepository) *ExecutionSvc {
	return &ExecutionSvc{logs: er, plans: pr}
}

type LogReq struct {
	PlanID       uint
	Actor        string
	TimeMinutes  int
	TMMinutes    int
	Observations string
	// optional instrument readings; calibration is computed when both are set
	DisplayValue *float64
	RealValue    *float64
}

// NewCalibration derives the error percentage of a displayed reading against
// the reference value. Returns nil when the reference is zero.
func NewCalibration(display, real float64) *entities.Calibration {
	if real == 0 {
		return nil
	}
	errPct := (display - real) / real * 100
	errPct = math.Round(errPct*100) / 100
	return &entities.Calibration{
		Display:         display,
		Real:            real,
		ErrorPercentage: errPct,
		WithinTolerance: math.Abs(errPct) <= CalibrationTolerancePct,
	}
}

// LogExecution writes the outcome record and marks the plan entry completed.
// The two writes are not transactional: a failed status patch leaves the log
// behind.
func (s *ExecutionSvc) LogExecution(req LogReq) (*entities.ExecutionLog, error) {
	if _, err := s.plans.FindByID(req.PlanID); err != nil {
		return nil, err
	}

	var cal *entities.Calibration
	if req.DisplayValue != nil && req.RealValue != nil {
		cal = NewCalibration(*req.DisplayValue, *req.RealValue)
	}

	l := &entities.ExecutionLog{
		PlanID:               req.PlanID,
		ExecutedBy:           req.Actor,
		ExecutionTimeMinutes: req.TimeMinutes,
		TMMinutes:            req.TMMinutes,
		Observations:         req.Observations,
		Calibration:          cal,
		IsCompleted:          true,
		LoggedAt:             time.Now().UTC(),
	}
	if err := s.logs.Create(l); err != nil { return nil, err }
	if err := s.plans.PatchStatus(req.PlanID, entities.StatusCompleted); err != nil { return nil, err }
	return l, nil
}
