package repositoryImp

import (
	"gorm.io/gorm"

	"bitacora/entities"
	"bitacora/pkg/execution/repository"
)

type executionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ExecutionRepository { return &executionRepo{db} }

func (r *executionRepo) Create(l *entities.ExecutionLog) error { return r.db.Create(l).Error }

func (r *executionRepo) ListByPlan(planID uint) ([]entities.ExecutionLog, error) {
	var out []entities.ExecutionLog
	if err := r.db.Where("plan_id = ?", planID).Order("logged_at ASC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}
