package repository

import "bitacora/entities"

type ExecutionRepository interface {
	Create(l *entities.ExecutionLog) error
	ListByPlan(planID uint) ([]entities.ExecutionLog, error)
}
