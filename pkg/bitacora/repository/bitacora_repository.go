package repository

import "bitacora/entities"

type BitacoraRepository interface {
	Create(b *entities.Bitacora) error
	List() ([]entities.Bitacora, error)
	FindByID(id uint) (*entities.Bitacora, error)
	FindByYear(year int) (*entities.Bitacora, error)
	EnsureForYear(year int, dailyHours float64) (*entities.Bitacora, error)
	UpdateDailyHours(id uint, hours float64) error
}
