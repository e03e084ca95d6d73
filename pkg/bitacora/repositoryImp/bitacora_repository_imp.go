package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bitacora/entities"
	"bitacora/pkg/bitacora/repository"
)

type bitacoraRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BitacoraRepository { return &bitacoraRepo{db} }

func (r *bitacoraRepo) Create(b *entities.Bitacora) error { return r.db.Create(b).Error }

func (r *bitacoraRepo) List() ([]entities.Bitacora, error) {
	var out []entities.Bitacora
	if err := r.db.Order("year DESC").Order("name ASC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *bitacoraRepo) FindByID(id uint) (*entities.Bitacora, error) {
	var b entities.Bitacora
	if err := r.db.Where("bitacora_id = ?", id).First(&b).Error; err != nil { return nil, err }
	return &b, nil
}

func (r *bitacoraRepo) FindByYear(year int) (*entities.Bitacora, error) {
	var b entities.Bitacora
	if err := r.db.Where("year = ?", year).First(&b).Error; err != nil { return nil, err }
	return &b, nil
}

// EnsureForYear is the select-then-insert upsert used by the import path.
// Not safe under concurrent callers; accepted limitation of the store model.
func (r *bitacoraRepo) EnsureForYear(year int, dailyHours float64) (*entities.Bitacora, error) {
	b, err := r.FindByYear(year)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	nb := &entities.Bitacora{
		Name:        fmt.Sprintf("Bitácora %d", year),
		Year:        year,
		DailyHours:  dailyHours,
		Description: fmt.Sprintf("Bitácora %d", year),
	}
	if err := r.db.Create(nb).Error; err != nil { return nil, err }
	return nb, nil
}

func (r *bitacoraRepo) UpdateDailyHours(id uint, hours float64) error {
	return r.db.Model(&entities.Bitacora{}).Where("bitacora_id = ?", id).Update("daily_hours", hours).Error
}
