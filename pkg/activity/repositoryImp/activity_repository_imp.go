package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"bitacora/entities"
	"bitacora/pkg/activity/repository"
)

type activityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityRepository { return &activityRepo{db} }

// UpsertByDescription keeps descriptions unique within a bitácora via
// select-then-insert-or-update. No hard constraint backs this up, so two
// concurrent importers can still race; see the store notes.
func (r *activityRepo) UpsertByDescription(a *entities.Activity) (*entities.Activity, error) {
	var existing entities.Activity
	err := r.db.Where("description = ? AND bitacora_id = ?", a.Description, a.BitacoraID).First(&existing).Error
	if err == nil {
		if a.TRHours > 0 || a.TMHours > 0 {
			upd := map[string]any{"tr_hours": a.TRHours, "tm_hours": a.TMHours}
			if err := r.db.Model(&entities.Activity{}).Where("activity_id = ?", existing.ActivityID).Updates(upd).Error; err != nil {
				return nil, err
			}
			existing.TRHours = a.TRHours
			existing.TMHours = a.TMHours
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := r.db.Create(a).Error; err != nil { return nil, err }
	return a, nil
}

func (r *activityRepo) ListByBitacora(bitacoraID uint) ([]entities.Activity, error) {
	var out []entities.Activity
	if err := r.db.Where("bitacora_id = ?", bitacoraID).Order("description ASC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *activityRepo) List() ([]entities.Activity, error) {
	var out []entities.Activity
	if err := r.db.Order("description ASC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}
