package repository

import "bitacora/entities"

type ActivityRepository interface {
	// UpsertByDescription finds the activity by (bitacora, description) or
	// creates it; planned hours are overwritten when non-zero values arrive.
	UpsertByDescription(a *entities.Activity) (*entities.Activity, error)
	ListByBitacora(bitacoraID uint) ([]entities.Activity, error)
	List() ([]entities.Activity, error)
}
