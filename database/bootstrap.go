// database/bootstrap.go
package database

import (
	"encoding/json"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"bitacora/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Bitacora{},
		&entities.Activity{},
		&entities.MaintenancePlan{},
		&entities.ExecutionLog{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	// Runs after AutoMigrate so the calibration column already exists.
	if err := migrateLegacyCalibration(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	return db
}

const legacyDataMarker = " [DATA: "

// legacyData matches the JSON fragment older versions appended to the
// observations text instead of using a real column.
type legacyData struct {
	Calibration *struct {
		Display         float64 `json:"display"`
		Real            float64 `json:"real"`
		ErrorPercentage float64 `json:"errorPercentage"`
		IsWithin        bool    `json:"isWithinTolerance"`
	} `json:"calibration"`
}

// migrateLegacyCalibration lifts `[DATA: {...}]` suffixes out of the
// observations field into the structured calibration column.
func migrateLegacyCalibration(db *gorm.DB) error {
	var logs []entities.ExecutionLog
	if err := db.Where("observations LIKE ?", "%"+legacyDataMarker+"%").Find(&logs).Error; err != nil {
		return err
	}
	for _, l := range logs {
		idx := strings.Index(l.Observations, legacyDataMarker)
		raw := strings.TrimSpace(l.Observations[idx+len(legacyDataMarker):])
		raw = strings.TrimSuffix(raw, "]")

		var data legacyData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			log.Printf("[migrate] log %d: unparseable legacy data, leaving as-is: %v", l.LogID, err)
			continue
		}

		upd := entities.ExecutionLog{Observations: strings.TrimSpace(l.Observations[:idx])}
		if data.Calibration != nil {
			upd.Calibration = &entities.Calibration{
				Display:         data.Calibration.Display,
				Real:            data.Calibration.Real,
				ErrorPercentage: data.Calibration.ErrorPercentage,
				WithinTolerance: data.Calibration.IsWithin,
			}
		}
		// struct update so the calibration serializer applies
		if err := db.Model(&entities.ExecutionLog{}).Where("log_id = ?", l.LogID).
			Select("observations", "calibration").Updates(upd).Error; err != nil {
			return err
		}
	}
	if len(logs) > 0 {
		log.Printf("[migrate] lifted legacy calibration data from %d execution logs", len(logs))
	}
	return nil
}
