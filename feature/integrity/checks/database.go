package checks

import (
	"context"
	"fmt"

	"booking-sync/feature/export"

	"gorm.io/gorm"
)

// DatabaseReport describes the snapshot table.
type DatabaseReport struct {
	Table   string `json:"table"`
	Present bool   `json:"present"`
	Rows    int64  `json:"rows"`
}

// CheckDatabase reports whether the snapshot table exists and how many rows it holds.
func CheckDatabase(ctx context.Context, db *gorm.DB) (*DatabaseReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database sink is not configured")
	}

	report := &DatabaseReport{Table: export.SlotRecord{}.TableName()}
	db = db.WithContext(ctx)
	if !db.Migrator().HasTable(&export.SlotRecord{}) {
		return report, nil
	}
	report.Present = true

	if err := db.Model(&export.SlotRecord{}).Count(&report.Rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", report.Table, err)
	}
	return report, nil
}
