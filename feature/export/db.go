package export

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SlotRecord is the database form of a Record.
type SlotRecord struct {
	ID        uint       `gorm:"primaryKey"`
	SlotStart time.Time  `gorm:"column:slot_start;index;not null"`
	SlotEnd   *time.Time `gorm:"column:slot_end"`
	TimeZone  *string    `gorm:"column:time_zone;size:64"`
	Name      *string    `gorm:"column:name;size:255"`
	Email     *string    `gorm:"column:email;size:255"`
	Occupied  bool       `gorm:"column:occupied;not null"`
}

// TableName overrides the table name used by GORM.
func (SlotRecord) TableName() string {
	return "reconciled_slots"
}

// Migrate creates or updates the snapshot table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SlotRecord{}); err != nil {
		return fmt.Errorf("failed to migrate reconciled_slots: %w", err)
	}
	return nil
}

// ReplaceSnapshot swaps the table contents for the records in a single transaction.
func ReplaceSnapshot(ctx context.Context, db *gorm.DB, records []Record) error {
	rows := make([]SlotRecord, 0, len(records))
	for _, r := range records {
		rows = append(rows, SlotRecord{
			SlotStart: r.Start.UTC(),
			SlotEnd:   utc(r.End),
			TimeZone:  r.TimeZone,
			Name:      r.Name,
			Email:     r.Email,
			Occupied:  r.Occupied,
		})
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&SlotRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear reconciled_slots: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return fmt.Errorf("failed to insert reconciled_slots: %w", err)
		}
		return nil
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
