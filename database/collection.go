package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"agro/pkg/record"
)

// Sequence stores the last id number handed out per table and prefix.
type Sequence struct {
	Name string `gorm:"primaryKey"`
	Last int
}

// Replace swaps the whole content of model's table for rows in one
// transaction.
func Replace[T any](db *gorm.DB, rows []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var model T
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model).Error; err != nil {
			return fmt.Errorf("clear: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		return nil
	})
}

// List loads model's table in collection order.
func List[T any](db *gorm.DB) ([]T, error) {
	out := []T{}
	if err := db.Order("position ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// NextID advances the id sequence of prefix within model's table. The
// counter starts after the highest id already stored so seeded records
// are never reused.
func NextID[T any](db *gorm.DB, prefix string) (string, error) {
	var id string
	err := db.Transaction(func(tx *gorm.DB) error {
		stmt := &gorm.Statement{DB: tx}
		var model T
		if err := stmt.Parse(&model); err != nil {
			return err
		}
		name := stmt.Schema.Table + ":" + prefix

		var row Sequence
		err := tx.Where("name = ?", name).First(&row).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		var ids []string
		if err := tx.Model(&model).Pluck("id", &ids).Error; err != nil {
			return err
		}
		seq := record.NewSequence(prefix, row.Last, ids...)
		id = seq.Next()
		return tx.Save(&Sequence{Name: name, Last: seq.Last()}).Error
	})
	if err != nil {
		return "", fmt.Errorf("next id %s: %w", prefix, err)
	}
	return id, nil
}
