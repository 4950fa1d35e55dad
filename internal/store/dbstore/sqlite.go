// Package dbstore is the SQLite-backed implementation of store.Store,
// built on GORM. List saves are transactional whole-table replacements
// so a snapshot is never half-written.
package dbstore

import (
	"fmt"

	"github.com/harshit-2705/Voice-Command-Shopping-Assistant/internal/shopping"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteStore persists the shopping list and history in a SQLite file.
type SQLiteStore struct {
	db     *gorm.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the database at dbPath and runs
// schema migration.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&ListItemModel{}, &HistoryItemModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// LoadList returns the persisted list in saved order.
func (s *SQLiteStore) LoadList() ([]shopping.Item, error) {
	var models []ListItemModel
	if err := s.db.Order("position asc").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load list: %w", err)
	}
	items := make([]shopping.Item, len(models))
	for i, m := range models {
		items[i] = m.ToItem()
	}
	return items, nil
}

// SaveList replaces the persisted list with the snapshot and appends
// completed items to history, all in one transaction.
func (s *SQLiteStore) SaveList(list []shopping.Item) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ListItemModel{}).Error; err != nil {
			return err
		}
		for i, item := range list {
			model := fromItem(item, i)
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
			if item.Completed {
				history := historyFromItem(item)
				if err := tx.Create(&history).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save list: %w", err)
	}
	return nil
}

// History returns completed-item records, oldest first.
func (s *SQLiteStore) History() ([]shopping.Item, error) {
	var models []HistoryItemModel
	if err := s.db.Order("id asc").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	items := make([]shopping.Item, len(models))
	for i, m := range models {
		items[i] = m.ToItem()
	}
	return items, nil
}

// AppendHistory records completed items.
func (s *SQLiteStore) AppendHistory(items []shopping.Item) error {
	for _, item := range items {
		model := historyFromItem(item)
		if err := s.db.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to append history: %w", err)
		}
	}
	return nil
}

// Clear removes every persisted list row. History is kept.
func (s *SQLiteStore) Clear() error {
	if err := s.db.Where("1 = 1").Delete(&ListItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear list: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
