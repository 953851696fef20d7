package catalog

import (
	"context"
	"fmt"

	"icon-curator/core/database"

	"gorm.io/gorm"
)

// batchSize bounds the rows of a single INSERT.
const batchSize = 500

// Store persists the catalog.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the catalog table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return nil
}

// CheckSchema returns the columns missing from the catalog table.
func (s *Store) CheckSchema() ([]string, error) {
	return database.MissingColumns(s.db, TableName, Columns)
}

// Replace swaps the recorded catalog for entries in one transaction.
func (s *Store) Replace(ctx context.Context, entries []Entry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Entry{}).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", TableName, err)
		}
		if len(entries) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&entries, batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert into %s: %w", TableName, err)
		}
		return nil
	})
}

// List returns the recorded entries ordered by style then file. An empty style
// returns every entry.
func (s *Store) List(ctx context.Context, style string) ([]Entry, error) {
	var entries []Entry
	q := s.db.WithContext(ctx).Order("style").Order("file_name")
	if style != "" {
		q = q.Where("style = ?", style)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", TableName, err)
	}
	return entries, nil
}
