// Package store persists saved work log summaries to a local SQLite
// database, one row per calendar date.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const (
	// AppName is the application name used for the data directory.
	AppName = "worklog"
	// DBFile is the name of the SQLite database file.
	DBFile = "work_logs.db"
)

// WorkLog is one saved daily log. The date is the uniqueness constraint;
// saving again for the same date overwrites the summary and refreshes the
// timestamp instead of creating a second row.
type WorkLog struct {
	ID         uint      `gorm:"primaryKey"`
	LogDate    string    `gorm:"uniqueIndex"`
	LogSummary string    `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName pins the table name used by the original schema.
func (WorkLog) TableName() string { return "work_logs" }

// Store wraps the database handle.
type Store struct {
	db *gorm.DB
}

// DefaultPath returns the path to the SQLite file under the user config
// directory, creating the directory if needed.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, DBFile), nil
}

// Open opens (creating if absent) the database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Init ensures the work_logs table exists. Safe to call repeatedly; the
// hosting surface calls it once at startup before any other operation.
func (s *Store) Init() error {
	if err := s.db.AutoMigrate(&WorkLog{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Upsert inserts a row for logDate, or overwrites the existing row's
// summary and refreshes its timestamp. Exactly one row per date holds
// afterwards, no matter how often it is called.
func (s *Store) Upsert(logDate, summary string) error {
	now := time.Now()
	result := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "log_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"log_summary": summary,
			"created_at":  now,
		}),
	}).Create(&WorkLog{
		LogDate:    logDate,
		LogSummary: summary,
		CreatedAt:  now,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to save log for %s: %w", logDate, result.Error)
	}
	return nil
}

// FetchAll returns every saved log, most recently saved or updated first.
// An empty table yields an empty slice, not an error.
func (s *Store) FetchAll() ([]WorkLog, error) {
	logs := []WorkLog{}
	if err := s.db.Order("created_at DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}
	return logs, nil
}

// ClearAll deletes every row. The table survives, so a subsequent
// FetchAll returns an empty result set.
func (s *Store) ClearAll() error {
	result := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&WorkLog{})
	if result.Error != nil {
		return fmt.Errorf("failed to clear logs: %w", result.Error)
	}
	return nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
