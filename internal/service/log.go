package service

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vishnumuthyalu/WorkLogger/internal/config"
	"github.com/vishnumuthyalu/WorkLogger/internal/export"
	"github.com/vishnumuthyalu/WorkLogger/internal/store"
	"github.com/vishnumuthyalu/WorkLogger/internal/timeutil"
	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

// LogService provides operations for saving, listing, and exporting work
// logs.
type LogService struct {
	store  *store.Store
	config config.Config
}

// NewLogService creates a new LogService
func NewLogService(st *store.Store, cfg config.Config) *LogService {
	return &LogService{
		store:  st,
		config: cfg,
	}
}

// SaveDay renders the records into the plain-text summary and upserts it
// under the log date. Saving the same date twice overwrites the earlier
// summary; that is expected behavior, not a conflict.
func (s *LogService) SaveDay(date time.Time, records []worklog.FlatRecord) error {
	summary := worklog.SummaryText(records)
	if err := s.store.Upsert(timeutil.ISODate(date), summary); err != nil {
		return err
	}
	return nil
}

// SavedLogs returns all saved logs, most recently saved first.
func (s *LogService) SavedLogs() ([]store.WorkLog, error) {
	return s.store.FetchAll()
}

// ClearLogs deletes every saved log.
func (s *LogService) ClearLogs() error {
	return s.store.ClearAll()
}

// Bundle converts the records into the three export payloads for the
// given date.
func (s *LogService) Bundle(date time.Time, records []worklog.FlatRecord) (export.Bundle, error) {
	return export.NewBundle(records, date)
}

// WriteBundle writes all three export files into dir and returns the
// written paths.
func (s *LogService) WriteBundle(dir string, bundle export.Bundle) ([]string, error) {
	paths := make([]string, 0, 3)
	for _, f := range bundle.Files() {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
