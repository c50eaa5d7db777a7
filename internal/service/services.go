// Package service provides the business logic layer for the worklog
// application. It wraps the store, export, and mail packages, providing a
// clean API for both the CLI and the TUI surface.
package service

import (
	"github.com/vishnumuthyalu/WorkLogger/internal/config"
	"github.com/vishnumuthyalu/WorkLogger/internal/store"
)

// Services holds all service instances used by the application
type Services struct {
	Log    *LogService
	Mail   *MailService
	Config *ConfigService

	store *store.Store
}

// NewServices creates a new Services instance with default paths
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	dbPath, err := store.DefaultPath()
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(dbPath, configPath, cfg)
}

// NewServicesWithPaths creates a new Services instance with custom paths
// (useful for testing)
func NewServicesWithPaths(dbPath, configPath string, cfg config.Config) (*Services, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	return &Services{
		Log:    NewLogService(st, cfg),
		Mail:   NewMailService(cfg),
		Config: NewConfigService(configPath, cfg),
		store:  st,
	}, nil
}

// Init runs the explicit startup work: ensuring the work_logs schema
// exists. The hosting surface calls this once before any persistence
// operation.
func (s *Services) Init() error {
	return s.store.Init()
}

// Close releases held resources.
func (s *Services) Close() error {
	return s.store.Close()
}
