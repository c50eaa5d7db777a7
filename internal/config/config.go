// Package config loads and validates the application configuration from a
// TOML file in the user config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vishnumuthyalu/WorkLogger/internal/worklog"
)

const (
	// AppName is the application name used for the config directory
	AppName = "worklog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// PasswordPlaceholder marks an unconfigured SMTP credential.
	PasswordPlaceholder = "CHANGE_ME"
)

// Email holds the SMTP relay settings and the defaults pre-filled into the
// send form.
type Email struct {
	Server         string `toml:"server"`
	Port           int    `toml:"port"`
	User           string `toml:"user"`
	Password       string `toml:"password"`
	SenderName     string `toml:"sender_name"`
	DefaultTo      string `toml:"default_to"`
	DefaultCC      string `toml:"default_cc"`
	DefaultSubject string `toml:"default_subject"`
}

// IsConfigured reports whether a real credential has been set.
func (e Email) IsConfigured() bool {
	return e.Password != "" && e.Password != PasswordPlaceholder
}

// Subject expands the subject template's {date_str} placeholder.
func (e Email) Subject(dateStr string) string {
	return strings.ReplaceAll(e.DefaultSubject, "{date_str}", dateStr)
}

// Config represents the application configuration
type Config struct {
	// StartHour and EndHour bound the logged time range (24-hour clock,
	// end inclusive)
	StartHour int `toml:"start_hour"`
	EndHour   int `toml:"end_hour"`
	// Timezone is an IANA timezone name (e.g., "America/New_York") or "Local"
	Timezone string `toml:"timezone"`
	// Email configures the SMTP relay used to share logs
	Email Email `toml:"email"`
}

// DefaultConfig returns a Config with sensible defaults:
// an 8:00-17:00 workday, the local timezone, and an unconfigured Gmail
// relay with the standard subject template.
func DefaultConfig() Config {
	return Config{
		StartHour: 8,
		EndHour:   17,
		Timezone:  "Local",
		Email: Email{
			Server:         "smtp.gmail.com",
			Port:           465,
			User:           "your_email@example.com",
			Password:       PasswordPlaceholder,
			SenderName:     "Daily Work Logger",
			DefaultSubject: "{date_str} Daily Work Log",
		},
	}
}

// HourRange returns the configured hour range.
func (c Config) HourRange() worklog.HourRange {
	return worklog.HourRange{Start: c.StartHour, End: c.EndHour}
}

// Normalize cleans up whitespace in user-entered values.
func (c *Config) Normalize() {
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.Email.Server = strings.TrimSpace(c.Email.Server)
	c.Email.User = strings.TrimSpace(c.Email.User)
	c.Email.SenderName = strings.TrimSpace(c.Email.SenderName)
	c.Email.DefaultTo = strings.TrimSpace(c.Email.DefaultTo)
	c.Email.DefaultCC = strings.TrimSpace(c.Email.DefaultCC)
}

// Validate rejects configurations the rest of the application cannot work
// with: a malformed hour range, an unknown timezone, or a nonsense port.
func (c Config) Validate() error {
	if err := c.HourRange().Validate(); err != nil {
		return err
	}
	if c.Timezone != "" && c.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	if c.Email.Port < 1 || c.Email.Port > 65535 {
		return fmt.Errorf("invalid SMTP port %d", c.Email.Port)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at path, returning defaults when the
// file does not exist. A file that exists but fails to parse or validate is
// an error.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// GenerateSampleConfig returns a commented sample config file.
func GenerateSampleConfig() string {
	return `# worklog configuration file

# Logged time range (24-hour clock, end inclusive)
start_hour = 8
end_hour = 17

# Timezone: IANA timezone name (e.g., "America/New_York") or "Local"
timezone = "Local"

[email]
server = "smtp.gmail.com"
port = 465
user = "your_email@example.com"
# Replace the placeholder to enable sending
password = "CHANGE_ME"
sender_name = "Daily Work Logger"
default_to = ""
default_cc = ""
default_subject = "{date_str} Daily Work Log"
`
}
