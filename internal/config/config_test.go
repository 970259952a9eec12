package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TimeFormat != "15:04" {
		t.Errorf("Wrong default time format: %s", cfg.TimeFormat)
	}

	if cfg.DateFormat != "Jan 2, 2006" {
		t.Errorf("Wrong default date format: %s", cfg.DateFormat)
	}

	if cfg.StartupView != "month" {
		t.Errorf("Wrong default startup view: %s", cfg.StartupView)
	}

	if cfg.RefreshRate != time.Minute {
		t.Errorf("Wrong default refresh rate: %v", cfg.RefreshRate)
	}

	if len(cfg.KeyBindings) == 0 {
		t.Error("Default key bindings should not be empty")
	}

	if cfg.KeyBindings["q"] != "quit" {
		t.Errorf("Wrong quit key binding: %s", cfg.KeyBindings["q"])
	}

	if !cfg.ConfirmDelete {
		t.Error("Confirm delete should be enabled by default")
	}
}

func TestParseLine(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		line     string
		check    func(*Config) bool
		hasError bool
	}{
		{
			line: "set events_file /tmp/events.ics",
			check: func(c *Config) bool {
				return c.EventsFile == "/tmp/events.ics"
			},
		},
		{
			line: "set startup_view week",
			check: func(c *Config) bool {
				return c.StartupView == "week"
			},
		},
		{
			line: "set refresh_rate 30",
			check: func(c *Config) bool {
				return c.RefreshRate == 30*time.Second
			},
		},
		{
			line: "set confirm_delete false",
			check: func(c *Config) bool {
				return !c.ConfirmDelete
			},
		},
		{
			line: "bind g today",
			check: func(c *Config) bool {
				return c.KeyBindings["g"] == "today"
			},
		},
		{
			line: "color today cyan",
			check: func(c *Config) bool {
				return c.Colors["today"] == "cyan"
			},
		},
		{
			line:     "invalid command",
			hasError: true,
		},
		{
			line:     "set startup_view fortnight",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			err := cfg.parseLine(tt.line)

			if tt.hasError && err == nil {
				t.Error("Expected error but got none")
			}

			if !tt.hasError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}

			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Check failed for line: %s", tt.line)
			}
		})
	}
}

func TestSetVariable(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		value    string
		check    func(*Config) bool
		hasError bool
	}{
		{
			name:  "events_file",
			value: "~/calendar.ics",
			check: func(c *Config) bool {
				return strings.HasSuffix(c.EventsFile, "calendar.ics") && !strings.HasPrefix(c.EventsFile, "~")
			},
		},
		{
			name:  "time_format",
			value: "3:04 PM",
			check: func(c *Config) bool {
				return c.TimeFormat == "3:04 PM"
			},
		},
		{
			name:  "refresh_rate",
			value: "5m",
			check: func(c *Config) bool {
				return c.RefreshRate == 5*time.Minute
			},
		},
		{
			name:     "refresh_rate",
			value:    "often",
			hasError: true,
		},
		{
			name:     "unknown_variable",
			value:    "something",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.setVariable(tt.name, tt.value)

			if tt.hasError && err == nil {
				t.Error("Expected error but got none")
			}

			if !tt.hasError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}

			if tt.check != nil && !tt.check(cfg) {
				t.Errorf("Check failed for %s = %s", tt.name, tt.value)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "test_almanacrc")

	content := `# Test config file
set events_file /tmp/work.ics
set time_format 15:04
set startup_view day
set refresh_rate 2m
set confirm_delete false

bind g today
bind n new_event

color today cyan
color selected reverse
`

	err := os.WriteFile(configFile, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg := DefaultConfig()
	err = cfg.loadFromFile(configFile)
	if err != nil {
		t.Fatalf("Failed to load config file: %v", err)
	}

	if cfg.EventsFile != "/tmp/work.ics" {
		t.Errorf("Wrong events file: %s", cfg.EventsFile)
	}

	if cfg.StartupView != "day" {
		t.Errorf("Wrong startup view: %s", cfg.StartupView)
	}

	if cfg.RefreshRate != 2*time.Minute {
		t.Errorf("Wrong refresh rate: %v", cfg.RefreshRate)
	}

	if cfg.ConfirmDelete {
		t.Error("Confirm delete should be disabled")
	}

	if cfg.KeyBindings["g"] != "today" {
		t.Errorf("Wrong g binding: %s", cfg.KeyBindings["g"])
	}

	if cfg.Colors["today"] != "cyan" {
		t.Errorf("Wrong today color: %s", cfg.Colors["today"])
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
