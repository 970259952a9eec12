package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Event source
	EventsFile string

	// Display settings
	TimeFormat string
	DateFormat string

	// UI settings
	Colors      map[string]string
	KeyBindings map[string]string
	StartupView string

	// Behavior settings
	RefreshRate   time.Duration
	ConfirmDelete bool
}

func DefaultConfig() *Config {
	return &Config{
		EventsFile: "",

		TimeFormat: "15:04",
		DateFormat: "Jan 2, 2006",

		Colors: map[string]string{
			"normal":   "default",
			"today":    "yellow",
			"selected": "reverse",
			"weekend":  "blue",
			"header":   "bold",
			"help":     "gray",
			"message":  "yellow",
		},

		KeyBindings: map[string]string{
			"q":     "quit",
			"?":     "help",
			"t":     "today",
			"r":     "reload",
			"n":     "new_event",
			"e":     "edit_event",
			"x":     "delete_event",
			"h":     "previous_day",
			"l":     "next_day",
			"j":     "next_week",
			"k":     "previous_week",
			"<":     "previous_period",
			">":     "next_period",
			"y":     "year_view",
			"m":     "month_view",
			"w":     "week_view",
			"d":     "day_view",
			"tab":   "next_event",
			"enter": "open_event",
		},

		StartupView:   "month",
		RefreshRate:   time.Minute,
		ConfirmDelete: true,
	}
}

func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	// Try multiple config file locations
	configPaths := []string{
		os.Getenv("ALMANAC_CONFIG"),
		filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "almanac", "almanacrc"),
		filepath.Join(os.Getenv("HOME"), ".config", "almanac", "almanacrc"),
		filepath.Join(os.Getenv("HOME"), ".almanacrc"),
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			if err := config.loadFromFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			break
		}
	}

	return config, nil
}

// LoadConfigFile loads an explicit config file on top of the defaults,
// bypassing the search path.
func LoadConfigFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.loadFromFile(path); err != nil {
		return nil, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

func (c *Config) parseLine(line string) error {
	// Handle set commands: set variable value
	setRe := regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// Handle bind commands: bind key action
	bindRe := regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		c.KeyBindings[matches[1]] = matches[2]
		return nil
	}

	// Handle color commands: color element color_spec
	colorRe := regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = matches[2]
		return nil
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	// Remove quotes if present
	value = strings.Trim(value, `"'`)

	switch name {
	case "events_file":
		// Expand ~ to home directory
		if strings.HasPrefix(value, "~/") {
			home, _ := os.UserHomeDir()
			value = filepath.Join(home, value[2:])
		}
		c.EventsFile = value

	case "time_format":
		c.TimeFormat = value

	case "date_format":
		c.DateFormat = value

	case "startup_view":
		switch value {
		case "year", "month", "week", "day":
			c.StartupView = value
		default:
			return fmt.Errorf("invalid startup_view: %s", value)
		}

	case "refresh_rate":
		rate, err := time.ParseDuration(value)
		if err != nil {
			// Try parsing as seconds
			if seconds, err2 := strconv.Atoi(value); err2 == nil {
				rate = time.Duration(seconds) * time.Second
			} else {
				return fmt.Errorf("invalid refresh_rate: %s", value)
			}
		}
		c.RefreshRate = rate

	case "confirm_delete":
		c.ConfirmDelete = strings.ToLower(value) == "true" || value == "1"

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}
