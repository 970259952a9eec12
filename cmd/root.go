package cmd

import (
	"fmt"
	"os"
	"time"

	"almanac/internal/calendar"
	"almanac/internal/config"
	"almanac/internal/ics"
	"almanac/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	eventsFile string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "almanac",
	Short: "A terminal calendar with month, week, day, and year views",
	Long: `Almanac is a terminal calendar application. It renders year, month,
week, and day views of an iCalendar event file and supports adding,
editing, and deleting events from within the TUI.`,
	RunE: runTUI,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&eventsFile, "events", "e", "", "Path to iCalendar events file")
}

func initConfig() {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadConfigFile(cfgFile)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if eventsFile != "" {
		cfg.EventsFile = eventsFile
	}
}

// loadEvents reads the configured events file, falling back to a small
// set of sample events when no file is configured.
func loadEvents() ([]calendar.Event, error) {
	if cfg.EventsFile == "" {
		return sampleEvents(time.Now()), nil
	}
	return ics.LoadFile(cfg.EventsFile)
}

// sampleEvents seeds the calendar when no events file is configured so
// every view has something to show.
func sampleEvents(now time.Time) []calendar.Event {
	day := func(offset int, hour, min int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, d.Location())
	}

	conference := calendar.NormalizeAllDay(calendar.Event{
		ID:     "sample-conference",
		Title:  "Conference",
		Start:  day(5, 0, 0),
		End:    day(5, 0, 0),
		Color:  calendar.ColorPurple,
		AllDay: true,
	})

	return []calendar.Event{
		{
			ID:          "sample-standup",
			Title:       "Team Standup",
			Description: "Daily team standup meeting",
			Start:       day(0, 9, 0),
			End:         day(0, 9, 30),
			Color:       calendar.ColorBlue,
		},
		{
			ID:          "sample-review",
			Title:       "Project Review",
			Description: "Quarterly project review",
			Start:       day(2, 14, 0),
			End:         day(2, 16, 0),
			Color:       calendar.ColorGreen,
		},
		conference,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	events, err := loadEvents()
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}

	model := ui.NewModel(cfg, events, ui.WithReload(loadEvents))
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Reload automatically when the events file changes on disk.
	if cfg.EventsFile != "" {
		watcher, err := ics.NewWatcher(cfg.EventsFile, func(string) {
			p.Send(ui.FileChangedMsg{})
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", cfg.EventsFile, err)
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}
