package cmd

import (
	"fmt"
	"time"

	"almanac/internal/calendar"

	"github.com/spf13/cobra"
)

var listDate string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's events and exit",
	Long:  `List all events for a date in a simple text format and exit.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "Date to list (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		initConfig()
	}

	date := time.Now()
	if listDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", listDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", listDate, err)
		}
		date = parsed
	}

	all, err := loadEvents()
	if err != nil {
		return fmt.Errorf("loading events: %w", err)
	}

	events := calendar.EventsOnDate(all, date)

	fmt.Printf("Events for %s:\n", date.Format(cfg.DateFormat))
	if len(events) == 0 {
		fmt.Println("No events found.")
		return nil
	}

	for _, ev := range events {
		timeStr := "All day"
		if !ev.AllDay {
			timeStr = fmt.Sprintf("%s - %s",
				ev.Start.Format(cfg.TimeFormat), ev.End.Format(cfg.TimeFormat))
		}

		fmt.Printf("  %s  %s\n", timeStr, ev.Title)
		if ev.Description != "" {
			fmt.Printf("    %s\n", ev.Description)
		}
	}

	return nil
}
