package ui

import (
	"strings"

	"almanac/internal/calendar"
	"almanac/internal/config"

	"github.com/charmbracelet/lipgloss/v2"
)

type Styles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	Weekend  lipgloss.Style
	Dimmed   lipgloss.Style
	Header   lipgloss.Style
	Help     lipgloss.Style
	Message  lipgloss.Style
	Error    lipgloss.Style
	Border   lipgloss.Style
	TimeMark lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		Today: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true),
		Weekend: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")),
		Dimmed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
		TimeMark: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// StylesFromConfig applies the user's color directives on top of the
// defaults. Unknown color names fall through to the default style.
func StylesFromConfig(cfg *config.Config) Styles {
	s := DefaultStyles()

	for element, spec := range cfg.Colors {
		style, ok := styleFromSpec(spec)
		if !ok {
			continue
		}
		switch element {
		case "normal":
			s.Normal = style
		case "today":
			s.Today = style
		case "selected":
			s.Selected = style
		case "weekend":
			s.Weekend = style
		case "header":
			s.Header = style
		case "help":
			s.Help = style
		case "message":
			s.Message = style
		}
	}

	return s
}

func styleFromSpec(spec string) (lipgloss.Style, bool) {
	style := lipgloss.NewStyle()
	matched := false

	for _, word := range strings.Fields(strings.ToLower(spec)) {
		switch word {
		case "bold":
			style = style.Bold(true)
			matched = true
		case "reverse":
			style = style.Reverse(true)
			matched = true
		case "underline":
			style = style.Underline(true)
			matched = true
		case "default":
			matched = true
		default:
			if code, ok := namedColors[word]; ok {
				style = style.Foreground(lipgloss.ANSIColor(code))
				matched = true
			}
		}
	}

	return style, matched
}

var namedColors = map[string]int{
	"black":   0,
	"red":     196,
	"green":   40,
	"yellow":  220,
	"blue":    33,
	"magenta": 201,
	"cyan":    51,
	"white":   255,
	"gray":    241,
	"grey":    241,
	"orange":  208,
	"purple":  135,
}

// eventColorCode maps the fixed event palette to 256-color codes.
func eventColorCode(c calendar.Color) int {
	switch c {
	case calendar.ColorBlue:
		return 33
	case calendar.ColorGreen:
		return 40
	case calendar.ColorRed:
		return 196
	case calendar.ColorPurple:
		return 135
	case calendar.ColorOrange:
		return 208
	default:
		return 252
	}
}

// eventStyle renders event text in the event's palette color.
func eventStyle(c calendar.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(eventColorCode(c)))
}

// eventBlockStyle renders an event as a solid block, used in the week
// and day schedules.
func eventBlockStyle(c calendar.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("235")).
		Background(lipgloss.ANSIColor(eventColorCode(c)))
}
