package tui

import (
	"github.com/akyairhashvil/focusday/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Task          lipgloss.Style
	CompletedTask lipgloss.Style
	TaskTime      lipgloss.Style
	Input         lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Error         lipgloss.Style
	Trophy        lipgloss.Style
	// Accents color the timer pane per mode.
	Accents map[models.TimerMode]lipgloss.Color
}

// Accent returns the color for mode.
func (t Theme) Accent(mode models.TimerMode) lipgloss.Color {
	if c, ok := t.Accents[mode]; ok {
		return c
	}
	return t.Border
}

// AccentStyle is a bold foreground in the mode's color.
func (t Theme) AccentStyle(mode models.TimerMode) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent(mode)).Bold(true)
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("36"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true),
		Task:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CompletedTask: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		TaskTime:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("36")).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Trophy:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Accents: map[models.TimerMode]lipgloss.Color{
			models.ModeFocus:      lipgloss.Color("35"), // emerald
			models.ModeShortBreak: lipgloss.Color("37"), // teal
			models.ModeLongBreak:  lipgloss.Color("38"), // cyan
		},
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Task:          lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		CompletedTask: lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Strikethrough(true),
		TaskTime:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Input:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		Trophy:        lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
		Accents: map[models.TimerMode]lipgloss.Color{
			models.ModeFocus:      lipgloss.Color("212"), // pink
			models.ModeShortBreak: lipgloss.Color("117"), // cyan
			models.ModeLongBreak:  lipgloss.Color("141"), // purple
		},
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
