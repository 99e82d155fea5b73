package tui

import (
	"fmt"

	"github.com/akyairhashvil/focusday/internal/config"
	"github.com/charmbracelet/x/ansi"
)

// FormatTimeRemaining renders seconds as MM:SS. Hours fold into minutes.
func FormatTimeRemaining(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatTaskCount formats task counts for display.
func FormatTaskCount(completed, total int) string {
	if total == 0 {
		return "No tasks"
	}
	return fmt.Sprintf("%d/%d done", completed, total)
}

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}
