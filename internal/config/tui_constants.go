package config

// Layout constants.
const (
	// TimerPaneWidth is the width of the countdown pane.
	TimerPaneWidth = 34

	// MinTaskPaneWidth is the narrowest the task pane gets.
	MinTaskPaneWidth = 30

	// CompactModeThreshold stacks the panes below this terminal width.
	CompactModeThreshold = 72

	// ProgressBarWidth is the default width of the progress bar.
	ProgressBarWidth = 28
)

// Display limits.
const (
	// MaxVisibleTasks limits tasks shown before scrolling.
	MaxVisibleTasks = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)

// Input constraints.
const (
	// MaxContentLength is the maximum task content length.
	MaxContentLength = 200

	// TimeInputLength fits HH:MM.
	TimeInputLength = 5
)
