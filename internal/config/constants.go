package config

import "time"

// Timer durations.
const (
	FocusDuration      = 25 * time.Minute
	ShortBreakDuration = 5 * time.Minute
	LongBreakDuration  = 15 * time.Minute
	TickInterval       = time.Second
)

// Speech input.
const (
	DefaultSpeechTimeout = 30 * time.Second
)

// Application settings.
const (
	AppName        = "focusday"
	ConfigFileName = "focusday.toml"
	EnvPrefix      = "FOCUSDAY_"
	DefaultTheme   = "default"
	DefaultLevel   = "info"
)

// Task id styles.
const (
	IDStyleSequence = "sequence"
	IDStyleUUID     = "uuid"
)
