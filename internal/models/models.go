package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned when an hour or minute is out of range.
var ErrInvalidTime = errors.New("invalid time of day")

// TimeOfDay is a clock time without a date. The zero value means "no time given".
type TimeOfDay struct {
	hour   int
	minute int
	set    bool
}

// NoTime is the unset sentinel.
var NoTime = TimeOfDay{}

// NewTimeOfDay validates hour in [0,23] and minute in [0,59].
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return NoTime, fmt.Errorf("%w: %d:%d", ErrInvalidTime, hour, minute)
	}
	return TimeOfDay{hour: hour, minute: minute, set: true}, nil
}

// MustTime is NewTimeOfDay for constants and tests; it panics on invalid input.
func MustTime(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseClock parses the explicit time input box. Accepts H:MM or HH:MM with an
// ASCII or full-width colon. Blank input yields NoTime without error.
func ParseClock(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoTime, nil
	}
	s = strings.Replace(s, "：", ":", 1)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return NoTime, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || strings.ContainsAny(hh, "+-") {
		return NoTime, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || strings.ContainsAny(mm, "+-") {
		return NoTime, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) IsSet() bool { return t.set }
func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

// Minutes returns minutes since midnight, or -1 when unset.
func (t TimeOfDay) Minutes() int {
	if !t.set {
		return -1
	}
	return t.hour*60 + t.minute
}

// Compare orders set times ascending and places unset after every set time.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t.set && !other.set:
		return -1
	case !t.set && other.set:
		return 1
	case !t.set && !other.set:
		return 0
	}
	return t.Minutes() - other.Minutes()
}

func (t TimeOfDay) String() string {
	if !t.set {
		return "--:--"
	}
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// Task is a single entry in the day's plan.
type Task struct {
	ID        string
	Time      TimeOfDay
	Content   string
	Completed bool
	CreatedAt time.Time
}

// TimerMode enumerates the countdown modes.
type TimerMode int

const (
	ModeFocus TimerMode = iota
	ModeShortBreak
	ModeLongBreak
)

// Modes lists every mode in display order.
var Modes = []TimerMode{ModeFocus, ModeShortBreak, ModeLongBreak}

func (m TimerMode) Label() string {
	switch m {
	case ModeShortBreak:
		return "小憩"
	case ModeLongBreak:
		return "长休"
	default:
		return "专注"
	}
}

func (m TimerMode) String() string {
	switch m {
	case ModeShortBreak:
		return "short_break"
	case ModeLongBreak:
		return "long_break"
	default:
		return "focus"
	}
}

// TimerState is a read-only snapshot of the countdown.
type TimerState struct {
	Mode                TimerMode
	RemainingSeconds    int
	Running             bool
	CompletedFocusCount int
}

// Remaining returns RemainingSeconds as a duration.
func (s TimerState) Remaining() time.Duration {
	return time.Duration(s.RemainingSeconds) * time.Second
}
