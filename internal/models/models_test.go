package models

import (
	"errors"
	"testing"
	"time"
)

func TestTimeOfDayZeroValueIsUnset(t *testing.T) {
	var tod TimeOfDay
	if tod.IsSet() {
		t.Fatalf("zero value should be unset")
	}
	if tod.String() != "--:--" {
		t.Fatalf("String() = %q, want --:--", tod.String())
	}
	midnight := MustTime(0, 0)
	if !midnight.IsSet() || midnight == NoTime {
		t.Fatalf("00:00 must be distinct from NoTime")
	}
}

func TestNewTimeOfDayRanges(t *testing.T) {
	cases := []struct {
		hour, minute int
		ok           bool
	}{
		{0, 0, true},
		{23, 59, true},
		{24, 0, false},
		{12, 60, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tc := range cases {
		_, err := NewTimeOfDay(tc.hour, tc.minute)
		if tc.ok && err != nil {
			t.Fatalf("NewTimeOfDay(%d,%d) unexpected error: %v", tc.hour, tc.minute, err)
		}
		if !tc.ok && !errors.Is(err, ErrInvalidTime) {
			t.Fatalf("NewTimeOfDay(%d,%d) err = %v, want ErrInvalidTime", tc.hour, tc.minute, err)
		}
	}
}

func TestTimeOfDayStringPadded(t *testing.T) {
	if got := MustTime(6, 5).String(); got != "06:05" {
		t.Fatalf("String() = %q, want 06:05", got)
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"", NoTime, false},
		{"   ", NoTime, false},
		{"09:00", MustTime(9, 0), false},
		{"9:30", MustTime(9, 30), false},
		{"18：45", MustTime(18, 45), false},
		{"24:00", NoTime, true},
		{"12:60", NoTime, true},
		{"1200", NoTime, true},
		{"12:5", NoTime, true},
		{"+1:00", NoTime, true},
		{"ab:cd", NoTime, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseClock(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClock(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayCompare(t *testing.T) {
	nine := MustTime(9, 0)
	two := MustTime(14, 0)
	if nine.Compare(two) >= 0 {
		t.Fatalf("09:00 should sort before 14:00")
	}
	if two.Compare(NoTime) >= 0 {
		t.Fatalf("set times should sort before unset")
	}
	if NoTime.Compare(NoTime) != 0 {
		t.Fatalf("unset should compare equal to unset")
	}
}

func TestTimerModeLabels(t *testing.T) {
	if ModeFocus.String() != "focus" || ModeShortBreak.String() != "short_break" || ModeLongBreak.String() != "long_break" {
		t.Fatalf("unexpected mode slugs")
	}
	if ModeFocus.Label() == "" || ModeShortBreak.Label() == "" || ModeLongBreak.Label() == "" {
		t.Fatalf("labels should not be empty")
	}
	if len(Modes) != 3 {
		t.Fatalf("expected 3 modes, got %d", len(Modes))
	}
}

func TestTimerStateRemaining(t *testing.T) {
	s := TimerState{RemainingSeconds: 90}
	if s.Remaining() != 90*time.Second {
		t.Fatalf("Remaining() = %v", s.Remaining())
	}
}
