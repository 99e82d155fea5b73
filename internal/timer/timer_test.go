package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/akyairhashvil/focusday/internal/models"
	"github.com/akyairhashvil/focusday/internal/testutil"
)

func shortDurations() Durations {
	return Durations{Focus: 3 * time.Second, ShortBreak: 2 * time.Second, LongBreak: 4 * time.Second}
}

func TestNewTimerDefaults(t *testing.T) {
	p := New(DefaultDurations())
	s := p.State()
	if s.Mode != models.ModeFocus {
		t.Fatalf("expected focus mode, got %v", s.Mode)
	}
	if s.RemainingSeconds != 1500 {
		t.Fatalf("RemainingSeconds = %d, want 1500", s.RemainingSeconds)
	}
	if s.Running || s.CompletedFocusCount != 0 {
		t.Fatalf("expected paused timer with zero count, got %+v", s)
	}
}

func TestTickCompletesFocus(t *testing.T) {
	p := New(Durations{Focus: time.Second, ShortBreak: time.Second, LongBreak: time.Second})
	p.Start()
	if ev := p.Tick(); ev != EventFinished {
		t.Fatalf("Tick() = %v, want EventFinished", ev)
	}
	s := p.State()
	if s.RemainingSeconds != 0 || s.Running || s.CompletedFocusCount != 1 {
		t.Fatalf("unexpected state after final tick: %+v", s)
	}
	if ev := p.Tick(); ev != EventNone {
		t.Fatalf("Tick() at zero = %v, want EventNone", ev)
	}
	if p.State() != s {
		t.Fatalf("tick at zero changed state: %+v -> %+v", s, p.State())
	}
}

func TestTickBreakDoesNotCount(t *testing.T) {
	p := New(shortDurations())
	p.SwitchMode(models.ModeShortBreak)
	p.Start()
	p.Tick()
	if ev := p.Tick(); ev != EventFinished {
		t.Fatalf("expected break to finish, got %v", ev)
	}
	s := p.State()
	if s.CompletedFocusCount != 0 {
		t.Fatalf("break completion must not count, got %d", s.CompletedFocusCount)
	}
	if s.Mode != models.ModeShortBreak {
		t.Fatalf("mode must not auto-advance, got %v", s.Mode)
	}
}

func TestTickWhilePausedIsNoop(t *testing.T) {
	p := New(shortDurations())
	before := p.State()
	if ev := p.Tick(); ev != EventNone {
		t.Fatalf("Tick() paused = %v", ev)
	}
	if p.State() != before {
		t.Fatalf("paused tick changed state")
	}
}

func TestTickDecrementsByOne(t *testing.T) {
	p := New(shortDurations())
	p.Start()
	if ev := p.Tick(); ev != EventTicked {
		t.Fatalf("Tick() = %v, want EventTicked", ev)
	}
	if got := p.State().RemainingSeconds; got != 2 {
		t.Fatalf("RemainingSeconds = %d, want 2", got)
	}
}

func TestSwitchModeResetsTime(t *testing.T) {
	p := New(shortDurations())
	p.Start()
	p.Tick()
	for _, mode := range []models.TimerMode{models.ModeShortBreak, models.ModeLongBreak, models.ModeFocus, models.ModeShortBreak} {
		p.Start()
		p.SwitchMode(mode)
		s := p.State()
		want := int(shortDurations().For(mode) / time.Second)
		if s.Mode != mode || s.RemainingSeconds != want || s.Running {
			t.Fatalf("SwitchMode(%v) state = %+v, want remaining %d paused", mode, s, want)
		}
	}
}

func TestResetKeepsModeAndCount(t *testing.T) {
	p := New(Durations{Focus: time.Second, ShortBreak: 2 * time.Second, LongBreak: 3 * time.Second})
	p.Start()
	p.Tick()
	p.Reset()
	s := p.State()
	if s.Mode != models.ModeFocus || s.RemainingSeconds != 1 || s.Running || s.CompletedFocusCount != 1 {
		t.Fatalf("unexpected state after reset: %+v", s)
	}
}

func TestStartAtZeroIsNoop(t *testing.T) {
	p := New(Durations{Focus: time.Second, ShortBreak: time.Second, LongBreak: time.Second})
	p.Start()
	p.Tick()
	p.Start()
	if p.State().Running {
		t.Fatalf("Start at zero should leave timer paused")
	}
	p.Toggle()
	if p.State().Running {
		t.Fatalf("Toggle at zero should leave timer paused")
	}
}

func TestPauseIdempotent(t *testing.T) {
	p := New(shortDurations())
	p.Start()
	p.Tick()
	p.Pause()
	once := p.State()
	p.Pause()
	if p.State() != once {
		t.Fatalf("second Pause changed state: %+v -> %+v", once, p.State())
	}
}

func TestToggle(t *testing.T) {
	p := New(shortDurations())
	p.Toggle()
	if !p.State().Running {
		t.Fatalf("Toggle should start a paused timer")
	}
	p.Toggle()
	if p.State().Running {
		t.Fatalf("Toggle should pause a running timer")
	}
}

func TestStateSnapshots(t *testing.T) {
	p := New(shortDurations())
	p.SwitchMode(models.ModeLongBreak)
	p.Start()
	p.Tick()
	want := testutil.NewTimerState().WithMode(models.ModeLongBreak).WithRemaining(3).Running().Build()
	if got := p.State(); got != want {
		t.Fatalf("State() = %+v, want %+v", got, want)
	}

	p.Pause()
	want = testutil.NewTimerState().WithMode(models.ModeLongBreak).WithRemaining(3).Build()
	if got := p.State(); got != want {
		t.Fatalf("State() after Pause = %+v, want %+v", got, want)
	}
}

func TestProgress(t *testing.T) {
	p := New(Durations{Focus: 4 * time.Second, ShortBreak: time.Second, LongBreak: time.Second})
	if got := p.Progress(); got != 0 {
		t.Fatalf("Progress() = %v, want 0", got)
	}
	p.Start()
	p.Tick()
	if got := p.Progress(); got != 0.25 {
		t.Fatalf("Progress() = %v, want 0.25", got)
	}
	for i := 0; i < 3; i++ {
		p.Tick()
	}
	if got := p.Progress(); got != 1 {
		t.Fatalf("Progress() = %v, want 1", got)
	}
}

func TestDurationsValidate(t *testing.T) {
	if err := DefaultDurations().Validate(); err != nil {
		t.Fatalf("default durations invalid: %v", err)
	}
	bad := DefaultDurations()
	bad.LongBreak = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero long break")
	}
}

func TestConcurrentCommandsKeepInvariants(t *testing.T) {
	p := New(Durations{Focus: 50 * time.Second, ShortBreak: 10 * time.Second, LongBreak: 30 * time.Second})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				p.Tick()
			}
		}()
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				switch (i + j) % 4 {
				case 0:
					p.Start()
				case 1:
					p.Pause()
				case 2:
					p.SwitchMode(models.Modes[j%3])
				default:
					p.Reset()
				}
				s := p.State()
				if s.RemainingSeconds == 0 && s.Running {
					t.Errorf("running at zero: %+v", s)
				}
				if s.RemainingSeconds < 0 || time.Duration(s.RemainingSeconds)*time.Second > p.Nominal(s.Mode) {
					t.Errorf("remaining out of range: %+v", s)
				}
			}
		}(i)
	}
	wg.Wait()
}
