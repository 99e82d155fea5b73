// Package timer implements the focus/break countdown driven by one-second ticks.
package timer

import (
	"fmt"
	"sync"
	"time"

	"github.com/akyairhashvil/focusday/internal/models"
	"github.com/akyairhashvil/focusday/internal/util"
)

// Durations holds the nominal length of each mode.
type Durations struct {
	Focus      time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration
}

// DefaultDurations is 25/5/15 minutes.
func DefaultDurations() Durations {
	return Durations{
		Focus:      25 * time.Minute,
		ShortBreak: 5 * time.Minute,
		LongBreak:  15 * time.Minute,
	}
}

// Validate rejects durations shorter than one tick.
func (d Durations) Validate() error {
	for _, mode := range models.Modes {
		if d.For(mode) < time.Second {
			return fmt.Errorf("%s duration must be at least 1s, got %s", mode, d.For(mode))
		}
	}
	return nil
}

// For returns the nominal duration of mode.
func (d Durations) For(mode models.TimerMode) time.Duration {
	switch mode {
	case models.ModeShortBreak:
		return d.ShortBreak
	case models.ModeLongBreak:
		return d.LongBreak
	default:
		return d.Focus
	}
}

// Event reports what a Tick did.
type Event int

const (
	// EventNone means the tick was ignored (paused or already at zero).
	EventNone Event = iota
	EventTicked
	// EventFinished means the countdown reached zero on this tick.
	EventFinished
)

// Pomodoro is the countdown state machine. All methods are safe for concurrent use.
type Pomodoro struct {
	mu        sync.Mutex
	durations Durations
	state     models.TimerState
}

// New returns a paused timer in focus mode with the full focus duration.
func New(durations Durations) *Pomodoro {
	p := &Pomodoro{durations: durations}
	p.state = models.TimerState{
		Mode:             models.ModeFocus,
		RemainingSeconds: p.nominalSeconds(models.ModeFocus),
	}
	return p
}

func (p *Pomodoro) nominalSeconds(mode models.TimerMode) int {
	return int(p.durations.For(mode) / time.Second)
}

// Nominal returns the configured duration of mode.
func (p *Pomodoro) Nominal(mode models.TimerMode) time.Duration {
	return p.durations.For(mode)
}

// Start resumes the countdown. Starting at zero is a no-op; Reset or
// SwitchMode first.
func (p *Pomodoro) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.RemainingSeconds == 0 {
		return
	}
	p.state.Running = true
}

// Pause stops the countdown. Idempotent.
func (p *Pomodoro) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Running = false
}

// Toggle starts a paused timer or pauses a running one.
func (p *Pomodoro) Toggle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Running {
		p.state.Running = false
		return
	}
	if p.state.RemainingSeconds > 0 {
		p.state.Running = true
	}
}

// Reset pauses and refills the current mode. Mode and count are kept.
func (p *Pomodoro) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Running = false
	p.state.RemainingSeconds = p.nominalSeconds(p.state.Mode)
}

// SwitchMode changes mode and always refills it, paused.
func (p *Pomodoro) SwitchMode(mode models.TimerMode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Mode = mode
	p.state.Running = false
	p.state.RemainingSeconds = p.nominalSeconds(mode)
}

// Tick advances the countdown by exactly one second.
func (p *Pomodoro) Tick() Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.state.Running || p.state.RemainingSeconds == 0 {
		return EventNone
	}
	p.state.RemainingSeconds--
	if p.state.RemainingSeconds > 0 {
		return EventTicked
	}
	p.state.Running = false
	if p.state.Mode == models.ModeFocus {
		p.state.CompletedFocusCount++
	}
	return EventFinished
}

// State returns a snapshot.
func (p *Pomodoro) State() models.TimerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Progress is the elapsed fraction of the current mode in [0,1].
func (p *Pomodoro) Progress() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	nominal := p.nominalSeconds(p.state.Mode)
	if nominal <= 0 {
		return 0
	}
	return util.Clamp(float64(nominal-p.state.RemainingSeconds)/float64(nominal), 0, 1)
}
