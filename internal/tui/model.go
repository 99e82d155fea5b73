package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/focusday/internal/config"
	"github.com/akyairhashvil/focusday/internal/schedule"
	"github.com/akyairhashvil/focusday/internal/speech"
	"github.com/akyairhashvil/focusday/internal/timer"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusList focusArea = iota
	focusTime
	focusContent
)

// --- Messages ---
type TickMsg time.Time

// TranscriptMsg carries the result of one speech-to-text attempt.
type TranscriptMsg struct {
	Text string
	Err  error
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.TickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func transcribeCmd(ctx context.Context, tr speech.Transcriber) tea.Cmd {
	return func() tea.Msg {
		text, err := tr.Transcribe(ctx)
		return TranscriptMsg{Text: text, Err: err}
	}
}

// Options wires the model to its collaborators.
type Options struct {
	Context     context.Context
	Timer       *timer.Pomodoro
	Scheduler   *schedule.Scheduler
	Transcriber speech.Transcriber
	Theme       string
	ReportDir   string
	ReportFont  string
	Now         func() time.Time
}

// Model is the coordinator. Every command and tick goes through Update, so
// timer commands never interleave with ticks.
type Model struct {
	ctx          context.Context
	timer        *timer.Pomodoro
	tasks        *schedule.Scheduler
	speech       speech.Transcriber
	keys         *HandlerRegistry
	theme        Theme
	progress     progress.Model
	timeInput    textinput.Model
	contentInput textinput.Model
	focus        focusArea
	cursor       int
	scroll       int
	listening    bool
	reportDir    string
	reportFont   string
	now          func() time.Time

	Message       string
	statusIsError bool
	width, height int
}

func NewModel(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Timer == nil {
		opts.Timer = timer.New(timer.DefaultDurations())
	}
	if opts.Scheduler == nil {
		opts.Scheduler = schedule.New()
	}
	if opts.Transcriber == nil {
		opts.Transcriber = speech.Unsupported{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "HH:MM"
	ti.CharLimit = config.TimeInputLength
	ti.Width = config.TimeInputLength + 1

	ci := textinput.New()
	ci.Placeholder = "Task, or just type '18:00 健身'..."
	ci.CharLimit = config.MaxContentLength
	ci.Width = 36

	m := Model{
		ctx:          opts.Context,
		timer:        opts.Timer,
		tasks:        opts.Scheduler,
		speech:       opts.Transcriber,
		keys:         defaultBindings(),
		theme:        ThemeByName(opts.Theme),
		progress:     progress.New(progress.WithSolidFill("35"), progress.WithoutPercentage()),
		timeInput:    ti,
		contentInput: ci,
		reportDir:    opts.ReportDir,
		reportFont:   opts.ReportFont,
		now:          opts.Now,
	}
	m.progress.Width = config.ProgressBarWidth
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case TranscriptMsg:
		return m.handleTranscript(msg)
	case tea.KeyMsg:
		if m.focus == focusList {
			return m.handleListMode(msg)
		}
		return m.handleInputMode(msg)
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTime:
		m.timeInput, cmd = m.timeInput.Update(msg)
	case focusContent:
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) setStatus(msg string) {
	m.Message = msg
	m.statusIsError = false
}

func (m *Model) setError(msg string) {
	m.Message = msg
	m.statusIsError = true
}
