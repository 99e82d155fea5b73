package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/focusday/internal/config"
	"github.com/akyairhashvil/focusday/internal/models"
	"github.com/akyairhashvil/focusday/internal/report"
	"github.com/akyairhashvil/focusday/internal/schedule"
	"github.com/akyairhashvil/focusday/internal/timeparse"
	"github.com/akyairhashvil/focusday/internal/timer"
	"github.com/akyairhashvil/focusday/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func defaultBindings() *HandlerRegistry {
	r := NewHandlerRegistry()
	list := []focusArea{focusList}
	r.Register(KeyBinding{Key: "p", Handler: handleTimerToggle, Description: "Start/Pause", Focus: list})
	r.Register(KeyBinding{Key: " ", Handler: handleTimerToggle, Focus: list})
	r.Register(KeyBinding{Key: "space", Handler: handleTimerToggle, Focus: list})
	r.Register(KeyBinding{Key: "r", Handler: handleTimerReset, Description: "Reset", Focus: list})
	r.Register(KeyBinding{Key: "1", Handler: handleModeSwitch, Description: models.ModeFocus.Label(), Focus: list})
	r.Register(KeyBinding{Key: "2", Handler: handleModeSwitch, Description: models.ModeShortBreak.Label(), Focus: list})
	r.Register(KeyBinding{Key: "3", Handler: handleModeSwitch, Description: models.ModeLongBreak.Label(), Focus: list})
	r.Register(KeyBinding{Key: "a", Handler: handleFocusContent, Description: "Add", Focus: list})
	r.Register(KeyBinding{Key: "n", Handler: handleFocusContent, Focus: list})
	r.Register(KeyBinding{Key: "t", Handler: handleFocusTime, Description: "Time", Focus: list})
	r.Register(KeyBinding{Key: "x", Handler: handleTaskToggle, Description: "Done", Focus: list})
	r.Register(KeyBinding{Key: "enter", Handler: handleTaskToggle, Focus: list})
	r.Register(KeyBinding{Key: "d", Handler: handleTaskDelete, Description: "Delete", Focus: list})
	r.Register(KeyBinding{Key: "j", Handler: handleCursorDown, Focus: list})
	r.Register(KeyBinding{Key: "down", Handler: handleCursorDown, Focus: list})
	r.Register(KeyBinding{Key: "k", Handler: handleCursorUp, Focus: list})
	r.Register(KeyBinding{Key: "up", Handler: handleCursorUp, Focus: list})
	r.Register(KeyBinding{Key: "v", Handler: handleVoice, Description: "Voice", Focus: list})
	r.Register(KeyBinding{Key: "e", Handler: handleExport, Description: "Export", Focus: list})
	r.Register(KeyBinding{Key: "q", Handler: handleQuit, Description: "Quit", Focus: list})

	inputs := []focusArea{focusTime, focusContent}
	r.Register(KeyBinding{Key: "enter", Handler: handleSubmit, Description: "Add", Focus: inputs})
	r.Register(KeyBinding{Key: "tab", Handler: handleCycleInput, Description: "Time/Text", Focus: inputs})
	r.Register(KeyBinding{Key: "ctrl+r", Handler: handleVoice, Description: "Voice", Focus: inputs})
	r.Register(KeyBinding{Key: "esc", Handler: handleBlur, Description: "Back", Focus: inputs})

	r.Register(KeyBinding{Key: "ctrl+c", Handler: handleQuit, Priority: 10})
	return r
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	target := config.ProgressBarWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		target = util.Clamp(m.width-10, 10, config.ProgressBarWidth)
	}
	m.progress.Width = target
	return m, nil
}

// handleTick advances the countdown by one tick, however late it arrives.
func (m Model) handleTick(_ TickMsg) (Model, tea.Cmd) {
	if m.timer.Tick() == timer.EventFinished {
		st := m.timer.State()
		if st.Mode == models.ModeFocus {
			m.setStatus(fmt.Sprintf("Focus session complete! %d today.", st.CompletedFocusCount))
		} else {
			m.setStatus(fmt.Sprintf("%s is over.", st.Mode.Label()))
		}
		log.Info("timer finished", "mode", st.Mode, "completed", st.CompletedFocusCount)
	}
	return m, tickCmd()
}

func (m Model) handleListMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd, _ := m.keys.Handle(m, msg.String())
	return next, cmd
}

func (m Model) handleInputMode(msg tea.KeyMsg) (Model, tea.Cmd) {
	if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
		return next, cmd
	}
	var cmd tea.Cmd
	if m.focus == focusTime {
		m.timeInput, cmd = m.timeInput.Update(msg)
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return m, cmd
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func handleTimerToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	m.timer.Toggle()
	st := m.timer.State()
	switch {
	case st.Running:
		m.setStatus("")
	case st.RemainingSeconds == 0:
		m.setStatus("Time is up. Press [r] to reset.")
	}
	return m, nil, true
}

func handleTimerReset(m Model, _ string) (Model, tea.Cmd, bool) {
	m.timer.Reset()
	m.setStatus("")
	return m, nil, true
}

func handleModeSwitch(m Model, key string) (Model, tea.Cmd, bool) {
	idx := int(key[0] - '1')
	if idx < 0 || idx >= len(models.Modes) {
		return m, nil, false
	}
	m.timer.SwitchMode(models.Modes[idx])
	m.setStatus("")
	return m, nil, true
}

func (m Model) focusInput(area focusArea) (Model, tea.Cmd) {
	m.focus = area
	if area == focusTime {
		m.contentInput.Blur()
		return m, m.timeInput.Focus()
	}
	m.timeInput.Blur()
	return m, m.contentInput.Focus()
}

func handleFocusContent(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.focusInput(focusContent)
	return next, cmd, true
}

func handleFocusTime(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.focusInput(focusTime)
	return next, cmd, true
}

func handleCycleInput(m Model, _ string) (Model, tea.Cmd, bool) {
	target := focusTime
	if m.focus == focusTime {
		target = focusContent
	}
	next, cmd := m.focusInput(target)
	return next, cmd, true
}

func handleBlur(m Model, _ string) (Model, tea.Cmd, bool) {
	m.timeInput.Blur()
	m.contentInput.Blur()
	m.focus = focusList
	return m, nil, true
}

func handleCursorDown(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.cursor < m.tasks.Len()-1 {
		m.cursor++
	}
	m.ensureCursorVisible()
	return m, nil, true
}

func handleCursorUp(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.cursor > 0 {
		m.cursor--
	}
	m.ensureCursorVisible()
	return m, nil, true
}

func (m *Model) ensureCursorVisible() {
	n := m.tasks.Len()
	if n == 0 {
		m.cursor, m.scroll = 0, 0
		return
	}
	m.cursor = util.Clamp(m.cursor, 0, n-1)
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+config.MaxVisibleTasks {
		m.scroll = m.cursor - config.MaxVisibleTasks + 1
	}
}

func (m Model) selectedTask() (models.Task, bool) {
	tasks := m.tasks.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.cursor], true
}

func handleTaskToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	m.tasks.ToggleCompletion(task.ID)
	return m, nil, true
}

func handleTaskDelete(m Model, _ string) (Model, tea.Cmd, bool) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil, true
	}
	if m.tasks.RemoveTask(task.ID) {
		log.Debug("task removed", "id", task.ID)
	}
	m.ensureCursorVisible()
	return m, nil, true
}

func handleSubmit(m Model, _ string) (Model, tea.Cmd, bool) {
	when, err := models.ParseClock(m.timeInput.Value())
	if err != nil {
		m.setError(fmt.Sprintf("Invalid time %q, use HH:MM", m.timeInput.Value()))
		return m, nil, true
	}
	task, err := m.tasks.AddTask(when, m.contentInput.Value())
	if err != nil {
		if errors.Is(err, schedule.ErrEmptyContent) {
			m.setError("Task needs some text.")
			return m, nil, true
		}
		util.LogError("add task", err)
		m.setError(err.Error())
		return m, nil, true
	}
	log.Info("task added", "id", task.ID, "time", task.Time, "explicit", when.IsSet())

	m.timeInput.Reset()
	m.contentInput.Reset()
	for i, t := range m.tasks.Tasks() {
		if t.ID == task.ID {
			m.cursor = i
			break
		}
	}
	m.ensureCursorVisible()
	m.setStatus(fmt.Sprintf("Added %s %s", task.Time, task.Content))
	next, cmd := m.focusInput(focusContent)
	return next, cmd, true
}

func handleVoice(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.listening {
		return m, nil, true
	}
	if !m.speech.Available() {
		m.setError("Speech input is unavailable. Set speech_command to enable it.")
		return m, nil, true
	}
	m.listening = true
	m.setStatus("Listening...")
	return m, transcribeCmd(m.ctx, m.speech), true
}

// handleTranscript appends the transcript to the content input and, when it
// names a time, fills the time input as well.
func (m Model) handleTranscript(msg TranscriptMsg) (Model, tea.Cmd) {
	m.listening = false
	if msg.Err != nil {
		util.LogError("transcribe", msg.Err)
		m.setError(fmt.Sprintf("Speech input failed: %v", msg.Err))
		return m, nil
	}
	if prev := m.contentInput.Value(); prev != "" {
		m.contentInput.SetValue(prev + " " + msg.Text)
	} else {
		m.contentInput.SetValue(msg.Text)
	}
	if parsed := timeparse.Parse(msg.Text); parsed.Time.IsSet() {
		m.timeInput.SetValue(parsed.Time.String())
	}
	m.setStatus("Heard: " + strings.TrimSpace(msg.Text))
	return m.focusInput(focusContent)
}

func handleExport(m Model, _ string) (Model, tea.Cmd, bool) {
	snap := report.Snapshot{
		Date:     m.now(),
		Tasks:    m.tasks.Tasks(),
		Timer:    m.timer.State(),
		FontPath: m.reportFont,
	}
	path, err := report.Export(m.reportDir, snap)
	if err != nil {
		util.LogError("export report", err)
		m.setError(fmt.Sprintf("Export failed: %v", err))
		return m, nil, true
	}
	log.Info("report exported", "path", path)
	if report.NeedsUnicodeFont(snap) {
		log.Warn("report has non-Latin text but no report_font is set", "path", path)
		m.setError(fmt.Sprintf("Export saved: %s (set report_font to print non-Latin text)", path))
		return m, nil, true
	}
	m.setStatus(fmt.Sprintf("Export saved: %s", path))
	return m, nil, true
}
