package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/focusday/internal/config"
	"github.com/akyairhashvil/focusday/internal/models"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	tasksPane := m.renderTasks()
	timerPane := m.renderTimer()

	var body string
	if m.width < config.CompactModeThreshold {
		body = lipgloss.JoinVertical(lipgloss.Left, timerPane, tasksPane)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, tasksPane, "  ", timerPane)
	}
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter()))
}

func (m Model) taskPaneWidth() int {
	if m.width < config.CompactModeThreshold {
		return max(m.width-6, 0)
	}
	w := m.width - config.TimerPaneWidth - 10
	if w < config.MinTaskPaneWidth {
		w = config.MinTaskPaneWidth
	}
	return w
}

func (m Model) renderTasks() string {
	width := m.taskPaneWidth()
	mode := m.timer.State().Mode
	var b strings.Builder

	done, total := m.tasks.Summary()
	title := m.theme.AccentStyle(mode).Render("Today's Plan")
	date := m.theme.Dim.Render(m.now().Format("Monday, January 2"))
	b.WriteString(fmt.Sprintf("%s  %s  %s\n\n", title, date, m.theme.Dim.Render(FormatTaskCount(done, total))))

	b.WriteString(m.renderInputs(width))
	b.WriteString("\n")

	tasks := m.tasks.Tasks()
	if len(tasks) == 0 {
		b.WriteString(m.theme.Dim.Render("Enjoy the moment, or add a new task."))
		return b.String()
	}

	end := m.scroll + config.MaxVisibleTasks
	if end > len(tasks) {
		end = len(tasks)
	}
	if m.scroll > 0 {
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("  ↑ %d more", m.scroll)) + "\n")
	}
	for i := m.scroll; i < end; i++ {
		b.WriteString(m.renderTask(tasks[i], i == m.cursor && m.focus == focusList, width))
		b.WriteString("\n")
	}
	if end < len(tasks) {
		b.WriteString(m.theme.Dim.Render(fmt.Sprintf("  ↓ %d more", len(tasks)-end)) + "\n")
	}
	return b.String()
}

func (m Model) renderInputs(width int) string {
	timeBox := m.theme.Input
	contentBox := m.theme.Input
	if m.focus == focusTime {
		timeBox = timeBox.BorderForeground(m.theme.Accent(m.timer.State().Mode))
	}
	if m.focus == focusContent {
		contentBox = contentBox.BorderForeground(m.theme.Accent(m.timer.State().Mode))
	}
	mic := ""
	if m.listening {
		mic = " " + m.theme.Error.Render("● rec")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		timeBox.Render(m.timeInput.View()),
		" ",
		contentBox.Width(max(width-16, 0)).Render(m.contentInput.View()),
		mic,
	)
	return row + "\n"
}

func (m Model) renderTask(t models.Task, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = m.theme.Focused.Render("> ")
	}
	box := "○"
	style := m.theme.Task
	if t.Completed {
		box = "●"
		style = m.theme.CompletedTask
	}
	var when string
	if t.Time.IsSet() {
		when = m.theme.TaskTime.Render(t.Time.String()) + "  "
	} else {
		when = m.theme.Dim.Render("     ") + "  "
	}
	content := truncateLabel(t.Content, width-12)
	return fmt.Sprintf("%s%s %s%s", marker, box, when, style.Render(content))
}

func (m Model) renderTimer() string {
	st := m.timer.State()
	accent := m.theme.AccentStyle(st.Mode)

	var tabs []string
	for _, mode := range models.Modes {
		label := " " + mode.Label() + " "
		if mode == st.Mode {
			tabs = append(tabs, lipgloss.NewStyle().Reverse(true).Foreground(m.theme.Accent(mode)).Render(label))
		} else {
			tabs = append(tabs, m.theme.Dim.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	trophy := m.theme.Trophy.Render(fmt.Sprintf("🏆 %d", st.CompletedFocusCount))

	status := "Ready to Start?"
	if st.Running {
		status = "Keep Focusing"
	}

	bar := m.progress
	bar.FullColor = string(m.theme.Accent(st.Mode))

	lines := []string{
		header + "  " + trophy,
		"",
		accent.Render(FormatTimeRemaining(st.RemainingSeconds)),
		m.theme.Dim.Render(status),
		"",
		bar.ViewAs(m.timer.Progress()),
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Accent(st.Mode)).
		Padding(1, 2).
		Width(config.TimerPaneWidth)
	return box.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m Model) renderFooter() string {
	if m.Message != "" {
		if m.statusIsError {
			return m.theme.Error.Render(m.Message)
		}
		return m.theme.Focused.Render(m.Message)
	}
	help := m.keys.HelpFor(m.focus)
	return m.theme.Dim.Render(help + "  v" + versionLabel())
}
