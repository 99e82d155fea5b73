package testutil

import (
	"time"

	"github.com/akyairhashvil/focusday/internal/models"
)

// TaskBuilder provides fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:        "task-test",
			Content:   "Test Task",
			CreatedAt: time.Now(),
		},
	}
}

func (b *TaskBuilder) WithID(id string) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithContent(c string) *TaskBuilder {
	b.task.Content = c
	return b
}

func (b *TaskBuilder) WithTime(hour, minute int) *TaskBuilder {
	b.task.Time = models.MustTime(hour, minute)
	return b
}

func (b *TaskBuilder) Completed() *TaskBuilder {
	b.task.Completed = true
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task
}

// TimerStateBuilder provides fluent API for creating timer snapshots.
type TimerStateBuilder struct {
	state models.TimerState
}

func NewTimerState() *TimerStateBuilder {
	return &TimerStateBuilder{
		state: models.TimerState{
			Mode:             models.ModeFocus,
			RemainingSeconds: 25 * 60,
		},
	}
}

func (b *TimerStateBuilder) WithMode(m models.TimerMode) *TimerStateBuilder {
	b.state.Mode = m
	return b
}

func (b *TimerStateBuilder) WithRemaining(seconds int) *TimerStateBuilder {
	b.state.RemainingSeconds = seconds
	return b
}

func (b *TimerStateBuilder) WithCount(n int) *TimerStateBuilder {
	b.state.CompletedFocusCount = n
	return b
}

func (b *TimerStateBuilder) Running() *TimerStateBuilder {
	b.state.Running = true
	return b
}

func (b *TimerStateBuilder) Build() models.TimerState {
	return b.state
}
