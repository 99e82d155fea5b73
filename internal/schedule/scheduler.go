// Package schedule keeps the day's tasks ordered by time of day.
package schedule

import (
	"sort"
	"strings"
	"time"

	"github.com/akyairhashvil/focusday/internal/models"
	"github.com/akyairhashvil/focusday/internal/timeparse"
	"github.com/charmbracelet/log"
)

// Scheduler owns the ordered task collection. It is not safe for concurrent
// use; the caller serialises access.
type Scheduler struct {
	tasks  []models.Task
	parser *timeparse.Parser
	ids    IDGenerator
	now    func() time.Time
}

type Option func(*Scheduler)

func WithParser(p *timeparse.Parser) Option {
	return func(s *Scheduler) { s.parser = p }
}

func WithIDGenerator(g IDGenerator) Option {
	return func(s *Scheduler) { s.ids = g }
}

func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

func New(opts ...Option) *Scheduler {
	s := &Scheduler{
		parser: timeparse.Default,
		ids:    NewSequence("task-"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTask creates a task. An explicit time always wins and the text is kept
// verbatim; otherwise the time is inferred from the text. When the inferred
// time was the whole text, the original text becomes the content.
func (s *Scheduler) AddTask(explicit models.TimeOfDay, raw string) (models.Task, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return models.Task{}, &ValidationError{Field: "content", Err: ErrEmptyContent}
	}

	when := explicit
	if !explicit.IsSet() {
		parsed := s.parser.Parse(content)
		if parsed.Time.IsSet() {
			when = parsed.Time
			if parsed.Residual != "" {
				content = parsed.Residual
			}
			log.Debug("inferred task time", "time", parsed.Time, "match", parsed.Match)
		}
	}

	task := models.Task{
		ID:        s.ids.NextID(),
		Time:      when,
		Content:   content,
		CreatedAt: s.now(),
	}
	s.tasks = append(s.tasks, task)
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].Time.Compare(s.tasks[j].Time) < 0
	})
	return task, nil
}

// ToggleCompletion flips the completed flag. Unknown ids are a no-op and
// report false.
func (s *Scheduler) ToggleCompletion(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return true
}

// RemoveTask deletes a task. Unknown ids are a no-op and report false.
func (s *Scheduler) RemoveTask(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return true
}

// Get looks a task up by id.
func (s *Scheduler) Get(id string) (models.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// Tasks returns a copy of the collection in display order.
func (s *Scheduler) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Scheduler) Len() int { return len(s.tasks) }

// Summary counts completed and total tasks.
func (s *Scheduler) Summary() (done, total int) {
	for _, t := range s.tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(s.tasks)
}

func (s *Scheduler) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
