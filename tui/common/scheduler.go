package common

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler runs task after d and delivers its message to the program. It
// stands in for the latency of a real backend.
type Scheduler interface {
	After(d time.Duration, task func() tea.Msg) tea.Cmd
}

// TickScheduler schedules on the wall clock via tea.Tick.
type TickScheduler struct{}

// After implements Scheduler.
func (TickScheduler) After(d time.Duration, task func() tea.Msg) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return task() }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return task() })
}

type pendingTask struct {
	due  time.Duration
	seq  int
	task func() tea.Msg
}

// ManualScheduler is a virtual-time Scheduler. Tasks only run when Advance
// moves time past their due point, in due order.
type ManualScheduler struct {
	now   time.Duration
	seq   int
	tasks []pendingTask
}

// After queues task and returns a nil command.
func (s *ManualScheduler) After(d time.Duration, task func() tea.Msg) tea.Cmd {
	s.seq++
	s.tasks = append(s.tasks, pendingTask{due: s.now + d, seq: s.seq, task: task})
	return nil
}

// Pending returns the number of queued tasks.
func (s *ManualScheduler) Pending() int { return len(s.tasks) }

// Advance moves virtual time forward by d and returns the messages of every
// task that became due.
func (s *ManualScheduler) Advance(d time.Duration) []tea.Msg {
	s.now += d
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due != s.tasks[j].due {
			return s.tasks[i].due < s.tasks[j].due
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})

	var due []pendingTask
	rest := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
			continue
		}
		rest = append(rest, t)
	}
	s.tasks = rest

	msgs := make([]tea.Msg, 0, len(due))
	for _, t := range due {
		if msg := t.task(); msg != nil {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
