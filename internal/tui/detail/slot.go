package detail

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Status is the lifecycle state of a Slot.
type Status int

const (
	// StatusPending means the load has not reported yet.
	StatusPending Status = iota
	// StatusSucceeded means Value holds the loaded data.
	StatusSucceeded
	// StatusFailed means Err holds the load error.
	StatusFailed
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Slot holds one asynchronously loaded value.
type Slot[T any] struct {
	Status Status
	Value  T
	Err    error
}

// Pending reports whether the slot is still waiting.
func (s Slot[T]) Pending() bool { return s.Status == StatusPending }

// Succeeded reports whether Value is usable.
func (s Slot[T]) Succeeded() bool { return s.Status == StatusSucceeded }

// Failed reports whether the load failed.
func (s Slot[T]) Failed() bool { return s.Status == StatusFailed }

// Reset returns the slot to pending and drops any value.
func (s *Slot[T]) Reset() {
	*s = Slot[T]{}
}

// ResultMsg reports the outcome of one load started by Run.
type ResultMsg[T any] struct {
	MountID string
	Slot    string
	Value   T
	Err     error
}

// LoadFunc performs a load bound to ctx.
type LoadFunc[T any] func(ctx context.Context) (T, error)

// Run returns a command that calls fn with the mount's context and reports
// the result tagged with the mount token and slot name.
func Run[T any](m *Mount, slot string, fn LoadFunc[T]) tea.Cmd {
	id := m.ID()
	ctx := m.Context()
	return func() tea.Msg {
		v, err := fn(ctx)
		return ResultMsg[T]{MountID: id, Slot: slot, Value: v, Err: err}
	}
}

// Apply stores msg into s when msg belongs to the live mount m and s is
// still pending. It reports whether the slot changed; false means the
// result is stale and must be dropped.
func Apply[T any](m *Mount, s *Slot[T], msg ResultMsg[T]) bool {
	if !m.Owns(msg.MountID) || !s.Pending() {
		return false
	}
	if msg.Err != nil {
		s.Status = StatusFailed
		s.Err = msg.Err
		return true
	}
	s.Status = StatusSucceeded
	s.Value = msg.Value
	return true
}
