package ui

import (
	"errors"
	"slices"

	"github.com/turkosaurus/userview/internal/types"
)

// errUnspecified stands in when a failure is reported without an error value,
// so a failed fetch is always observable.
var errUnspecified = errors.New("fetch users: unspecified failure")

// Status is the view's position in the idle → loading → ready/failed cycle.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Observer is called after every state mutation.
type Observer func(*ViewState)

type subscription struct {
	id int
	fn Observer
}

// ViewState holds what the user table renders: the records from the most
// recent successful fetch and the error from the most recent failed one.
// It has a single writer (FetchController) and is not safe for concurrent
// use; the tea event loop serializes access.
type ViewState struct {
	users       Fetchable[[]types.User]
	subscribers []subscription
	nextID      int
}

// NewViewState returns a state with no records and no error.
func NewViewState() *ViewState {
	s := &ViewState{}
	s.users.Data = []types.User{}
	return s
}

// Records returns the records of the last successful fetch in server order.
func (s *ViewState) Records() []types.User {
	return slices.Clone(s.users.Data)
}

// Err returns the error of the last fetch if it failed, nil otherwise.
func (s *ViewState) Err() error {
	return s.users.Err
}

// Loading reports whether a fetch is in flight.
func (s *ViewState) Loading() bool {
	return s.users.IsFetching()
}

// LoadState exposes the underlying data state (stale data survives errors).
func (s *ViewState) LoadState() LoadState {
	return s.users.State
}

// Status summarizes the state for display.
func (s *ViewState) Status() Status {
	switch {
	case s.users.IsFetching():
		return StatusLoading
	case s.users.Err != nil:
		return StatusFailed
	case s.users.State == LoadReady:
		return StatusReady
	}
	return StatusIdle
}

// MarkLoading records that a fetch has started. Observers are not notified.
func (s *ViewState) MarkLoading() {
	s.users.SetFetching()
}

// SetRecords replaces the records wholesale and clears the error.
func (s *ViewState) SetRecords(records []types.User) {
	if records == nil {
		records = []types.User{}
	}
	s.users.SetData(records)
	s.notify()
}

// SetError replaces the error and keeps the records of the last success.
func (s *ViewState) SetError(err error) {
	if err == nil {
		err = errUnspecified
	}
	s.users.SetError(err)
	s.notify()
}

// Subscribe registers fn to run synchronously after every mutation, in
// subscription order. The returned func removes it.
func (s *ViewState) Subscribe(fn Observer) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscription{id: id, fn: fn})
	return func() {
		s.subscribers = slices.DeleteFunc(s.subscribers, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

func (s *ViewState) notify() {
	// copy so observers may unsubscribe while being notified
	for _, sub := range slices.Clone(s.subscribers) {
		sub.fn(s)
	}
}
