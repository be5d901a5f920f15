package ui

import "time"

// LoadState tracks the progression of data loading for a Fetchable field.
type LoadState int

const (
	LoadIdle  LoadState = iota // never fetched
	LoadReady                  // a fetch has succeeded
	LoadError                  // failed, no prior data
)

func (s LoadState) String() string {
	switch s {
	case LoadIdle:
		return "idle"
	case LoadReady:
		return "ready"
	case LoadError:
		return "error"
	}
	return "unknown"
}

// Fetchable wraps a value with loading state metadata.
type Fetchable[T any] struct {
	Data      T
	State     LoadState
	Fetching  bool // orthogonal: is a fetch in flight?
	Err       error
	FetchedAt time.Time
}

// SetData replaces Data with a successful result and clears any error.
func (f *Fetchable[T]) SetData(data T) {
	f.Data = data
	f.State = LoadReady
	f.Fetching = false
	f.Err = nil
	f.FetchedAt = time.Now()
}

// SetError records an error. If prior data exists the state is preserved
// (stale data kept). Otherwise state becomes LoadError.
func (f *Fetchable[T]) SetError(err error) {
	f.Err = err
	f.Fetching = false
	if !f.HasData() {
		f.State = LoadError
	}
}

// SetFetching marks a fetch as in-flight without changing state or data.
func (f *Fetchable[T]) SetFetching() {
	f.Fetching = true
}

// IsReady returns true when the latest fetch succeeded.
func (f *Fetchable[T]) IsReady() bool {
	return f.State == LoadReady && f.Err == nil
}

// HasData returns true when a fetch has ever succeeded.
func (f *Fetchable[T]) HasData() bool {
	return f.State == LoadReady
}

// IsFetching returns true when a fetch is in-flight.
func (f *Fetchable[T]) IsFetching() bool {
	return f.Fetching
}
