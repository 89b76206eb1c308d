package pokeapi

import "sync"

// Status is the lifecycle of one remote fetch.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

// FetchState is the outcome of one remote fetch. Data is only meaningful when
// Status is StatusLoaded and Err only when it is StatusFailed.
type FetchState[T any] struct {
	Status Status
	Data   T
	Err    error
}

// Settled reports whether the fetch has finished, successfully or not.
func (s FetchState[T]) Settled() bool {
	return s.Status == StatusLoaded || s.Status == StatusFailed
}

type resource[T any] struct {
	mu    sync.RWMutex
	state FetchState[T]
}

func newResource[T any]() *resource[T] {
	return &resource[T]{state: FetchState[T]{Status: StatusIdle}}
}

func (r *resource[T]) get() FetchState[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

func (r *resource[T]) set(s FetchState[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = s
}
