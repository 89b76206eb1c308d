package outbox

import (
	"context"
	"errors"
	"sync"

	"github.com/iyhunko/product-catalog/internal/metrics"
	"github.com/iyhunko/product-catalog/internal/model"
)

// ErrOutboxFull is returned by Notify when the outbox holds capacity events.
var ErrOutboxFull = errors.New("notification outbox is full")

// DefaultCapacity bounds how many unpublished events are kept.
const DefaultCapacity = 1000

type entry struct {
	event    model.Event
	attempts int
}

// Outbox queues catalog events in memory until a Worker publishes them.
// It implements catalog.Notifier and never blocks the caller on the queue.
type Outbox struct {
	mu       sync.Mutex
	pending  []entry
	capacity int
}

// New creates an outbox holding at most capacity events. A capacity of zero
// or less uses DefaultCapacity.
func New(capacity int) *Outbox {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Outbox{capacity: capacity}
}

// Notify enqueues the event.
func (o *Outbox) Notify(_ context.Context, event model.Event) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.pending) >= o.capacity {
		return ErrOutboxFull
	}
	o.pending = append(o.pending, entry{event: event})
	metrics.NotificationsQueued.Set(float64(len(o.pending)))
	return nil
}

// Len returns the number of events waiting to be published.
func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.pending)
}

// take removes up to n events from the front of the queue.
func (o *Outbox) take(n int) []entry {
	o.mu.Lock()
	defer o.mu.Unlock()
	n = min(n, len(o.pending))
	batch := append([]entry(nil), o.pending[:n]...)
	o.pending = append(o.pending[:0:0], o.pending[n:]...)
	metrics.NotificationsQueued.Set(float64(len(o.pending)))
	return batch
}

// requeue puts failed entries back at the front, keeping their order.
func (o *Outbox) requeue(entries []entry) {
	if len(entries) == 0 {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.pending = append(append([]entry(nil), entries...), o.pending...)
	metrics.NotificationsQueued.Set(float64(len(o.pending)))
}
