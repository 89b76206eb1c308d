package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/iyhunko/product-catalog/internal/metrics"
	"github.com/iyhunko/product-catalog/internal/model"
)

const (
	// batchSize is the maximum number of events published per tick.
	batchSize = 100

	// DefaultMaxAttempts is how many times an event is tried before it is dropped.
	DefaultMaxAttempts = 5
)

// Publisher delivers one event to the queue. sqs.Publisher implements it.
type Publisher interface {
	Notify(ctx context.Context, event model.Event) error
}

// Worker periodically drains the outbox into a Publisher.
type Worker struct {
	outbox      *Outbox
	publisher   Publisher
	interval    time.Duration
	maxAttempts int
	stopChan    chan struct{}
	stopOnce    sync.Once
}

// NewWorker creates a new Worker publishing every interval.
func NewWorker(outbox *Outbox, publisher Publisher, interval time.Duration) *Worker {
	return &Worker{
		outbox:      outbox,
		publisher:   publisher,
		interval:    interval,
		maxAttempts: DefaultMaxAttempts,
		stopChan:    make(chan struct{}),
	}
}

// Start begins publishing queued events until the context is done or Stop is called.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("Outbox worker started", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			slog.Info("Outbox worker stopped by context")
			return
		case <-w.stopChan:
			slog.Info("Outbox worker stopped")
			return
		case <-ticker.C:
			w.Flush(ctx)
		}
	}
}

// Stop stops the worker. It is safe to call more than once.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
}

// Flush publishes one batch and returns how many events were delivered.
// Failed events go back to the outbox until they run out of attempts.
func (w *Worker) Flush(ctx context.Context) int {
	batch := w.outbox.take(batchSize)
	if len(batch) == 0 {
		return 0
	}

	slog.Debug("Publishing queued notifications", slog.Int("count", len(batch)))

	var retry []entry
	published := 0
	for _, e := range batch {
		if err := w.publisher.Notify(ctx, e.event); err != nil {
			e.attempts++
			if e.attempts >= w.maxAttempts {
				slog.Error("Dropping notification after repeated failures",
					slog.String("event_id", e.event.ID.String()),
					slog.Int64("product_id", e.event.ProductID),
					slog.Int("attempts", e.attempts),
					slog.Any("err", err))
				metrics.NotificationsPublished.WithLabelValues("dropped").Inc()
				continue
			}
			slog.Warn("Failed to publish notification",
				slog.String("event_id", e.event.ID.String()),
				slog.Int("attempts", e.attempts),
				slog.Any("err", err))
			metrics.NotificationsPublished.WithLabelValues("failed").Inc()
			retry = append(retry, e)
			continue
		}
		published++
		metrics.NotificationsPublished.WithLabelValues("published").Inc()
	}

	w.outbox.requeue(retry)
	return published
}
