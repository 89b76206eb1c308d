package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iyhunko/product-catalog/internal/model"
)

// Notifier receives catalog notifications for presentation purposes.
type Notifier interface {
	Notify(ctx context.Context, event model.Event) error
}

// LogNotifier writes every notification to the default slog logger.
type LogNotifier struct{}

// Notify implements Notifier.
func (LogNotifier) Notify(_ context.Context, event model.Event) error {
	slog.Info("Product has been "+string(event.Action),
		slog.String("event_id", event.ID.String()),
		slog.Int64("product_id", event.ProductID),
		slog.String("name", event.Name),
	)
	return nil
}

// MultiNotifier fans a notification out to every notifier in order.
type MultiNotifier []Notifier

// Notify implements Notifier. Every notifier is called even if an earlier one fails.
func (m MultiNotifier) Notify(ctx context.Context, event model.Event) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
