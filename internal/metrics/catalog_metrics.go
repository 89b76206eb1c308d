package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated is a Prometheus counter for tracking the total number of products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created",
	})

	// ProductsUpdated is a Prometheus counter for tracking the total number of products updated in place.
	ProductsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_updated_total",
		Help: "The total number of products updated",
	})

	// ProductsDeleted is a Prometheus counter for tracking the total number of products deleted.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "The total number of products deleted",
	})

	// CatalogCleared counts delete-all operations.
	CatalogCleared = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_cleared_total",
		Help: "The total number of times the whole catalog was cleared",
	})

	// ValidationFailures counts rejected submissions by reason.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "product_validation_failures_total",
		Help: "The total number of rejected product submissions",
	}, []string{"reason"})

	// RemoteFetches counts PokeAPI fetches by resource and outcome.
	RemoteFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "remote_fetches_total",
		Help: "The total number of remote data fetches",
	}, []string{"resource", "outcome"})

	// NotificationsQueued is a gauge of catalog notifications waiting to be published.
	NotificationsQueued = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_notifications_queued",
		Help: "The number of catalog notifications waiting in the outbox",
	})

	// NotificationsPublished counts outbox publish attempts by outcome.
	NotificationsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_notifications_published_total",
		Help: "The total number of catalog notification publish attempts",
	}, []string{"outcome"})
)
