package sqs

import (
	"time"

	"github.com/iyhunko/product-catalog/internal/model"
)

// EventMessage is the JSON body of a catalog notification on the queue.
type EventMessage struct {
	EventID    string    `json:"event_id"`
	Action     string    `json:"action"`
	ProductID  int64     `json:"product_id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Stock      float64   `json:"stock"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEventMessage converts a catalog event into its queue representation.
func NewEventMessage(e model.Event) EventMessage {
	return EventMessage{
		EventID:    e.ID.String(),
		Action:     string(e.Action),
		ProductID:  e.ProductID,
		Name:       e.Name,
		Price:      e.Price,
		Stock:      e.Stock,
		OccurredAt: e.OccurredAt,
	}
}
