package model

import (
	"time"

	"github.com/google/uuid"
)

// EventAction names what happened to a product.
type EventAction string

const (
	// EventActionDeleted is emitted when a single product is removed from the catalog.
	EventActionDeleted EventAction = "deleted"
)

// Event represents a catalog notification.
type Event struct {
	ID         uuid.UUID
	Action     EventAction
	ProductID  int64
	Name       string
	Price      float64
	Stock      float64
	OccurredAt time.Time
}

// NewProductEvent builds an event for the given product and action.
func NewProductEvent(action EventAction, p Product) Event {
	e := Event{
		Action:    action,
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
	}
	e.InitMeta()
	return e
}

// InitMeta initializes the event metadata including ID and timestamp.
func (e *Event) InitMeta() {
	e.ID = uuid.New()
	e.OccurredAt = time.Now()
}
