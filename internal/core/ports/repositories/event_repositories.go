package repositories

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
)

// EventReader defines read operations for event metadata and pricing.
type EventReader interface {
	// FindEventByID retrieves a specific event.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// ListEvents retrieves all events ordered by event date, then ID.
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

// EventWriter defines write operations for event metadata and pricing.
type EventWriter interface {
	// SaveEvent persists a new event.
	SaveEvent(ctx context.Context, event domain.Event) error

	// UpdateEvent updates an existing event, including its price table.
	UpdateEvent(ctx context.Context, event domain.Event) error
}

// EventRepositoryFacade combines the event repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}
