package services

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/evtfin/eventfin_backend/internal/dto"
)

// EventSvcFacade exposes event metadata and pricing management.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, userID string) (*domain.Event, error)
	GetEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, userID string) (*domain.Event, error)
}
