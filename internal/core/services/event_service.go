package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evtfin/eventfin_backend/internal/apperrors"
	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/google/uuid"
)

// eventService implements the EventSvcFacade interface
type eventService struct {
	BaseService
	eventRepo portsrepo.EventRepositoryFacade
}

// NewEventService creates a new event service
func NewEventService(eventRepo portsrepo.EventRepositoryFacade) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

func validatePrices(prices domain.PriceTable) error {
	for _, tier := range []struct {
		name  string
		value bool
	}{
		{"member", prices.Member.IsNegative()},
		{"regular", prices.Regular.IsNegative()},
		{"alumni", prices.Alumni.IsNegative()},
		{"earlyBird", prices.EarlyBird.IsNegative()},
		{"committee", prices.Committee.IsNegative()},
	} {
		if tier.value {
			return fmt.Errorf("%w: price tier %s cannot be negative", apperrors.ErrValidation, tier.name)
		}
	}
	return nil
}

func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, userID string) (*domain.Event, error) {
	prices := req.ToDomainPrices()
	if err := validatePrices(prices); err != nil {
		return nil, err
	}

	now := time.Now()
	event := domain.Event{
		EventID:   uuid.NewString(),
		Name:      req.Name,
		EventDate: req.EventDate,
		Prices:    prices,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to create event", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", eventID, err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		return []domain.Event{}, nil
	}
	return events, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, userID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s for update: %w", eventID, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: event name cannot be empty", apperrors.ErrValidation)
		}
		event.Name = *req.Name
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if prices := req.ToDomainPrices(); prices != nil {
		if err := validatePrices(*prices); err != nil {
			return nil, err
		}
		event.Prices = *prices
	}
	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = userID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, fmt.Errorf("failed to update event %s: %w", eventID, err)
	}

	return event, nil
}
