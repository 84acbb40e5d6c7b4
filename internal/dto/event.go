package dto

import (
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceTableRequest carries the ticket price tiers of an event. Omitted
// tiers default to zero (not offered).
type PriceTableRequest struct {
	Member    decimal.Decimal `json:"member"`
	Regular   decimal.Decimal `json:"regular"`
	Alumni    decimal.Decimal `json:"alumni"`
	EarlyBird decimal.Decimal `json:"earlyBird"`
	Committee decimal.Decimal `json:"committee"`
}

func (p PriceTableRequest) toDomain() domain.PriceTable {
	return domain.PriceTable{
		Member:    p.Member,
		Regular:   p.Regular,
		Alumni:    p.Alumni,
		EarlyBird: p.EarlyBird,
		Committee: p.Committee,
	}
}

// CreateEventRequest defines the data needed to create an event.
type CreateEventRequest struct {
	Name      string            `json:"name" binding:"required"`
	EventDate time.Time         `json:"eventDate" binding:"required"`
	Prices    PriceTableRequest `json:"prices"`
}

// ToDomainPrices exposes the request's price table as a domain value.
func (r CreateEventRequest) ToDomainPrices() domain.PriceTable {
	return r.Prices.toDomain()
}

// UpdateEventRequest defines the data allowed for updating an event.
type UpdateEventRequest struct {
	Name      *string            `json:"name"`
	EventDate *time.Time         `json:"eventDate"`
	Prices    *PriceTableRequest `json:"prices"`
}

// ToDomainPrices exposes the request's price table as a domain value, or nil
// when the request does not touch prices.
func (r UpdateEventRequest) ToDomainPrices() *domain.PriceTable {
	if r.Prices == nil {
		return nil
	}
	p := r.Prices.toDomain()
	return &p
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID       string            `json:"eventID"`
	Name          string            `json:"name"`
	EventDate     time.Time         `json:"eventDate"`
	Prices        domain.PriceTable `json:"prices"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ToEventResponse converts a domain.Event.
func ToEventResponse(event *domain.Event) EventResponse {
	return EventResponse{
		EventID:       event.EventID,
		Name:          event.Name,
		EventDate:     event.EventDate,
		Prices:        event.Prices,
		CreatedAt:     event.CreatedAt,
		LastUpdatedAt: event.LastUpdatedAt,
	}
}

// ToListEventResponse converts a slice of domain.Event.
func ToListEventResponse(events []domain.Event) []EventResponse {
	res := make([]EventResponse, len(events))
	for i, e := range events {
		res[i] = ToEventResponse(&e)
	}
	return res
}
