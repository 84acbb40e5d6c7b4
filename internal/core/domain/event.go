package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceTable holds the ticket price tiers of an event. A zero tier means the
// tier is not offered.
type PriceTable struct {
	Member    decimal.Decimal `json:"member"`
	Regular   decimal.Decimal `json:"regular"`
	Alumni    decimal.Decimal `json:"alumni"`
	EarlyBird decimal.Decimal `json:"earlyBird"`
	Committee decimal.Decimal `json:"committee"`
}

// Tiers returns the non-zero price tiers.
func (p PriceTable) Tiers() []decimal.Decimal {
	all := []decimal.Decimal{p.Member, p.Regular, p.Alumni, p.EarlyBird, p.Committee}
	tiers := make([]decimal.Decimal, 0, len(all))
	for _, t := range all {
		if t.IsPositive() {
			tiers = append(tiers, t)
		}
	}
	return tiers
}

// Event is the metadata the auto-match engine needs about an organizational
// event: when it happens and what attendance costs.
type Event struct {
	EventID   string     `json:"eventID"` // Primary Key (UUID)
	Name      string     `json:"name"`
	EventDate time.Time  `json:"eventDate"`
	Prices    PriceTable `json:"prices"`
	AuditFields
}
