package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is the DB row for an organizational event, price tiers flattened
// into columns.
type Event struct {
	EventID        string          `db:"event_id"`
	Name           string          `db:"name"`
	EventDate      time.Time       `db:"event_date"`
	PriceMember    decimal.Decimal `db:"price_member"`
	PriceRegular   decimal.Decimal `db:"price_regular"`
	PriceAlumni    decimal.Decimal `db:"price_alumni"`
	PriceEarlyBird decimal.Decimal `db:"price_early_bird"`
	PriceCommittee decimal.Decimal `db:"price_committee"`
	AuditFields
}
