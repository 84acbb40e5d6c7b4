package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlannedItem is the DB row for a forecast line item.
type PlannedItem struct {
	PlannedItemID string          `db:"planned_item_id"`
	AccountID     string          `db:"account_id"`
	FlowType      string          `db:"flow_type"`
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Remark        string          `db:"remark"`
	Amount        decimal.Decimal `db:"amount"`
	ExpectedDate  time.Time       `db:"expected_date"`
	Status        string          `db:"status"`
	AuditFields
}
