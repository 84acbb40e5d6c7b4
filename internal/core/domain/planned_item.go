package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlannedItemStatus tracks a forecast line item through its approval lifecycle.
type PlannedItemStatus string

const (
	PlannedItemPlanned         PlannedItemStatus = "PLANNED"
	PlannedItemPendingApproval PlannedItemStatus = "PENDING_APPROVAL"
	PlannedItemConfirmed       PlannedItemStatus = "CONFIRMED"
	PlannedItemCompleted       PlannedItemStatus = "COMPLETED"
	PlannedItemCancelled       PlannedItemStatus = "CANCELLED"
)

// IsValid reports whether the status is one of the known variants.
func (s PlannedItemStatus) IsValid() bool {
	switch s {
	case PlannedItemPlanned, PlannedItemPendingApproval, PlannedItemConfirmed,
		PlannedItemCompleted, PlannedItemCancelled:
		return true
	}
	return false
}

// PlannedItem is a forecast/budget line for an event account. It is a plan,
// not a ledger fact, and therefore carries no reconciliation state.
type PlannedItem struct {
	PlannedItemID string            `json:"plannedItemID"` // Primary Key (UUID)
	AccountID     string            `json:"accountID"`     // FK -> EventAccount
	FlowType      FlowType          `json:"flowType"`
	Category      string            `json:"category"` // Category code
	Description   string            `json:"description"`
	Remark        string            `json:"remark"`
	Amount        decimal.Decimal   `json:"amount"` // Positive value
	ExpectedDate  time.Time         `json:"expectedDate"`
	Status        PlannedItemStatus `json:"status"`
	AuditFields
}
