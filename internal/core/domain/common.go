package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// FlowType indicates whether money moves into or out of an account.
type FlowType string

const (
	Income  FlowType = "INCOME"
	Expense FlowType = "EXPENSE"
)

// IsValid reports whether the flow type is one of the known variants.
func (f FlowType) IsValid() bool {
	return f == Income || f == Expense
}
