package domain

// EventAccount groups the planned items and ledger entries of one event
// (or ongoing activity). FinancialAccountID references the real-world bank
// account whose transactions the entries are reconciled against.
type EventAccount struct {
	AccountID          string `json:"accountID"` // Primary Key (UUID)
	Name               string `json:"name"`
	Description        string `json:"description"`
	FinancialAccountID string `json:"financialAccountID"` // Bank account reference
	IsActive           bool   `json:"isActive"`
	AuditFields
}
