package models

// EventAccount is the DB row for an event account.
type EventAccount struct {
	AccountID          string `db:"account_id"`
	Name               string `db:"name"`
	Description        string `db:"description"`
	FinancialAccountID string `db:"financial_account_id"`
	IsActive           bool   `db:"is_active"`
	AuditFields
}
