package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is an externally-sourced, read-only record of real money
// movement on a financial account. This service never creates, mutates or
// deletes bank transactions; it only links ledger entries to them.
type BankTransaction struct {
	BankTransactionID  string          `json:"bankTransactionID"`
	FinancialAccountID string          `json:"financialAccountID"`
	TransactionDate    time.Time       `json:"transactionDate"`
	FlowType           FlowType        `json:"flowType"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Counterparty       string          `json:"counterparty"`
	// Category is assigned by the external classification process and may be
	// empty. Consolidation uses it to attribute actuals to forecast rows.
	Category string `json:"category"`
	// Verified is set by the external reconciliation-status process once the
	// transaction has been confirmed on the bank side.
	Verified bool `json:"verified"`
}
