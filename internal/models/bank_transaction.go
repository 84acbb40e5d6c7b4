package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankTransaction is the DB row for an externally-imported bank transaction.
// The application reads this table and never writes it.
type BankTransaction struct {
	BankTransactionID  string          `db:"bank_transaction_id"`
	FinancialAccountID string          `db:"financial_account_id"`
	TransactionDate    time.Time       `db:"transaction_date"`
	FlowType           string          `db:"flow_type"`
	Amount             decimal.Decimal `db:"amount"`
	Description        string          `db:"description"`
	Counterparty       string          `db:"counterparty"`
	Category           string          `db:"category"`
	Verified           bool            `db:"verified"`
}
