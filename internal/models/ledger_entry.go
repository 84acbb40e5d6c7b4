package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the DB row for an actual income/expense record.
// reconciled_bank_transaction_id carries a UNIQUE constraint; the database is
// the final arbiter of the one-transaction-one-entry rule.
type LedgerEntry struct {
	EntryID                     string          `db:"entry_id"`
	AccountID                   string          `db:"account_id"`
	TransactionDate             *time.Time      `db:"transaction_date"`
	FlowType                    string          `db:"flow_type"`
	Category                    string          `db:"category"`
	Description                 string          `db:"description"`
	Amount                      decimal.Decimal `db:"amount"`
	Counterparty                string          `db:"counterparty"`
	Notes                       string          `db:"notes"`
	Status                      string          `db:"status"`
	ReconciledBankTransactionID *string         `db:"reconciled_bank_transaction_id"`
	AuditFields
}
