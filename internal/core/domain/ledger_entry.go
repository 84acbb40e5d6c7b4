package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryStatus tracks an actual income/expense record.
type LedgerEntryStatus string

const (
	EntryPending   LedgerEntryStatus = "PENDING"
	EntryCompleted LedgerEntryStatus = "COMPLETED"
	EntryCancelled LedgerEntryStatus = "CANCELLED"
)

// IsValid reports whether the status is one of the known variants.
func (s LedgerEntryStatus) IsValid() bool {
	return s == EntryPending || s == EntryCompleted || s == EntryCancelled
}

// LedgerEntry is an actual (not forecast) income/expense record tied to an
// event account, optionally backed by exactly one bank transaction.
//
// Invariants:
//   - a non-nil ReconciledBankTransactionID implies Status == EntryCompleted;
//   - no two entries may reference the same bank transaction.
type LedgerEntry struct {
	EntryID         string            `json:"entryID"`   // Primary Key (UUID)
	AccountID       string            `json:"accountID"` // FK -> EventAccount
	TransactionDate *time.Time        `json:"transactionDate"` // May be unset pending confirmation
	FlowType        FlowType          `json:"flowType"`
	Category        string            `json:"category"`
	Description     string            `json:"description"`
	Amount          decimal.Decimal   `json:"amount"` // Positive value
	Counterparty    string            `json:"counterparty"`
	Notes           string            `json:"notes"`
	Status          LedgerEntryStatus `json:"status"`
	// ReconciledBankTransactionID links this entry to the one bank
	// transaction it corresponds to. Nil means unreconciled. The persistence
	// adapter translates nil to whatever field-removal primitive the storage
	// engine offers (NULL for SQL backends).
	ReconciledBankTransactionID *string `json:"reconciledBankTransactionID,omitempty"`
	AuditFields
}

// IsReconciled reports whether the entry is backed by a bank transaction.
func (e *LedgerEntry) IsReconciled() bool {
	return e.ReconciledBankTransactionID != nil && *e.ReconciledBankTransactionID != ""
}
