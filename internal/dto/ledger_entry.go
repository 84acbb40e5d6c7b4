package dto

import (
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data needed to record an actual
// income/expense. The transaction date may be omitted while the entry is
// pending confirmation.
type CreateLedgerEntryRequest struct {
	TransactionDate *time.Time      `json:"transactionDate"`
	FlowType        domain.FlowType `json:"flowType" binding:"required,oneof=INCOME EXPENSE"`
	Category        string          `json:"category" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Counterparty    string          `json:"counterparty"`
	Notes           string          `json:"notes"`
}

// BulkCreateLedgerEntriesRequest carries multiple entries for bulk input.
type BulkCreateLedgerEntriesRequest struct {
	Entries []CreateLedgerEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// UpdateLedgerEntryRequest defines the data allowed for editing an entry.
// The reconciliation link is deliberately absent; it changes only through
// the reconciliation endpoints.
type UpdateLedgerEntryRequest struct {
	TransactionDate *time.Time                `json:"transactionDate"`
	Category        *string                   `json:"category"`
	Description     *string                   `json:"description"`
	Amount          *decimal.Decimal          `json:"amount"`
	Counterparty    *string                   `json:"counterparty"`
	Notes           *string                   `json:"notes"`
	Status          *domain.LedgerEntryStatus `json:"status"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID                     string                   `json:"entryID"`
	AccountID                   string                   `json:"accountID"`
	TransactionDate             *time.Time               `json:"transactionDate,omitempty"`
	FlowType                    domain.FlowType          `json:"flowType"`
	Category                    string                   `json:"category"`
	Description                 string                   `json:"description"`
	Amount                      decimal.Decimal          `json:"amount"`
	Counterparty                string                   `json:"counterparty,omitempty"`
	Notes                       string                   `json:"notes,omitempty"`
	Status                      domain.LedgerEntryStatus `json:"status"`
	ReconciledBankTransactionID *string                  `json:"reconciledBankTransactionID,omitempty"`
	CreatedAt                   time.Time                `json:"createdAt"`
	LastUpdatedAt               time.Time                `json:"lastUpdatedAt"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry.
func ToLedgerEntryResponse(entry *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:                     entry.EntryID,
		AccountID:                   entry.AccountID,
		TransactionDate:             entry.TransactionDate,
		FlowType:                    entry.FlowType,
		Category:                    entry.Category,
		Description:                 entry.Description,
		Amount:                      entry.Amount,
		Counterparty:                entry.Counterparty,
		Notes:                       entry.Notes,
		Status:                      entry.Status,
		ReconciledBankTransactionID: entry.ReconciledBankTransactionID,
		CreatedAt:                   entry.CreatedAt,
		LastUpdatedAt:               entry.LastUpdatedAt,
	}
}

// ToListLedgerEntryResponse converts a slice of domain.LedgerEntry.
func ToListLedgerEntryResponse(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToLedgerEntryResponse(&e)
	}
	return res
}
