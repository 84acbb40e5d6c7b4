package dto

import (
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankTransactionResponse defines the data returned for a bank transaction.
type BankTransactionResponse struct {
	BankTransactionID  string          `json:"bankTransactionID"`
	FinancialAccountID string          `json:"financialAccountID"`
	TransactionDate    time.Time       `json:"transactionDate"`
	FlowType           domain.FlowType `json:"flowType"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	Counterparty       string          `json:"counterparty,omitempty"`
	Category           string          `json:"category,omitempty"`
	Verified           bool            `json:"verified"`
}

// ToBankTransactionResponse converts a domain.BankTransaction.
func ToBankTransactionResponse(txn *domain.BankTransaction) BankTransactionResponse {
	return BankTransactionResponse{
		BankTransactionID:  txn.BankTransactionID,
		FinancialAccountID: txn.FinancialAccountID,
		TransactionDate:    txn.TransactionDate,
		FlowType:           txn.FlowType,
		Amount:             txn.Amount,
		Description:        txn.Description,
		Counterparty:       txn.Counterparty,
		Category:           txn.Category,
		Verified:           txn.Verified,
	}
}

// ToListBankTransactionResponse converts a slice of domain.BankTransaction.
func ToListBankTransactionResponse(txns []domain.BankTransaction) []BankTransactionResponse {
	res := make([]BankTransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToBankTransactionResponse(&t)
	}
	return res
}
