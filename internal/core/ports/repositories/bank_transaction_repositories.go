package repositories

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
)

// BankTransactionReader defines read-only access to bank transactions. The
// collection is owned by the external financial-transactions collaborator;
// this service never writes to it.
type BankTransactionReader interface {
	// FindBankTransactionByID retrieves a specific bank transaction.
	FindBankTransactionByID(ctx context.Context, bankTransactionID string) (*domain.BankTransaction, error)

	// ListBankTransactions retrieves all bank transactions of a financial
	// account ordered by transaction date, then ID.
	ListBankTransactions(ctx context.Context, financialAccountID string) ([]domain.BankTransaction, error)
}
