package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/evtfin/eventfin_backend/internal/apperrors"
	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	"github.com/evtfin/eventfin_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBankTransactionRepository reads the externally-maintained bank
// transaction table. There are no write methods on purpose.
type PgxBankTransactionRepository struct {
	BaseRepository
}

func newPgxBankTransactionRepository(pool *pgxpool.Pool) portsrepo.BankTransactionReader {
	return &PgxBankTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankTransactionReader = (*PgxBankTransactionRepository)(nil)

func toDomainBankTransaction(m models.BankTransaction) domain.BankTransaction {
	return domain.BankTransaction{
		BankTransactionID:  m.BankTransactionID,
		FinancialAccountID: m.FinancialAccountID,
		TransactionDate:    m.TransactionDate,
		FlowType:           domain.FlowType(m.FlowType),
		Amount:             m.Amount,
		Description:        m.Description,
		Counterparty:       m.Counterparty,
		Category:           m.Category,
		Verified:           m.Verified,
	}
}

const bankTxnColumns = `bank_transaction_id, financial_account_id, transaction_date, flow_type, amount, description, counterparty, category, verified`

func scanBankTransaction(row pgx.Row) (models.BankTransaction, error) {
	var m models.BankTransaction
	err := row.Scan(
		&m.BankTransactionID,
		&m.FinancialAccountID,
		&m.TransactionDate,
		&m.FlowType,
		&m.Amount,
		&m.Description,
		&m.Counterparty,
		&m.Category,
		&m.Verified,
	)
	return m, err
}

func (r *PgxBankTransactionRepository) FindBankTransactionByID(ctx context.Context, bankTransactionID string) (*domain.BankTransaction, error) {
	query := `SELECT ` + bankTxnColumns + ` FROM bank_transactions WHERE bank_transaction_id = $1;`
	m, err := scanBankTransaction(r.Pool.QueryRow(ctx, query, bankTransactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank transaction %s: %w", bankTransactionID, err)
	}
	d := toDomainBankTransaction(m)
	return &d, nil
}

func (r *PgxBankTransactionRepository) ListBankTransactions(ctx context.Context, financialAccountID string) ([]domain.BankTransaction, error) {
	query := `
		SELECT ` + bankTxnColumns + `
		FROM bank_transactions
		WHERE financial_account_id = $1
		ORDER BY transaction_date, bank_transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, financialAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank transactions for %s: %w", financialAccountID, err)
	}
	defer rows.Close()

	txns := make([]domain.BankTransaction, 0)
	for rows.Next() {
		m, err := scanBankTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank transaction row: %w", err)
		}
		txns = append(txns, toDomainBankTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bank transaction rows: %w", err)
	}
	return txns, nil
}
