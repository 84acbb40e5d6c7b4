package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evtfin/eventfin_backend/internal/apperrors"
	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	"github.com/evtfin/eventfin_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEventAccountRepository struct {
	BaseRepository
}

func newPgxEventAccountRepository(pool *pgxpool.Pool) portsrepo.EventAccountRepositoryFacade {
	return &PgxEventAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventAccountRepositoryFacade = (*PgxEventAccountRepository)(nil)

func toModelAccount(d domain.EventAccount) models.EventAccount {
	return models.EventAccount{
		AccountID:          d.AccountID,
		Name:               d.Name,
		Description:        d.Description,
		FinancialAccountID: d.FinancialAccountID,
		IsActive:           d.IsActive,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainAccount(m models.EventAccount) domain.EventAccount {
	return domain.EventAccount{
		AccountID:          m.AccountID,
		Name:               m.Name,
		Description:        m.Description,
		FinancialAccountID: m.FinancialAccountID,
		IsActive:           m.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const accountColumns = `account_id, name, description, financial_account_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (models.EventAccount, error) {
	var m models.EventAccount
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Description,
		&m.FinancialAccountID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEventAccountRepository) SaveAccount(ctx context.Context, account domain.EventAccount) error {
	m := toModelAccount(account)
	query := `
		INSERT INTO event_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Name, m.Description, m.FinancialAccountID, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account with ID %s already exists", apperrors.ErrDuplicate, m.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

func (r *PgxEventAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.EventAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM event_accounts WHERE account_id = $1;`
	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	d := toDomainAccount(m)
	return &d, nil
}

func (r *PgxEventAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.EventAccount, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM event_accounts
		WHERE is_active = TRUE
		ORDER BY created_at DESC, account_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.EventAccount, 0)
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account rows: %w", err)
	}
	return accounts, nil
}

func (r *PgxEventAccountRepository) UpdateAccount(ctx context.Context, account domain.EventAccount) error {
	m := toModelAccount(account)
	query := `
		UPDATE event_accounts
		SET name = $2, description = $3, financial_account_id = $4, is_active = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Name, m.Description, m.FinancialAccountID, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", m.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", m.AccountID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEventAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	query := `
		UPDATE event_accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s: %w", accountID, apperrors.ErrNotFound)
	}
	return nil
}
