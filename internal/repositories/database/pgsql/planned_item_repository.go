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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPlannedItemRepository struct {
	BaseRepository
}

func newPgxPlannedItemRepository(pool *pgxpool.Pool) portsrepo.PlannedItemRepositoryFacade {
	return &PgxPlannedItemRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PlannedItemRepositoryFacade = (*PgxPlannedItemRepository)(nil)

func toModelPlannedItem(d domain.PlannedItem) models.PlannedItem {
	return models.PlannedItem{
		PlannedItemID: d.PlannedItemID,
		AccountID:     d.AccountID,
		FlowType:      string(d.FlowType),
		Category:      d.Category,
		Description:   d.Description,
		Remark:        d.Remark,
		Amount:        d.Amount,
		ExpectedDate:  d.ExpectedDate,
		Status:        string(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainPlannedItem(m models.PlannedItem) domain.PlannedItem {
	return domain.PlannedItem{
		PlannedItemID: m.PlannedItemID,
		AccountID:     m.AccountID,
		FlowType:      domain.FlowType(m.FlowType),
		Category:      m.Category,
		Description:   m.Description,
		Remark:        m.Remark,
		Amount:        m.Amount,
		ExpectedDate:  m.ExpectedDate,
		Status:        domain.PlannedItemStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const plannedItemColumns = `planned_item_id, account_id, flow_type, category, description, remark, amount, expected_date, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPlannedItem(row pgx.Row) (models.PlannedItem, error) {
	var m models.PlannedItem
	err := row.Scan(
		&m.PlannedItemID,
		&m.AccountID,
		&m.FlowType,
		&m.Category,
		&m.Description,
		&m.Remark,
		&m.Amount,
		&m.ExpectedDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPlannedItemRepository) SaveItem(ctx context.Context, item domain.PlannedItem) error {
	m := toModelPlannedItem(item)
	query := `
		INSERT INTO planned_items (` + plannedItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PlannedItemID, m.AccountID, m.FlowType, m.Category, m.Description, m.Remark,
		m.Amount, m.ExpectedDate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: planned item %s already exists", apperrors.ErrDuplicate, m.PlannedItemID)
		}
		return fmt.Errorf("failed to save planned item %s: %w", m.PlannedItemID, err)
	}
	return nil
}

func (r *PgxPlannedItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.PlannedItem, error) {
	query := `SELECT ` + plannedItemColumns + ` FROM planned_items WHERE planned_item_id = $1;`
	m, err := scanPlannedItem(r.Pool.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find planned item %s: %w", itemID, err)
	}
	d := toDomainPlannedItem(m)
	return &d, nil
}

func (r *PgxPlannedItemRepository) ListItemsByAccount(ctx context.Context, accountID string) ([]domain.PlannedItem, error) {
	query := `
		SELECT ` + plannedItemColumns + `
		FROM planned_items
		WHERE account_id = $1
		ORDER BY expected_date, planned_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned items for account %s: %w", accountID, err)
	}
	defer rows.Close()

	items := make([]domain.PlannedItem, 0)
	for rows.Next() {
		m, err := scanPlannedItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan planned item row: %w", err)
		}
		items = append(items, toDomainPlannedItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate planned item rows: %w", err)
	}
	return items, nil
}

func (r *PgxPlannedItemRepository) UpdateItem(ctx context.Context, item domain.PlannedItem) error {
	m := toModelPlannedItem(item)
	query := `
		UPDATE planned_items
		SET flow_type = $2, category = $3, description = $4, remark = $5,
		    amount = $6, expected_date = $7, status = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE planned_item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PlannedItemID, m.FlowType, m.Category, m.Description, m.Remark,
		m.Amount, m.ExpectedDate, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update planned item %s: %w", m.PlannedItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("planned item %s: %w", m.PlannedItemID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPlannedItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM planned_items WHERE planned_item_id = $1;`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete planned item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("planned item %s: %w", itemID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPlannedItemRepository) DeleteItems(ctx context.Context, itemIDs []string) (portsrepo.BatchOutcome, error) {
	outcome := portsrepo.BatchOutcome{Failed: make(map[string]error)}
	if len(itemIDs) == 0 {
		return outcome, nil
	}

	batch := &pgx.Batch{}
	for _, id := range itemIDs {
		batch.Queue(`DELETE FROM planned_items WHERE planned_item_id = $1;`, id)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for _, id := range itemIDs {
		tag, err := results.Exec()
		switch {
		case err != nil:
			outcome.Failed[id] = fmt.Errorf("failed to delete planned item %s: %w", id, err)
		case tag.RowsAffected() == 0:
			outcome.Failed[id] = fmt.Errorf("planned item %s: %w", id, apperrors.ErrNotFound)
		default:
			outcome.Succeeded = append(outcome.Succeeded, id)
		}
	}
	return outcome, nil
}
