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

type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(pool *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

func toModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:        d.EventID,
		Name:           d.Name,
		EventDate:      d.EventDate,
		PriceMember:    d.Prices.Member,
		PriceRegular:   d.Prices.Regular,
		PriceAlumni:    d.Prices.Alumni,
		PriceEarlyBird: d.Prices.EarlyBird,
		PriceCommittee: d.Prices.Committee,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:   m.EventID,
		Name:      m.Name,
		EventDate: m.EventDate,
		Prices: domain.PriceTable{
			Member:    m.PriceMember,
			Regular:   m.PriceRegular,
			Alumni:    m.PriceAlumni,
			EarlyBird: m.PriceEarlyBird,
			Committee: m.PriceCommittee,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const eventColumns = `event_id, name, event_date, price_member, price_regular, price_alumni, price_early_bird, price_committee, created_at, created_by, last_updated_at, last_updated_by`

func scanEvent(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.Name,
		&m.EventDate,
		&m.PriceMember,
		&m.PriceRegular,
		&m.PriceAlumni,
		&m.PriceEarlyBird,
		&m.PriceCommittee,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := toModelEvent(event)
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID, m.Name, m.EventDate,
		m.PriceMember, m.PriceRegular, m.PriceAlumni, m.PriceEarlyBird, m.PriceCommittee,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: event %s already exists", apperrors.ErrDuplicate, m.EventID)
		}
		return fmt.Errorf("failed to save event %s: %w", m.EventID, err)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`
	m, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	d := toDomainEvent(m)
	return &d, nil
}

func (r *PgxEventRepository) ListEvents(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY event_date, event_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.Event, 0)
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, toDomainEvent(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event rows: %w", err)
	}
	return events, nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := toModelEvent(event)
	query := `
		UPDATE events
		SET name = $2, event_date = $3,
		    price_member = $4, price_regular = $5, price_alumni = $6,
		    price_early_bird = $7, price_committee = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE event_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EventID, m.Name, m.EventDate,
		m.PriceMember, m.PriceRegular, m.PriceAlumni, m.PriceEarlyBird, m.PriceCommittee,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update event %s: %w", m.EventID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", m.EventID, apperrors.ErrNotFound)
	}
	return nil
}
