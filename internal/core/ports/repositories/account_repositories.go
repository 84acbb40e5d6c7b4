package repositories

import (
	"context"
	"time"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
)

// EventAccountReader defines read operations for event-account data.
type EventAccountReader interface {
	// FindAccountByID retrieves a specific event account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.EventAccount, error)

	// ListAccounts retrieves a paginated list of active event accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.EventAccount, error)
}

// EventAccountWriter defines write operations for event-account data.
type EventAccountWriter interface {
	// SaveAccount persists a new event account.
	SaveAccount(ctx context.Context, account domain.EventAccount) error

	// UpdateAccount updates an existing event account's details.
	UpdateAccount(ctx context.Context, account domain.EventAccount) error

	// DeactivateAccount marks an event account as inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// EventAccountRepositoryFacade combines all event-account repository interfaces.
type EventAccountRepositoryFacade interface {
	EventAccountReader
	EventAccountWriter
}
