package repositories

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
)

// PlannedItemReader defines read operations for planned (forecast) items.
type PlannedItemReader interface {
	// FindItemByID retrieves a specific planned item.
	FindItemByID(ctx context.Context, itemID string) (*domain.PlannedItem, error)

	// ListItemsByAccount retrieves all planned items of an account ordered by
	// expected date, then item ID.
	ListItemsByAccount(ctx context.Context, accountID string) ([]domain.PlannedItem, error)
}

// PlannedItemWriter defines write operations for planned items.
type PlannedItemWriter interface {
	// SaveItem persists a new planned item.
	SaveItem(ctx context.Context, item domain.PlannedItem) error

	// UpdateItem updates an existing planned item.
	UpdateItem(ctx context.Context, item domain.PlannedItem) error

	// DeleteItem removes a planned item.
	DeleteItem(ctx context.Context, itemID string) error

	// DeleteItems removes multiple planned items, collecting per-item errors.
	DeleteItems(ctx context.Context, itemIDs []string) (BatchOutcome, error)
}

// PlannedItemRepositoryFacade combines all planned-item repository interfaces.
type PlannedItemRepositoryFacade interface {
	PlannedItemReader
	PlannedItemWriter
}
