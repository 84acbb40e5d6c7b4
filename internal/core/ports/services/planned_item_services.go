package services

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/evtfin/eventfin_backend/internal/dto"
)

// PlannedItemSvcFacade exposes forecast line-item management.
type PlannedItemSvcFacade interface {
	CreateItem(ctx context.Context, accountID string, req dto.CreatePlannedItemRequest, userID string) (*domain.PlannedItem, error)
	GetItemByID(ctx context.Context, accountID string, itemID string) (*domain.PlannedItem, error)
	ListItems(ctx context.Context, accountID string) ([]domain.PlannedItem, error)
	UpdateItem(ctx context.Context, accountID string, itemID string, req dto.UpdatePlannedItemRequest, userID string) (*domain.PlannedItem, error)
	DeleteItem(ctx context.Context, accountID string, itemID string) error
	// DeleteItems deletes a batch, collecting per-item errors rather than
	// aborting on the first failure.
	DeleteItems(ctx context.Context, accountID string, itemIDs []string) (*dto.BatchResultResponse, error)
}
