package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evtfin/eventfin_backend/internal/apperrors"
	"github.com/evtfin/eventfin_backend/internal/core/domain"
	portsrepo "github.com/evtfin/eventfin_backend/internal/core/ports/repositories"
	portssvc "github.com/evtfin/eventfin_backend/internal/core/ports/services"
	"github.com/evtfin/eventfin_backend/internal/dto"
	"github.com/google/uuid"
)

// plannedItemService implements the PlannedItemSvcFacade interface
type plannedItemService struct {
	BaseService
	itemRepo    portsrepo.PlannedItemRepositoryFacade
	accountRepo portsrepo.EventAccountReader
}

// NewPlannedItemService creates a new planned-item service
func NewPlannedItemService(itemRepo portsrepo.PlannedItemRepositoryFacade, accountRepo portsrepo.EventAccountReader) portssvc.PlannedItemSvcFacade {
	return &plannedItemService{itemRepo: itemRepo, accountRepo: accountRepo}
}

var _ portssvc.PlannedItemSvcFacade = (*plannedItemService)(nil)

func (s *plannedItemService) CreateItem(ctx context.Context, accountID string, req dto.CreatePlannedItemRequest, userID string) (*domain.PlannedItem, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !req.FlowType.IsValid() {
		return nil, fmt.Errorf("%w: invalid flow type %q", apperrors.ErrValidation, req.FlowType)
	}

	now := time.Now()
	item := domain.PlannedItem{
		PlannedItemID: uuid.NewString(),
		AccountID:     accountID,
		FlowType:      req.FlowType,
		Category:      req.Category,
		Description:   req.Description,
		Remark:        req.Remark,
		Amount:        req.Amount,
		ExpectedDate:  req.ExpectedDate,
		Status:        domain.PlannedItemPlanned,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to create planned item", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to create planned item: %w", err)
	}

	return &item, nil
}

// findOwnedItem fetches the item and verifies it belongs to the account.
// Items of other accounts are reported as not found, not as forbidden.
func (s *plannedItemService) findOwnedItem(ctx context.Context, accountID, itemID string) (*domain.PlannedItem, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to find planned item %s: %w", itemID, err)
	}
	if item.AccountID != accountID {
		return nil, fmt.Errorf("planned item %s not in account %s: %w", itemID, accountID, apperrors.ErrNotFound)
	}
	return item, nil
}

func (s *plannedItemService) GetItemByID(ctx context.Context, accountID string, itemID string) (*domain.PlannedItem, error) {
	return s.findOwnedItem(ctx, accountID, itemID)
}

func (s *plannedItemService) ListItems(ctx context.Context, accountID string) ([]domain.PlannedItem, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	items, err := s.itemRepo.ListItemsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list planned items: %w", err)
	}
	if items == nil {
		return []domain.PlannedItem{}, nil
	}
	return items, nil
}

func (s *plannedItemService) UpdateItem(ctx context.Context, accountID string, itemID string, req dto.UpdatePlannedItemRequest, userID string) (*domain.PlannedItem, error) {
	item, err := s.findOwnedItem(ctx, accountID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if *req.Category == "" {
			return nil, fmt.Errorf("%w: category cannot be empty", apperrors.ErrValidation)
		}
		item.Category = *req.Category
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", apperrors.ErrValidation)
		}
		item.Description = *req.Description
	}
	if req.Remark != nil {
		item.Remark = *req.Remark
	}
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		item.Amount = *req.Amount
	}
	if req.ExpectedDate != nil {
		item.ExpectedDate = *req.ExpectedDate
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, *req.Status)
		}
		item.Status = *req.Status
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = userID

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update planned item", slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update planned item %s: %w", itemID, err)
	}

	return item, nil
}

func (s *plannedItemService) DeleteItem(ctx context.Context, accountID string, itemID string) error {
	if _, err := s.findOwnedItem(ctx, accountID, itemID); err != nil {
		return err
	}
	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete planned item %s: %w", itemID, err)
	}
	return nil
}

func (s *plannedItemService) DeleteItems(ctx context.Context, accountID string, itemIDs []string) (*dto.BatchResultResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	// Verify ownership up front; foreign or missing IDs become per-item
	// failures rather than aborting the batch.
	failures := make(map[string]string)
	owned := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		if _, err := s.findOwnedItem(ctx, accountID, id); err != nil {
			failures[id] = err.Error()
			continue
		}
		owned = append(owned, id)
	}

	outcome, err := s.itemRepo.DeleteItems(ctx, owned)
	if err != nil {
		return nil, fmt.Errorf("failed to delete planned items: %w", err)
	}
	for id, itemErr := range outcome.Failed {
		failures[id] = itemErr.Error()
	}

	res := &dto.BatchResultResponse{
		SucceededCount: len(outcome.Succeeded),
		FailedCount:    len(failures),
	}
	if len(failures) > 0 {
		res.Failures = failures
	}
	s.LogInfo(ctx, "Planned item batch delete finished",
		slog.String("account_id", accountID),
		slog.Int("succeeded", res.SucceededCount),
		slog.Int("failed", res.FailedCount))
	return res, nil
}
