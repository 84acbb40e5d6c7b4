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

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.EventAccountRepositoryFacade
}

// NewAccountService creates a new event-account service
func NewAccountService(repo portsrepo.EventAccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.EventAccount, error) {
	now := time.Now()

	account := domain.EventAccount{
		AccountID:          uuid.NewString(),
		Name:               req.Name,
		Description:        req.Description,
		FinancialAccountID: req.FinancialAccountID,
		IsActive:           true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to create event account", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.EventAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.EventAccount, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.EventAccount{}, nil
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.EventAccount, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s for update: %w", accountID, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: account name cannot be empty", apperrors.ErrValidation)
		}
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.FinancialAccountID != nil {
		if *req.FinancialAccountID == "" {
			return nil, fmt.Errorf("%w: financial account reference cannot be empty", apperrors.ErrValidation)
		}
		account.FinancialAccountID = *req.FinancialAccountID
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update event account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}

	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return fmt.Errorf("failed to find account %s for deactivation: %w", accountID, err)
	}
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate event account", slog.String("account_id", accountID))
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	return nil
}
