package services

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/evtfin/eventfin_backend/internal/dto"
)

// AccountSvcFacade exposes event-account management.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.EventAccount, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.EventAccount, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.EventAccount, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.EventAccount, error)
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}
