package services

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
	"github.com/evtfin/eventfin_backend/internal/dto"
)

// UserSvcFacade exposes user management and credential verification.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// Authenticate verifies the credentials and returns the user on success.
	Authenticate(ctx context.Context, username string, password string) (*domain.User, error)
}
