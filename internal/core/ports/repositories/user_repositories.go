package repositories

import (
	"context"

	"github.com/evtfin/eventfin_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users (login and audit
// references only).
type UserRepository interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username (login).
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
