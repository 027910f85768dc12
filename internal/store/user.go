package store

import (
	"context"

	"github.com/Zadkiel26/web-420/internal/domain"
)

// UserStore defines the interface for user account persistence.
type UserStore interface {
	// Create saves a new user. The user's Password field must already
	// contain the bcrypt hash.
	// Returns ErrUserNameExists if the userName is already taken.
	// Returns ErrInvalidEntity (wrapped) if validation fails.
	Create(ctx context.Context, user *domain.User) error

	// FindByUserName retrieves a user by userName.
	// Returns ErrUserNotFound if no document matches.
	FindByUserName(ctx context.Context, userName string) (*domain.User, error)
}
