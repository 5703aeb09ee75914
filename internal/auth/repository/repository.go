package repository

import (
	"context"

	authdomain "mesto-backend/internal/auth/domain"
)

// UserRepository is the credential store. Every failure it returns is either
// one of the authdomain error kinds or an unclassified internal error.
type UserRepository interface {
	// Create validates and inserts user, assigning its ID.
	// Fails with ErrValidation or ErrEmailTaken.
	Create(ctx context.Context, user *authdomain.User) error

	// FindAll returns every user.
	FindAll(ctx context.Context) ([]authdomain.User, error)

	// FindByID fails with ErrInvalidID for ids that are not UUIDs and
	// ErrNotFound when no user has the id.
	FindByID(ctx context.Context, id string) (*authdomain.User, error)

	// FindByEmail fails with ErrNotFound when no user has the address.
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)

	// UpdateProfile sets name and about and returns the updated user.
	UpdateProfile(ctx context.Context, id, name, about string) (*authdomain.User, error)

	// UpdateAvatar sets avatar and returns the updated user.
	UpdateAvatar(ctx context.Context, id, avatar string) (*authdomain.User, error)
}
