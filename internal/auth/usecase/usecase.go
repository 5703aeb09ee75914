package usecase

import (
	"context"
	"time"

	authdomain "mesto-backend/internal/auth/domain"
	authdto "mesto-backend/internal/auth/dto"
)

// AuthUsecase defines the user and session business logic.
type AuthUsecase interface {
	// Register hashes the password and stores a new user with profile defaults.
	Register(ctx context.Context, req *authdto.SignupRequest) (*authdomain.User, error)

	// Login checks credentials and returns a signed session token.
	// Unknown email and wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, req *authdto.SigninRequest) (string, error)

	// ValidateToken returns the user id carried by a session token.
	ValidateToken(token string) (string, error)

	// TokenTTL is the lifetime of tokens returned by Login.
	TokenTTL() time.Duration

	ListUsers(ctx context.Context) ([]authdomain.User, error)
	GetUser(ctx context.Context, id string) (*authdomain.User, error)
	GetCurrentUser(ctx context.Context, userID string) (*authdomain.User, error)
	UpdateProfile(ctx context.Context, userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error)
	UpdateAvatar(ctx context.Context, userID string, req *authdto.UpdateAvatarRequest) (*authdomain.User, error)
}
