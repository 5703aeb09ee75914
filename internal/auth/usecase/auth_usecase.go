package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdomain "mesto-backend/internal/auth/domain"
	authdto "mesto-backend/internal/auth/dto"
	"mesto-backend/internal/auth/repository"
	"mesto-backend/internal/auth/token"

	"github.com/sirupsen/logrus"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo  repository.UserRepository
	tokens    *token.Manager
	log       logrus.FieldLogger
	dummyHash string
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Manager, log logrus.FieldLogger) (AuthUsecase, error) {
	// Compared against when the email is unknown so both signin failures cost one bcrypt run.
	dummyHash, err := repository.HashPassword("mesto-dummy-password")
	if err != nil {
		return nil, err
	}

	return &authUsecase{
		userRepo:  userRepo,
		tokens:    tokens,
		log:       log,
		dummyHash: dummyHash,
	}, nil
}

func (u *authUsecase) Register(ctx context.Context, req *authdto.SignupRequest) (*authdomain.User, error) {
	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     req.Name,
		About:    req.About,
		Avatar:   req.Avatar,
		Email:    req.Email,
		Password: hashedPassword,
	}
	user.ApplyDefaults()

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	u.log.WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.SigninRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", fmt.Errorf("%w: email and password must not be empty", authdomain.ErrValidation)
	}

	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, authdomain.ErrNotFound) {
			repository.CheckPasswordHash(req.Password, u.dummyHash)
			return "", authdomain.ErrInvalidCredentials
		}
		return "", err
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return "", authdomain.ErrInvalidCredentials
	}

	return u.tokens.Issue(user.ID)
}

func (u *authUsecase) ValidateToken(tokenString string) (string, error) {
	claims, err := u.tokens.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func (u *authUsecase) TokenTTL() time.Duration {
	return u.tokens.TTL()
}

func (u *authUsecase) ListUsers(ctx context.Context) ([]authdomain.User, error) {
	return u.userRepo.FindAll(ctx)
}

func (u *authUsecase) GetUser(ctx context.Context, id string) (*authdomain.User, error) {
	return u.userRepo.FindByID(ctx, id)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID string) (*authdomain.User, error) {
	return u.userRepo.FindByID(ctx, userID)
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error) {
	return u.userRepo.UpdateProfile(ctx, userID, req.Name, req.About)
}

func (u *authUsecase) UpdateAvatar(ctx context.Context, userID string, req *authdto.UpdateAvatarRequest) (*authdomain.User, error) {
	return u.userRepo.UpdateAvatar(ctx, userID, req.Avatar)
}
