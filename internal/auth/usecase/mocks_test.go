package usecase

import (
	"context"

	authdomain "mesto-backend/internal/auth/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository implements repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *authdomain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]authdomain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]authdomain.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id, name, about string) (*authdomain.User, error) {
	args := m.Called(ctx, id, name, about)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*authdomain.User, error) {
	args := m.Called(ctx, id, avatar)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}
