package delivery

import (
	"context"
	"io"
	"time"

	authdomain "mesto-backend/internal/auth/domain"
	authdto "mesto-backend/internal/auth/dto"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase implements usecase.AuthUsecase
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, req *authdto.SignupRequest) (*authdomain.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, req *authdto.SigninRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUsecase) ValidateToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUsecase) TokenTTL() time.Duration {
	return 7 * 24 * time.Hour
}

func (m *MockAuthUsecase) ListUsers(ctx context.Context) ([]authdomain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]authdomain.User)
	return users, args.Error(1)
}

func (m *MockAuthUsecase) GetUser(ctx context.Context, id string) (*authdomain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}

func (m *MockAuthUsecase) GetCurrentUser(ctx context.Context, userID string) (*authdomain.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}

func (m *MockAuthUsecase) UpdateProfile(ctx context.Context, userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error) {
	args := m.Called(ctx, userID, req)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}

func (m *MockAuthUsecase) UpdateAvatar(ctx context.Context, userID string, req *authdto.UpdateAvatarRequest) (*authdomain.User, error) {
	args := m.Called(ctx, userID, req)
	user, _ := args.Get(0).(*authdomain.User)
	return user, args.Error(1)
}

// recordingObserver counts observer calls.
type recordingObserver struct {
	signins map[string]int
	rejects int
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{signins: map[string]int{}}
}

func (o *recordingObserver) ObserveSignin(result string) { o.signins[result]++ }
func (o *recordingObserver) ObserveAuthReject()          { o.rejects++ }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
