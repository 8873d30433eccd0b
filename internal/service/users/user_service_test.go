package users

import (
	"context"
	"testing"
	"time"

	"github.com/ecoleplus/drivingschool/internal/auth"
	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/ecoleplus/drivingschool/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id, fullName string) (*domain.User, error) {
	args := m.Called(ctx, id, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	args := m.Called(ctx, id, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newTestService(repo repository.UserRepository) *UserService {
	return NewUserService(repo, auth.NewTokenManager("test-secret", time.Hour))
}

func TestRegister_DefaultsToStudent(t *testing.T) {
	repo := &MockUserRepository{}
	service := newTestService(repo)

	ctx := context.Background()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()

	user, err := service.Register(ctx, RegisterInput{
		Email:    "claire@example.com",
		Password: "secret-password",
		FullName: "Claire Martin",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStudent, user.Role)
	assert.True(t, user.Active)
	assert.NotEqual(t, "secret-password", user.PasswordHash)
	repo.AssertExpectations(t)
}

func TestRegister_ShortPassword(t *testing.T) {
	service := newTestService(&MockUserRepository{})

	_, err := service.Register(context.Background(), RegisterInput{
		Email:    "claire@example.com",
		Password: "short",
	})
	assert.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	repo := &MockUserRepository{}
	service := newTestService(repo)

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)

	ctx := context.Background()
	repo.On("GetByEmail", ctx, "claire@example.com").Return(&domain.User{
		ID:           "user-1",
		Email:        "claire@example.com",
		PasswordHash: hash,
		Role:         domain.RoleStudent,
		Active:       true,
	}, nil).Once()

	token, user, err := service.Login(ctx, "claire@example.com", "secret-password")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &MockUserRepository{}
	service := newTestService(repo)

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)

	ctx := context.Background()
	repo.On("GetByEmail", ctx, "claire@example.com").Return(&domain.User{
		PasswordHash: hash,
		Active:       true,
	}, nil).Once()

	_, _, err = service.Login(ctx, "claire@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &MockUserRepository{}
	service := newTestService(repo)

	ctx := context.Background()
	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound).Once()

	_, _, err := service.Login(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := &MockUserRepository{}
	service := newTestService(repo)

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)

	ctx := context.Background()
	repo.On("GetByEmail", ctx, "claire@example.com").Return(&domain.User{
		PasswordHash: hash,
		Active:       false,
	}, nil).Once()

	_, _, err = service.Login(ctx, "claire@example.com", "secret-password")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestChangeRole_RejectsUnknownRole(t *testing.T) {
	service := newTestService(&MockUserRepository{})

	_, err := service.ChangeRole(context.Background(), "user-1", domain.Role("superhero"))
	assert.Error(t, err)
}
