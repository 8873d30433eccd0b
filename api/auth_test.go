package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/ecoleplus/drivingschool/internal/service/users"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) Register(ctx context.Context, input users.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

func (m *MockUserUseCase) Get(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateProfile(ctx context.Context, id, fullName string) (*domain.User, error) {
	args := m.Called(ctx, id, fullName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) Deactivate(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestAuthHandler_register(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := users.RegisterInput{
		Email:    "claire@example.com",
		Password: "secret-password",
		FullName: "Claire Martin",
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Register", c.Request.Context(), input).Return(&domain.User{
		ID:       "user-1",
		Email:    input.Email,
		FullName: input.FullName,
		Role:     domain.RoleStudent,
		Active:   true,
	}, nil)

	handler.register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response userResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "user-1", response.ID)
	assert.Equal(t, "student", response.Role)
}

func TestAuthHandler_login(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(loginRequest{Email: "claire@example.com", Password: "secret-password"})
	c.Request = httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Login", c.Request.Context(), "claire@example.com", "secret-password").
		Return("signed-token", &domain.User{ID: "user-1", Email: "claire@example.com", Role: domain.RoleStudent}, nil)

	handler.login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Token string       `json:"token"`
		User  userResponse `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "signed-token", response.Token)
	assert.Equal(t, "user-1", response.User.ID)
}

func TestAuthHandler_login_invalidCredentials(t *testing.T) {
	mockService := &MockUserUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(loginRequest{Email: "claire@example.com", Password: "wrong"})
	c.Request = httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Login", c.Request.Context(), "claire@example.com", "wrong").
		Return("", nil, users.ErrInvalidCredentials)

	handler.login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
