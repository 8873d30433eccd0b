package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/ecoleplus/drivingschool/internal/service/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSessionUseCase struct {
	mock.Mock
}

func (m *MockSessionUseCase) Create(ctx context.Context, input sessions.SessionInput) (*domain.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionUseCase) Get(ctx context.Context, id string) (*domain.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionUseCase) List(ctx context.Context) ([]domain.Session, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Session), args.Error(1)
}

func (m *MockSessionUseCase) Update(ctx context.Context, id string, input sessions.SessionInput) (*domain.Session, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionUseCase) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newSessionCreateContext(t *testing.T, w *httptest.ResponseRecorder, input sessions.SessionInput) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/api/sessions", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ctxUserID, "instructor-1")
	return c
}

func TestSessionHandler_create_storeErrorIsServerFault(t *testing.T) {
	mockService := &MockSessionUseCase{}
	handler := NewSessionHandler(mockService)

	w := httptest.NewRecorder()
	c := newSessionCreateContext(t, w, sessions.SessionInput{
		Title:    "Highway driving",
		Date:     "2024-03-01",
		Time:     "10:00",
		Capacity: 5,
	})

	mockService.On("Create", c.Request.Context(), mock.Anything).
		Return(nil, errors.New("connection refused"))

	handler.create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSessionHandler_create_invalidInput(t *testing.T) {
	mockService := &MockSessionUseCase{}
	handler := NewSessionHandler(mockService)

	w := httptest.NewRecorder()
	c := newSessionCreateContext(t, w, sessions.SessionInput{Date: "2024-03-01", Capacity: 5})

	mockService.On("Create", c.Request.Context(), mock.Anything).
		Return(nil, domain.Invalid("title is required"))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "title is required", response["error"])
}
