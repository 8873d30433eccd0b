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
	"github.com/ecoleplus/drivingschool/internal/service/tickets"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTicketUseCase struct {
	mock.Mock
}

func (m *MockTicketUseCase) Create(ctx context.Context, userID string, input tickets.TicketInput) (*domain.Ticket, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketUseCase) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketUseCase) List(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketUseCase) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketUseCase) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func TestTicketHandler_create_storeErrorIsServerFault(t *testing.T) {
	mockService := &MockTicketUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(tickets.TicketInput{Subject: "payment", Message: "charged twice"})
	c.Request = httptest.NewRequest("POST", "/api/tickets", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ctxUserID, "user-1")

	mockService.On("Create", c.Request.Context(), "user-1", mock.Anything).
		Return(nil, errors.New("connection refused"))

	handler.create(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTicketHandler_create_invalidInput(t *testing.T) {
	mockService := &MockTicketUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(tickets.TicketInput{Message: "charged twice"})
	c.Request = httptest.NewRequest("POST", "/api/tickets", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(ctxUserID, "user-1")

	mockService.On("Create", c.Request.Context(), "user-1", mock.Anything).
		Return(nil, domain.Invalid("subject is required"))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
