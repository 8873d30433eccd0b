package tickets

import (
	"context"
	"testing"
	"time"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func TestCreate_OpensTicket(t *testing.T) {
	repo := &MockTicketRepository{}
	service := NewTicketService(repo, nil, "")

	ctx := context.Background()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Ticket")).Return(nil).Once()

	ticket, err := service.Create(ctx, "user-1", TicketInput{Subject: "Lost paperwork", Message: "My file is missing."})

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusOpen, ticket.Status)
	assert.Equal(t, "user-1", ticket.UserID)
	repo.AssertExpectations(t)
}

func TestCreate_RequiresSubjectAndMessage(t *testing.T) {
	service := NewTicketService(&MockTicketRepository{}, nil, "")
	ctx := context.Background()

	_, err := service.Create(ctx, "user-1", TicketInput{Message: "no subject"})
	assert.Error(t, err)

	_, err = service.Create(ctx, "user-1", TicketInput{Subject: "no message"})
	assert.Error(t, err)
}

func TestUpdateStatus_PublishesNotification(t *testing.T) {
	repo := &MockTicketRepository{}
	producer := &MockProducer{}
	service := NewTicketService(repo, producer, "notifications")

	ctx := context.Background()
	updated := &domain.Ticket{
		ID:        "ticket-1",
		UserID:    "user-1",
		Subject:   "Lost paperwork",
		Status:    domain.TicketStatusClosed,
		UpdatedAt: time.Now(),
	}
	repo.On("UpdateStatus", ctx, "ticket-1", domain.TicketStatusClosed).Return(updated, nil).Once()
	producer.On("Publish", ctx, "notifications", "ticket-1", mock.Anything).Return(nil).Once()

	result, err := service.UpdateStatus(ctx, "ticket-1", domain.TicketStatusClosed)

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusClosed, result.Status)
	producer.AssertExpectations(t)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	service := NewTicketService(&MockTicketRepository{}, nil, "")

	_, err := service.UpdateStatus(context.Background(), "ticket-1", domain.TicketStatus("resolved-ish"))
	assert.Error(t, err)
}
