package tickets

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/ecoleplus/drivingschool/internal/kafka"
	"github.com/ecoleplus/drivingschool/internal/repository"
	"github.com/google/uuid"
)

type TicketUseCase interface {
	Create(ctx context.Context, userID string, input TicketInput) (*domain.Ticket, error)
	Get(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error)
}

type TicketInput struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type TicketService struct {
	tickets            repository.TicketRepository
	producer           Producer
	notificationsTopic string
}

func NewTicketService(tickets repository.TicketRepository, producer Producer, notificationsTopic string) *TicketService {
	return &TicketService{tickets: tickets, producer: producer, notificationsTopic: notificationsTopic}
}

func (s *TicketService) Create(ctx context.Context, userID string, input TicketInput) (*domain.Ticket, error) {
	if input.Subject == "" {
		return nil, domain.Invalid("subject is required")
	}
	if input.Message == "" {
		return nil, domain.Invalid("message is required")
	}

	ticket := &domain.Ticket{
		ID:      uuid.NewString(),
		UserID:  userID,
		Subject: input.Subject,
		Message: input.Message,
		Status:  domain.TicketStatusOpen,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) Get(ctx context.Context, id string) (*domain.Ticket, error) {
	return s.tickets.GetByID(ctx, id)
}

func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

func (s *TicketService) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	return s.tickets.ListByUser(ctx, userID)
}

func (s *TicketService) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	if !status.Valid() {
		return nil, domain.Invalid(fmt.Sprintf("unknown status %q", status))
	}

	updated, err := s.tickets.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.producer != nil && s.notificationsTopic != "" {
		event := kafka.TicketEvent{
			Type:       "ticket_status_changed",
			ID:         updated.ID,
			UserID:     updated.UserID,
			Subject:    updated.Subject,
			Status:     string(updated.Status),
			OccurredAt: time.Now(),
		}
		if err := s.producer.Publish(ctx, s.notificationsTopic, updated.ID, event); err != nil {
			log.Printf("WARNING: failed to publish ticket event for %s: %v", updated.ID, err)
		}
	}
	return updated, nil
}

var _ TicketUseCase = (*TicketService)(nil)
