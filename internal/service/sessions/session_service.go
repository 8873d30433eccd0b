package sessions

import (
	"context"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/ecoleplus/drivingschool/internal/repository"
	"github.com/google/uuid"
)

type SessionUseCase interface {
	Create(ctx context.Context, input SessionInput) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	Update(ctx context.Context, id string, input SessionInput) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type SessionInput struct {
	Title        string `json:"title"`
	InstructorID string `json:"instructorId"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Capacity     int    `json:"capacity"`
}

type SessionService struct {
	sessions repository.SessionRepository
}

func NewSessionService(sessions repository.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

func (s *SessionService) Create(ctx context.Context, input SessionInput) (*domain.Session, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	session := &domain.Session{
		ID:           uuid.NewString(),
		Title:        input.Title,
		InstructorID: input.InstructorID,
		Date:         input.Date,
		Time:         input.Time,
		Capacity:     input.Capacity,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *SessionService) List(ctx context.Context) ([]domain.Session, error) {
	return s.sessions.List(ctx)
}

func (s *SessionService) Update(ctx context.Context, id string, input SessionInput) (*domain.Session, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	current, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Title = input.Title
	current.Date = input.Date
	current.Time = input.Time
	current.Capacity = input.Capacity
	return s.sessions.Update(ctx, current)
}

func (s *SessionService) Delete(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

func validate(input SessionInput) error {
	if input.Title == "" {
		return domain.Invalid("title is required")
	}
	if input.Date == "" {
		return domain.Invalid("date is required")
	}
	if input.Capacity <= 0 {
		return domain.Invalid("capacity must be positive")
	}
	return nil
}

var _ SessionUseCase = (*SessionService)(nil)
