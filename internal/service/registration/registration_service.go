package registration

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

// MissingFieldError reports which required input field was absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// SlotTakenError is the structured conflict outcome: the requested slot is
// occupied by one or more non-cancelled registrations. It is a business
// result, not an infrastructure failure.
type SlotTakenError struct {
	Date          string
	Time          string
	ConflictCount int
	Suggestion    string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s %s already has %d registration(s)", e.Date, e.Time, e.ConflictCount)
}

type RegistrationUseCase interface {
	CheckAvailability(ctx context.Context, date, timeLabel string) (*domain.Availability, error)
	ListAvailableSlots(ctx context.Context, date string) ([]domain.SlotAvailability, error)
	Create(ctx context.Context, input CreateRegistrationInput) (*domain.Registration, error)
	UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error)
	Get(ctx context.Context, id string) (*domain.Registration, error)
	List(ctx context.Context) ([]domain.Registration, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Registration, error)
	CountStalePending(ctx context.Context, olderThan time.Duration) (int, error)
}

type Cache interface {
	GetSlots(ctx context.Context, date string) ([]domain.SlotAvailability, error)
	SetSlots(ctx context.Context, date string, slots []domain.SlotAvailability) error
	InvalidateSlots(ctx context.Context, date string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type RegistrationService struct {
	registrations      repository.RegistrationRepository
	cache              Cache
	producer           Producer
	registrationTopic  string
	notificationsTopic string
	standardSlots      []string
}

type CreateRegistrationInput struct {
	Email         string `json:"email"`
	FullName      string `json:"nomComplet"`
	Phone         string `json:"telephone"`
	Address       string `json:"adresse"`
	BirthDate     string `json:"dateNaissance"`
	StartDate     string `json:"dateDebut"`
	PreferredTime string `json:"heurePreferee"`
}

type RegistrationServiceOption func(*RegistrationService)

func WithNotificationsTopic(topic string) RegistrationServiceOption {
	return func(s *RegistrationService) {
		s.notificationsTopic = topic
	}
}

func NewRegistrationService(
	registrations repository.RegistrationRepository,
	cache Cache,
	producer Producer,
	registrationTopic string,
	standardSlots []string,
	opts ...RegistrationServiceOption,
) *RegistrationService {
	service := &RegistrationService{
		registrations:     registrations,
		cache:             cache,
		producer:          producer,
		registrationTopic: registrationTopic,
		standardSlots:     standardSlots,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CheckAvailability reports whether the exact (date, time) pair is free.
// Labels are compared byte-for-byte: "9:00" and "09:00" are distinct slots.
func (s *RegistrationService) CheckAvailability(ctx context.Context, date, timeLabel string) (*domain.Availability, error) {
	if date == "" {
		return nil, &MissingFieldError{Field: "dateDebut"}
	}
	if timeLabel == "" {
		return nil, &MissingFieldError{Field: "heurePreferee"}
	}

	count, err := s.registrations.CountBySlot(ctx, date, timeLabel)
	if err != nil {
		return nil, err
	}

	return &domain.Availability{
		Available:     count == 0,
		ConflictCount: count,
		Date:          date,
		Time:          timeLabel,
	}, nil
}

// ListAvailableSlots reports availability for every configured slot label
// of a given date, in configuration order. Booked labels that are not part
// of the configured list are not reported.
func (s *RegistrationService) ListAvailableSlots(ctx context.Context, date string) ([]domain.SlotAvailability, error) {
	if date == "" {
		return nil, &MissingFieldError{Field: "dateDebut"}
	}

	if s.cache != nil {
		if cached, err := s.cache.GetSlots(ctx, date); err == nil && cached != nil {
			return cached, nil
		}
	}

	active, err := s.registrations.ListActiveByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(active))
	for _, reg := range active {
		counts[reg.PreferredTime]++
	}

	slots := make([]domain.SlotAvailability, 0, len(s.standardSlots))
	for _, label := range s.standardSlots {
		count := counts[label]
		slots = append(slots, domain.SlotAvailability{
			Time:          label,
			Available:     count == 0,
			ConflictCount: count,
		})
	}

	if s.cache != nil {
		_ = s.cache.SetSlots(ctx, date, slots)
	}
	return slots, nil
}

// Create checks availability and, if the slot is free, inserts the new
// registration as pending. The check and the insert are separate store
// calls with no transaction between them: two concurrent Create calls for
// the same slot can both pass the check and both insert.
func (s *RegistrationService) Create(ctx context.Context, input CreateRegistrationInput) (*domain.Registration, error) {
	if input.Email == "" {
		return nil, &MissingFieldError{Field: "email"}
	}
	if input.FullName == "" {
		return nil, &MissingFieldError{Field: "nomComplet"}
	}

	availability, err := s.CheckAvailability(ctx, input.StartDate, input.PreferredTime)
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		return nil, &SlotTakenError{
			Date:          input.StartDate,
			Time:          input.PreferredTime,
			ConflictCount: availability.ConflictCount,
			Suggestion:    "choose another time or date for this slot",
		}
	}

	reg := &domain.Registration{
		ID:            uuid.NewString(),
		Email:         input.Email,
		FullName:      input.FullName,
		Phone:         input.Phone,
		Address:       input.Address,
		BirthDate:     input.BirthDate,
		StartDate:     input.StartDate,
		PreferredTime: input.PreferredTime,
		Status:        domain.RegistrationStatusPending,
	}

	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateSlots(ctx, reg.StartDate)
	}
	if err := s.publish(ctx, "registration_created", reg); err != nil {
		log.Printf("WARNING: failed to publish registration_created event for %s: %v", reg.ID, err)
	}
	return reg, nil
}

// UpdateStatus sets a registration to confirmed or cancelled. Transition
// legality is not validated; administration owns the lifecycle.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error) {
	if status != domain.RegistrationStatusConfirmed && status != domain.RegistrationStatusCancelled {
		return nil, fmt.Errorf("unsupported status %q", status)
	}

	updated, err := s.registrations.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.InvalidateSlots(ctx, updated.StartDate)
	}
	eventType := "registration_confirmed"
	if status == domain.RegistrationStatusCancelled {
		eventType = "registration_cancelled"
	}
	if err := s.publish(ctx, eventType, updated); err != nil {
		log.Printf("WARNING: failed to publish %s event for %s: %v", eventType, updated.ID, err)
	}
	return updated, nil
}

func (s *RegistrationService) Get(ctx context.Context, id string) (*domain.Registration, error) {
	return s.registrations.GetByID(ctx, id)
}

func (s *RegistrationService) List(ctx context.Context) ([]domain.Registration, error) {
	return s.registrations.List(ctx)
}

func (s *RegistrationService) ListByEmail(ctx context.Context, email string) ([]domain.Registration, error) {
	if email == "" {
		return nil, &MissingFieldError{Field: "email"}
	}
	return s.registrations.ListByEmail(ctx, email)
}

// CountStalePending counts pending registrations created more than
// olderThan ago. Used by the worker for reporting; nothing is mutated.
func (s *RegistrationService) CountStalePending(ctx context.Context, olderThan time.Duration) (int, error) {
	return s.registrations.CountPendingBefore(ctx, time.Now().Add(-olderThan))
}

func (s *RegistrationService) publish(ctx context.Context, eventType string, reg *domain.Registration) error {
	if s.producer == nil || s.registrationTopic == "" {
		return nil
	}
	event := kafka.RegistrationEvent{
		Type:          eventType,
		ID:            reg.ID,
		Email:         reg.Email,
		FullName:      reg.FullName,
		StartDate:     reg.StartDate,
		PreferredTime: reg.PreferredTime,
		Status:        string(reg.Status),
		OccurredAt:    time.Now(),
	}
	if err := s.producer.Publish(ctx, s.registrationTopic, reg.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, reg.ID, event)
	}
	return nil
}

var _ RegistrationUseCase = (*RegistrationService)(nil)
