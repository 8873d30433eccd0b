package users

import (
	"context"
	"errors"

	"github.com/ecoleplus/drivingschool/internal/auth"
	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/ecoleplus/drivingschool/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id, fullName string) (*domain.User, error)
	ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	Deactivate(ctx context.Context, id string) (*domain.User, error)
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type UserService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewUserService(users repository.UserRepository, tokens *auth.TokenManager) *UserService {
	return &UserService{users: users, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, domain.Invalid("email is required")
	}
	if len(input.Password) < 8 {
		return nil, domain.Invalid("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         domain.RoleStudent,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.Active {
		return "", nil, ErrAccountDisabled
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) UpdateProfile(ctx context.Context, id, fullName string) (*domain.User, error) {
	if fullName == "" {
		return nil, domain.Invalid("fullName is required")
	}
	return s.users.UpdateProfile(ctx, id, fullName)
}

func (s *UserService) ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.Invalid("unknown role")
	}
	return s.users.UpdateRole(ctx, id, role)
}

func (s *UserService) Deactivate(ctx context.Context, id string) (*domain.User, error) {
	return s.users.SetActive(ctx, id, false)
}

var _ UserUseCase = (*UserService)(nil)
