package news

import (
	"context"
	"errors"

	"github.com/ecoleplus/drivingschool/internal/auth"
	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/ecoleplus/drivingschool/internal/repository"
	"github.com/google/uuid"
)

// ErrForbidden is returned when a caller may not delete another author's
// comment.
var ErrForbidden = errors.New("not allowed")

type NewsUseCase interface {
	Publish(ctx context.Context, input NewsInput) (*domain.News, error)
	Get(ctx context.Context, id string) (*domain.News, error)
	List(ctx context.Context) ([]domain.News, error)
	Update(ctx context.Context, id string, input NewsInput) (*domain.News, error)
	Delete(ctx context.Context, id string) error

	AddComment(ctx context.Context, newsID, authorID, body string) (*domain.Comment, error)
	ListComments(ctx context.Context, newsID string) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, commentID, callerID string, callerRole domain.Role) error
}

type NewsInput struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	AuthorID string `json:"-"`
}

type Cache interface {
	GetNews(ctx context.Context) ([]domain.News, error)
	SetNews(ctx context.Context, items []domain.News) error
	InvalidateNews(ctx context.Context) error
}

type NewsService struct {
	news     repository.NewsRepository
	comments repository.CommentRepository
	cache    Cache
}

func NewNewsService(news repository.NewsRepository, comments repository.CommentRepository, cache Cache) *NewsService {
	return &NewsService{news: news, comments: comments, cache: cache}
}

func (s *NewsService) Publish(ctx context.Context, input NewsInput) (*domain.News, error) {
	if input.Title == "" {
		return nil, domain.Invalid("title is required")
	}
	if input.Body == "" {
		return nil, domain.Invalid("body is required")
	}

	item := &domain.News{
		ID:       uuid.NewString(),
		Title:    input.Title,
		Body:     input.Body,
		AuthorID: input.AuthorID,
	}
	if err := s.news.Create(ctx, item); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateNews(ctx)
	}
	return item, nil
}

func (s *NewsService) Get(ctx context.Context, id string) (*domain.News, error) {
	return s.news.GetByID(ctx, id)
}

func (s *NewsService) List(ctx context.Context) ([]domain.News, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetNews(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	items, err := s.news.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetNews(ctx, items)
	}
	return items, nil
}

func (s *NewsService) Update(ctx context.Context, id string, input NewsInput) (*domain.News, error) {
	current, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Title != "" {
		current.Title = input.Title
	}
	if input.Body != "" {
		current.Body = input.Body
	}

	updated, err := s.news.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateNews(ctx)
	}
	return updated, nil
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	if err := s.news.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateNews(ctx)
	}
	return nil
}

func (s *NewsService) AddComment(ctx context.Context, newsID, authorID, body string) (*domain.Comment, error) {
	if body == "" {
		return nil, domain.Invalid("body is required")
	}
	if _, err := s.news.GetByID(ctx, newsID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:       uuid.NewString(),
		NewsID:   newsID,
		AuthorID: authorID,
		Body:     body,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *NewsService) ListComments(ctx context.Context, newsID string) ([]domain.Comment, error) {
	return s.comments.ListByNews(ctx, newsID)
}

// DeleteComment removes a comment when the caller is its author or holds
// the moderation capability.
func (s *NewsService) DeleteComment(ctx context.Context, commentID, callerID string, callerRole domain.Role) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != callerID && !auth.Allow(callerRole, auth.ActionModerateComments) {
		return ErrForbidden
	}
	return s.comments.Delete(ctx, commentID)
}

var _ NewsUseCase = (*NewsService)(nil)
