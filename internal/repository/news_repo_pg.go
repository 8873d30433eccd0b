package repository

import (
	"context"
	"errors"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NewsRepository interface {
	Create(ctx context.Context, news *domain.News) error
	GetByID(ctx context.Context, id string) (*domain.News, error)
	List(ctx context.Context) ([]domain.News, error)
	Update(ctx context.Context, news *domain.News) (*domain.News, error)
	Delete(ctx context.Context, id string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByNews(ctx context.Context, newsID string) ([]domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

type PGNewsRepository struct {
	db *pgxpool.Pool
}

func NewNewsRepository(db *pgxpool.Pool) NewsRepository {
	return &PGNewsRepository{db: db}
}

const newsColumns = `id, title, body, author_id, published_at, created_at, updated_at`

func (r *PGNewsRepository) Create(ctx context.Context, news *domain.News) error {
	return r.db.QueryRow(ctx, `INSERT INTO news (id, title, body, author_id, published_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING published_at, created_at, updated_at`,
		news.ID, news.Title, news.Body, news.AuthorID).
		Scan(&news.PublishedAt, &news.CreatedAt, &news.UpdatedAt)
}

func (r *PGNewsRepository) GetByID(ctx context.Context, id string) (*domain.News, error) {
	row := r.db.QueryRow(ctx, `SELECT `+newsColumns+` FROM news WHERE id=$1`, id)
	return scanNews(row)
}

func (r *PGNewsRepository) List(ctx context.Context) ([]domain.News, error) {
	rows, err := r.db.Query(ctx, `SELECT `+newsColumns+` FROM news ORDER BY published_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.News, 0)
	for rows.Next() {
		var n domain.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &n.AuthorID, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *PGNewsRepository) Update(ctx context.Context, news *domain.News) (*domain.News, error) {
	row := r.db.QueryRow(ctx, `UPDATE news SET title=$1, body=$2, updated_at=now() WHERE id=$3 RETURNING `+newsColumns,
		news.Title, news.Body, news.ID)
	return scanNews(row)
}

func (r *PGNewsRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM news WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanNews(row pgx.Row) (*domain.News, error) {
	var n domain.News
	if err := row.Scan(&n.ID, &n.Title, &n.Body, &n.AuthorID, &n.PublishedAt, &n.CreatedAt, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

type PGCommentRepository struct {
	db *pgxpool.Pool
}

func NewCommentRepository(db *pgxpool.Pool) CommentRepository {
	return &PGCommentRepository{db: db}
}

func (r *PGCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.QueryRow(ctx, `INSERT INTO comments (id, news_id, author_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		comment.ID, comment.NewsID, comment.AuthorID, comment.Body).
		Scan(&comment.CreatedAt)
}

func (r *PGCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	row := r.db.QueryRow(ctx, `SELECT id, news_id, author_id, body, created_at FROM comments WHERE id=$1`, id)
	var c domain.Comment
	if err := row.Scan(&c.ID, &c.NewsID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCommentRepository) ListByNews(ctx context.Context, newsID string) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, `SELECT id, news_id, author_id, body, created_at FROM comments WHERE news_id=$1 ORDER BY created_at`, newsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.NewsID, &c.AuthorID, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *PGCommentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var (
	_ NewsRepository    = (*PGNewsRepository)(nil)
	_ CommentRepository = (*PGCommentRepository)(nil)
)
