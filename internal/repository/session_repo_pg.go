package repository

import (
	"context"
	"errors"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	Update(ctx context.Context, session *domain.Session) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type PGSessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) SessionRepository {
	return &PGSessionRepository{db: db}
}

const sessionColumns = `id, title, instructor_id, session_date, session_time, capacity, created_at, updated_at`

func (r *PGSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return r.db.QueryRow(ctx, `INSERT INTO sessions (id, title, instructor_id, session_date, session_time, capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		session.ID, session.Title, session.InstructorID, session.Date, session.Time, session.Capacity).
		Scan(&session.CreatedAt, &session.UpdatedAt)
}

func (r *PGSessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	row := r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id=$1`, id)
	return scanSession(row)
}

func (r *PGSessionRepository) List(ctx context.Context) ([]domain.Session, error) {
	rows, err := r.db.Query(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY session_date, session_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]domain.Session, 0)
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.Title, &s.InstructorID, &s.Date, &s.Time, &s.Capacity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *PGSessionRepository) Update(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	row := r.db.QueryRow(ctx, `UPDATE sessions SET title=$1, session_date=$2, session_time=$3, capacity=$4, updated_at=now() WHERE id=$5 RETURNING `+sessionColumns,
		session.Title, session.Date, session.Time, session.Capacity, session.ID)
	return scanSession(row)
}

func (r *PGSessionRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.Title, &s.InstructorID, &s.Date, &s.Time, &s.Capacity, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

var _ SessionRepository = (*PGSessionRepository)(nil)
