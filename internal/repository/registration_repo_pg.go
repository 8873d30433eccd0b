package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	List(ctx context.Context) ([]domain.Registration, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Registration, error)
	// CountBySlot counts registrations occupying the exact (date, time)
	// pair, excluding cancelled ones. Date and time are matched verbatim.
	CountBySlot(ctx context.Context, date, timeLabel string) (int, error)
	// ListActiveByDate returns pending and confirmed registrations for a date.
	ListActiveByDate(ctx context.Context, date string) ([]domain.Registration, error)
	UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error)
	CountPendingBefore(ctx context.Context, deadline time.Time) (int, error)
}

type PGRegistrationRepository struct {
	db *pgxpool.Pool
}

func NewRegistrationRepository(db *pgxpool.Pool) RegistrationRepository {
	return &PGRegistrationRepository{db: db}
}

const registrationColumns = `id, email, full_name, phone, address, birth_date, start_date, preferred_time, status, created_at`

func (r *PGRegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	return r.db.QueryRow(ctx, `INSERT INTO registrations (id, email, full_name, phone, address, birth_date, start_date, preferred_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		reg.ID, reg.Email, reg.FullName, reg.Phone, reg.Address, reg.BirthDate, reg.StartDate, reg.PreferredTime, reg.Status).
		Scan(&reg.CreatedAt)
}

func (r *PGRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	row := r.db.QueryRow(ctx, `SELECT `+registrationColumns+` FROM registrations WHERE id=$1`, id)
	return scanRegistration(row)
}

func (r *PGRegistrationRepository) List(ctx context.Context) ([]domain.Registration, error) {
	rows, err := r.db.Query(ctx, `SELECT `+registrationColumns+` FROM registrations ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRegistrations(rows)
}

func (r *PGRegistrationRepository) ListByEmail(ctx context.Context, email string) ([]domain.Registration, error) {
	rows, err := r.db.Query(ctx, `SELECT `+registrationColumns+` FROM registrations WHERE email=$1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRegistrations(rows)
}

func (r *PGRegistrationRepository) CountBySlot(ctx context.Context, date, timeLabel string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM registrations WHERE start_date=$1 AND preferred_time=$2 AND status IN ($3, $4)`,
		date, timeLabel, domain.RegistrationStatusPending, domain.RegistrationStatusConfirmed).Scan(&count)
	return count, err
}

func (r *PGRegistrationRepository) ListActiveByDate(ctx context.Context, date string) ([]domain.Registration, error) {
	rows, err := r.db.Query(ctx, `SELECT `+registrationColumns+` FROM registrations WHERE start_date=$1 AND status IN ($2, $3)`,
		date, domain.RegistrationStatusPending, domain.RegistrationStatusConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRegistrations(rows)
}

func (r *PGRegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.RegistrationStatus) (*domain.Registration, error) {
	row := r.db.QueryRow(ctx, `UPDATE registrations SET status=$1 WHERE id=$2 RETURNING `+registrationColumns, status, id)
	return scanRegistration(row)
}

func (r *PGRegistrationRepository) CountPendingBefore(ctx context.Context, deadline time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM registrations WHERE status=$1 AND created_at <= $2`,
		domain.RegistrationStatusPending, deadline).Scan(&count)
	return count, err
}

func scanRegistration(row pgx.Row) (*domain.Registration, error) {
	var reg domain.Registration
	if err := row.Scan(&reg.ID, &reg.Email, &reg.FullName, &reg.Phone, &reg.Address, &reg.BirthDate, &reg.StartDate, &reg.PreferredTime, &reg.Status, &reg.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func collectRegistrations(rows pgx.Rows) ([]domain.Registration, error) {
	regs := make([]domain.Registration, 0)
	for rows.Next() {
		var reg domain.Registration
		if err := rows.Scan(&reg.ID, &reg.Email, &reg.FullName, &reg.Phone, &reg.Address, &reg.BirthDate, &reg.StartDate, &reg.PreferredTime, &reg.Status, &reg.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

var _ RegistrationRepository = (*PGRegistrationRepository)(nil)
