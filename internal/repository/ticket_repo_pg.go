package repository

import (
	"context"
	"errors"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

const ticketColumns = `id, user_id, subject, message, status, created_at, updated_at`

func (r *PGTicketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	return r.db.QueryRow(ctx, `INSERT INTO tickets (id, user_id, subject, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		ticket.ID, ticket.UserID, ticket.Subject, ticket.Message, ticket.Status).
		Scan(&ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id)
	return scanTicket(row)
}

func (r *PGTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (r *PGTicketRepository) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (r *PGTicketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `UPDATE tickets SET status=$1, updated_at=now() WHERE id=$2 RETURNING `+ticketColumns, status, id)
	return scanTicket(row)
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.UserID, &t.Subject, &t.Message, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func collectTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.UserID, &t.Subject, &t.Message, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

var _ TicketRepository = (*PGTicketRepository)(nil)
