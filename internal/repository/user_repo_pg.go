package repository

import (
	"context"
	"errors"

	"github.com/ecoleplus/drivingschool/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrEmailTaken is returned when registering with an email that already
// has an account.
var ErrEmailTaken = errors.New("email already registered")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id, fullName string) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) (*domain.User, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

const userColumns = `id, email, full_name, password_hash, role, active, created_at, updated_at`

func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.QueryRow(ctx, `INSERT INTO users (id, email, full_name, password_hash, role, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		user.ID, user.Email, user.FullName, user.PasswordHash, user.Role, user.Active).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	return mapUniqueEmail(err)
}

// mapUniqueEmail turns a violation of the users email unique constraint into
// ErrEmailTaken. The database enforces uniqueness, so two concurrent inserts
// for the same email resolve without a pre-check.
func mapUniqueEmail(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (r *PGUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id)
	return scanUser(row)
}

func (r *PGUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email)
	return scanUser(row)
}

func (r *PGUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PGUserRepository) UpdateProfile(ctx context.Context, id, fullName string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `UPDATE users SET full_name=$1, updated_at=now() WHERE id=$2 RETURNING `+userColumns, fullName, id)
	return scanUser(row)
}

func (r *PGUserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `UPDATE users SET role=$1, updated_at=now() WHERE id=$2 RETURNING `+userColumns, role, id)
	return scanUser(row)
}

func (r *PGUserRepository) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	row := r.db.QueryRow(ctx, `UPDATE users SET active=$1, updated_at=now() WHERE id=$2 RETURNING `+userColumns, active, id)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
