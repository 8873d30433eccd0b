package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewUserRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewUserRepository(pool)
	assert.NotNil(t, repo)
}

func TestMapUniqueEmail(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	assert.ErrorIs(t, mapUniqueEmail(unique), ErrEmailTaken)

	wrapped := errors.Join(errors.New("insert users"), unique)
	assert.ErrorIs(t, mapUniqueEmail(wrapped), ErrEmailTaken)

	other := &pgconn.PgError{Code: "23503"}
	assert.Equal(t, error(other), mapUniqueEmail(other))

	assert.NoError(t, mapUniqueEmail(nil))
}
