package user

import (
	"context"
	"database/sql"
	"errors"

	"roomly/internal/apperr"
	"roomly/internal/auth"
	"roomly/internal/db"

	"github.com/jmoiron/sqlx"
)

const userColumns = "id, name, email, password_hash, role, enabled, created_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash string, role auth.Role) (*User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, role, enabled)
		VALUES ($1, $2, $3, $4, true)
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, name, email, passwordHash, role)
	if err != nil {
		if db.IsUniqueViolation(err, "users_email_key") {
			return nil, apperr.Conflict("email already in use")
		}
		if db.IsUniqueViolation(err, "users_name_key") {
			return nil, apperr.Conflict("name already in use")
		}
		return nil, apperr.Transient("user storage unavailable", err)
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindNotFound, "user %d not found", id)
		}
		return nil, apperr.Transient("user storage unavailable", err)
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var u User
	err := r.db.GetContext(ctx, &u, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Transient("user storage unavailable", err)
	}

	return &u, nil
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY name`

	var users []User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, apperr.Transient("user storage unavailable", err)
	}

	return users, nil
}

func (r *repository) ListByRole(ctx context.Context, role auth.Role) ([]User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY name`

	var users []User
	if err := r.db.SelectContext(ctx, &users, query, role); err != nil {
		return nil, apperr.Transient("user storage unavailable", err)
	}

	return users, nil
}

func (r *repository) Update(ctx context.Context, id int, name, email string, role auth.Role) (*User, error) {
	query := `
		UPDATE users
		SET name = $2, email = $3, role = $4
		WHERE id = $1
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, id, name, email, role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindNotFound, "user %d not found", id)
		}
		if db.IsUniqueViolation(err, "users_email_key") {
			return nil, apperr.Conflict("email already in use")
		}
		if db.IsUniqueViolation(err, "users_name_key") {
			return nil, apperr.Conflict("name already in use")
		}
		return nil, apperr.Transient("user storage unavailable", err)
	}

	return &u, nil
}

func (r *repository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := `UPDATE users SET password_hash = $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, passwordHash)
	if err != nil {
		return apperr.Transient("user storage unavailable", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Transient("user storage unavailable", err)
	}

	if rowsAffected == 0 {
		return apperr.Newf(apperr.KindNotFound, "user %d not found", id)
	}

	return nil
}

func (r *repository) SetEnabled(ctx context.Context, id int, enabled bool) (*User, error) {
	query := `
		UPDATE users
		SET enabled = $2
		WHERE id = $1
		RETURNING ` + userColumns

	var u User
	err := r.db.GetContext(ctx, &u, query, id, enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindNotFound, "user %d not found", id)
		}
		return nil, apperr.Transient("user storage unavailable", err)
	}

	return &u, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperr.Transient("user storage unavailable", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Transient("user storage unavailable", err)
	}

	if rowsAffected == 0 {
		return apperr.Newf(apperr.KindNotFound, "user %d not found", id)
	}

	return nil
}
