package space

import (
	"context"
	"database/sql"
	"errors"

	"roomly/internal/apperr"
	"roomly/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, name string, capacity int, equipped bool, equipmentCount int) (*Space, error) {
	query := `
		INSERT INTO spaces (name, capacity, equipped, equipment_count)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, capacity, equipped, equipment_count, created_at
	`

	var space Space
	err := r.db.GetContext(ctx, &space, query, name, capacity, equipped, equipmentCount)
	if err != nil {
		if db.IsUniqueViolation(err, "spaces_name_key") {
			return nil, apperr.Newf(apperr.KindConflict, "space name %q already exists", name)
		}
		return nil, apperr.Transient("space storage unavailable", err)
	}

	return &space, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Space, error) {
	query := `
		SELECT id, name, capacity, equipped, equipment_count, created_at
		FROM spaces
		WHERE id = $1
	`

	var space Space
	err := r.db.GetContext(ctx, &space, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindNotFound, "space %d not found", id)
		}
		return nil, apperr.Transient("space storage unavailable", err)
	}

	return &space, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Space, error) {
	query := `
		SELECT id, name, capacity, equipped, equipment_count, created_at
		FROM spaces
		WHERE capacity >= $1 AND ($2 = false OR equipped = true)
		ORDER BY name
	`

	var spaces []Space
	err := r.db.SelectContext(ctx, &spaces, query, filter.MinCapacity, filter.EquippedOnly)
	if err != nil {
		return nil, apperr.Transient("space storage unavailable", err)
	}

	return spaces, nil
}

func (r *repository) Update(ctx context.Context, id int, name string, capacity int, equipped bool, equipmentCount int) (*Space, error) {
	query := `
		UPDATE spaces
		SET name = $2, capacity = $3, equipped = $4, equipment_count = $5
		WHERE id = $1
		RETURNING id, name, capacity, equipped, equipment_count, created_at
	`

	var space Space
	err := r.db.GetContext(ctx, &space, query, id, name, capacity, equipped, equipmentCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindNotFound, "space %d not found", id)
		}
		if db.IsUniqueViolation(err, "spaces_name_key") {
			return nil, apperr.Newf(apperr.KindConflict, "space name %q already exists", name)
		}
		return nil, apperr.Transient("space storage unavailable", err)
	}

	return &space, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM spaces WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperr.Transient("space storage unavailable", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Transient("space storage unavailable", err)
	}

	if rowsAffected == 0 {
		return apperr.Newf(apperr.KindNotFound, "space %d not found", id)
	}

	return nil
}
