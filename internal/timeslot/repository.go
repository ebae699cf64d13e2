package timeslot

import (
	"context"
	"database/sql"
	"errors"

	"roomly/internal/apperr"
	"roomly/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, day Weekday, session int, startTime, endTime string, kind Kind) (*TimeSlot, error) {
	query := `
		INSERT INTO time_slots (day, session, start_time, end_time, kind)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, day, session, start_time, end_time, kind, created_at
	`

	var slot TimeSlot
	err := r.db.GetContext(ctx, &slot, query, day, session, startTime, endTime, kind)
	if err != nil {
		if db.IsUniqueViolation(err, "time_slots_day_session_key") {
			return nil, apperr.Newf(apperr.KindConflict, "time slot for %s session %d already exists", day, session)
		}
		return nil, apperr.Transient("time slot storage unavailable", err)
	}

	return &slot, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*TimeSlot, error) {
	query := `
		SELECT id, day, session, start_time, end_time, kind, created_at
		FROM time_slots
		WHERE id = $1
	`

	var slot TimeSlot
	err := r.db.GetContext(ctx, &slot, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindNotFound, "time slot %d not found", id)
		}
		return nil, apperr.Transient("time slot storage unavailable", err)
	}

	return &slot, nil
}

func (r *repository) List(ctx context.Context) ([]TimeSlot, error) {
	query := `
		SELECT id, day, session, start_time, end_time, kind, created_at
		FROM time_slots
		ORDER BY day, session
	`

	var slots []TimeSlot
	if err := r.db.SelectContext(ctx, &slots, query); err != nil {
		return nil, apperr.Transient("time slot storage unavailable", err)
	}

	return slots, nil
}

func (r *repository) ListByDay(ctx context.Context, day Weekday) ([]TimeSlot, error) {
	query := `
		SELECT id, day, session, start_time, end_time, kind, created_at
		FROM time_slots
		WHERE day = $1
		ORDER BY session
	`

	var slots []TimeSlot
	if err := r.db.SelectContext(ctx, &slots, query, day); err != nil {
		return nil, apperr.Transient("time slot storage unavailable", err)
	}

	return slots, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM time_slots WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		// The bookings FK is ON DELETE RESTRICT; the constraint is the
		// authority even if a booking lands between pre-check and delete.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return apperr.Conflict("time slot has bookings and cannot be deleted")
		}
		return apperr.Transient("time slot storage unavailable", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Transient("time slot storage unavailable", err)
	}

	if rowsAffected == 0 {
		return apperr.Newf(apperr.KindNotFound, "time slot %d not found", id)
	}

	return nil
}

func (r *repository) HasBookings(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE time_slot_id = $1)`

	exists, err := db.Exists(ctx, r.db, query, id)
	if err != nil {
		return false, apperr.Transient("time slot storage unavailable", err)
	}

	return exists, nil
}
