package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"roomly/internal/apperr"
	"roomly/internal/db"

	"github.com/jmoiron/sqlx"
)

const bookingColumns = "id, space_id, time_slot_id, user_id, booking_date, reason, attendees, created_at"

const detailColumns = `
	b.id,
	b.space_id,
	b.time_slot_id,
	b.user_id,
	b.booking_date,
	b.reason,
	b.attendees,
	b.created_at,
	s.name AS space_name,
	ts.day AS slot_day,
	ts.session AS slot_session,
	u.name AS user_name,
	u.email AS user_email
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, userID, spaceID int, timeSlotID *int, date time.Time, reason string, attendees int) (*Booking, error) {
	query := `
		INSERT INTO bookings (user_id, space_id, time_slot_id, booking_date, reason, attendees)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + bookingColumns

	var b Booking
	err := r.db.GetContext(ctx, &b, query, userID, spaceID, timeSlotID, date, reason, attendees)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, apperr.Conflict("slot already booked for that space and date")
		}
		return nil, apperr.Transient("booking storage unavailable", err)
	}

	return &b, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Newf(apperr.KindNotFound, "booking %d not found", id)
		}
		return nil, apperr.Transient("booking storage unavailable", err)
	}

	return &b, nil
}

func (r *repository) ExistsForKey(ctx context.Context, spaceID int, timeSlotID *int, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE space_id = $1 AND booking_date = $2
			  AND time_slot_id IS NOT DISTINCT FROM $3
		)
	`

	exists, err := db.Exists(ctx, r.db, query, spaceID, date, timeSlotID)
	if err != nil {
		return false, apperr.Transient("booking storage unavailable", err)
	}

	return exists, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]BookingWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM bookings b
		JOIN spaces s ON b.space_id = s.id
		LEFT JOIN time_slots ts ON b.time_slot_id = ts.id
		JOIN users u ON b.user_id = u.id
		WHERE ($1::date IS NULL OR b.booking_date = $1)
		  AND ($2 = 0 OR b.space_id = $2)
		ORDER BY b.booking_date DESC, b.created_at DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, filter.Date, filter.SpaceID)
	if err != nil {
		return nil, apperr.Transient("booking storage unavailable", err)
	}

	return bookings, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY booking_date DESC, created_at DESC
	`

	var bookings []Booking
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		return nil, apperr.Transient("booking storage unavailable", err)
	}

	return bookings, nil
}

func (r *repository) ListBySpace(ctx context.Context, spaceID int) ([]BookingWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM bookings b
		JOIN spaces s ON b.space_id = s.id
		LEFT JOIN time_slots ts ON b.time_slot_id = ts.id
		JOIN users u ON b.user_id = u.id
		WHERE b.space_id = $1
		ORDER BY b.booking_date DESC, b.created_at DESC
	`

	var bookings []BookingWithDetails
	if err := r.db.SelectContext(ctx, &bookings, query, spaceID); err != nil {
		return nil, apperr.Transient("booking storage unavailable", err)
	}

	return bookings, nil
}

func (r *repository) ListBySlot(ctx context.Context, timeSlotID int) ([]BookingWithDetails, error) {
	query := `
		SELECT ` + detailColumns + `
		FROM bookings b
		JOIN spaces s ON b.space_id = s.id
		LEFT JOIN time_slots ts ON b.time_slot_id = ts.id
		JOIN users u ON b.user_id = u.id
		WHERE b.time_slot_id = $1
		ORDER BY b.booking_date DESC, b.created_at DESC
	`

	var bookings []BookingWithDetails
	if err := r.db.SelectContext(ctx, &bookings, query, timeSlotID); err != nil {
		return nil, apperr.Transient("booking storage unavailable", err)
	}

	return bookings, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperr.Transient("booking storage unavailable", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperr.Transient("booking storage unavailable", err)
	}

	if rowsAffected == 0 {
		return apperr.Newf(apperr.KindNotFound, "booking %d not found", id)
	}

	return nil
}
