package booking

import (
	"context"
	"time"
)

type Repository interface {
	// Create inserts the booking. The storage unique constraint on
	// (space, slot, date) is the authority under concurrency: a violation
	// surfaces as the same conflict error the pre-check produces.
	Create(ctx context.Context, userID, spaceID int, timeSlotID *int, date time.Time, reason string, attendees int) (*Booking, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	ExistsForKey(ctx context.Context, spaceID int, timeSlotID *int, date time.Time) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]BookingWithDetails, error)
	ListByUser(ctx context.Context, userID int) ([]Booking, error)
	ListBySpace(ctx context.Context, spaceID int) ([]BookingWithDetails, error)
	ListBySlot(ctx context.Context, timeSlotID int) ([]BookingWithDetails, error)
	Delete(ctx context.Context, id int) error
}
