package timeslot

import "context"

type Repository interface {
	Create(ctx context.Context, day Weekday, session int, startTime, endTime string, kind Kind) (*TimeSlot, error)
	GetByID(ctx context.Context, id int) (*TimeSlot, error)
	List(ctx context.Context) ([]TimeSlot, error)
	ListByDay(ctx context.Context, day Weekday) ([]TimeSlot, error)
	// Delete fails with a conflict while any booking references the slot.
	Delete(ctx context.Context, id int) error
	HasBookings(ctx context.Context, id int) (bool, error)
}
