package booking

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bookingdate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("2006-01-02", fl.Field().String())
			return err == nil
		})
	}
}

// Booking reserves one space for one concrete date, usually within one
// catalog slot. TimeSlotID is nil for slot-less bookings (whole-day holds);
// those conflict only with other slot-less bookings of the same space+date.
type Booking struct {
	ID         int       `db:"id" json:"id"`
	SpaceID    int       `db:"space_id" json:"space_id"`
	TimeSlotID *int      `db:"time_slot_id" json:"time_slot_id,omitempty"`
	UserID     int       `db:"user_id" json:"user_id"`
	Date       time.Time `db:"booking_date" json:"date"`
	Reason     string    `db:"reason" json:"reason"`
	Attendees  int       `db:"attendees" json:"attendees"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type BookingWithDetails struct {
	Booking
	SpaceName   string  `db:"space_name" json:"space_name"`
	SlotDay     *string `db:"slot_day" json:"slot_day,omitempty"`
	SlotSession *int    `db:"slot_session" json:"slot_session,omitempty"`
	UserName    string  `db:"user_name" json:"user_name"`
	UserEmail   string  `db:"user_email" json:"user_email"`
}

type CreateBookingRequest struct {
	SpaceID    int    `json:"space_id" binding:"required"`
	TimeSlotID *int   `json:"time_slot_id"`
	Date       string `json:"date" binding:"required,bookingdate"`
	Reason     string `json:"reason" binding:"required,max=500"`
	Attendees  int    `json:"attendees" binding:"required,min=1"`
}

// ListFilter narrows the admin booking list. Zero values mean no filtering.
type ListFilter struct {
	Date    *time.Time
	SpaceID int
}
