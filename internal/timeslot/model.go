package timeslot

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("15:04", fl.Field().String())
			return err == nil
		})
	}
}

// Weekday is the closed set of bookable days. The catalog has no weekend.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
)

func ParseWeekday(s string) (Weekday, error) {
	switch Weekday(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return Weekday(s), nil
	default:
		return "", fmt.Errorf("unknown weekday %q", s)
	}
}

// Kind classifies what the slot is normally used for.
type Kind string

const (
	KindTeaching Kind = "TEACHING"
	KindBreak    Kind = "BREAK"
	KindLunch    Kind = "LUNCH"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindTeaching, KindBreak, KindLunch:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown slot kind %q", s)
	}
}

// TimeSlot is a reusable weekly window: "Monday, session 3, 10:30-11:25".
// Start and end times are stored as zero-padded HH:MM strings.
type TimeSlot struct {
	ID        int       `db:"id" json:"id"`
	Day       Weekday   `db:"day" json:"day"`
	Session   int       `db:"session" json:"session"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	Kind      Kind      `db:"kind" json:"kind"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateTimeSlotRequest struct {
	Day       string `json:"day" binding:"required"`
	Session   int    `json:"session" binding:"required,min=1"`
	StartTime string `json:"start_time" binding:"required,clock"`
	EndTime   string `json:"end_time" binding:"required,clock"`
	Kind      string `json:"kind" binding:"required"`
}

// parseClock validates an HH:MM value and returns it normalized.
func parseClock(s string) (string, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t.Format("15:04"), nil
}
