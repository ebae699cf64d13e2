package booking

import (
	"context"
	"time"

	"roomly/internal/apperr"
	"roomly/internal/auth"
	"roomly/internal/metrics"
	"roomly/internal/space"
	"roomly/internal/timeslot"
	"roomly/internal/user"
)

type Service interface {
	Create(ctx context.Context, actor auth.Identity, req CreateBookingRequest) (*Booking, error)
	Delete(ctx context.Context, actor auth.Identity, id int) error
	GetByID(ctx context.Context, id int) (*Booking, error)
	List(ctx context.Context, actor auth.Identity, filter ListFilter) ([]BookingWithDetails, error)
	ListForUser(ctx context.Context, actor auth.Identity, userID int) ([]Booking, error)
	ListBySpace(ctx context.Context, actor auth.Identity, spaceID int) ([]BookingWithDetails, error)
	ListBySlot(ctx context.Context, actor auth.Identity, timeSlotID int) ([]BookingWithDetails, error)
}

type service struct {
	repo      Repository
	spaceRepo space.Repository
	slotRepo  timeslot.Repository
	userRepo  user.Repository
	now       func() time.Time
}

func NewService(repo Repository, spaceRepo space.Repository, slotRepo timeslot.Repository, userRepo user.Repository) Service {
	return NewServiceWithClock(repo, spaceRepo, slotRepo, userRepo, time.Now)
}

// NewServiceWithClock injects the "today" source; tests pin it.
func NewServiceWithClock(repo Repository, spaceRepo space.Repository, slotRepo timeslot.Repository, userRepo user.Repository, now func() time.Time) Service {
	return &service{
		repo:      repo,
		spaceRepo: spaceRepo,
		slotRepo:  slotRepo,
		userRepo:  userRepo,
		now:       now,
	}
}

// Create runs the ordered validation chain. The first failing check wins;
// nothing is persisted unless every check passes.
func (s *service) Create(ctx context.Context, actor auth.Identity, req CreateBookingRequest) (*Booking, error) {
	sp, err := s.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		return nil, err
	}

	if req.TimeSlotID != nil {
		if _, err := s.slotRepo.GetByID(ctx, *req.TimeSlotID); err != nil {
			return nil, err
		}
	}

	// The token already proved identity; a missing record means the
	// directory and the token store disagree.
	if _, err := s.userRepo.FindByID(ctx, actor.UserID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperr.InvalidInput("invalid date, expected YYYY-MM-DD")
	}

	if date.Before(today(s.now())) {
		return nil, apperr.InvalidInput("cannot book a past date")
	}

	taken, err := s.repo.ExistsForKey(ctx, req.SpaceID, req.TimeSlotID, date)
	if err != nil {
		return nil, err
	}
	if taken {
		metrics.RecordBookingConflict()
		return nil, apperr.Conflict("slot already booked for that space and date")
	}

	if req.Attendees > sp.Capacity {
		return nil, apperr.Newf(apperr.KindInvalidInput,
			"attendee count %d exceeds space capacity %d", req.Attendees, sp.Capacity)
	}

	b, err := s.repo.Create(ctx, actor.UserID, req.SpaceID, req.TimeSlotID, date, req.Reason, req.Attendees)
	if err != nil {
		// A concurrent winner between pre-check and insert trips the
		// storage constraint; same conflict either way.
		if apperr.IsKind(err, apperr.KindConflict) {
			metrics.RecordBookingConflict()
		}
		return nil, err
	}

	metrics.RecordBookingCreated()
	return b, nil
}

// Delete is gated purely by authorization; once allowed the removal is
// unconditional.
func (s *service) Delete(ctx context.Context, actor auth.Identity, id int) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !auth.CanDeleteBooking(actor.Role, actor.UserID, b.UserID) {
		return apperr.Forbidden("insufficient privilege")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.RecordBookingDeleted()
	return nil
}

// GetByID is an open read for any authenticated actor.
func (s *service) GetByID(ctx context.Context, id int) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, actor auth.Identity, filter ListFilter) ([]BookingWithDetails, error) {
	if !auth.CanListAllBookings(actor.Role) {
		return nil, apperr.Forbidden("insufficient privilege")
	}
	return s.repo.List(ctx, filter)
}

func (s *service) ListForUser(ctx context.Context, actor auth.Identity, userID int) ([]Booking, error) {
	if !auth.CanListBookingsForUser(actor.Role, actor.UserID, userID) {
		return nil, apperr.Forbidden("insufficient privilege")
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListBySpace(ctx context.Context, actor auth.Identity, spaceID int) ([]BookingWithDetails, error) {
	if !auth.CanListAllBookings(actor.Role) {
		return nil, apperr.Forbidden("insufficient privilege")
	}
	return s.repo.ListBySpace(ctx, spaceID)
}

func (s *service) ListBySlot(ctx context.Context, actor auth.Identity, timeSlotID int) ([]BookingWithDetails, error) {
	if !auth.CanListAllBookings(actor.Role) {
		return nil, apperr.Forbidden("insufficient privilege")
	}
	return s.repo.ListBySlot(ctx, timeSlotID)
}

// today truncates the clock to date granularity in local time.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
