package timeslot

import (
	"context"

	"roomly/internal/apperr"
	"roomly/internal/auth"
	"roomly/internal/cache"
	"roomly/internal/logger"
	"roomly/internal/metrics"
)

const (
	cacheKeyAll       = "timeslots:all"
	cacheKeyDayPrefix = "timeslots:day:"
)

type Service interface {
	List(ctx context.Context) ([]TimeSlot, error)
	ListByDay(ctx context.Context, day Weekday) ([]TimeSlot, error)
	GetByID(ctx context.Context, id int) (*TimeSlot, error)
	Create(ctx context.Context, actor auth.Identity, req CreateTimeSlotRequest) (*TimeSlot, error)
	Delete(ctx context.Context, actor auth.Identity, id int) error
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

// NewService wires the catalog. cache may be nil, in which case every read
// goes straight to storage.
func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) List(ctx context.Context) ([]TimeSlot, error) {
	var cached []TimeSlot
	hit, err := s.cache.Get(ctx, cacheKeyAll, &cached)
	if err != nil {
		logger.Warn("slot cache read failed", "error", err.Error())
	}
	metrics.RecordSlotCache(hit)
	if hit {
		return cached, nil
	}

	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKeyAll, slots); err != nil {
		logger.Warn("slot cache write failed", "error", err.Error())
	}

	return slots, nil
}

func (s *service) ListByDay(ctx context.Context, day Weekday) ([]TimeSlot, error) {
	key := cacheKeyDayPrefix + string(day)

	var cached []TimeSlot
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("slot cache read failed", "error", err.Error())
	}
	metrics.RecordSlotCache(hit)
	if hit {
		return cached, nil
	}

	slots, err := s.repo.ListByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, slots); err != nil {
		logger.Warn("slot cache write failed", "error", err.Error())
	}

	return slots, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*TimeSlot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, actor auth.Identity, req CreateTimeSlotRequest) (*TimeSlot, error) {
	if !auth.CanManageCatalog(actor.Role) {
		return nil, apperr.Forbidden("insufficient privilege")
	}

	day, err := ParseWeekday(req.Day)
	if err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}

	kind, err := ParseKind(req.Kind)
	if err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}

	start, err := parseClock(req.StartTime)
	if err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}

	end, err := parseClock(req.EndTime)
	if err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}

	if start >= end {
		return nil, apperr.InvalidInput("start time must be before end time")
	}

	slot, err := s.repo.Create(ctx, day, req.Session, start, end, kind)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, day)

	return slot, nil
}

func (s *service) Delete(ctx context.Context, actor auth.Identity, id int) error {
	if !auth.CanManageCatalog(actor.Role) {
		return apperr.Forbidden("insufficient privilege")
	}

	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	booked, err := s.repo.HasBookings(ctx, id)
	if err != nil {
		return err
	}
	if booked {
		return apperr.Conflict("time slot has bookings and cannot be deleted")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, slot.Day)

	return nil
}

func (s *service) invalidate(ctx context.Context, day Weekday) {
	if err := s.cache.Delete(ctx, cacheKeyAll, cacheKeyDayPrefix+string(day)); err != nil {
		logger.Warn("slot cache invalidation failed", "error", err.Error())
	}
}
