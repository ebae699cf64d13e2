package timeslot

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"roomly/internal/apperr"
	"roomly/internal/auth"
	"roomly/internal/cache"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTimeSlotRepo struct{ mock.Mock }

func (m *MockTimeSlotRepo) Create(ctx context.Context, day Weekday, session int, startTime, endTime string, kind Kind) (*TimeSlot, error) {
	args := m.Called(ctx, day, session, startTime, endTime, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepo) GetByID(ctx context.Context, id int) (*TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepo) List(ctx context.Context) ([]TimeSlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepo) ListByDay(ctx context.Context, day Weekday) ([]TimeSlot, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TimeSlot), args.Error(1)
}

func (m *MockTimeSlotRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTimeSlotRepo) HasBookings(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func admin() auth.Identity   { return auth.Identity{UserID: 1, Role: auth.RoleAdmin} }
func teacher() auth.Identity { return auth.Identity{UserID: 7, Role: auth.RoleTeacher} }

func validCreateReq() CreateTimeSlotRequest {
	return CreateTimeSlotRequest{
		Day: "MONDAY", Session: 3, StartTime: "10:30", EndTime: "11:25", Kind: "TEACHING",
	}
}

func TestCreateTimeSlot_Success(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	svc := NewService(repo, nil)

	repo.On("Create", mock.Anything, Monday, 3, "10:30", "11:25", KindTeaching).
		Return(&TimeSlot{ID: 1, Day: Monday, Session: 3, StartTime: "10:30", EndTime: "11:25", Kind: KindTeaching}, nil)

	slot, err := svc.Create(context.Background(), admin(), validCreateReq())

	require.NoError(t, err)
	assert.Equal(t, Monday, slot.Day)
	repo.AssertExpectations(t)
}

func TestCreateTimeSlot_TeacherForbidden(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), teacher(), validCreateReq())

	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateTimeSlot_UnknownDay(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	svc := NewService(repo, nil)

	req := validCreateReq()
	req.Day = "SUNDAY"

	_, err := svc.Create(context.Background(), admin(), req)

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
}

func TestCreateTimeSlot_UnknownKind(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	svc := NewService(repo, nil)

	req := validCreateReq()
	req.Kind = "EXAM"

	_, err := svc.Create(context.Background(), admin(), req)

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
}

func TestCreateTimeSlot_BadClock(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	svc := NewService(repo, nil)

	req := validCreateReq()
	req.StartTime = "25:99"

	_, err := svc.Create(context.Background(), admin(), req)

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
}

func TestCreateTimeSlot_StartNotBeforeEnd(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	svc := NewService(repo, nil)

	req := validCreateReq()
	req.StartTime = "11:25"
	req.EndTime = "11:25"

	_, err := svc.Create(context.Background(), admin(), req)

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateTimeSlot_DuplicateDaySession(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	svc := NewService(repo, nil)

	repo.On("Create", mock.Anything, Monday, 3, "10:30", "11:25", KindTeaching).
		Return(nil, apperr.Conflict("time slot for MONDAY session 3 already exists"))

	_, err := svc.Create(context.Background(), admin(), validCreateReq())

	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestDeleteTimeSlot_Success(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	svc := NewService(repo, nil)

	repo.On("GetByID", mock.Anything, 3).Return(&TimeSlot{ID: 3, Day: Monday}, nil)
	repo.On("HasBookings", mock.Anything, 3).Return(false, nil)
	repo.On("Delete", mock.Anything, 3).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), admin(), 3))
	repo.AssertExpectations(t)
}

func TestDeleteTimeSlot_HasBookings(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	svc := NewService(repo, nil)

	repo.On("GetByID", mock.Anything, 3).Return(&TimeSlot{ID: 3, Day: Monday}, nil)
	repo.On("HasBookings", mock.Anything, 3).Return(true, nil)

	err := svc.Delete(context.Background(), admin(), 3)

	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	repo.AssertNotCalled(t, "Delete")
}

func TestDeleteTimeSlot_TeacherForbidden(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	svc := NewService(repo, nil)

	err := svc.Delete(context.Background(), teacher(), 3)

	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	repo.AssertNotCalled(t, "GetByID")
}

func TestListTimeSlots_CacheMissThenStorage(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	client, redisMock := redismock.NewClientMock()
	c := cache.NewWithClient(client, 5*time.Minute)
	svc := NewService(repo, c)

	slots := []TimeSlot{{ID: 1, Day: Monday, Session: 1, StartTime: "08:30", EndTime: "09:25", Kind: KindTeaching}}
	raw, err := json.Marshal(slots)
	require.NoError(t, err)

	redisMock.ExpectGet("timeslots:all").RedisNil()
	repo.On("List", mock.Anything).Return(slots, nil)
	redisMock.ExpectSet("timeslots:all", raw, 5*time.Minute).SetVal("OK")

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, slots, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
	repo.AssertExpectations(t)
}

func TestListTimeSlots_CacheHitSkipsStorage(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	client, redisMock := redismock.NewClientMock()
	c := cache.NewWithClient(client, 5*time.Minute)
	svc := NewService(repo, c)

	slots := []TimeSlot{{ID: 1, Day: Monday, Session: 1, StartTime: "08:30", EndTime: "09:25", Kind: KindTeaching}}
	raw, err := json.Marshal(slots)
	require.NoError(t, err)

	redisMock.ExpectGet("timeslots:all").SetVal(string(raw))

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, slots, got)
	repo.AssertNotCalled(t, "List")
}

func TestCreateTimeSlot_InvalidatesCache(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	client, redisMock := redismock.NewClientMock()
	c := cache.NewWithClient(client, 5*time.Minute)
	svc := NewService(repo, c)

	repo.On("Create", mock.Anything, Monday, 3, "10:30", "11:25", KindTeaching).
		Return(&TimeSlot{ID: 1, Day: Monday, Session: 3}, nil)
	redisMock.ExpectDel("timeslots:all", "timeslots:day:MONDAY").SetVal(2)

	_, err := svc.Create(context.Background(), admin(), validCreateReq())

	require.NoError(t, err)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

// A broken cache degrades to storage reads instead of failing the request.
func TestListTimeSlots_CacheFailureFallsThrough(t *testing.T) {
	repo := new(MockTimeSlotRepo)
	client, redisMock := redismock.NewClientMock()
	c := cache.NewWithClient(client, 5*time.Minute)
	svc := NewService(repo, c)

	slots := []TimeSlot{{ID: 1, Day: Monday, Session: 1}}
	raw, err := json.Marshal(slots)
	require.NoError(t, err)

	redisMock.ExpectGet("timeslots:all").SetErr(assert.AnError)
	repo.On("List", mock.Anything).Return(slots, nil)
	redisMock.ExpectSet("timeslots:all", raw, 5*time.Minute).SetVal("OK")

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, slots, got)
}
