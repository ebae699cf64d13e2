package space

import (
	"context"
	"testing"

	"roomly/internal/apperr"
	"roomly/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSpaceRepo struct{ mock.Mock }

func (m *MockSpaceRepo) Create(ctx context.Context, name string, capacity int, equipped bool, equipmentCount int) (*Space, error) {
	args := m.Called(ctx, name, capacity, equipped, equipmentCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Space), args.Error(1)
}

func (m *MockSpaceRepo) GetByID(ctx context.Context, id int) (*Space, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Space), args.Error(1)
}

func (m *MockSpaceRepo) List(ctx context.Context, filter ListFilter) ([]Space, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Space), args.Error(1)
}

func (m *MockSpaceRepo) Update(ctx context.Context, id int, name string, capacity int, equipped bool, equipmentCount int) (*Space, error) {
	args := m.Called(ctx, id, name, capacity, equipped, equipmentCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Space), args.Error(1)
}

func (m *MockSpaceRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func admin() auth.Identity   { return auth.Identity{UserID: 1, Role: auth.RoleAdmin} }
func teacher() auth.Identity { return auth.Identity{UserID: 7, Role: auth.RoleTeacher} }

func TestCreateSpace_Success(t *testing.T) {
	repo := new(MockSpaceRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, "Lab 2", 24, true, 12).
		Return(&Space{ID: 1, Name: "Lab 2", Capacity: 24, Equipped: true, EquipmentCount: 12}, nil)

	sp, err := svc.Create(context.Background(), admin(), CreateSpaceRequest{
		Name: "Lab 2", Capacity: 24, Equipped: true, EquipmentCount: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, "Lab 2", sp.Name)
	repo.AssertExpectations(t)
}

func TestCreateSpace_TeacherForbidden(t *testing.T) {
	repo := new(MockSpaceRepo)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), teacher(), CreateSpaceRequest{
		Name: "Lab 2", Capacity: 24,
	})

	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateSpace_EquippedWithoutCount(t *testing.T) {
	repo := new(MockSpaceRepo)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), admin(), CreateSpaceRequest{
		Name: "Lab 2", Capacity: 24, Equipped: true, EquipmentCount: 0,
	})

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateSpace_CountWithoutEquipped(t *testing.T) {
	repo := new(MockSpaceRepo)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), admin(), CreateSpaceRequest{
		Name: "Room 101", Capacity: 30, Equipped: false, EquipmentCount: 5,
	})

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
	repo.AssertNotCalled(t, "Create")
}

func TestCreateSpace_DuplicateName(t *testing.T) {
	repo := new(MockSpaceRepo)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, "Room 101", 30, false, 0).
		Return(nil, apperr.Conflict(`space name "Room 101" already exists`))

	_, err := svc.Create(context.Background(), admin(), CreateSpaceRequest{
		Name: "Room 101", Capacity: 30,
	})

	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUpdateSpace_EquipmentInvariant(t *testing.T) {
	repo := new(MockSpaceRepo)
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), admin(), 1, UpdateSpaceRequest{
		Name: "Lab 2", Capacity: 24, Equipped: true, EquipmentCount: 0,
	})

	assert.True(t, apperr.IsKind(err, apperr.KindInvalidInput))
	repo.AssertNotCalled(t, "Update")
}

func TestDeleteSpace_AdminOnly(t *testing.T) {
	repo := new(MockSpaceRepo)
	svc := NewService(repo)

	err := svc.Delete(context.Background(), teacher(), 1)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	repo.On("Delete", mock.Anything, 1).Return(nil)
	assert.NoError(t, svc.Delete(context.Background(), admin(), 1))
}

func TestListSpaces_OpenRead(t *testing.T) {
	repo := new(MockSpaceRepo)
	svc := NewService(repo)

	repo.On("List", mock.Anything, ListFilter{MinCapacity: 20, EquippedOnly: true}).
		Return([]Space{{ID: 1, Name: "Lab 2", Capacity: 24, Equipped: true, EquipmentCount: 12}}, nil)

	spaces, err := svc.List(context.Background(), ListFilter{MinCapacity: 20, EquippedOnly: true})

	require.NoError(t, err)
	require.Len(t, spaces, 1)
	assert.True(t, spaces[0].Equipped)
}
