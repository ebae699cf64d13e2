package space

import (
	"context"

	"roomly/internal/apperr"
	"roomly/internal/auth"
)

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]Space, error)
	GetByID(ctx context.Context, id int) (*Space, error)
	Create(ctx context.Context, actor auth.Identity, req CreateSpaceRequest) (*Space, error)
	Update(ctx context.Context, actor auth.Identity, id int, req UpdateSpaceRequest) (*Space, error)
	// Delete removes the space and cascades deletion of all its bookings.
	Delete(ctx context.Context, actor auth.Identity, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]Space, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetByID(ctx context.Context, id int) (*Space, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, actor auth.Identity, req CreateSpaceRequest) (*Space, error) {
	if !auth.CanManageCatalog(actor.Role) {
		return nil, apperr.Forbidden("insufficient privilege")
	}

	if err := validateEquipment(req.Equipped, req.EquipmentCount); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.Name, req.Capacity, req.Equipped, req.EquipmentCount)
}

func (s *service) Update(ctx context.Context, actor auth.Identity, id int, req UpdateSpaceRequest) (*Space, error) {
	if !auth.CanManageCatalog(actor.Role) {
		return nil, apperr.Forbidden("insufficient privilege")
	}

	if err := validateEquipment(req.Equipped, req.EquipmentCount); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, req.Name, req.Capacity, req.Equipped, req.EquipmentCount)
}

func (s *service) Delete(ctx context.Context, actor auth.Identity, id int) error {
	if !auth.CanManageCatalog(actor.Role) {
		return apperr.Forbidden("insufficient privilege")
	}

	return s.repo.Delete(ctx, id)
}

// validateEquipment enforces: equipment count > 0 iff the space is equipped.
func validateEquipment(equipped bool, count int) error {
	if equipped && count <= 0 {
		return apperr.InvalidInput("equipped space must declare its equipment count")
	}
	if !equipped && count != 0 {
		return apperr.InvalidInput("equipment count requires the equipped flag")
	}
	return nil
}
