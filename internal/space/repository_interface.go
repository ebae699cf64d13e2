package space

import "context"

type Repository interface {
	Create(ctx context.Context, name string, capacity int, equipped bool, equipmentCount int) (*Space, error)
	GetByID(ctx context.Context, id int) (*Space, error)
	List(ctx context.Context, filter ListFilter) ([]Space, error)
	Update(ctx context.Context, id int, name string, capacity int, equipped bool, equipmentCount int) (*Space, error)
	// Delete removes the space and, through the schema's cascade, every
	// booking that references it. Irreversible.
	Delete(ctx context.Context, id int) error
}
