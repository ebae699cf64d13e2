package user

import (
	"context"

	"roomly/internal/auth"
)

type Repository interface {
	Create(ctx context.Context, name, email, passwordHash string, role auth.Role) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListByRole(ctx context.Context, role auth.Role) ([]User, error)
	Update(ctx context.Context, id int, name, email string, role auth.Role) (*User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	SetEnabled(ctx context.Context, id int, enabled bool) (*User, error)
	Delete(ctx context.Context, id int) error
}
