package user

import (
	"context"
	"errors"

	"roomly/internal/apperr"
	"roomly/internal/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*User, string, string, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *User, error)
	GetByID(ctx context.Context, actor auth.Identity, id int) (*User, error)
	List(ctx context.Context, actor auth.Identity) ([]User, error)
	ListByRole(ctx context.Context, actor auth.Identity, role auth.Role) ([]User, error)
	Update(ctx context.Context, actor auth.Identity, id int, req UpdateUserRequest) (*User, error)
	ChangePassword(ctx context.Context, actor auth.Identity, req ChangePasswordRequest) error
	SetEnabled(ctx context.Context, actor auth.Identity, id int, enabled bool) (*User, error)
	Delete(ctx context.Context, actor auth.Identity, id int) error
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	// New accounts always start as standard actors; promotion is an
	// admin-only update.
	u, err := s.repo.Create(ctx, req.Name, req.Email, passwordHash, auth.RoleTeacher)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return u, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	if !u.Enabled {
		return nil, "", "", apperr.Forbidden("account disabled")
	}

	accessToken, refreshToken, err := auth.GenerateTokens(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return u, accessToken, refreshToken, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	_, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	u, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", nil, err
	}

	if !u.Enabled {
		return "", nil, apperr.Forbidden("account disabled")
	}

	newAccessToken, err := auth.GenerateAccessToken(u.ID, u.Email, u.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	return newAccessToken, u, nil
}

func (s *service) GetByID(ctx context.Context, actor auth.Identity, id int) (*User, error) {
	if !auth.CanListBookingsForUser(actor.Role, actor.UserID, id) {
		return nil, apperr.Forbidden("insufficient privilege")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context, actor auth.Identity) ([]User, error) {
	if actor.Role != auth.RoleAdmin {
		return nil, apperr.Forbidden("insufficient privilege")
	}
	return s.repo.List(ctx)
}

func (s *service) ListByRole(ctx context.Context, actor auth.Identity, role auth.Role) ([]User, error) {
	if actor.Role != auth.RoleAdmin {
		return nil, apperr.Forbidden("insufficient privilege")
	}
	if !role.Valid() {
		return nil, apperr.Newf(apperr.KindInvalidInput, "unknown role %q", role)
	}
	return s.repo.ListByRole(ctx, role)
}

func (s *service) Update(ctx context.Context, actor auth.Identity, id int, req UpdateUserRequest) (*User, error) {
	if !auth.CanUpdateUser(actor.Role, actor.UserID, id) {
		return nil, apperr.Forbidden("insufficient privilege")
	}

	role, err := auth.ParseRole(req.Role)
	if err != nil {
		return nil, apperr.InvalidInput(err.Error())
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if target.Role != role && !auth.CanChangeRole(actor.Role) {
		return nil, apperr.Forbidden("insufficient privilege")
	}

	return s.repo.Update(ctx, id, req.Name, req.Email, role)
}

func (s *service) ChangePassword(ctx context.Context, actor auth.Identity, req ChangePasswordRequest) error {
	u, err := s.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(u.PasswordHash, req.CurrentPassword) {
		return apperr.InvalidInput("current password is incorrect")
	}

	if req.CurrentPassword == req.NewPassword {
		return apperr.InvalidInput("new password must differ from the current one")
	}

	passwordHash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, actor.UserID, passwordHash)
}

func (s *service) SetEnabled(ctx context.Context, actor auth.Identity, id int, enabled bool) (*User, error) {
	if !auth.CanSetUserEnabled(actor.Role, actor.UserID, id, enabled) {
		return nil, apperr.Forbidden("insufficient privilege")
	}
	return s.repo.SetEnabled(ctx, id, enabled)
}

func (s *service) Delete(ctx context.Context, actor auth.Identity, id int) error {
	if !auth.CanDeleteUser(actor.Role, actor.UserID, id) {
		return apperr.Forbidden("insufficient privilege")
	}
	return s.repo.Delete(ctx, id)
}
