package service

import (
	"context"
	"errors"
	"fmt"

	"lifeos/internal/modules/auth/domain"
	authout "lifeos/internal/modules/auth/port/out"
	"lifeos/internal/platform/clock"
	apperrors "lifeos/internal/platform/errors"
)

type AuthService struct {
	clock clock.Clock
	store authout.UserStore
}

func NewAuthService(clk clock.Clock, store authout.UserStore) *AuthService {
	return &AuthService{clock: clk, store: store}
}

func (s *AuthService) Register(ctx context.Context, name, password string) (domain.User, error) {
	if name == "" || password == "" {
		return domain.User{}, fmt.Errorf("%w: name and password are required", apperrors.ErrInvalidInput)
	}
	user := domain.User{
		Name:         name,
		PasswordHash: domain.HashPassword(password),
		CreatedAt:    s.clock.Now(),
	}
	if err := s.store.Create(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *AuthService) Verify(ctx context.Context, name, password string) (domain.User, error) {
	user, err := s.store.Get(ctx, name)
	if errors.Is(err, apperrors.ErrNotFound) {
		// Do not reveal whether the name exists.
		return domain.User{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidCredentials, name)
	}
	if err != nil {
		return domain.User{}, err
	}
	if !user.PasswordMatches(password) {
		return domain.User{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidCredentials, name)
	}
	return user, nil
}

func (s *AuthService) List(ctx context.Context) ([]domain.User, error) {
	return s.store.List(ctx)
}
