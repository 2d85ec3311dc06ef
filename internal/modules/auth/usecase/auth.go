package usecase

import (
	"context"

	"lifeos/internal/modules/auth/domain"
	"lifeos/internal/modules/auth/dto"
	authin "lifeos/internal/modules/auth/port/in"
	"lifeos/internal/modules/auth/service"
)

type Interactor struct {
	svc *service.AuthService
}

func NewInteractor(svc *service.AuthService) authin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) (dto.UserOutput, error) {
	user, err := i.svc.Register(ctx, input.Name, input.Password)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toDTO(user), nil
}

func (i *Interactor) Verify(ctx context.Context, name, password string) (dto.UserOutput, error) {
	user, err := i.svc.Verify(ctx, name, password)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toDTO(user), nil
}

func (i *Interactor) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserOutput, 0, len(users))
	for _, user := range users {
		out = append(out, toDTO(user))
	}
	return out, nil
}

func toDTO(u domain.User) dto.UserOutput {
	return dto.UserOutput{Name: u.Name, CreatedAt: u.CreatedAt}
}
