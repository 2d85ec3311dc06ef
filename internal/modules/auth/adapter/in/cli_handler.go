package in

import (
	"context"

	"lifeos/internal/modules/auth/dto"
	authin "lifeos/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Register(ctx context.Context, name, password string) (dto.UserOutput, error) {
	return h.usecase.Register(ctx, dto.RegisterInput{Name: name, Password: password})
}

func (h CLIHandler) Verify(ctx context.Context, name, password string) (dto.UserOutput, error) {
	return h.usecase.Verify(ctx, name, password)
}

func (h CLIHandler) ListUsers(ctx context.Context) ([]dto.UserOutput, error) {
	return h.usecase.ListUsers(ctx)
}
