package in

import (
	"context"

	"lifeos/internal/modules/auth/dto"
)

type Usecase interface {
	// Register creates an account. Names are unique; a taken name fails with
	// apperrors.ErrUserExists.
	Register(ctx context.Context, input dto.RegisterInput) (dto.UserOutput, error)
	// Verify checks a name/password pair. Unknown names and wrong passwords
	// both fail with apperrors.ErrInvalidCredentials.
	Verify(ctx context.Context, name, password string) (dto.UserOutput, error)
	ListUsers(ctx context.Context) ([]dto.UserOutput, error)
}
