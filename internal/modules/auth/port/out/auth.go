package out

import (
	"context"

	"lifeos/internal/modules/auth/domain"
)

// UserStore persists accounts. Create must fail with apperrors.ErrUserExists
// when the name is taken; Get with apperrors.ErrNotFound when it is not.
type UserStore interface {
	Create(ctx context.Context, user domain.User) error
	Get(ctx context.Context, name string) (domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
