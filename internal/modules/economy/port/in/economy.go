package in

import (
	"context"

	"lifeos/internal/modules/economy/dto"
)

type Usecase interface {
	ListGoods(ctx context.Context) ([]dto.GoodOutput, error)
	Purchase(ctx context.Context, input dto.PurchaseInput) (dto.PurchaseOutput, error)
}
