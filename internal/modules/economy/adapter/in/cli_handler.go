package in

import (
	"context"

	"lifeos/internal/modules/economy/dto"
	economyin "lifeos/internal/modules/economy/port/in"
)

type CLIHandler struct {
	usecase economyin.Usecase
}

func NewCLIHandler(usecase economyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListGoods(ctx context.Context) ([]dto.GoodOutput, error) {
	return h.usecase.ListGoods(ctx)
}

func (h CLIHandler) Purchase(ctx context.Context, userID, itemName string) (dto.PurchaseOutput, error) {
	return h.usecase.Purchase(ctx, dto.PurchaseInput{UserID: userID, ItemName: itemName})
}
