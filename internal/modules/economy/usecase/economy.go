package usecase

import (
	"context"

	"lifeos/internal/modules/economy/dto"
	economyin "lifeos/internal/modules/economy/port/in"
	"lifeos/internal/modules/economy/service"
)

type Interactor struct {
	svc *service.EconomyService
}

func NewInteractor(svc *service.EconomyService) economyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListGoods(ctx context.Context) ([]dto.GoodOutput, error) {
	goods, err := i.svc.Goods(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GoodOutput, 0, len(goods))
	for _, good := range goods {
		out = append(out, dto.GoodOutput{Name: good.Name, Price: good.Price, Icon: good.Icon})
	}
	return out, nil
}

func (i *Interactor) Purchase(ctx context.Context, input dto.PurchaseInput) (dto.PurchaseOutput, error) {
	recorded, newBalance, err := i.svc.Purchase(ctx, input.UserID, input.ItemName)
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	return dto.PurchaseOutput{
		EventID:    recorded.EventID,
		ItemName:   recorded.ItemName,
		Cost:       recorded.Cost,
		At:         recorded.At,
		NewBalance: newBalance,
	}, nil
}
