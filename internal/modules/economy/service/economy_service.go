package service

import (
	"context"
	"fmt"

	"lifeos/internal/modules/economy/domain"
	economyout "lifeos/internal/modules/economy/port/out"
	apperrors "lifeos/internal/platform/errors"
	"lifeos/internal/platform/userlock"
)

// EconomyService gates purchases on the recomputed balance. The check and the
// append run as one step under the user lock.
type EconomyService struct {
	catalog economyout.CatalogStore
	ledger  economyout.Ledger
	locks   userlock.Manager
}

func NewEconomyService(catalog economyout.CatalogStore, ledger economyout.Ledger, locks userlock.Manager) *EconomyService {
	return &EconomyService{catalog: catalog, ledger: ledger, locks: locks}
}

func (s *EconomyService) Goods(ctx context.Context) ([]domain.Good, error) {
	goods, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := domain.Validate(goods); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return goods, nil
}

func (s *EconomyService) Purchase(ctx context.Context, userID, itemName string) (economyout.RecordedPurchase, int, error) {
	if userID == "" {
		return economyout.RecordedPurchase{}, 0, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	goods, err := s.Goods(ctx)
	if err != nil {
		return economyout.RecordedPurchase{}, 0, err
	}
	good, ok := domain.Find(goods, itemName)
	if !ok {
		return economyout.RecordedPurchase{}, 0, fmt.Errorf("%w: unknown item %q", apperrors.ErrInvalidInput, itemName)
	}

	var (
		recorded   economyout.RecordedPurchase
		newBalance int
	)
	err = s.locks.Within(ctx, userID, func(ctx context.Context) error {
		balance, err := s.ledger.Balance(ctx, userID)
		if err != nil {
			return err
		}
		if balance < good.Price {
			return fmt.Errorf("%w: balance %d, price %d", apperrors.ErrInsufficientBalance, balance, good.Price)
		}
		recorded, err = s.ledger.RecordPurchase(ctx, userID, good.Name, good.Price)
		if err != nil {
			return err
		}
		newBalance = balance - good.Price
		return nil
	})
	if err != nil {
		return economyout.RecordedPurchase{}, 0, err
	}
	return recorded, newBalance, nil
}
