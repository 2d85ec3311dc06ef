package out

import (
	"context"

	economyout "lifeos/internal/modules/economy/port/out"
	ledgerin "lifeos/internal/modules/ledger/port/in"
)

// LedgerAdapter bridges the economy's balance check and spend append onto the
// ledger usecase. The ledger's purchase append is deliberately lock-free;
// economy callers hold the user lock around both calls.
type LedgerAdapter struct {
	ledger ledgerin.Usecase
}

func NewLedgerAdapter(ledger ledgerin.Usecase) economyout.Ledger {
	return &LedgerAdapter{ledger: ledger}
}

func (a *LedgerAdapter) Balance(ctx context.Context, userID string) (int, error) {
	finance, err := a.ledger.FinanceStatus(ctx, userID)
	if err != nil {
		return 0, err
	}
	return finance.Balance, nil
}

func (a *LedgerAdapter) RecordPurchase(ctx context.Context, userID, itemName string, cost int) (economyout.RecordedPurchase, error) {
	purchase, err := a.ledger.AppendPurchase(ctx, userID, itemName, cost)
	if err != nil {
		return economyout.RecordedPurchase{}, err
	}
	return economyout.RecordedPurchase{
		EventID:  purchase.ID,
		ItemName: purchase.ItemName,
		Cost:     purchase.Cost,
		At:       purchase.At,
	}, nil
}
