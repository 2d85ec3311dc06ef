package out

import (
	"context"
	"time"

	"lifeos/internal/modules/economy/domain"
)

// CatalogStore supplies the ordered goods list (built-in or file override).
type CatalogStore interface {
	Load(ctx context.Context) ([]domain.Good, error)
}

// RecordedPurchase echoes the appended spend event.
type RecordedPurchase struct {
	EventID  int64
	ItemName string
	Cost     int
	At       time.Time
}

// Ledger is the economy's view of the event log. Balance and RecordPurchase
// are called back to back inside the per-user lock so the gating check can
// never read a stale balance.
type Ledger interface {
	Balance(ctx context.Context, userID string) (int, error)
	RecordPurchase(ctx context.Context, userID, itemName string, cost int) (RecordedPurchase, error)
}
