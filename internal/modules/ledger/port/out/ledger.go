package out

import (
	"context"
	"time"

	"lifeos/internal/modules/ledger/domain"
)

// EventStore is the append-only durable log. Lists return events in id order
// (oldest first) and must reflect every prior write for the same user. The
// snapshot replace is the single permitted overwrite and must be atomic.
type EventStore interface {
	AppendSession(ctx context.Context, session domain.FocusSession) (int64, error)
	AppendPurchase(ctx context.Context, purchase domain.Purchase) (int64, error)
	ReplaceSnapshot(ctx context.Context, snapshot domain.Snapshot) error

	ListSessions(ctx context.Context, userID string, since time.Time) ([]domain.FocusSession, error)
	ListPurchases(ctx context.Context, userID string, since time.Time) ([]domain.Purchase, error)
	ListSnapshots(ctx context.Context, userID string) ([]domain.Snapshot, error)
}
