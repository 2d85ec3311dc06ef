package in

import (
	"context"

	"lifeos/internal/modules/ledger/dto"
)

// Usecase is the engine-facing read/write surface over the event log. All
// aggregates are recomputed from the log on every call; nothing derived is
// persisted.
type Usecase interface {
	RecordSnapshot(ctx context.Context, input dto.RecordSnapshotInput) (dto.SnapshotOutput, error)
	AppendSession(ctx context.Context, input dto.AppendSessionInput) (dto.SessionOutput, error)
	AppendPurchase(ctx context.Context, userID, itemName string, cost int) (dto.PurchaseOutput, error)

	FinanceStatus(ctx context.Context, userID string) (dto.FinanceOutput, error)
	ThemeStats(ctx context.Context, userID string) ([]dto.ThemeStatOutput, error)
	TodayFocusedMinutes(ctx context.Context, userID string) (int, error)
	WeeklyWindow(ctx context.Context, userID string) (dto.WeeklyWindowOutput, error)
	RecentSessions(ctx context.Context, userID string, limit int) ([]dto.SessionOutput, error)
	Achievements(ctx context.Context, userID string) ([]dto.BadgeOutput, error)
	ListSnapshots(ctx context.Context, userID string) ([]dto.SnapshotOutput, error)
}
