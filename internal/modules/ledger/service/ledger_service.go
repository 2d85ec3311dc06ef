package service

import (
	"context"
	"fmt"
	"time"

	"lifeos/internal/modules/ledger/domain"
	ledgerout "lifeos/internal/modules/ledger/port/out"
	"lifeos/internal/platform/clock"
	apperrors "lifeos/internal/platform/errors"
	"lifeos/internal/platform/userlock"
)

const windowDays = 7

// LedgerService owns writes to the event log and the pure read-side
// recomputation. Snapshot and session writes are serialized per user;
// purchase appends are serialized by the economy module, which holds the
// user lock across its balance check.
type LedgerService struct {
	clock clock.Clock
	store ledgerout.EventStore
	locks userlock.Manager
}

func NewLedgerService(clk clock.Clock, store ledgerout.EventStore, locks userlock.Manager) *LedgerService {
	return &LedgerService{clock: clk, store: store, locks: locks}
}

func (s *LedgerService) RecordSnapshot(ctx context.Context, userID string, scores domain.Scores) (domain.Snapshot, error) {
	if userID == "" {
		return domain.Snapshot{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	snapshot := domain.Snapshot{
		UserID: userID,
		Day:    domain.DayOf(s.clock.Now()),
		Scores: scores,
	}
	err := s.locks.Within(ctx, userID, func(ctx context.Context) error {
		return s.store.ReplaceSnapshot(ctx, snapshot)
	})
	if err != nil {
		return domain.Snapshot{}, err
	}
	return snapshot, nil
}

func (s *LedgerService) AppendSession(ctx context.Context, session domain.FocusSession) (domain.FocusSession, error) {
	if session.UserID == "" {
		return domain.FocusSession{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if !domain.ValidTheme(session.Theme) {
		return domain.FocusSession{}, fmt.Errorf("%w: unknown theme %q", apperrors.ErrInvalidInput, session.Theme)
	}
	if !domain.ValidStage(session.Stage) {
		return domain.FocusSession{}, fmt.Errorf("%w: unknown stage %q", apperrors.ErrInvalidInput, session.Stage)
	}
	if session.TaskLabel == "" {
		return domain.FocusSession{}, fmt.Errorf("%w: task label is required", apperrors.ErrInvalidInput)
	}
	if session.DurationMin < 0 {
		return domain.FocusSession{}, fmt.Errorf("%w: negative duration", apperrors.ErrInvalidInput)
	}
	err := s.locks.Within(ctx, session.UserID, func(ctx context.Context) error {
		id, err := s.store.AppendSession(ctx, session)
		if err != nil {
			return err
		}
		session.ID = id
		return nil
	})
	if err != nil {
		return domain.FocusSession{}, err
	}
	return session, nil
}

// AppendPurchase writes a spend event. It does not gate on balance and does
// not take the user lock: the economy module is the only caller and holds
// the lock across check and append.
func (s *LedgerService) AppendPurchase(ctx context.Context, userID, itemName string, cost int) (domain.Purchase, error) {
	if userID == "" || itemName == "" {
		return domain.Purchase{}, fmt.Errorf("%w: user id and item name are required", apperrors.ErrInvalidInput)
	}
	if cost < 0 {
		return domain.Purchase{}, fmt.Errorf("%w: negative cost", apperrors.ErrInvalidInput)
	}
	purchase := domain.Purchase{
		UserID:   userID,
		At:       s.clock.Now(),
		ItemName: itemName,
		Cost:     cost,
	}
	id, err := s.store.AppendPurchase(ctx, purchase)
	if err != nil {
		return domain.Purchase{}, err
	}
	purchase.ID = id
	return purchase, nil
}

func (s *LedgerService) Finance(ctx context.Context, userID string) (domain.FinanceStatus, error) {
	sessions, err := s.store.ListSessions(ctx, userID, time.Time{})
	if err != nil {
		return domain.FinanceStatus{}, err
	}
	purchases, err := s.store.ListPurchases(ctx, userID, time.Time{})
	if err != nil {
		return domain.FinanceStatus{}, err
	}
	return domain.Finance(sessions, purchases), nil
}

func (s *LedgerService) ThemeStats(ctx context.Context, userID string) ([]domain.ThemeStat, error) {
	sessions, err := s.store.ListSessions(ctx, userID, time.Time{})
	if err != nil {
		return nil, err
	}
	return domain.ThemeProgress(sessions), nil
}

func (s *LedgerService) TodayMinutes(ctx context.Context, userID string) (int, error) {
	// full scan: "today" keys off end timestamps, which the since filter
	// (start timestamps) cannot express
	now := s.clock.Now()
	sessions, err := s.store.ListSessions(ctx, userID, time.Time{})
	if err != nil {
		return 0, err
	}
	return domain.MinutesOn(sessions, now), nil
}

func (s *LedgerService) WeeklyWindow(ctx context.Context, userID string) ([]domain.FocusSession, []domain.Purchase, time.Time, time.Time, error) {
	end := s.clock.Now()
	start := end.AddDate(0, 0, -windowDays)
	sessions, err := s.store.ListSessions(ctx, userID, start)
	if err != nil {
		return nil, nil, time.Time{}, time.Time{}, err
	}
	purchases, err := s.store.ListPurchases(ctx, userID, start)
	if err != nil {
		return nil, nil, time.Time{}, time.Time{}, err
	}
	return sessions, purchases, start, end, nil
}

func (s *LedgerService) RecentSessions(ctx context.Context, userID string, limit int) ([]domain.FocusSession, error) {
	sessions, err := s.store.ListSessions(ctx, userID, time.Time{})
	if err != nil {
		return nil, err
	}
	// newest first
	out := make([]domain.FocusSession, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		out = append(out, sessions[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *LedgerService) Achievements(ctx context.Context, userID string) ([]domain.Badge, error) {
	finance, err := s.Finance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.Achievements(finance.TotalMinutes), nil
}

func (s *LedgerService) ListSnapshots(ctx context.Context, userID string) ([]domain.Snapshot, error) {
	return s.store.ListSnapshots(ctx, userID)
}
