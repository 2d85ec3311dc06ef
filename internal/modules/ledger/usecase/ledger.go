package usecase

import (
	"context"
	"fmt"

	"lifeos/internal/modules/ledger/domain"
	"lifeos/internal/modules/ledger/dto"
	ledgerin "lifeos/internal/modules/ledger/port/in"
	"lifeos/internal/modules/ledger/service"
	apperrors "lifeos/internal/platform/errors"
)

type Interactor struct {
	svc *service.LedgerService
}

func NewInteractor(svc *service.LedgerService) ledgerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) RecordSnapshot(ctx context.Context, input dto.RecordSnapshotInput) (dto.SnapshotOutput, error) {
	scores, err := scoresFromDTO(input.Scores)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	snapshot, err := i.svc.RecordSnapshot(ctx, input.UserID, scores)
	if err != nil {
		return dto.SnapshotOutput{}, err
	}
	return snapshotToDTO(snapshot), nil
}

func (i *Interactor) AppendSession(ctx context.Context, input dto.AppendSessionInput) (dto.SessionOutput, error) {
	scores, err := scoresFromDTO(input.Scores)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.AppendSession(ctx, domain.FocusSession{
		UserID:      input.UserID,
		StartedAt:   input.StartedAt,
		EndedAt:     input.EndedAt,
		Theme:       domain.Theme(input.Theme),
		TaskLabel:   input.TaskLabel,
		DurationMin: input.DurationMin,
		Stage:       domain.Stage(input.Stage),
		Scores:      scores,
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return sessionToDTO(session), nil
}

func (i *Interactor) AppendPurchase(ctx context.Context, userID, itemName string, cost int) (dto.PurchaseOutput, error) {
	purchase, err := i.svc.AppendPurchase(ctx, userID, itemName, cost)
	if err != nil {
		return dto.PurchaseOutput{}, err
	}
	return dto.PurchaseOutput{
		ID:       purchase.ID,
		UserID:   purchase.UserID,
		At:       purchase.At,
		ItemName: purchase.ItemName,
		Cost:     purchase.Cost,
	}, nil
}

func (i *Interactor) FinanceStatus(ctx context.Context, userID string) (dto.FinanceOutput, error) {
	finance, err := i.svc.Finance(ctx, userID)
	if err != nil {
		return dto.FinanceOutput{}, err
	}
	return dto.FinanceOutput{
		TotalMinutes: finance.TotalMinutes,
		TotalSpent:   finance.TotalSpent,
		Balance:      finance.Balance,
	}, nil
}

func (i *Interactor) ThemeStats(ctx context.Context, userID string) ([]dto.ThemeStatOutput, error) {
	stats, err := i.svc.ThemeStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ThemeStatOutput, 0, len(stats))
	for idx, stat := range stats {
		info := domain.Themes[idx]
		out = append(out, dto.ThemeStatOutput{
			Theme:           string(stat.Theme),
			Icon:            info.Icon,
			Description:     info.Description,
			Level:           stat.Level,
			ProgressPercent: stat.ProgressPercent,
			TotalMinutes:    stat.TotalMinutes,
		})
	}
	return out, nil
}

func (i *Interactor) TodayFocusedMinutes(ctx context.Context, userID string) (int, error) {
	return i.svc.TodayMinutes(ctx, userID)
}

func (i *Interactor) WeeklyWindow(ctx context.Context, userID string) (dto.WeeklyWindowOutput, error) {
	sessions, purchases, start, end, err := i.svc.WeeklyWindow(ctx, userID)
	if err != nil {
		return dto.WeeklyWindowOutput{}, err
	}
	out := dto.WeeklyWindowOutput{WindowStart: start, WindowEnd: end}
	for _, s := range sessions {
		out.Sessions = append(out.Sessions, sessionToDTO(s))
	}
	for _, p := range purchases {
		out.Purchases = append(out.Purchases, dto.PurchaseOutput{
			ID: p.ID, UserID: p.UserID, At: p.At, ItemName: p.ItemName, Cost: p.Cost,
		})
	}
	return out, nil
}

func (i *Interactor) RecentSessions(ctx context.Context, userID string, limit int) ([]dto.SessionOutput, error) {
	sessions, err := i.svc.RecentSessions(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, sessionToDTO(s))
	}
	return out, nil
}

func (i *Interactor) Achievements(ctx context.Context, userID string) ([]dto.BadgeOutput, error) {
	badges, err := i.svc.Achievements(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BadgeOutput, 0, len(badges))
	for _, b := range badges {
		out = append(out, dto.BadgeOutput{Name: b.Name, Threshold: b.Threshold})
	}
	return out, nil
}

func (i *Interactor) ListSnapshots(ctx context.Context, userID string) ([]dto.SnapshotOutput, error) {
	snapshots, err := i.svc.ListSnapshots(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SnapshotOutput, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, snapshotToDTO(s))
	}
	return out, nil
}

func scoresFromDTO(in dto.ScoresInput) (domain.Scores, error) {
	scores, err := domain.NewScores(in.Emotion, in.Cognition, in.Awareness, in.Motivation, in.Social)
	if err != nil {
		return domain.Scores{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	return scores, nil
}

func scoresToDTO(s domain.Scores) dto.ScoresInput {
	return dto.ScoresInput{
		Emotion:    s.Emotion,
		Cognition:  s.Cognition,
		Awareness:  s.Awareness,
		Motivation: s.Motivation,
		Social:     s.Social,
	}
}

func sessionToDTO(s domain.FocusSession) dto.SessionOutput {
	return dto.SessionOutput{
		ID:          s.ID,
		UserID:      s.UserID,
		StartedAt:   s.StartedAt,
		EndedAt:     s.EndedAt,
		Theme:       string(s.Theme),
		TaskLabel:   s.TaskLabel,
		DurationMin: s.DurationMin,
		Stage:       string(s.Stage),
		Scores:      scoresToDTO(s.Scores),
	}
}

func snapshotToDTO(s domain.Snapshot) dto.SnapshotOutput {
	return dto.SnapshotOutput{UserID: s.UserID, Day: s.Day, Scores: scoresToDTO(s.Scores)}
}
