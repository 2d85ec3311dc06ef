package out

import (
	"context"

	ledgerdomain "lifeos/internal/modules/ledger/domain"
	ledgerin "lifeos/internal/modules/ledger/port/in"
	"lifeos/internal/modules/report/domain"
	reportout "lifeos/internal/modules/report/port/out"
)

// LedgerWeeklySource folds the trailing week of the event log into the
// figures the prompt needs.
type LedgerWeeklySource struct {
	ledger ledgerin.Usecase
}

func NewLedgerWeeklySource(ledger ledgerin.Usecase) reportout.WeeklySource {
	return &LedgerWeeklySource{ledger: ledger}
}

func (a *LedgerWeeklySource) Figures(ctx context.Context, userID string) (domain.WeeklyFigures, error) {
	window, err := a.ledger.WeeklyWindow(ctx, userID)
	if err != nil {
		return domain.WeeklyFigures{}, err
	}

	sessions := make([]ledgerdomain.FocusSession, 0, len(window.Sessions))
	totalMinutes := 0
	for _, s := range window.Sessions {
		totalMinutes += s.DurationMin
		sessions = append(sessions, ledgerdomain.FocusSession{
			Theme:       ledgerdomain.Theme(s.Theme),
			DurationMin: s.DurationMin,
			Scores: ledgerdomain.Scores{
				Emotion:    s.Scores.Emotion,
				Cognition:  s.Scores.Cognition,
				Awareness:  s.Scores.Awareness,
				Motivation: s.Scores.Motivation,
				Social:     s.Scores.Social,
			},
		})
	}
	totalSpent := 0
	for _, p := range window.Purchases {
		totalSpent += p.Cost
	}

	return domain.WeeklyFigures{
		TotalMinutes:   totalMinutes,
		SessionCount:   len(window.Sessions),
		DominantTheme:  string(ledgerdomain.DominantTheme(sessions)),
		TotalSpent:     totalSpent,
		MeanMotivation: ledgerdomain.MeanMotivation(sessions),
		WindowStart:    window.WindowStart,
		WindowEnd:      window.WindowEnd,
	}, nil
}
