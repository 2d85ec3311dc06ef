package out

import (
	"context"

	ledgerdto "lifeos/internal/modules/ledger/dto"
	ledgerin "lifeos/internal/modules/ledger/port/in"
	sessionout "lifeos/internal/modules/session/port/out"
)

// LedgerAdapter bridges session completion onto the ledger usecase.
type LedgerAdapter struct {
	ledger ledgerin.Usecase
}

func NewLedgerAdapter(ledger ledgerin.Usecase) sessionout.Ledger {
	return &LedgerAdapter{ledger: ledger}
}

func (a *LedgerAdapter) AppendCompleted(ctx context.Context, session sessionout.CompletedSession) (int64, error) {
	out, err := a.ledger.AppendSession(ctx, ledgerdto.AppendSessionInput{
		UserID:      session.UserID,
		StartedAt:   session.StartedAt,
		EndedAt:     session.EndedAt,
		Theme:       session.Theme,
		TaskLabel:   session.TaskLabel,
		DurationMin: session.DurationMin,
		Stage:       session.Stage,
		Scores: ledgerdto.ScoresInput{
			Emotion:    session.Scores.Emotion,
			Cognition:  session.Scores.Cognition,
			Awareness:  session.Scores.Awareness,
			Motivation: session.Scores.Motivation,
			Social:     session.Scores.Social,
		},
	})
	if err != nil {
		return 0, err
	}
	return out.ID, nil
}
