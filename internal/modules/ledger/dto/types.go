package dto

import "time"

type ScoresInput struct {
	Emotion    float64
	Cognition  float64
	Awareness  float64
	Motivation float64
	Social     float64
}

type RecordSnapshotInput struct {
	UserID string
	Scores ScoresInput
}

type SnapshotOutput struct {
	UserID string
	Day    time.Time
	Scores ScoresInput
}

type AppendSessionInput struct {
	UserID      string
	StartedAt   time.Time
	EndedAt     time.Time
	Theme       string
	TaskLabel   string
	DurationMin int
	Stage       string
	Scores      ScoresInput
}

type SessionOutput struct {
	ID          int64
	UserID      string
	StartedAt   time.Time
	EndedAt     time.Time
	Theme       string
	TaskLabel   string
	DurationMin int
	Stage       string
	Scores      ScoresInput
}

type PurchaseOutput struct {
	ID       int64
	UserID   string
	At       time.Time
	ItemName string
	Cost     int
}

type FinanceOutput struct {
	TotalMinutes int
	TotalSpent   int
	Balance      int
}

type ThemeStatOutput struct {
	Theme           string
	Icon            string
	Description     string
	Level           int
	ProgressPercent float64
	TotalMinutes    int
}

type WeeklyWindowOutput struct {
	Sessions    []SessionOutput
	Purchases   []PurchaseOutput
	WindowStart time.Time
	WindowEnd   time.Time
}

type BadgeOutput struct {
	Name      string
	Threshold int
}
