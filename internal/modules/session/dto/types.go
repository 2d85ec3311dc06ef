package dto

import "time"

type StartInput struct {
	UserID    string
	Theme     string
	TaskLabel string
	Stage     string
}

type StartOutput struct {
	SessionID string
	Theme     string
	TaskLabel string
	Stage     string
	StartedAt time.Time
}

type ScoresInput struct {
	Emotion    float64
	Cognition  float64
	Awareness  float64
	Motivation float64
	Social     float64
}

type CompleteInput struct {
	UserID string
	Scores ScoresInput
}

type CompleteOutput struct {
	EventID     int64
	Theme       string
	TaskLabel   string
	Stage       string
	StartedAt   time.Time
	EndedAt     time.Time
	DurationMin int
}

type ElapsedOutput struct {
	SessionID string
	TaskLabel string
	Theme     string
	Minutes   int
	Seconds   int
}

type ActiveSessionOutput struct {
	SessionID string
	Theme     string
	TaskLabel string
	Stage     string
	StartedAt time.Time
}
