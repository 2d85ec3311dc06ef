package domain

import "fmt"

const (
	ScoreMin = 0
	ScoreMax = 10
)

// Scores is the five-dimension self-assessment attached to snapshots and to
// completed focus sessions. Values are validated into [0,10] at construction.
type Scores struct {
	Emotion    float64
	Cognition  float64
	Awareness  float64
	Motivation float64
	Social     float64
}

func NewScores(emotion, cognition, awareness, motivation, social float64) (Scores, error) {
	s := Scores{
		Emotion:    emotion,
		Cognition:  cognition,
		Awareness:  awareness,
		Motivation: motivation,
		Social:     social,
	}
	for _, v := range []float64{emotion, cognition, awareness, motivation, social} {
		if v < ScoreMin || v > ScoreMax {
			return Scores{}, fmt.Errorf("score %.2f out of range [%d,%d]", v, ScoreMin, ScoreMax)
		}
	}
	return s, nil
}

// NeutralScores is the midpoint used when the caller records nothing.
func NeutralScores() Scores {
	return Scores{Emotion: 5, Cognition: 5, Awareness: 5, Motivation: 5, Social: 5}
}

func (s Scores) Mean() float64 {
	return (s.Emotion + s.Cognition + s.Awareness + s.Motivation + s.Social) / 5
}
