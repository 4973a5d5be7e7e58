package srs

import "parlo-engine/internal/models"

// SM-2 ease bounds. The 1.3 floor is an invariant of the card model, not a
// tunable.
const (
	InitialEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// Params holds the scheduling tunables: answer-time thresholds for quality
// scoring, the mastery reporting policy, and the forecast window.
type Params struct {
	// Thresholds in seconds for difficulty tier 1. Higher tiers get a longer
	// allowance: base * (1 + (tier-1)*DifficultyStep).
	SlowSeconds     float64
	VerySlowSeconds float64
	StruggleSeconds float64
	DifficultyStep  float64

	// Mastery policy, used for reporting only.
	MasteredMinReps         int
	MasteredMinIntervalDays int

	ForecastDays int
}

func DefaultParams() Params {
	return Params{
		SlowSeconds:             10,
		VerySlowSeconds:         20,
		StruggleSeconds:         30,
		DifficultyStep:          0.5,
		MasteredMinReps:         3,
		MasteredMinIntervalDays: 21,
		ForecastDays:            7,
	}
}

// allowance scales a base threshold by the card's difficulty tier, so harder
// cards get proportionally more time before a penalty applies.
func (p Params) allowance(base float64, difficulty int) float64 {
	if difficulty < models.DifficultyEasy {
		difficulty = models.DifficultyEasy
	}
	if difficulty > models.DifficultyHard {
		difficulty = models.DifficultyHard
	}
	return base * (1 + float64(difficulty-1)*p.DifficultyStep)
}
