package srs

import (
	"math"
	"sort"
	"time"

	"parlo-engine/internal/models"
)

// Scheduler decides which cards to present and how to reschedule them after
// an answer. SM-2 arithmetic, pure functions only: every method reads the
// snapshot it is given and returns new values, so one Scheduler can be shared
// across callers.
type Scheduler struct {
	params Params
}

// NewScheduler builds a Scheduler. Non-positive Params fields fall back to
// their DefaultParams values.
func NewScheduler(params Params) *Scheduler {
	def := DefaultParams()
	if params.SlowSeconds <= 0 {
		params.SlowSeconds = def.SlowSeconds
	}
	if params.VerySlowSeconds <= 0 {
		params.VerySlowSeconds = def.VerySlowSeconds
	}
	if params.StruggleSeconds <= 0 {
		params.StruggleSeconds = def.StruggleSeconds
	}
	if params.DifficultyStep <= 0 {
		params.DifficultyStep = def.DifficultyStep
	}
	if params.MasteredMinReps <= 0 {
		params.MasteredMinReps = def.MasteredMinReps
	}
	if params.MasteredMinIntervalDays <= 0 {
		params.MasteredMinIntervalDays = def.MasteredMinIntervalDays
	}
	if params.ForecastDays <= 0 {
		params.ForecastDays = def.ForecastDays
	}
	return &Scheduler{params: params}
}

// Initialize attaches default scheduling state to a content-only card.
// The card becomes immediately due.
func (s *Scheduler) Initialize(card models.Card, now time.Time) models.Card {
	card.EaseFactor = InitialEaseFactor
	card.IntervalDays = 0
	card.Repetitions = 0
	card.NextReviewAt = now
	card.LastReviewedAt = nil
	return card
}

// DueCards returns the cards due for review at now, in input order.
func (s *Scheduler) DueCards(cards []models.Card, now time.Time) []models.Card {
	var due []models.Card
	for i := range cards {
		if cards[i].IsDue(now) {
			due = append(due, cards[i])
		}
	}
	return due
}

// Prioritize returns due cards in presentation order: most overdue first,
// then fewer repetitions, then original order. At a fixed observation time,
// earliest NextReviewAt is exactly most overdue. The input is not modified.
func (s *Scheduler) Prioritize(due []models.Card) []models.Card {
	ordered := make([]models.Card, len(due))
	copy(ordered, due)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].NextReviewAt.Equal(ordered[j].NextReviewAt) {
			return ordered[i].NextReviewAt.Before(ordered[j].NextReviewAt)
		}
		return ordered[i].Repetitions < ordered[j].Repetitions
	})
	return ordered
}

// Quality converts one answer outcome into the 0..5 SM-2 quality scale.
// Correct answers never score below 3; incorrect answers score 1, or 0 when
// the learner struggled past the scaled threshold.
func (s *Scheduler) Quality(correct bool, elapsedSeconds float64, difficulty int) int {
	p := s.params
	if !correct {
		if elapsedSeconds > p.allowance(p.StruggleSeconds, difficulty) {
			return 0
		}
		return 1
	}
	quality := 5
	if elapsedSeconds > p.allowance(p.SlowSeconds, difficulty) {
		quality--
	}
	if elapsedSeconds > p.allowance(p.VerySlowSeconds, difficulty) {
		quality--
	}
	if quality < 3 {
		quality = 3
	}
	return quality
}

// Review applies the SM-2 update rule and returns the rescheduled card.
func (s *Scheduler) Review(card models.Card, quality int, now time.Time) models.Card {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	// EF' = EF + (0.1 - (5 - q) * (0.08 + (5 - q) * 0.02)), floored at 1.3
	q := float64(quality)
	ease := card.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	reps := card.Repetitions
	interval := card.IntervalDays
	if quality < 3 {
		// Failed: back to tomorrow regardless of prior interval.
		reps = 0
		interval = 1
	} else {
		reps++
		switch reps {
		case 1:
			interval = 1
		case 2:
			interval = 6
		default:
			interval = int(math.Round(float64(card.IntervalDays) * ease))
		}
	}

	reviewed := now
	card.EaseFactor = ease
	card.IntervalDays = interval
	card.Repetitions = reps
	card.NextReviewAt = now.AddDate(0, 0, interval)
	card.LastReviewedAt = &reviewed
	return card
}

// Stats aggregates deck-level counters. New, Learning and Mastered partition
// the collection.
func (s *Scheduler) Stats(cards []models.Card, now time.Time) models.DeckStats {
	stats := models.DeckStats{TotalCards: len(cards)}
	for i := range cards {
		c := &cards[i]
		switch {
		case c.Repetitions >= s.params.MasteredMinReps && c.IntervalDays >= s.params.MasteredMinIntervalDays:
			stats.Mastered++
		case c.LastReviewedAt != nil:
			stats.Learning++
		default:
			stats.New++
		}
		if c.IsDue(now) {
			stats.DueNow++
		}
	}
	if stats.TotalCards > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Mastered) / float64(stats.TotalCards) * 100))
	}
	return stats
}

// Forecast counts upcoming reviews per calendar day, today through
// ForecastDays-1 days ahead, in the location of now. Cards already overdue
// show up in Stats.DueNow rather than in today's bucket.
func (s *Scheduler) Forecast(cards []models.Card, now time.Time) []models.ForecastDay {
	forecast := make([]models.ForecastDay, s.params.ForecastDays)
	for i := range forecast {
		day := now.AddDate(0, 0, i)
		forecast[i].Date = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, now.Location())
	}
	for i := range cards {
		next := cards[i].NextReviewAt.In(now.Location())
		for d := range forecast {
			if sameDay(next, forecast[d].Date) {
				forecast[d].Count++
				break
			}
		}
	}
	return forecast
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
