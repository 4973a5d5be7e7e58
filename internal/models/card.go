package models

import "time"

const (
	DifficultyEasy   = 1
	DifficultyMedium = 2
	DifficultyHard   = 3
)

type Card struct {
	ID           string   `json:"id" validate:"required"`
	Prompt       string   `json:"prompt" validate:"required"`
	Options      []string `json:"options" validate:"min=2,dive,required"`
	CorrectIndex int      `json:"correct_index" validate:"gte=0"`
	Explanation  string   `json:"explanation,omitempty"`
	Topic        string   `json:"topic,omitempty"`
	Difficulty   int      `json:"difficulty" validate:"gte=1,lte=3"` // 1=easy, 2=medium, 3=hard
	Language     string   `json:"language,omitempty"`

	EaseFactor     float64    `json:"ease_factor" validate:"gte=0"`
	IntervalDays   int        `json:"interval_days" validate:"gte=0"`
	Repetitions    int        `json:"repetitions" validate:"gte=0"`
	NextReviewAt   time.Time  `json:"next_review_at"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
}

// IsDue reports whether the card needs review at the given time.
// Cards that were never scheduled (IntervalDays == 0) are always due.
func (c *Card) IsDue(now time.Time) bool {
	if c.IntervalDays == 0 {
		return true
	}
	return !c.NextReviewAt.After(now)
}

type DeckStats struct {
	TotalCards     int `json:"total_cards"`
	Mastered       int `json:"mastered"`
	Learning       int `json:"learning"`
	New            int `json:"new"`
	DueNow         int `json:"due_now"`
	CompletionRate int `json:"completion_rate"`
}

type ForecastDay struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}
