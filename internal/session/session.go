package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"parlo-engine/internal/models"
	"parlo-engine/internal/srs"
)

var (
	ErrSessionEnded  = errors.New("session: already ended")
	ErrNoCurrentCard = errors.New("session: no card left to answer")
	ErrInvalidOption = errors.New("session: selected option out of range")
)

// Cap on the reported duration, so an abandoned session does not inflate
// study-time stats.
const maxSessionSeconds = 43200

// Session owns the state of one pass over a deck's due queue: the working
// card snapshot, the presentation order, the attempt log and the running
// counters. The scheduler itself stays stateless; everything mutable lives
// here, on the caller's side. Not safe for concurrent use.
type Session struct {
	id        uuid.UUID
	startedAt time.Time
	endedAt   *time.Time

	sched *srs.Scheduler
	cards []models.Card
	queue []int // indexes into cards, in presentation order
	pos   int

	attempts   []models.Attempt
	correct    int
	incorrect  int
	streak     int
	bestStreak int
}

// Summary is the aggregate result of a session, running or ended.
type Summary struct {
	SessionID       uuid.UUID  `json:"session_id"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	DurationSeconds int        `json:"duration_seconds"`
	TotalAnswered   int        `json:"total_answered"`
	Correct         int        `json:"correct"`
	Incorrect       int        `json:"incorrect"`
	BestStreak      int        `json:"best_streak"`
	AccuracyRate    float64    `json:"accuracy_rate"`
}

// New starts a session over a snapshot of cards. The input slice is copied,
// never modified: callers persist the updated snapshot from Cards() and
// replace their own copy atomically. Content-only cards (zero scheduling
// state) are initialized and join the queue as new cards.
func New(sched *srs.Scheduler, cards []models.Card, now time.Time) *Session {
	working := make([]models.Card, len(cards))
	copy(working, cards)
	for i := range working {
		if working[i].EaseFactor == 0 {
			working[i] = sched.Initialize(working[i], now)
		}
	}

	index := make(map[string]int, len(working))
	for i := range working {
		index[working[i].ID] = i
	}

	due := sched.Prioritize(sched.DueCards(working, now))
	queue := make([]int, 0, len(due))
	for _, c := range due {
		queue = append(queue, index[c.ID])
	}

	return &Session{
		id:        uuid.New(),
		startedAt: now,
		sched:     sched,
		cards:     working,
		queue:     queue,
	}
}

func (s *Session) ID() uuid.UUID        { return s.id }
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Remaining reports how many cards are still queued for presentation.
func (s *Session) Remaining() int {
	return len(s.queue) - s.pos
}

func (s *Session) Done() bool {
	return s.endedAt != nil || s.pos >= len(s.queue)
}

// Current returns the card to present next, or false when the queue is
// exhausted or the session has ended.
func (s *Session) Current() (models.Card, bool) {
	if s.Done() {
		return models.Card{}, false
	}
	return s.cards[s.queue[s.pos]], true
}

// Answer grades the selected option against the current card, reschedules
// the card, records the attempt and advances the queue. A failed card is
// rescheduled for tomorrow by the update rule, so it does not reappear
// within this session.
func (s *Session) Answer(selectedIndex int, elapsedSeconds float64, now time.Time) (models.Attempt, error) {
	if s.endedAt != nil {
		return models.Attempt{}, ErrSessionEnded
	}
	if s.pos >= len(s.queue) {
		return models.Attempt{}, ErrNoCurrentCard
	}

	card := s.cards[s.queue[s.pos]]
	if selectedIndex < 0 || selectedIndex >= len(card.Options) {
		return models.Attempt{}, ErrInvalidOption
	}

	correct := selectedIndex == card.CorrectIndex
	quality := s.sched.Quality(correct, elapsedSeconds, card.Difficulty)
	s.cards[s.queue[s.pos]] = s.sched.Review(card, quality, now)

	attempt := models.Attempt{
		ID:             uuid.New(),
		CardID:         card.ID,
		SelectedIndex:  selectedIndex,
		Correct:        correct,
		ElapsedSeconds: elapsedSeconds,
		AnsweredAt:     now,
	}
	s.attempts = append(s.attempts, attempt)

	if correct {
		s.correct++
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
	} else {
		s.incorrect++
		s.streak = 0
	}
	s.pos++

	return attempt, nil
}

// Cards returns a copy of the working snapshot, including every reschedule
// applied so far.
func (s *Session) Cards() []models.Card {
	cards := make([]models.Card, len(s.cards))
	copy(cards, s.cards)
	return cards
}

// Attempts returns a copy of the append-only attempt log.
func (s *Session) Attempts() []models.Attempt {
	attempts := make([]models.Attempt, len(s.attempts))
	copy(attempts, s.attempts)
	return attempts
}

// Summary reports the session aggregates as of now. For an ended session the
// recorded end time wins over now.
func (s *Session) Summary(now time.Time) Summary {
	end := now
	if s.endedAt != nil {
		end = *s.endedAt
	}

	seconds := int(end.Sub(s.startedAt).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	if seconds > maxSessionSeconds {
		seconds = maxSessionSeconds
	}

	total := s.correct + s.incorrect
	summary := Summary{
		SessionID:       s.id,
		StartedAt:       s.startedAt,
		DurationSeconds: seconds,
		TotalAnswered:   total,
		Correct:         s.correct,
		Incorrect:       s.incorrect,
		BestStreak:      s.bestStreak,
	}
	if s.endedAt != nil {
		ended := *s.endedAt
		summary.EndedAt = &ended
	}
	if total > 0 {
		summary.AccuracyRate = float64(s.correct) / float64(total) * 100
	}
	return summary
}

// End closes the session and returns the final summary. Ending twice keeps
// the first end time.
func (s *Session) End(now time.Time) Summary {
	if s.endedAt == nil {
		ended := now
		s.endedAt = &ended
	}
	return s.Summary(now)
}
