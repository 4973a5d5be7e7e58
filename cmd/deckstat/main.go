package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"parlo-engine/internal/config"
	"parlo-engine/internal/deck"
	"parlo-engine/internal/models"
	"parlo-engine/internal/session"
	"parlo-engine/internal/srs"
)

type report struct {
	Deck     string               `json:"deck"`
	Stats    models.DeckStats     `json:"stats"`
	DueQueue []models.Card        `json:"due_queue"`
	Forecast []models.ForecastDay `json:"forecast"`
}

func main() {
	log.Println("🚀 Parlo scheduling engine")

	deckPath := flag.String("deck", "", "path to the deck JSON file (default: DECK_PATH)")
	simulate := flag.Bool("simulate", false, "preview the schedule by answering every due card correctly")
	asJSON := flag.Bool("json", false, "print the report as JSON")
	flag.Parse()

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	if *deckPath == "" {
		*deckPath = cfg.DeckPath
	}

	// ──── Step 2: Load Deck ────
	d, err := deck.LoadFile(*deckPath)
	if err != nil {
		log.Fatalf("✗ Deck load failed: %v", err)
	}
	log.Printf("✓ Loaded deck %q (%d cards)", d.Name, len(d.Cards))

	// ──── Step 3: Build Scheduler ────
	sched := srs.NewScheduler(cfg.Scheduler)
	now := time.Now()

	cards := make([]models.Card, len(d.Cards))
	copy(cards, d.Cards)
	for i := range cards {
		if cards[i].EaseFactor == 0 {
			cards[i] = sched.Initialize(cards[i], now)
		}
	}

	rep := report{
		Deck:     d.Name,
		Stats:    sched.Stats(cards, now),
		DueQueue: sched.Prioritize(sched.DueCards(cards, now)),
		Forecast: sched.Forecast(cards, now),
	}

	if *asJSON {
		printJSON(rep)
	} else {
		printReport(rep, now)
	}

	if *simulate {
		runSimulation(sched, cards, now, *asJSON)
	}
}

func printReport(rep report, now time.Time) {
	fmt.Printf("\nDeck: %s\n", rep.Deck)
	s := rep.Stats
	fmt.Printf("Cards: %d total, %d new, %d learning, %d mastered (%d%% complete)\n",
		s.TotalCards, s.New, s.Learning, s.Mastered, s.CompletionRate)
	fmt.Printf("Due now: %d\n\n", s.DueNow)

	if len(rep.DueQueue) > 0 {
		fmt.Println("Review queue:")
		for i, c := range rep.DueQueue {
			overdue := int(now.Sub(c.NextReviewAt).Hours() / 24)
			switch {
			case c.Repetitions == 0 && c.LastReviewedAt == nil:
				fmt.Printf("  %2d. [%s] %s (new)\n", i+1, c.ID, c.Prompt)
			case overdue > 0:
				fmt.Printf("  %2d. [%s] %s (%dd overdue)\n", i+1, c.ID, c.Prompt, overdue)
			default:
				fmt.Printf("  %2d. [%s] %s\n", i+1, c.ID, c.Prompt)
			}
		}
		fmt.Println()
	}

	fmt.Println("Upcoming reviews:")
	for _, day := range rep.Forecast {
		fmt.Printf("  %s  %d\n", day.Date.Format("Mon 2006-01-02"), day.Count)
	}
}

func runSimulation(sched *srs.Scheduler, cards []models.Card, now time.Time, asJSON bool) {
	sess := session.New(sched, cards, now)
	for {
		card, ok := sess.Current()
		if !ok {
			break
		}
		// Perfect recall: the right option, answered quickly.
		if _, err := sess.Answer(card.CorrectIndex, 2, now); err != nil {
			log.Fatalf("✗ Simulation failed: %v", err)
		}
	}
	summary := sess.End(now)
	after := sched.Stats(sess.Cards(), now)

	if asJSON {
		printJSON(struct {
			Summary session.Summary  `json:"summary"`
			After   models.DeckStats `json:"after"`
		}{summary, after})
		return
	}

	fmt.Printf("\nSimulated session: answered %d cards, %d correct, best streak %d\n",
		summary.TotalAnswered, summary.Correct, summary.BestStreak)
	fmt.Printf("After review: %d due now, %d learning, %d mastered\n",
		after.DueNow, after.Learning, after.Mastered)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("✗ JSON encode failed: %v", err)
	}
	fmt.Println(string(out))
}
