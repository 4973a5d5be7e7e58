package models

import (
	"time"

	"github.com/google/uuid"
)

type Attempt struct {
	ID             uuid.UUID `json:"id"`
	CardID         string    `json:"card_id"`
	SelectedIndex  int       `json:"selected_index"`
	Correct        bool      `json:"correct"`
	ElapsedSeconds float64   `json:"elapsed_seconds"`
	AnsweredAt     time.Time `json:"answered_at"`
}
