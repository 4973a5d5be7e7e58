package deck

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"parlo-engine/internal/models"
)

// Global validator instance for reuse
var validate = validator.New()

// Deck is the JSON record an external store exchanges with this engine: a
// named card collection carrying exactly the documented field set.
type Deck struct {
	Name  string        `json:"name" validate:"required"`
	Cards []models.Card `json:"cards" validate:"dive"`
}

// Load decodes and validates a deck. Content-only cards (zero scheduling
// state) are accepted; the scheduler initializes them later.
func Load(r io.Reader) (*Deck, error) {
	var d Deck
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("deck: decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func LoadFile(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("deck: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks the field constraints plus the cross-field rules the tags
// cannot express: the correct answer must name an existing option, and card
// IDs must be unique within the deck.
func (d *Deck) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("deck: invalid: %w", err)
	}
	seen := make(map[string]struct{}, len(d.Cards))
	for i := range d.Cards {
		c := &d.Cards[i]
		if c.CorrectIndex >= len(c.Options) {
			return fmt.Errorf("deck: card %q: correct_index %d out of range for %d options", c.ID, c.CorrectIndex, len(c.Options))
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("deck: duplicate card id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

func (d *Deck) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("deck: encode: %w", err)
	}
	return nil
}

func (d *Deck) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("deck: create %s: %w", path, err)
	}
	defer f.Close()
	return d.Save(f)
}
