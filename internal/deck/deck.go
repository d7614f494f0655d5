package deck

import (
	"errors"

	"github.com/arcanaland/blackjack/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// ErrDeckExhausted is returned when drawing from an empty deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Source supplies uniformly distributed integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Deck represents an ordered pile of cards. The top of the pile is the end of the slice.
type Deck struct {
	cards []card.Card
}

// New builds the 52-card set and shuffles it with rng
func New(rng Source) *Deck {
	d := &Deck{cards: make([]card.Card, 0, Size)}

	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			d.cards = append(d.cards, card.Card{Suit: suit, Rank: rank})
		}
	}

	d.Shuffle(rng)
	return d
}

// Stacked returns a deck that draws the given cards in order, first card first
func Stacked(cards ...card.Card) *Deck {
	d := &Deck{cards: make([]card.Card, len(cards))}
	for i, c := range cards {
		d.cards[len(cards)-1-i] = c
	}
	return d
}

// Shuffle applies a Fisher-Yates permutation to the remaining cards
func (d *Deck) Shuffle(rng Source) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top card
func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, ErrDeckExhausted
	}

	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// Len returns the number of cards left
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns the remaining cards from the top down
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	for i, c := range d.cards {
		out[len(d.cards)-1-i] = c
	}
	return out
}
