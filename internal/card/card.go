package card

import (
	"fmt"
	"strings"
)

// Suit is one of the four French suits
type Suit int

const (
	Hearts Suit = iota + 1
	Diamonds
	Clubs
	Spades
)

// Suits lists every suit in deck-building order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Symbol returns the suit glyph (♥, ♦, ♣, ♠)
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Red reports whether the suit is printed in red
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) String() string {
	return s.Symbol()
}

// Rank is a card rank. Two through Ten carry their face value.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in deck-building order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Symbol returns the printed rank (2-10, J, Q, K, A)
func (r Rank) Symbol() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Value returns the blackjack value of the rank with an Ace counted as 11.
// Unknown ranks are worth nothing.
func (r Rank) Value() int {
	switch {
	case r >= Two && r <= Ten:
		return int(r)
	case r == Jack, r == Queen, r == King:
		return 10
	case r == Ace:
		return 11
	default:
		return 0
	}
}

func (r Rank) String() string {
	return r.Symbol()
}

// Card represents a playing card. The zero Card is a face-down card.
type Card struct {
	Suit Suit
	Rank Rank
}

// IsZero reports whether the card is face down
func (c Card) IsZero() bool {
	return c == Card{}
}

func (c Card) String() string {
	if c.IsZero() {
		return "??"
	}
	return c.Rank.Symbol() + c.Suit.Symbol()
}

// Parse reads a card token such as "A♠", "10h", "kd" or "QS"
func Parse(token string) (Card, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	suit, rankPart, ok := cutSuit(s)
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q: unknown suit", token)
	}

	rank, ok := parseRank(rankPart)
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q: unknown rank", token)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// MustParse is like Parse but panics on bad input. Meant for tests and literals.
func MustParse(token string) Card {
	c, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return c
}

// cutSuit splits the trailing suit off a card token
func cutSuit(s string) (Suit, string, bool) {
	glyphs := map[string]Suit{
		"♥": Hearts, "♦": Diamonds, "♣": Clubs, "♠": Spades,
		"h": Hearts, "d": Diamonds, "c": Clubs, "s": Spades,
	}

	for glyph, suit := range glyphs {
		if strings.HasSuffix(strings.ToLower(s), glyph) {
			return suit, s[:len(s)-len(glyph)], true
		}
	}
	return 0, "", false
}

// parseRank reads a rank symbol, accepting "T" as an alias for ten
func parseRank(s string) (Rank, bool) {
	switch strings.ToUpper(s) {
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	case "A":
		return Ace, true
	case "T":
		return Ten, true
	}

	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || fmt.Sprint(n) != s {
		return 0, false
	}
	if n < int(Two) || n > int(Ten) {
		return 0, false
	}
	return Rank(n), true
}
