// Package hand evaluates blackjack hands.
package hand

import (
	"strings"

	"github.com/arcanaland/blackjack/internal/card"
)

// Limit is the highest score that does not bust
const Limit = 21

// Hand is the ordered list of cards held by the player or the dealer
type Hand []card.Card

// Score returns the best total for h. Aces count 11 and are demoted to 1, one at a
// time, while the total is over 21.
func Score(h Hand) int {
	score, _ := evaluate(h)
	return score
}

// IsSoft reports whether an Ace in h is still counted as 11
func IsSoft(h Hand) bool {
	_, soft := evaluate(h)
	return soft > 0
}

// IsBlackjack reports whether h is a two-card 21
func IsBlackjack(h Hand) bool {
	return len(h) == 2 && Score(h) == Limit
}

// IsBust reports whether h scores over 21
func IsBust(h Hand) bool {
	return Score(h) > Limit
}

// evaluate returns the score and the number of Aces still counted high
func evaluate(h Hand) (score, soft int) {
	for _, c := range h {
		score += c.Rank.Value()
		if c.Rank == card.Ace {
			soft++
		}
	}

	for score > Limit && soft > 0 {
		score -= 10
		soft--
	}

	return score, soft
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
