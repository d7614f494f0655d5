package hand

import (
	"strings"
	"testing"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/stretchr/testify/assert"
)

func parse(tokens string) Hand {
	var h Hand
	for _, tok := range strings.Fields(tokens) {
		h = append(h, card.MustParse(tok))
	}
	return h
}

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		hand      string
		score     int
		blackjack bool
		bust      bool
		soft      bool
	}{
		{"empty", "", 0, false, false, false},
		{"ten ace", "10h As", 21, true, false, true},
		{"king ace", "Kd Ac", 21, true, false, true},
		{"two aces nine", "Ah As 9c", 21, false, false, true},
		{"bust", "Ks Qh 5d", 25, false, true, false},
		{"two aces", "Ah As", 12, false, false, true},
		{"four aces", "Ah As Ad Ac", 14, false, false, true},
		{"hard after demotion", "Ah 9s 5d", 15, false, false, false},
		{"three card 21", "7h 7s 7d", 21, false, false, false},
		{"soft 17", "Ah 6s", 17, false, false, true},
		{"aces demoted then bust", "Ah Ks Qd 5c", 26, false, true, false},
		{"face down card", "?? 9s", 9, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Hand
			if strings.HasPrefix(tt.hand, "??") {
				h = append(Hand{{}}, parse(strings.TrimPrefix(tt.hand, "??"))...)
			} else {
				h = parse(tt.hand)
			}

			assert.Equal(t, tt.score, Score(h))
			assert.Equal(t, tt.blackjack, IsBlackjack(h))
			assert.Equal(t, tt.bust, IsBust(h))
			assert.Equal(t, tt.soft, IsSoft(h))
		})
	}
}

// TestDemotionIsMaximal checks that a hand with an Ace counted high never busts.
func TestDemotionIsMaximal(t *testing.T) {
	for _, r := range card.Ranks {
		for _, r2 := range card.Ranks {
			h := Hand{
				{Suit: card.Spades, Rank: card.Ace},
				{Suit: card.Hearts, Rank: r},
				{Suit: card.Clubs, Rank: r2},
			}
			if IsSoft(h) {
				assert.LessOrEqual(t, Score(h), Limit, h.String())
			}
			// if the all-Aces-low total fits, the best score must fit too
			low := 0
			for _, c := range h {
				if c.Rank == card.Ace {
					low++
				} else {
					low += c.Rank.Value()
				}
			}
			if low <= Limit {
				assert.LessOrEqual(t, Score(h), Limit, h.String())
			}
		}
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "A♠ 10♥", parse("As 10h").String())
}
