package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankValue(t *testing.T) {
	tests := []struct {
		rank Rank
		want int
	}{
		{Two, 2},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
		{Ace, 11},
		{Rank(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.rank.Symbol(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rank.Value())
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "A♠", Card{Suit: Spades, Rank: Ace}.String())
	assert.Equal(t, "10♥", Card{Suit: Hearts, Rank: Ten}.String())
	assert.Equal(t, "??", Card{}.String())
	assert.True(t, Card{}.IsZero())
}

func TestParse(t *testing.T) {
	tests := []struct {
		token string
		want  Card
	}{
		{"A♠", Card{Suit: Spades, Rank: Ace}},
		{"10h", Card{Suit: Hearts, Rank: Ten}},
		{"Th", Card{Suit: Hearts, Rank: Ten}},
		{"kd", Card{Suit: Diamonds, Rank: King}},
		{"QS", Card{Suit: Spades, Rank: Queen}},
		{"2♣", Card{Suit: Clubs, Rank: Two}},
		{" 7c ", Card{Suit: Clubs, Rank: Seven}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, token := range []string{"", "A", "1h", "11s", "Zx", "Bh", "05h"} {
		t.Run(token, func(t *testing.T) {
			_, err := Parse(token)
			assert.Error(t, err)
		})
	}
}

func TestRedSuits(t *testing.T) {
	assert.True(t, Hearts.Red())
	assert.True(t, Diamonds.Red())
	assert.False(t, Clubs.Red())
	assert.False(t, Spades.Red())
}
