package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/hand"
	"github.com/arcanaland/blackjack/internal/round"
	"github.com/arcanaland/blackjack/internal/session"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := colorize.NoColor
	colorize.NoColor = true
	t.Cleanup(func() { colorize.NoColor = prev })
}

func TestTableHidesHoleCard(t *testing.T) {
	noColor(t)

	stack := []card.Card{
		card.MustParse("10h"), card.MustParse("6s"),
		card.MustParse("Qd"), card.MustParse("7c"),
	}
	s := session.New(
		session.WithPlayerName("Ada"),
		session.WithRoundOptions(round.WithDeckSource(func() *deck.Deck { return deck.Stacked(stack...) })),
	)
	_, err := s.Init(100)
	require.NoError(t, err)
	_, err = s.PlaceBet(10)
	require.NoError(t, err)
	snap, err := s.Deal()
	require.NoError(t, err)

	var buf bytes.Buffer
	New(&buf, NewPalette(config.Default().Theme)).Table(snap)
	out := buf.String()

	assert.Contains(t, out, "Player: Ada")
	assert.Contains(t, out, "Chips: $90")
	assert.Contains(t, out, "Bet: $10")
	assert.Contains(t, out, "Dealer (7)")
	assert.Contains(t, out, "Ada (16)")
	assert.Contains(t, out, "│░░░│ │7 ♣│")
	assert.Contains(t, out, "│10♥│ │6 ♠│")
	assert.NotContains(t, out, "Q ♦")
}

func TestTableWithoutCards(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	New(&buf, NewPalette(config.Default().Theme)).Table(session.Snapshot{PlayerName: "Ada", Bankroll: 50})

	assert.Contains(t, buf.String(), "Chips: $50")
	assert.NotContains(t, buf.String(), "Dealer")
}

func TestSoftScore(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	r := New(&buf, NewPalette(config.Default().Theme))
	h := hand.Hand{card.MustParse("Ah"), card.MustParse("6s")}
	r.hand("Dealer", h, hand.Score(h))

	assert.Contains(t, buf.String(), "Dealer (soft 17)")
}

func TestPaletteTrueColor(t *testing.T) {
	prev := colorize.NoColor
	colorize.NoColor = false
	t.Cleanup(func() { colorize.NoColor = prev })

	p := NewPalette(config.Theme{RedSuit: "#ff0000", BlackSuit: "not a colour", TrueColor: true})

	assert.Equal(t, "\x1b[38;2;255;0;0mA ♥\x1b[0m", p.Face(card.MustParse("Ah")))
	// invalid colours fall back to the default theme
	assert.Equal(t, "\x1b[38;2;229;231;235mK ♠\x1b[0m", p.Face(card.MustParse("Ks")))
	assert.Equal(t, "░░░", stripAnsi(p.Back()))
}

func TestOutcomeMessage(t *testing.T) {
	tests := []struct {
		result round.Result
		payout int
		want   string
		tone   Tone
	}{
		{round.PlayerBust, 0, "You Busted! Dealer Wins.", Bad},
		{round.DealerBust, 40, "Dealer Busts! You Win $20!", Good},
		{round.Blackjack, 50, "Blackjack! You Win $30!", Good},
		{round.PlayerWin, 40, "You Win $20!", Good},
		{round.DealerWin, 0, "Dealer Wins.", Bad},
		{round.Push, 20, "Push (Tie).", Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.result.String(), func(t *testing.T) {
			msg, tone := OutcomeMessage(round.Outcome{Result: tt.result, Bet: 20, Payout: tt.payout})
			assert.Equal(t, tt.want, msg)
			assert.Equal(t, tt.tone, tone)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{session.ErrGameOver, "Game Over!"},
		{session.ErrNotStarted, "Start a game first"},
		{session.ErrInvalidStartingAmount, "Starting chips must be"},
		{fmt.Errorf("%w: 500 with 100 chips", round.ErrInvalidBet), "Not enough chips for this bet!"},
		{round.ErrNoBetPlaced, "Place a bet to start!"},
		{round.ErrInsufficientChips, "Not enough chips!"},
		{fmt.Errorf("deal: %w", round.ErrDeckExhausted), "bet has been returned"},
		{fmt.Errorf("cannot hit during betting: %w", round.ErrIllegalTransition), "can't do that right now"},
		{errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			msg, _ := ErrorMessage(tt.err)
			assert.Contains(t, msg, tt.want)
		})
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 10)
	assert.Equal(t, []string{"one two", "three four", "five"}, lines)
	assert.Equal(t, []string{""}, wrapText("   ", 40))

	for _, line := range wrapText(strings.Repeat("word ", 40), 20) {
		assert.LessOrEqual(t, len(line), 20)
	}
}

func TestStripAnsi(t *testing.T) {
	assert.Equal(t, "A ♥", stripAnsi("\x1b[38;2;255;0;0mA ♥\x1b[0m"))
}
