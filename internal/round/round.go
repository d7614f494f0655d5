// Package round implements the betting, dealing, turn and settlement cycle of a
// single blackjack hand against the dealer.
package round

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/deck"
	"github.com/arcanaland/blackjack/internal/hand"
)

// DealerStandsOn is the score at which the dealer stops drawing
const DealerStandsOn = 17

// Phase is the position of a round in its lifecycle
type Phase int

const (
	Betting Phase = iota
	PlayerTurn
	DealerTurn
	Settled
)

func (p Phase) String() string {
	switch p {
	case Betting:
		return "betting"
	case PlayerTurn:
		return "player turn"
	case DealerTurn:
		return "dealer turn"
	case Settled:
		return "settled"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Round is the state machine for consecutive rounds played against one bankroll
type Round struct {
	phase    Phase
	bankroll int
	bet      int

	id     uuid.UUID
	deck   *deck.Deck
	player hand.Hand
	dealer hand.Hand
	draws  []card.Card
	last   *Outcome

	newDeck func() *deck.Deck
	logger  *slog.Logger
}

type Option func(*Round)

// WithRand shuffles every new deck with rng
func WithRand(rng deck.Source) Option {
	return func(r *Round) {
		r.newDeck = func() *deck.Deck { return deck.New(rng) }
	}
}

// WithDeckSource replaces deck building. Each deal calls fn exactly once.
func WithDeckSource(fn func() *deck.Deck) Option {
	return func(r *Round) {
		r.newDeck = fn
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Round) {
		r.logger = logger
	}
}

// New returns a round in the betting phase. bankroll must be positive.
func New(bankroll int, opts ...Option) *Round {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	r := &Round{
		phase:    Betting,
		bankroll: bankroll,
		newDeck:  func() *deck.Deck { return deck.New(rng) },
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PlaceBet selects the stake for the next deal, replacing any earlier selection
func (r *Round) PlaceBet(amount int) error {
	if r.phase != Betting {
		return illegal("place a bet", r.phase)
	}
	if amount <= 0 || amount > r.bankroll {
		return fmt.Errorf("%w: %d with %d chips", ErrInvalidBet, amount, r.bankroll)
	}

	r.bet = amount
	return nil
}

// Deal takes the stake, shuffles a fresh deck and deals two cards each, player first.
// A natural 21 plays out the dealer turn at once.
func (r *Round) Deal() error {
	if r.phase != Betting {
		return illegal("deal", r.phase)
	}
	if r.bet == 0 {
		return ErrNoBetPlaced
	}
	if r.bet > r.bankroll {
		return fmt.Errorf("%w: bet %d with %d chips", ErrInsufficientChips, r.bet, r.bankroll)
	}

	r.bankroll -= r.bet
	r.id = uuid.New()
	r.deck = r.newDeck()
	r.player, r.dealer, r.draws = nil, nil, nil
	r.phase = PlayerTurn

	for _, h := range []*hand.Hand{&r.player, &r.player, &r.dealer, &r.dealer} {
		c, err := r.deck.Draw()
		if err != nil {
			return r.abort("deal", err)
		}
		*h = append(*h, c)
	}

	r.logger.Debug("dealt",
		"round", r.id,
		"bet", r.bet,
		"player", r.player.String(),
		"player_score", hand.Score(r.player))

	if hand.Score(r.player) == hand.Limit {
		return r.dealerTurn()
	}
	return nil
}

// Hit draws a card for the player. Busting ends the player's turn.
func (r *Round) Hit() error {
	if r.phase != PlayerTurn {
		return illegal("hit", r.phase)
	}

	c, err := r.deck.Draw()
	if err != nil {
		return r.abort("hit", err)
	}
	r.player = append(r.player, c)

	r.logger.Debug("hit", "round", r.id, "card", c.String(), "player_score", hand.Score(r.player))

	if hand.IsBust(r.player) {
		return r.dealerTurn()
	}
	return nil
}

// Stand ends the player's turn, plays the dealer's hand and settles the round
func (r *Round) Stand() error {
	if r.phase != PlayerTurn {
		return illegal("stand", r.phase)
	}
	return r.dealerTurn()
}

// dealerTurn reveals the hole card and draws below 17, then settles
func (r *Round) dealerTurn() error {
	r.phase = DealerTurn

	for hand.Score(r.dealer) < DealerStandsOn {
		c, err := r.deck.Draw()
		if err != nil {
			return r.abort("dealer turn", err)
		}
		r.dealer = append(r.dealer, c)
		r.draws = append(r.draws, c)
	}

	r.settle()
	return nil
}

func (r *Round) settle() {
	r.phase = Settled

	result := decide(r.player, r.dealer)
	credit := payout(result, r.bet)
	r.bankroll += credit

	r.last = &Outcome{
		RoundID:     r.id,
		Result:      result,
		Bet:         r.bet,
		Payout:      credit,
		Bankroll:    r.bankroll,
		PlayerScore: hand.Score(r.player),
		DealerScore: hand.Score(r.dealer),
		Player:      slices.Clone(r.player),
		Dealer:      slices.Clone(r.dealer),
		DealerDraws: slices.Clone(r.draws),
	}

	r.logger.Info("round settled",
		"round", r.id,
		"result", result.String(),
		"bet", r.bet,
		"payout", credit,
		"player_score", r.last.PlayerScore,
		"dealer_score", r.last.DealerScore,
		"bankroll", r.bankroll)

	r.bet = 0
	r.phase = Betting
}

// abort puts the round back to betting with the stake refunded
func (r *Round) abort(op string, err error) error {
	r.logger.Error("round aborted",
		"round", r.id,
		"op", op,
		"phase", r.phase.String(),
		"refund", r.bet,
		"error", err)

	r.bankroll += r.bet
	r.bet = 0
	r.player, r.dealer, r.draws = nil, nil, nil
	r.deck = nil
	r.phase = Betting

	return fmt.Errorf("%s: %w", op, err)
}

// Phase returns the current phase
func (r *Round) Phase() Phase {
	return r.phase
}

// Bankroll returns the chips not currently staked
func (r *Round) Bankroll() int {
	return r.bankroll
}

// Bet returns the current stake, or the pending selection while betting
func (r *Round) Bet() int {
	return r.bet
}

// ID returns the identifier of the most recent deal
func (r *Round) ID() uuid.UUID {
	return r.id
}

// Player returns a copy of the player's hand
func (r *Round) Player() hand.Hand {
	return slices.Clone(r.player)
}

// Dealer returns a copy of the dealer's hand. Unless revealHidden is set, the hole
// card is replaced by a face-down card while the player is still acting.
func (r *Round) Dealer(revealHidden bool) hand.Hand {
	h := slices.Clone(r.dealer)
	if !revealHidden && r.phase == PlayerTurn && len(h) > 0 {
		h[0] = card.Card{}
	}
	return h
}

// Last returns the most recent settlement, if any
func (r *Round) Last() (Outcome, bool) {
	if r.last == nil {
		return Outcome{}, false
	}
	return *r.last, true
}
