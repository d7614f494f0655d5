// Package session owns a player's bankroll across rounds and is the only surface
// presentation code talks to. Commands return a Snapshot of the resulting state.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/arcanaland/blackjack/internal/hand"
	"github.com/arcanaland/blackjack/internal/round"
)

var (
	ErrInvalidStartingAmount = errors.New("invalid starting amount")
	ErrInvalidName           = errors.New("invalid player name")

	// ErrGameOver locks the session once the bankroll is gone. Init unlocks it.
	ErrGameOver = fmt.Errorf("game over: %w", round.ErrIllegalTransition)
	// ErrNotStarted is returned by commands issued before the first Init
	ErrNotStarted = fmt.Errorf("session not started: %w", round.ErrIllegalTransition)
)

// DefaultPlayerName is used until the player picks a name
const DefaultPlayerName = "Player"

// Stats counts the rounds settled since the last Init
type Stats struct {
	Rounds     int
	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int
	Peak       int // highest bankroll seen
}

// Snapshot is a read-only view of the session
type Snapshot struct {
	SessionID   uuid.UUID
	PlayerName  string
	Phase       round.Phase
	Bankroll    int
	Bet         int
	PlayerHand  hand.Hand
	DealerHand  hand.Hand // hole card withheld while the player acts
	PlayerScore int
	DealerScore int // score of the visible dealer cards
	LastOutcome *round.Outcome
	GameOver    bool
	Started     bool
	Stats       Stats
}

// Session is the controller between user intents and the round state machine
type Session struct {
	id     uuid.UUID
	round  *round.Round
	over   bool
	name   string
	stats  Stats
	logger *slog.Logger

	// round ID of the last outcome folded into stats
	recorded uuid.UUID

	roundOpts []round.Option
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithRoundOptions passes options to every round created by Init
func WithRoundOptions(opts ...round.Option) Option {
	return func(s *Session) {
		s.roundOpts = append(s.roundOpts, opts...)
	}
}

func WithPlayerName(name string) Option {
	return func(s *Session) {
		if name = strings.TrimSpace(name); name != "" {
			s.name = name
		}
	}
}

// New returns a session that accepts commands after Init
func New(opts ...Option) *Session {
	s := &Session{
		name:   DefaultPlayerName,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init starts over with startingChips, clearing hands, bet, stats and the game-over lock
func (s *Session) Init(startingChips int) (Snapshot, error) {
	if startingChips <= 0 {
		return s.Snapshot(), fmt.Errorf("%w: %d", ErrInvalidStartingAmount, startingChips)
	}

	opts := append([]round.Option{round.WithLogger(s.logger)}, s.roundOpts...)
	s.round = round.New(startingChips, opts...)
	s.id = uuid.New()
	s.over = false
	s.stats = Stats{Peak: startingChips}
	s.recorded = uuid.Nil

	s.logger.Info("session started", "session", s.id, "player", s.name, "chips", startingChips)
	return s.Snapshot(), nil
}

// PlaceBet selects the stake for the next deal
func (s *Session) PlaceBet(amount int) (Snapshot, error) {
	return s.command("place bet", func(r *round.Round) error { return r.PlaceBet(amount) })
}

// Deal starts a round with the selected stake
func (s *Session) Deal() (Snapshot, error) {
	return s.command("deal", (*round.Round).Deal)
}

// Hit draws a card for the player
func (s *Session) Hit() (Snapshot, error) {
	return s.command("hit", (*round.Round).Hit)
}

// Stand hands the turn to the dealer and settles the round
func (s *Session) Stand() (Snapshot, error) {
	return s.command("stand", (*round.Round).Stand)
}

func (s *Session) command(op string, fn func(*round.Round) error) (Snapshot, error) {
	if s.round == nil {
		return s.Snapshot(), ErrNotStarted
	}
	if s.over {
		return s.Snapshot(), ErrGameOver
	}

	if err := fn(s.round); err != nil {
		s.logger.Debug("command rejected", "session", s.id, "op", op, "error", err)
		return s.Snapshot(), err
	}

	if out, ok := s.round.Last(); ok && out.RoundID != s.recorded {
		s.record(out)
	}

	return s.Snapshot(), nil
}

// record folds a settled round into the stats and locks the session when broke
func (s *Session) record(out round.Outcome) {
	s.recorded = out.RoundID
	s.stats.Rounds++
	switch {
	case out.Result == round.Push:
		s.stats.Pushes++
	case out.Result.PlayerWon():
		s.stats.Wins++
	default:
		s.stats.Losses++
	}
	if out.Result == round.Blackjack {
		s.stats.Blackjacks++
	}
	if out.Bankroll > s.stats.Peak {
		s.stats.Peak = out.Bankroll
	}

	if out.Bankroll == 0 {
		s.over = true
		s.logger.Warn("game over", "session", s.id, "rounds", s.stats.Rounds, "peak", s.stats.Peak)
	}
}

// SetPlayerName changes the displayed player name
func (s *Session) SetPlayerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	s.name = name
	return nil
}

func (s *Session) PlayerName() string {
	return s.name
}

func (s *Session) Bankroll() int {
	if s.round == nil {
		return 0
	}
	return s.round.Bankroll()
}

func (s *Session) CurrentBet() int {
	if s.round == nil {
		return 0
	}
	return s.round.Bet()
}

func (s *Session) PlayerHand() hand.Hand {
	if s.round == nil {
		return nil
	}
	return s.round.Player()
}

// DealerHand returns the dealer's cards. With revealHidden unset the hole card is
// withheld while the player is acting.
func (s *Session) DealerHand(revealHidden bool) hand.Hand {
	if s.round == nil {
		return nil
	}
	return s.round.Dealer(revealHidden)
}

func (s *Session) Phase() round.Phase {
	if s.round == nil {
		return round.Betting
	}
	return s.round.Phase()
}

// LastOutcome returns the most recent settlement, if any
func (s *Session) LastOutcome() (round.Outcome, bool) {
	if s.round == nil {
		return round.Outcome{}, false
	}
	return s.round.Last()
}

// GameOver reports whether the session is locked until the next Init
func (s *Session) GameOver() bool {
	return s.over
}

func (s *Session) Stats() Stats {
	return s.stats
}

// Snapshot captures the player-facing state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:  s.id,
		PlayerName: s.name,
		Phase:      s.Phase(),
		Bankroll:   s.Bankroll(),
		Bet:        s.CurrentBet(),
		PlayerHand: s.PlayerHand(),
		DealerHand: s.DealerHand(false),
		GameOver:   s.over,
		Started:    s.round != nil,
		Stats:      s.stats,
	}
	snap.PlayerScore = hand.Score(snap.PlayerHand)
	snap.DealerScore = hand.Score(snap.DealerHand)

	if out, ok := s.LastOutcome(); ok {
		snap.LastOutcome = &out
	}
	return snap
}
