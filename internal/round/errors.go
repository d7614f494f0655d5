package round

import (
	"errors"
	"fmt"

	"github.com/arcanaland/blackjack/internal/deck"
)

var (
	ErrInvalidBet        = errors.New("invalid bet")
	ErrNoBetPlaced       = errors.New("no bet placed")
	ErrInsufficientChips = errors.New("insufficient chips")
	ErrIllegalTransition = errors.New("illegal transition")

	// ErrDeckExhausted aborts the round in progress and refunds the bet
	ErrDeckExhausted = deck.ErrDeckExhausted
)

func illegal(op string, phase Phase) error {
	return fmt.Errorf("cannot %s during %s: %w", op, phase, ErrIllegalTransition)
}
