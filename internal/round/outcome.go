package round

import (
	"github.com/google/uuid"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/hand"
)

// Result is how a round was decided
type Result int

const (
	PlayerBust Result = iota + 1
	DealerBust
	Blackjack
	PlayerWin
	DealerWin
	Push
)

func (r Result) String() string {
	switch r {
	case PlayerBust:
		return "player_bust"
	case DealerBust:
		return "dealer_bust"
	case Blackjack:
		return "blackjack"
	case PlayerWin:
		return "player_win"
	case DealerWin:
		return "dealer_win"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// PlayerWon reports whether the result pays the player more than the stake
func (r Result) PlayerWon() bool {
	return r == DealerBust || r == Blackjack || r == PlayerWin
}

// Outcome records a settled round
type Outcome struct {
	RoundID     uuid.UUID
	Result      Result
	Bet         int
	Payout      int // chips credited back at settlement, stake included
	Bankroll    int // bankroll after the payout
	PlayerScore int
	DealerScore int
	Player      hand.Hand
	Dealer      hand.Hand
	DealerDraws []card.Card // cards the dealer took during its turn, in order
}

// Net returns the chips won or lost over the round
func (o Outcome) Net() int {
	return o.Payout - o.Bet
}

// payout returns the chips credited for result on bet
func payout(result Result, bet int) int {
	switch result {
	case DealerBust, PlayerWin:
		return 2 * bet
	case Blackjack:
		// 3:2 winnings, rounded down to whole chips
		return bet + bet*3/2
	case Push:
		return bet
	default:
		return 0
	}
}

// decide applies the settlement precedence to the final hands
func decide(player, dealer hand.Hand) Result {
	ps, ds := hand.Score(player), hand.Score(dealer)

	switch {
	case ps > hand.Limit:
		return PlayerBust
	case ds > hand.Limit:
		return DealerBust
	case hand.IsBlackjack(player) && !hand.IsBlackjack(dealer):
		return Blackjack
	case ps > ds:
		return PlayerWin
	case ps < ds:
		return DealerWin
	default:
		return Push
	}
}
