// Package render prints the blackjack table and messages to a terminal.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/hand"
	"github.com/arcanaland/blackjack/internal/round"
	"github.com/arcanaland/blackjack/internal/session"
)

// DefaultWidth is used when the terminal size is unknown
const DefaultWidth = 80

// Tone picks the colour of a message
type Tone int

const (
	Info Tone = iota
	Good
	Bad
	Neutral
)

// Renderer writes table views to out
type Renderer struct {
	out     io.Writer
	palette Palette
	width   int
}

func New(out io.Writer, palette Palette) *Renderer {
	return &Renderer{
		out:     out,
		palette: palette,
		width:   TerminalWidth(out),
	}
}

// TerminalWidth returns the width of out when it is a terminal
func TerminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Table prints the bankroll line and both hands
func (r *Renderer) Table(snap session.Snapshot) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, colorize.CyanString("Player: ")+colorize.HiWhiteString("%s", snap.PlayerName)+
		"   "+colorize.CyanString("Chips: ")+colorize.HiWhiteString("$%d", snap.Bankroll)+
		"   "+colorize.CyanString("Bet: ")+colorize.HiWhiteString("$%d", snap.Bet))
	fmt.Fprintln(r.out, strings.Repeat("─", min(r.width, 60)))

	if len(snap.DealerHand) == 0 && len(snap.PlayerHand) == 0 {
		return
	}

	r.hand("Dealer", snap.DealerHand, snap.DealerScore)
	r.hand(snap.PlayerName, snap.PlayerHand, snap.PlayerScore)
}

// hand prints a labelled row of cards with its score
func (r *Renderer) hand(label string, h hand.Hand, score int) {
	scoreText := fmt.Sprintf("(%d)", score)
	if hand.IsSoft(h) && score < hand.Limit {
		scoreText = fmt.Sprintf("(soft %d)", score)
	}
	fmt.Fprintln(r.out, colorize.CyanString("%s ", label)+colorize.HiWhiteString("%s", scoreText))

	for _, line := range r.Cards(h) {
		fmt.Fprintln(r.out, "  "+line)
	}
}

// Cards draws h as a row of boxed cards, three lines high
func (r *Renderer) Cards(h hand.Hand) []string {
	if len(h) == 0 {
		return nil
	}

	top := make([]string, len(h))
	mid := make([]string, len(h))
	bottom := make([]string, len(h))
	for i, c := range h {
		top[i] = "╭───╮"
		bottom[i] = "╰───╯"
		mid[i] = "│" + r.face(c) + "│"
	}

	return []string{
		strings.Join(top, " "),
		strings.Join(mid, " "),
		strings.Join(bottom, " "),
	}
}

func (r *Renderer) face(c card.Card) string {
	if c.IsZero() {
		return r.palette.Back()
	}
	return r.palette.Face(c)
}

// Card prints one card inline, as shown while the dealer draws
func (r *Renderer) Card(label string, c card.Card, score int) {
	fmt.Fprintf(r.out, "%s draws %s (%d)\n", label, r.face(c), score)
}

// Reveal prints the turned hole card with the score of the whole hand
func (r *Renderer) Reveal(label string, c card.Card, score int) {
	fmt.Fprintf(r.out, "%s reveals %s (%d)\n", label, r.face(c), score)
}

// Message prints msg in the colour of tone
func (r *Renderer) Message(msg string, tone Tone) {
	for _, line := range wrapText(msg, r.width) {
		fmt.Fprintln(r.out, toneColor(tone).Sprint(line))
	}
}

// Outcome prints the result of a settled round
func (r *Renderer) Outcome(out round.Outcome) {
	msg, tone := OutcomeMessage(out)
	r.Message(msg, tone)
}

func toneColor(tone Tone) *colorize.Color {
	switch tone {
	case Good:
		return colorize.New(colorize.FgGreen, colorize.Bold)
	case Bad:
		return colorize.New(colorize.FgRed, colorize.Bold)
	case Neutral:
		return colorize.New(colorize.FgHiBlack, colorize.Bold)
	default:
		return colorize.New(colorize.FgYellow, colorize.Bold)
	}
}

// OutcomeMessage describes a settled round
func OutcomeMessage(out round.Outcome) (string, Tone) {
	switch out.Result {
	case round.PlayerBust:
		return "You Busted! Dealer Wins.", Bad
	case round.DealerBust:
		return fmt.Sprintf("Dealer Busts! You Win $%d!", out.Net()), Good
	case round.Blackjack:
		return fmt.Sprintf("Blackjack! You Win $%d!", out.Net()), Good
	case round.PlayerWin:
		return fmt.Sprintf("You Win $%d!", out.Net()), Good
	case round.DealerWin:
		return "Dealer Wins.", Bad
	case round.Push:
		return "Push (Tie).", Neutral
	default:
		return "Round over.", Info
	}
}

// ErrorMessage turns a command error into a short message for the player
func ErrorMessage(err error) (string, Tone) {
	switch {
	case errors.Is(err, session.ErrGameOver):
		return "Game Over! No more chips. Type 'restart <chips>' to play again.", Bad
	case errors.Is(err, session.ErrNotStarted):
		return "Start a game first with 'restart <chips>'.", Info
	case errors.Is(err, session.ErrInvalidStartingAmount):
		return "Starting chips must be a positive number.", Bad
	case errors.Is(err, session.ErrInvalidName):
		return "Name cannot be blank.", Bad
	case errors.Is(err, round.ErrInvalidBet):
		return "Not enough chips for this bet!", Bad
	case errors.Is(err, round.ErrNoBetPlaced):
		return "Place a bet to start!", Info
	case errors.Is(err, round.ErrInsufficientChips):
		return "Not enough chips!", Bad
	case errors.Is(err, round.ErrDeckExhausted):
		return "The deck ran out. Your bet has been returned.", Bad
	case errors.Is(err, round.ErrIllegalTransition):
		return "You can't do that right now.", Info
	default:
		return err.Error(), Bad
	}
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	if width < 10 {
		width = DefaultWidth
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(stripAnsi(currentLine))+1+len(stripAnsi(word)) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
