package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	colorize "github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/hand"
	"github.com/arcanaland/blackjack/internal/render"
	"github.com/arcanaland/blackjack/internal/round"
	"github.com/arcanaland/blackjack/internal/session"
)

var (
	playChips int
	playSeed  uint64
)

// playCmd represents the play command
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Sit down at the table",
	Long: `Play starts an interactive blackjack session against the dealer.
Place a bet, deal, then hit or stand. Type 'help' at the prompt for all commands.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		var roundOpts []round.Option
		if playSeed != 0 {
			roundOpts = append(roundOpts, round.WithRand(rand.New(rand.NewPCG(playSeed, playSeed))))
		}

		s := session.New(
			session.WithLogger(logger),
			session.WithPlayerName(cfg.PlayerName),
			session.WithRoundOptions(roundOpts...),
		)

		chips := cfg.StartingChips
		if cmd.Flags().Changed("chips") {
			chips = playChips
		}
		if _, err := s.Init(chips); err != nil {
			return fmt.Errorf("cannot start session: %v", err)
		}

		out := cmd.OutOrStdout()
		t := newTable(s, cfg, render.New(out, render.NewPalette(cfg.Theme)), cmd.InOrStdin(), out)
		return t.run()
	},
}

func init() {
	playCmd.Flags().IntVar(&playChips, "chips", 0, "Starting chips (default from config)")
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Seed the shuffle for a repeatable game")
	RootCmd.AddCommand(playCmd)
}

// table runs the prompt loop of a play session
type table struct {
	session  *session.Session
	config   *config.Config
	renderer *render.Renderer
	in       *bufio.Scanner
	out      io.Writer
	sleep    func(time.Duration)

	// round ID of the last outcome shown
	shown uuid.UUID
}

func newTable(s *session.Session, cfg *config.Config, r *render.Renderer, in io.Reader, out io.Writer) *table {
	return &table{
		session:  s,
		config:   cfg,
		renderer: r,
		in:       bufio.NewScanner(in),
		out:      out,
		sleep:    time.Sleep,
	}
}

func (t *table) run() error {
	t.renderer.Message("Welcome to the table. Blackjack pays 3:2, dealer stands on 17.", render.Info)
	t.renderer.Table(t.session.Snapshot())
	t.prompt()

	for t.in.Scan() {
		line := strings.TrimSpace(t.in.Text())
		if line == "" {
			t.prompt()
			continue
		}
		if !t.handle(line) {
			t.printStats()
			return nil
		}
		t.prompt()
	}

	if err := t.in.Err(); err != nil {
		return fmt.Errorf("error reading input: %v", err)
	}
	fmt.Fprintln(t.out)
	t.printStats()
	return nil
}

// handle runs one input line and reports whether the loop should go on
func (t *table) handle(line string) bool {
	fields := strings.Fields(line)
	verb, args := strings.ToLower(fields[0]), fields[1:]

	// A bare number is a bet
	if n, err := strconv.Atoi(verb); err == nil {
		t.bet(n)
		return true
	}

	switch verb {
	case "q", "quit", "exit":
		return false
	case "help", "?":
		t.printHelp()
	case "bet", "b":
		if len(args) != 1 {
			t.renderer.Message("Usage: bet <amount>", render.Info)
			return true
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			t.renderer.Message(fmt.Sprintf("'%s' is not a number.", args[0]), render.Bad)
			return true
		}
		t.bet(n)
	case "chip", "c":
		t.chip(args)
	case "deal", "d":
		t.play(t.session.Deal)
	case "hit", "h":
		t.play(t.session.Hit)
	case "stand", "s":
		t.play(t.session.Stand)
	case "restart", "new":
		t.restart(args)
	case "name":
		if err := t.session.SetPlayerName(strings.Join(args, " ")); err != nil {
			t.fail(err)
			return true
		}
		t.renderer.Message(fmt.Sprintf("Playing as %s.", t.session.PlayerName()), render.Info)
	case "stats":
		t.printStats()
	case "table", "show":
		t.renderer.Table(t.session.Snapshot())
	default:
		t.renderer.Message(fmt.Sprintf("Unknown command '%s'. Type 'help' for a list.", verb), render.Info)
	}
	return true
}

func (t *table) bet(amount int) {
	snap, err := t.session.PlaceBet(amount)
	if err != nil {
		t.fail(err)
		return
	}
	t.renderer.Message(fmt.Sprintf("Bet $%d. Type 'deal' to play.", snap.Bet), render.Info)
}

func (t *table) chip(args []string) {
	if len(args) != 1 {
		t.renderer.Message("Usage: chip <n>", render.Info)
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil || i < 1 || i > len(t.config.Chips) {
		t.renderer.Message(fmt.Sprintf("Pick a chip between 1 and %d.", len(t.config.Chips)), render.Bad)
		return
	}
	t.bet(t.config.Chips[i-1])
}

func (t *table) restart(args []string) {
	chips := t.config.StartingChips
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			t.renderer.Message(fmt.Sprintf("'%s' is not a number.", args[0]), render.Bad)
			return
		}
		chips = n
	}

	snap, err := t.session.Init(chips)
	if err != nil {
		t.fail(err)
		return
	}
	t.shown = uuid.Nil
	t.renderer.Message(fmt.Sprintf("New game with $%d.", snap.Bankroll), render.Good)
	t.renderer.Table(snap)
}

// play runs a round command and shows what it changed
func (t *table) play(command func() (session.Snapshot, error)) {
	snap, err := command()
	if err != nil {
		t.fail(err)
		// the bet was refunded and the hands cleared
		if errors.Is(err, round.ErrDeckExhausted) {
			t.renderer.Table(snap)
		}
		return
	}

	if out := snap.LastOutcome; out != nil && out.RoundID != t.shown {
		t.shown = out.RoundID
		t.settle(*out)
		t.renderer.Table(snap)
		t.renderer.Outcome(*out)
		if snap.GameOver {
			t.renderer.Message("Game Over! You're out of chips. Type 'restart <chips>' to play again.", render.Bad)
		}
		return
	}

	t.renderer.Table(snap)
}

// settle plays back the dealer's turn one card at a time
func (t *table) settle(out round.Outcome) {
	shown := out.Dealer[:len(out.Dealer)-len(out.DealerDraws)]
	if len(shown) > 0 {
		t.renderer.Reveal("Dealer", shown[0], hand.Score(shown))
	}

	delay := time.Duration(t.config.DealerDelayMS) * time.Millisecond
	for i, c := range out.DealerDraws {
		if delay > 0 {
			t.sleep(delay)
		}
		t.renderer.Card("Dealer", c, hand.Score(out.Dealer[:len(shown)+i+1]))
	}
}

func (t *table) fail(err error) {
	msg, tone := render.ErrorMessage(err)
	t.renderer.Message(msg, tone)
}

func (t *table) prompt() {
	snap := t.session.Snapshot()
	var hint string
	switch {
	case snap.GameOver:
		hint = "restart <chips> | quit"
	case snap.Phase == round.PlayerTurn:
		hint = "hit | stand"
	case snap.Bet > 0:
		hint = "deal | bet <n> | chip <n>"
	default:
		hint = "bet <n> | chip <n>" + t.chipHint()
	}
	fmt.Fprintf(t.out, "%s %s ", colorize.HiBlackString("[%s]", hint), colorize.CyanString(">"))
}

func (t *table) chipHint() string {
	if len(t.config.Chips) == 0 {
		return ""
	}
	parts := make([]string, len(t.config.Chips))
	for i, c := range t.config.Chips {
		parts[i] = fmt.Sprintf("%d=$%d", i+1, c)
	}
	return " (" + strings.Join(parts, " ") + ")"
}

func (t *table) printHelp() {
	commands := [][2]string{
		{"bet <n>, <n>", "Bet n chips on the next deal"},
		{"chip <i>", "Bet the i-th chip from your config"},
		{"deal", "Deal a round with the current bet"},
		{"hit", "Take another card"},
		{"stand", "End your turn, the dealer plays"},
		{"restart [n]", "Start over with n chips"},
		{"name <name>", "Change your player name"},
		{"stats", "Show this game's results"},
		{"table", "Show the table again"},
		{"quit", "Leave the table"},
	}
	for _, c := range commands {
		fmt.Fprintf(t.out, "  %s %s\n", colorize.CyanString("%-14s", c[0]), c[1])
	}
}

func (t *table) printStats() {
	stats := t.session.Stats()
	fmt.Fprintln(t.out, colorize.CyanString("Rounds: ")+colorize.HiWhiteString("%d", stats.Rounds)+
		"   "+colorize.CyanString("Won: ")+colorize.HiWhiteString("%d", stats.Wins)+
		"   "+colorize.CyanString("Lost: ")+colorize.HiWhiteString("%d", stats.Losses)+
		"   "+colorize.CyanString("Pushed: ")+colorize.HiWhiteString("%d", stats.Pushes))
	fmt.Fprintln(t.out, colorize.CyanString("Blackjacks: ")+colorize.HiWhiteString("%d", stats.Blackjacks)+
		"   "+colorize.CyanString("Peak: ")+colorize.HiWhiteString("$%d", stats.Peak)+
		"   "+colorize.CyanString("Chips: ")+colorize.HiWhiteString("$%d", t.session.Bankroll()))
}
