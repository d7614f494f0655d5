package cmd

import (
	"fmt"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/hand"
	"github.com/arcanaland/blackjack/internal/render"
)

var scoreCmd = &cobra.Command{
	Use:   "score [card...]",
	Short: "Score a blackjack hand",
	Long: `Score evaluates a hand the way the table does: face cards count 10 and
Aces count 11 until the hand would go over 21.

Cards are written rank then suit, with the suit as a glyph or a letter.

Examples:
  blackjack score A♠ K♦
  blackjack score 10h 6s Ac
  blackjack score qd 9c 5s`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := parseHand(args)
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		out := cmd.OutOrStdout()
		r := render.New(out, render.NewPalette(cfg.Theme))
		for _, line := range r.Cards(h) {
			fmt.Fprintln(out, "  "+line)
		}

		fmt.Fprintln(out, colorize.CyanString("Score: ")+colorize.HiWhiteString("%d", hand.Score(h)))
		fmt.Fprintln(out, colorize.CyanString("Soft: ")+colorize.HiWhiteString("%t", hand.IsSoft(h)))

		switch {
		case hand.IsBlackjack(h):
			r.Message("Blackjack!", render.Good)
		case hand.IsBust(h):
			r.Message("Bust!", render.Bad)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(scoreCmd)
}

// parseHand reads card tokens, rejecting cards that appear twice in a single deck
func parseHand(tokens []string) (hand.Hand, error) {
	h := make(hand.Hand, 0, len(tokens))
	seen := make(map[card.Card]bool, len(tokens))
	for _, token := range tokens {
		c, err := card.Parse(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("card %s appears more than once", c)
		}
		seen[c] = true
		h = append(h, c)
	}
	return h, nil
}
