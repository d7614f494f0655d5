package render

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/blackjack/internal/card"
	"github.com/arcanaland/blackjack/internal/config"
)

// Palette is a resolved card theme
type Palette struct {
	red       colorful.Color
	black     colorful.Color
	back      colorful.Color
	trueColor bool
}

// NewPalette parses the hex colours of a theme. Colours that don't parse fall back to
// the default theme.
func NewPalette(theme config.Theme) Palette {
	defaults := config.Default().Theme
	return Palette{
		red:       parseHex(theme.RedSuit, defaults.RedSuit),
		black:     parseHex(theme.BlackSuit, defaults.BlackSuit),
		back:      parseHex(theme.CardBack, defaults.CardBack),
		trueColor: theme.TrueColor,
	}
}

func parseHex(value, fallback string) colorful.Color {
	if c, err := colorful.Hex(value); err == nil {
		return c
	}
	c, _ := colorful.Hex(fallback)
	return c
}

// Face returns the printed face of c in its suit colour
func (p Palette) Face(c card.Card) string {
	face := fmt.Sprintf("%-2s%s", c.Rank.Symbol(), c.Suit.Symbol())
	if c.Suit.Red() {
		return p.paint(face, p.red, colorize.FgRed)
	}
	return p.paint(face, p.black, colorize.FgHiWhite)
}

// Back returns the pattern printed for a face-down card
func (p Palette) Back() string {
	return p.paint("░░░", p.back, colorize.FgBlue)
}

// paint colours s with c in true colour, or with the nearest basic attribute
func (p Palette) paint(s string, c colorful.Color, basic colorize.Attribute) string {
	if colorize.NoColor {
		return s
	}
	if !p.trueColor {
		return colorize.New(basic).Sprint(s)
	}
	return ansiColorString(s, c)
}

// ansiColorString wraps s in a 24-bit foreground colour escape
func ansiColorString(s string, c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}
