package validator

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/blackjack/internal/config"
)

// maxDealerDelayMS is the longest pause that still feels like play
const maxDealerDelayMS = 5000

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults

	config *config.Config
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateConfigToml(); err != nil {
		return v.Results, err
	}

	v.validatePlayer()
	v.validateChips()
	v.validateDealerDelay()
	v.validateTheme()

	return v.Results, nil
}

func (v *Validator) validateConfigToml() error {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		return fmt.Errorf("error parsing %s: %v", v.ConfigPath, err)
	}
	v.config = cfg

	for _, key := range meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("unknown key: %s", key))
	}

	for _, key := range []string{"player_name", "starting_chips", "chips"} {
		if !meta.IsDefined(key) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s not set, using default", key))
		}
	}
	return nil
}

// validatePlayer checks the player name and starting chips
func (v *Validator) validatePlayer() {
	if strings.TrimSpace(v.config.PlayerName) == "" {
		v.Results.Errors = append(v.Results.Errors, "player_name must not be blank")
	}

	if v.config.StartingChips <= 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("starting_chips must be positive, got %d", v.config.StartingChips))
	}
}

// validateChips checks the bet shortcuts offered at the table
func (v *Validator) validateChips() {
	if len(v.config.Chips) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "no chips configured, bets must be typed")
		return
	}

	for i, chip := range v.config.Chips {
		if chip <= 0 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("chips[%d] must be positive, got %d", i, chip))
		} else if chip > v.config.StartingChips && v.config.StartingChips > 0 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("chip %d is larger than starting_chips %d", chip, v.config.StartingChips))
		}
		if chip%2 != 0 {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("chip %d is odd, a blackjack on it loses half a chip", chip))
		}
	}

	if !slices.IsSorted(v.config.Chips) {
		v.Results.Warnings = append(v.Results.Warnings, "chips are not in ascending order")
	}

	seen := map[int]bool{}
	for _, chip := range v.config.Chips {
		if seen[chip] {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("duplicate chip: %d", chip))
		}
		seen[chip] = true
	}
}

func (v *Validator) validateDealerDelay() {
	delay := v.config.DealerDelayMS
	if delay < 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("dealer_delay_ms must not be negative, got %d", delay))
	} else if delay > maxDealerDelayMS {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("dealer_delay_ms %d is longer than %d", delay, maxDealerDelayMS))
	}
}

// validateTheme checks that every theme colour is a hex colour
func (v *Validator) validateTheme() {
	colours := []struct {
		key   string
		value string
	}{
		{"theme.red_suit", v.config.Theme.RedSuit},
		{"theme.black_suit", v.config.Theme.BlackSuit},
		{"theme.card_back", v.config.Theme.CardBack},
	}

	for _, c := range colours {
		if _, err := colorful.Hex(c.value); err != nil {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s is not a hex colour: %q", c.key, c.value))
		}
	}
}
