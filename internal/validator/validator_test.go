package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0644))
	return configPath
}

func TestValidConfig(t *testing.T) {
	configPath := writeConfig(t, `
player_name = "Ada"
starting_chips = 500
chips = [10, 20, 50]
dealer_delay_ms = 300

[theme]
red_suit = "#ff0000"
black_suit = "#ffffff"
card_back = "#0000ff"
`)

	results, err := NewValidator(configPath).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestInvalidConfig(t *testing.T) {
	configPath := writeConfig(t, `
player_name = " "
starting_chips = 0
chips = [10, -5, 10]
dealer_delay_ms = -1

[theme]
red_suit = "red"
`)

	results, err := NewValidator(configPath).Validate()
	require.NoError(t, err)
	assert.Contains(t, results.Errors, "player_name must not be blank")
	assert.Contains(t, results.Errors, "starting_chips must be positive, got 0")
	assert.Contains(t, results.Errors, "chips[1] must be positive, got -5")
	assert.Contains(t, results.Errors, "duplicate chip: 10")
	assert.Contains(t, results.Errors, "dealer_delay_ms must not be negative, got -1")
	assert.Contains(t, results.Errors, `theme.red_suit is not a hex colour: "red"`)
	assert.Contains(t, results.Warnings, "chips are not in ascending order")
}

func TestWarnings(t *testing.T) {
	configPath := writeConfig(t, `
starting_chips = 20
chips = [5, 50]
dealer_delay_ms = 9000
surprise = true
`)

	results, err := NewValidator(configPath).Validate()
	require.NoError(t, err)
	assert.Empty(t, results.Errors)
	assert.Contains(t, results.Warnings, "unknown key: surprise")
	assert.Contains(t, results.Warnings, "player_name not set, using default")
	assert.Contains(t, results.Warnings, "chip 50 is larger than starting_chips 20")
	assert.Contains(t, results.Warnings, "chip 5 is odd, a blackjack on it loses half a chip")
	assert.Contains(t, results.Warnings, "dealer_delay_ms 9000 is longer than 5000")
}

func TestMissingOrBrokenFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "nope.toml")).Validate()
	assert.Error(t, err)

	_, err = NewValidator(writeConfig(t, "chips = [")).Validate()
	assert.Error(t, err)
}
