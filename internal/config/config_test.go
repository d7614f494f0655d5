package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("BLACKJACK_PLAYER_NAME", "")
	t.Setenv("BLACKJACK_STARTING_CHIPS", "")
	t.Setenv("BLACKJACK_DEALER_DELAY_MS", "")
	SetPath("")
	return dir
}

func TestLoadCreatesDefault(t *testing.T) {
	dir := useTempHome(t)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), config)

	configPath := filepath.Join(dir, "blackjack", "config.toml")
	assert.Equal(t, configPath, GetConfigFilePath())
	assert.FileExists(t, configPath)

	again, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config, again)
}

func TestDecodeKeepsDefaults(t *testing.T) {
	useTempHome(t)
	configPath := filepath.Join(t.TempDir(), "partial.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("starting_chips = 250\n"), 0644))

	config, err := Decode(configPath)
	require.NoError(t, err)
	assert.Equal(t, 250, config.StartingChips)
	assert.Equal(t, "Player", config.PlayerName)
	assert.Equal(t, []int{10, 25, 50, 100}, config.Chips)
}

func TestDecodeInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("starting_chips = \"lots\"\n"), 0644))

	_, err := Decode(configPath)
	assert.Error(t, err)
}

func TestSetters(t *testing.T) {
	useTempHome(t)

	require.NoError(t, SetPlayerName("Ada"))
	require.NoError(t, SetStartingChips(500))
	assert.Error(t, SetStartingChips(0))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Ada", config.PlayerName)
	assert.Equal(t, 500, config.StartingChips)
}

func TestExplicitPath(t *testing.T) {
	useTempHome(t)
	configPath := filepath.Join(t.TempDir(), "nested", "custom.toml")
	SetPath(configPath)
	t.Cleanup(func() { SetPath("") })

	_, err := LoadConfig()
	require.NoError(t, err)
	assert.FileExists(t, configPath)
}

func TestEnvOverrides(t *testing.T) {
	useTempHome(t)
	t.Setenv("BLACKJACK_PLAYER_NAME", "Grace")
	t.Setenv("BLACKJACK_STARTING_CHIPS", "42")
	t.Setenv("BLACKJACK_DEALER_DELAY_MS", "0")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Grace", config.PlayerName)
	assert.Equal(t, 42, config.StartingChips)
	assert.Equal(t, 0, config.DealerDelayMS)

	t.Setenv("BLACKJACK_STARTING_CHIPS", "many")
	_, err = LoadConfig()
	assert.Error(t, err)
}
