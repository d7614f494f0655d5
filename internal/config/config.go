package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	PlayerName    string `toml:"player_name"`
	StartingChips int    `toml:"starting_chips"`
	Chips         []int  `toml:"chips"`           // bet shortcuts offered at the table
	DealerDelayMS int    `toml:"dealer_delay_ms"` // pause between revealed dealer cards
	Theme         Theme  `toml:"theme"`
}

// Theme holds the colours used to print cards
type Theme struct {
	RedSuit   string `toml:"red_suit"`
	BlackSuit string `toml:"black_suit"`
	CardBack  string `toml:"card_back"`
	TrueColor bool   `toml:"true_color"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		PlayerName:    "Player",
		StartingChips: 1000,
		Chips:         []int{10, 25, 50, 100},
		DealerDelayMS: 800,
		Theme: Theme{
			RedSuit:   "#EF4444",
			BlackSuit: "#E5E7EB",
			CardBack:  "#2563EB",
			TrueColor: true,
		},
	}
}

// path overrides the config file location when set
var path string

// SetPath makes the config file location explicit, as with the --config flag
func SetPath(p string) {
	path = p
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	if path != "" {
		return path
	}
	return filepath.Join(GetXDGConfigHome(), "blackjack", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if it doesn't exist.
// Environment overrides are applied on top.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		config, err = Decode(configPath)
		if err != nil {
			return nil, err
		}
	}

	if err := applyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Decode reads a config file without creating it. Missing keys keep their defaults.
func Decode(configPath string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(configPath string) (*Config, error) {
	config := Default()
	if err := writeConfig(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	return writeConfig(GetConfigFilePath(), config)
}

func writeConfig(configPath string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SetPlayerName sets the player name in the config
func SetPlayerName(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.PlayerName = name
	return SaveConfig(config)
}

// SetStartingChips sets the starting chips in the config
func SetStartingChips(chips int) error {
	if chips <= 0 {
		return fmt.Errorf("starting chips must be positive, got %d", chips)
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.StartingChips = chips
	return SaveConfig(config)
}

// applyEnv overrides config values from BLACKJACK_* variables
func applyEnv(config *Config) error {
	if name := os.Getenv("BLACKJACK_PLAYER_NAME"); name != "" {
		config.PlayerName = name
	}

	ints := map[string]*int{
		"BLACKJACK_STARTING_CHIPS":  &config.StartingChips,
		"BLACKJACK_DEALER_DELAY_MS": &config.DealerDelayMS,
	}
	for key, dst := range ints {
		raw := os.Getenv(key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %v", key, err)
		}
		*dst = n
	}

	return nil
}
