package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage your blackjack settings",
	Long:  `Commands for reading and changing the blackjack config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigFilePath()
		if _, err := os.Stat(configPath); err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Config file already exists at:", configPath)
			return nil
		}

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the settings in effect",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		chips := make([]string, len(cfg.Chips))
		for i, c := range cfg.Chips {
			chips[i] = "$" + strconv.Itoa(c)
		}

		out := cmd.OutOrStdout()
		fields := [][2]string{
			{"Player", cfg.PlayerName},
			{"Starting chips", fmt.Sprintf("$%d", cfg.StartingChips)},
			{"Chips", strings.Join(chips, " ")},
			{"Dealer delay", fmt.Sprintf("%dms", cfg.DealerDelayMS)},
			{"Red suits", cfg.Theme.RedSuit},
			{"Black suits", cfg.Theme.BlackSuit},
			{"Card back", cfg.Theme.CardBack},
			{"True colour", strconv.FormatBool(cfg.Theme.TrueColor)},
		}
		for _, f := range fields {
			fmt.Fprintln(out, colorize.CyanString("%-15s ", f[0]+":")+colorize.HiWhiteString("%s", f[1]))
		}
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

// configSetNameCmd represents the config set-name command
var configSetNameCmd = &cobra.Command{
	Use:   "set-name [name]",
	Short: "Set the default player name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("player name cannot be blank")
		}

		if err := config.SetPlayerName(name); err != nil {
			return fmt.Errorf("error setting player name: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Player name set to: %s\n", name)
		return nil
	},
}

// configSetChipsCmd represents the config set-chips command
var configSetChipsCmd = &cobra.Command{
	Use:   "set-chips [amount]",
	Short: "Set the starting chips for new games",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chips, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %v", args[0], err)
		}

		if err := config.SetStartingChips(chips); err != nil {
			return fmt.Errorf("error setting starting chips: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Starting chips set to: $%d\n", chips)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetNameCmd)
	configCmd.AddCommand(configSetChipsCmd)
}
