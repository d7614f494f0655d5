package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a config file",
	Long: `Validate checks that a blackjack config file parses and that its values make sense:
a positive bankroll, positive chip denominations and valid theme colours.
Without a path the active config file is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigFilePath()
		if len(args) == 1 {
			path = args[0]
		}

		// Check if path exists
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", path)
		}

		// Create validator and run validation
		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Config '%s' is valid.\n", path)
		} else {
			fmt.Fprintf(out, "❌ Config '%s' has %d validation errors:\n", path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
