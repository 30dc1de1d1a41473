package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"teamgen/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <settings-file>",
	Short: "Check a settings file without generating a roster",
	Long: `Validate loads a settings file and runs both schema validation (required
fields, duplicate names) and semantic validation (enough leader candidates,
team count within bounds), then reports what it found. No roster is produced.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}

	settings := cfg.Settings()
	if err := settings.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d attendees, %d leader candidates, %d teams\n",
		args[0], len(settings.Attendees), len(settings.LeaderCandidates()), settings.NumTeams)
	return nil
}
