package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"teamgen/internal/config"
	"teamgen/internal/logging"
	"teamgen/internal/output"
	"teamgen/internal/roster"
	"teamgen/internal/shuffle"
)

var (
	logLevel   string
	formatName string
	outputPath string
)

var rootCmd = &cobra.Command{
	Use:   "teamgen <settings-file>",
	Short: "Random team roster generator",
	Long: `Teamgen assigns the attendees listed in a TOML settings file into teams.
Each team gets exactly one leader, selected at random from the leader-eligible
pool, and the remaining attendees are spread across teams so sizes differ by
at most one.`,
	Args:         cobra.ExactArgs(1),
	RunE:         runRoot,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.LevelInfo,
		fmt.Sprintf("log level (%s)", strings.Join(logging.ValidLevels(), ", ")))
	rootCmd.Flags().StringVarP(&formatName, "format", "f", output.FormatAuto.String(),
		fmt.Sprintf("output format (%s)", strings.Join(output.Formats(), ", ")))
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write the roster to a file instead of stdout")
}

func runRoot(cmd *cobra.Command, args []string) error {
	log := logging.New(cmd.ErrOrStderr(), logLevel).WithConfigFile(args[0])

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}

	settings := cfg.Settings()
	log.Debug("settings loaded",
		"attendees", len(settings.Attendees),
		"leader_candidates", len(settings.LeaderCandidates()),
		"teams", settings.NumTeams,
		"flat", settings.Flat)

	result, err := roster.Assign(settings, shuffle.New())
	if err != nil {
		return err
	}
	log.Debug("roster assigned", "teams", len(result))

	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		if err := output.Write(f, result, format); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return output.Write(cmd.OutOrStdout(), result, format)
}
