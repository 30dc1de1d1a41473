package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"teamgen/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a sample settings file",
	Long: `Init writes a commented sample settings file to the given path
(default: teamgen.toml) as a starting point. It refuses to overwrite an
existing file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "teamgen.toml"
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(config.Sample()), 0644); err != nil {
		return fmt.Errorf("writing sample settings: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample settings to %s\n", path)
	return nil
}
