package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the data directory, config file, history database and effective settings.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	configStatus := fmt.Sprintf("%s(defaults, no file)%s", colorYellow, colorReset)
	if _, err := os.Stat(paths.Config); err == nil {
		configStatus = fmt.Sprintf("%s✓%s", colorGreen, colorReset)
	}
	historyStatus := fmt.Sprintf("%s✗ disabled%s", colorYellow, colorReset)
	if cfg.History.Enabled {
		historyStatus = fmt.Sprintf("%s✓ enabled%s (limit %d)", colorGreen, colorReset, cfg.History.Limit)
	}

	fmt.Fprintf(out, "%s⚡ radix config%s\n", colorBold, colorReset)
	fmt.Fprintf(out, "  Root:       %s\n", paths.Root)
	fmt.Fprintf(out, "  Config:     %s %s\n", paths.Config, configStatus)
	fmt.Fprintf(out, "  DB:         %s\n", paths.DB)
	fmt.Fprintf(out, "  Output:     %s\n", cfg.Output)
	fmt.Fprintf(out, "  History:    %s\n", historyStatus)
	fmt.Fprintf(out, "  Log level:  %s\n", cfg.Log.Level)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(paths.Config); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", paths.Config)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("create %s: %w", paths.Root, err)
	}
	if err := cfg.Save(paths.Config); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "⚡ wrote %s\n", paths.Config)
	return nil
}
