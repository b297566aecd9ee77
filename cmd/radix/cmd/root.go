package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/corey/radix/internal/app"
	"github.com/corey/radix/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	verbose    bool
	formatFlag string
	noHistory  bool

	paths  *app.Paths
	cfg    *app.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "radix <number> [hint]",
	Short: "radix — number base converter",
	Long: `Reads a number and prints it in binary, octal, decimal and hexadecimal.

The base comes from the optional hint ("hex", "b", "0o", "base17", "17"),
else from an inline prefix (0b, 0o, 0d, 0x), else decimal with a
hexadecimal fallback. Negative numbers go after "--":  radix -- -42`,
	Args:              cobra.ArbitraryArgs,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runConvert,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: text or alfred (default from config)")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this query")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup resolves the data directory, loads config and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	root, err := app.ResolveRoot()
	if err != nil {
		return err
	}
	paths = app.NewPaths(root)

	cfg, err = app.LoadConfig(paths.Config)
	if err != nil {
		return err
	}

	logger, err = logging.New(cfg.Log.Level, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("config loaded", zap.String("root", paths.Root), zap.String("output", cfg.Output))
	return nil
}

// outputFormat returns the --format flag, falling back to config.
func outputFormat() (string, error) {
	switch formatFlag {
	case "":
		return cfg.Output, nil
	case app.OutputText, app.OutputAlfred:
		return formatFlag, nil
	}
	return "", fmt.Errorf("unknown --format %q (want %s or %s)", formatFlag, app.OutputText, app.OutputAlfred)
}

func runConvert(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	svc := app.NewService(nil, cfg.History.Limit, logger)
	if cfg.History.Enabled && !noHistory {
		history, err := openHistory()
		if err != nil {
			logger.Warn("history unavailable", zap.Error(err))
		} else {
			defer history.Close()
			svc = app.NewService(history, cfg.History.Limit, logger)
		}
	}

	records := svc.Query(strings.Join(args, " "))
	if err := render(cmd.OutOrStdout(), format, records); err != nil {
		return err
	}
	// Alfred shows the error item itself; a terminal caller gets a status code.
	if format == app.OutputText && len(records) == 1 && !records[0].Valid {
		return errNoResult
	}
	return nil
}

// protectQuery inserts "--" ahead of the first dash-prefixed argument that
// is not a flag of this command tree, so "radix -42" and Alfred's single
// "-ff hex" argument reach the query instead of the flag parser.
func protectQuery(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if len(a) < 2 || a[0] != '-' {
			continue
		}
		if strings.ContainsAny(a, " \t") || !isDefinedFlag(a) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// isDefinedFlag reports whether arg ("--name", "--name=v", "-v", "-n5",
// "-vn") names flags defined anywhere under rootCmd.
func isDefinedFlag(arg string) bool {
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, _ = strings.Cut(name, "=")
		return lookupFlag(func(fs *pflag.FlagSet) *pflag.Flag { return fs.Lookup(name) }) != nil
	}

	for j := 1; j < len(arg); j++ {
		if arg[j] == '=' {
			return j > 1
		}
		short := arg[j : j+1]
		f := lookupFlag(func(fs *pflag.FlagSet) *pflag.Flag { return fs.ShorthandLookup(short) })
		if f == nil {
			return false
		}
		// A flag that takes a value consumes the rest of the group.
		if f.NoOptDefVal == "" {
			return true
		}
	}
	return true
}

// lookupFlag applies find to the local and persistent flags of every command.
func lookupFlag(find func(*pflag.FlagSet) *pflag.Flag) *pflag.Flag {
	var walk func(c *cobra.Command) *pflag.Flag
	walk = func(c *cobra.Command) *pflag.Flag {
		c.InitDefaultHelpFlag()
		if f := find(c.Flags()); f != nil {
			return f
		}
		if f := find(c.PersistentFlags()); f != nil {
			return f
		}
		for _, sub := range c.Commands() {
			if f := walk(sub); f != nil {
				return f
			}
		}
		return nil
	}
	return walk(rootCmd)
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SetArgs(protectQuery(os.Args[1:]))
	err := rootCmd.Execute()
	if err != nil && err != errNoResult {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}
