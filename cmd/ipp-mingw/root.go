package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/terassyi/ippmingw/internal/installer"
	"github.com/terassyi/ippmingw/internal/path"
	"github.com/terassyi/ippmingw/internal/ui"
)

// rootConfig holds configuration for the root command.
type rootConfig struct {
	sourceRoot string
	ippVersion string
	dryRun     bool
	strict     bool
	noColor    bool
	logLevel   string
}

var rootCfg rootConfig

var rootCmd = &cobra.Command{
	Use:   "ipp-mingw",
	Short: "Install IPP's to be used with mingw and cerbero",
	Long: `Install Intel IPP headers and libraries for use with mingw and cerbero.

Headers are copied from <path>/include and libraries from <path>/lib/ia32
into c:/Intel/IPP/<version>/ia32. Library files are renamed from .lib to .a
and ippdefs.h is patched to use "long long" instead of "__int64".

  ipp-mingw
  ipp-mingw -p "d:/Intel/ipp" -v 7.1.0`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runInstall(cmd.Context(), cmd.OutOrStdout(), &rootCfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&rootCfg.sourceRoot, "path", "p", path.DefaultSourceRoot, "IPP installation path")
	rootCmd.Flags().StringVarP(&rootCfg.ippVersion, "version", "v", path.DefaultVersion, "IPP version")
	rootCmd.Flags().BoolVar(&rootCfg.dryRun, "dry-run", false, "Print the files that would be copied without writing anything")
	rootCmd.Flags().BoolVar(&rootCfg.strict, "strict", false, "Stop immediately when the IPP include directory is missing")
	rootCmd.PersistentFlags().BoolVar(&rootCfg.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&rootCfg.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		versionCmd,
		completionCmd,
	)
}

func runInstall(ctx context.Context, w io.Writer, cfg *rootConfig, opts ...path.Option) error {
	if cfg.noColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	prevLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(cfg.logLevel)})))
	defer slog.SetDefault(prevLogger)

	pathOpts := append([]path.Option{
		path.WithSourceRoot(cfg.sourceRoot),
		path.WithVersion(cfg.ippVersion),
	}, opts...)
	pathConfig := path.New(pathOpts...)

	inst := installer.New(pathConfig,
		installer.WithDryRun(cfg.dryRun),
		installer.WithStrict(cfg.strict),
	)
	inst.SetEventHandler(ui.NewConsoleReporter(w).HandleEvent)

	_, err := inst.Run(ctx)
	return err
}

// parseLogLevel converts a string log level to slog.Level.
// Accepted values: "debug", "info", "warn", "error" (case-insensitive).
// Defaults to slog.LevelWarn for unrecognized values.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
