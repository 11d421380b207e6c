// Package cli provides the command-line interface for treelint.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/treelint/internal/cli/commands"
	"github.com/leapstack-labs/treelint/internal/cli/output"
	"github.com/leapstack-labs/treelint/internal/config"
	"github.com/leapstack-labs/treelint/pkg/lint"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treelint",
		Short: "treelint - syntax-tree lint engine",
		Long: `treelint runs a catalogue of static-analysis rules against syntax
trees produced by an external parser and reports diagnostics with
optional automated fixes.

Trees are consumed as .tree.json / .tree.yaml dumps; rules, severities
and enforcement profiles are configured in treelint.yaml.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if cfg.DocsBaseURL != "" {
				lint.SetDocsBaseURL(cfg.DocsBaseURL)
			}

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))
			ctx := commands.IntoContext(cmd.Context(), &commands.CommandContext{
				Cfg:      cfg,
				Renderer: renderer,
				Log:      log,
			})
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					log.Debug("using config file", "path", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default treelint.yaml)")
	rootCmd.PersistentFlags().String("output", "", "Output format: auto, text, markdown, json")
	rootCmd.PersistentFlags().String("profile", "", "Enforcement profile: strict, balanced, style")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int("workers", 0, "Concurrent unit passes (0 = auto)")

	rootCmd.AddCommand(
		commands.NewLintCommand(),
		commands.NewFixCommand(),
		commands.NewRulesCommand(),
		commands.NewVersionCommand(Version, BuildDate, GitCommit),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
