package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/treelint/internal/cli/output"
	"github.com/leapstack-labs/treelint/internal/config"
)

// CommandContext carries the loaded configuration, renderer, and logger
// every command needs.
type CommandContext struct {
	Cfg      *config.Config
	Renderer *output.Renderer
	Log      *slog.Logger
}

type commandContextKey struct{}

// IntoContext stores the command context for retrieval in RunE funcs.
func IntoContext(ctx context.Context, cctx *CommandContext) context.Context {
	return context.WithValue(ctx, commandContextKey{}, cctx)
}

// FromCommand retrieves the command context, falling back to defaults
// when the root command did not run its setup (tests).
func FromCommand(cmd *cobra.Command) *CommandContext {
	if cctx, ok := cmd.Context().Value(commandContextKey{}).(*CommandContext); ok {
		return cctx
	}
	return &CommandContext{
		Cfg:      &config.Config{Profile: config.DefaultProfile, Output: config.DefaultOutput},
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto),
		Log:      slog.Default(),
	}
}
