package commands

import (
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			r := FromCommand(cmd).Renderer
			r.Printf("treelint %s\n", version)
			r.Printf("  build date: %s\n", buildDate)
			r.Printf("  commit:     %s\n", gitCommit)
			r.Printf("  go:         %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
