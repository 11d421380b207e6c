package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/treelint/internal/cli/output"
	"github.com/leapstack-labs/treelint/pkg/lint/textedit"
)

// FixOptions holds options for the fix command.
type FixOptions struct {
	Paths   []string // Tree dump files or directories
	Format  string   // Output format
	Disable []string // Rule IDs to disable
	Rules   []string // Apply only specific rules' fixes
	Write   bool     // Write fixed sources back to the unit paths
}

// NewFixCommand creates the fix command.
func NewFixCommand() *cobra.Command {
	opts := &FixOptions{}
	cmd := &cobra.Command{
		Use:   "fix [path...]",
		Short: "Apply suggested fixes from lint rules",
		Long: `Run lint rules and apply their suggested fixes.

At most one fix is applied per diagnostic. Fixes whose offsets have been
invalidated by an earlier fix are skipped, never applied blindly.
Without --write the fixed source is printed to stdout.`,
		Example: `  # Preview fixes
  treelint fix app.tree.json

  # Apply fixes in place
  treelint fix ./out/trees --write

  # Apply only one rule's fixes
  treelint fix ./out/trees --rule WD01 --write`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runFix(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Apply only specific rules' fixes")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Write fixed sources back to their unit paths")

	return cmd
}

// fixFileResult summarises fixes for one unit.
type fixFileResult struct {
	Path    string                `json:"path"`
	Applied []textedit.AppliedFix `json:"applied,omitempty"`
	Skipped []textedit.SkippedFix `json:"skipped,omitempty"`
}

func runFix(cmd *cobra.Command, opts *FixOptions) error {
	cctx := FromCommand(cmd)
	r := cctx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	runner, err := buildRunner(cctx, opts.Disable, opts.Rules)
	if err != nil {
		return err
	}

	units, err := loadUnits(opts.Paths)
	if err != nil {
		return err
	}

	result, err := runner.Run(cmd.Context(), units)
	if err != nil {
		return fmt.Errorf("lint run aborted: %w", err)
	}

	var summaries []fixFileResult
	for i, u := range result.Units {
		fixed, cs, err := textedit.ApplySequence(units[i].Source, u.Diagnostics)
		if err != nil {
			if errors.Is(err, textedit.ErrNoFixes) {
				continue
			}
			return fmt.Errorf("%s: %w", u.Path, err)
		}

		summaries = append(summaries, fixFileResult{
			Path:    u.Path,
			Applied: cs.Applied,
			Skipped: cs.Skipped,
		})

		if opts.Write {
			if err := os.WriteFile(u.Path, []byte(fixed), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", u.Path, err)
			}
		} else if len(cs.Applied) > 0 {
			r.Printf("--- %s (fixed)\n%s\n", u.Path, fixed)
		}
	}

	return renderFixResults(r, summaries)
}

func renderFixResults(r *output.Renderer, summaries []fixFileResult) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(summaries)
	}

	if len(summaries) == 0 {
		r.Println("No applicable fixes.")
		return nil
	}
	for _, s := range summaries {
		r.Printf("%s:\n", s.Path)
		for _, a := range s.Applied {
			r.Printf("  applied [%s] %s (%d edit(s))\n", a.RuleID, a.Description, a.EditCount)
		}
		for _, sk := range s.Skipped {
			r.Printf("  skipped [%s] %s\n", sk.RuleID, sk.Reason)
		}
	}
	return nil
}
