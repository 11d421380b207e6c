package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/treelint/internal/cli/output"
	"github.com/leapstack-labs/treelint/pkg/lint"
	_ "github.com/leapstack-labs/treelint/pkg/lint/rules" // register built-in rules
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths    []string // Tree dump files or directories
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: critical, error, warning, info
	Rules    []string // Run only specific rules
	Watch    bool     // Re-run when tree dumps change
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Run lint rules on parsed tree dumps",
		Long: `Analyze syntax-tree dumps for rule violations.

Each path is a .tree.json or .tree.yaml dump produced by the host
parser, or a directory to scan for dumps. Rules can be configured in
treelint.yaml.`,
		Example: `  # Lint every dump under a directory
  treelint lint ./out/trees

  # Output as JSON
  treelint lint app.tree.json --format json

  # Disable specific rules
  treelint lint ./out/trees --disable LT01,WD02

  # Only report errors and above
  treelint lint ./out/trees --severity error

  # Re-run whenever a dump changes
  treelint lint ./out/trees --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "info", "Minimum severity: critical, error, warning, info")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when tree dumps change")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	cctx := FromCommand(cmd)
	r := cctx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	runner, err := buildRunner(cctx, opts.Disable, opts.Rules)
	if err != nil {
		return err
	}

	if opts.Watch {
		return watchAndLint(cmd, opts, r, runner)
	}
	return lintOnce(cmd, opts, r, runner)
}

func lintOnce(cmd *cobra.Command, opts *LintOptions, r *output.Renderer, runner *lint.Runner) error {
	units, err := loadUnits(opts.Paths)
	if err != nil {
		return err
	}
	if len(units) == 0 {
		return fmt.Errorf("no tree dumps found under %s", strings.Join(opts.Paths, ", "))
	}

	result, err := runner.Run(cmd.Context(), units)
	if err != nil {
		return fmt.Errorf("lint run aborted: %w", err)
	}

	minSeverity, _ := lint.ParseSeverity(opts.Severity)
	filtered := filterBySeverity(result, minSeverity)

	if err := renderLintResults(r, filtered); err != nil {
		return err
	}
	if filtered.TotalDiagnostics() > 0 {
		return fmt.Errorf("lint issues found")
	}
	return nil
}

// buildRunner assembles the registry from config plus CLI overrides.
func buildRunner(cctx *CommandContext, disable, only []string) (*lint.Runner, error) {
	cfg, err := cctx.Cfg.EngineConfig(lint.All())
	if err != nil {
		return nil, err
	}

	for _, id := range disable {
		cfg.Disable(strings.TrimSpace(id))
	}

	// --rule keeps only the named rules.
	if len(only) > 0 {
		keep := make(map[string]bool)
		for _, id := range only {
			keep[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.All() {
			if !keep[rule.Descriptor().ID] {
				cfg.Disable(rule.Descriptor().ID)
			}
		}
	}

	reg, err := lint.NewRegistry(cfg)
	if err != nil {
		return nil, err
	}
	runner := lint.NewRunner(reg, cctx.Log)
	runner.Workers = cctx.Cfg.Workers
	return runner, nil
}

// treeDumpSuffixes are the file endings recognized as parser dumps.
var treeDumpSuffixes = []string{".tree.json", ".tree.yaml", ".tree.yml"}

func isTreeDump(path string) bool {
	for _, suffix := range treeDumpSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func loadUnits(paths []string) ([]*syntax.Unit, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isTreeDump(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", p, err)
		}
	}

	units := make([]*syntax.Unit, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		unit, err := syntax.DecodeUnit(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		units = append(units, unit)
	}
	return units, nil
}

// filterBySeverity drops diagnostics below the threshold, keeping unit
// order and per-unit traversal order.
func filterBySeverity(result *lint.RunResult, min lint.Severity) *lint.RunResult {
	out := &lint.RunResult{RunID: result.RunID, Duration: result.Duration}
	for _, u := range result.Units {
		kept := u
		kept.Diagnostics = nil
		for _, d := range u.Diagnostics {
			if d.Severity.AtLeast(min) {
				kept.Diagnostics = append(kept.Diagnostics, d)
			}
		}
		out.Units = append(out.Units, kept)
	}
	return out
}

func renderLintResults(r *output.Renderer, result *lint.RunResult) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(result)
	case output.ModeMarkdown:
		renderLintMarkdown(r, result)
		return nil
	default:
		renderLintText(r, result)
		return nil
	}
}

func renderLintText(r *output.Renderer, result *lint.RunResult) {
	total := 0
	for _, u := range result.Units {
		if u.Cancelled {
			r.Printf("%s: pass cancelled, diagnostics discarded\n", u.Path)
			continue
		}
		for _, d := range u.Diagnostics {
			total++
			r.Printf("%s:%d:%d  %s  [%s] %s\n",
				u.Path, d.Span.Start.Line, d.Span.Start.Column,
				r.Severity(d.Severity), d.RuleID, d.Message)
			if d.Correction != "" {
				r.Printf("  hint: %s\n", d.Correction)
			}
		}
	}
	if total == 0 {
		r.Println("No issues found.")
	} else {
		r.Printf("\n%d issue(s) found.\n", total)
	}
}

func renderLintMarkdown(r *output.Renderer, result *lint.RunResult) {
	r.Println("# Lint Results")
	r.Println()
	for _, u := range result.Units {
		if len(u.Diagnostics) == 0 {
			continue
		}
		r.Printf("## %s\n\n", u.Path)
		for _, d := range u.Diagnostics {
			r.Printf("- **%s** `%s` line %d: %s\n",
				d.Severity, d.RuleID, d.Span.Start.Line, d.Message)
		}
		r.Println()
	}
	r.Printf("Total: %d issue(s)\n", result.TotalDiagnostics())
}

// watchAndLint re-runs the lint pass whenever a dump under the watched
// paths changes. Runs until the command context is cancelled.
func watchAndLint(cmd *cobra.Command, opts *LintOptions, r *output.Renderer, runner *lint.Runner) error {
	cctx := FromCommand(cmd)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	for _, p := range opts.Paths {
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}

	// Initial pass; issues are reported but do not stop the watch loop.
	if err := lintOnce(cmd, opts, r, runner); err != nil {
		cctx.Log.Debug("initial pass", "result", err)
	}

	for {
		select {
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isTreeDump(event.Name) {
				continue
			}
			cctx.Log.Debug("tree dump changed", "path", event.Name)
			if err := lintOnce(cmd, opts, r, runner); err != nil {
				cctx.Log.Debug("pass", "result", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cctx.Log.Warn("watcher error", "error", werr)
		}
	}
}
