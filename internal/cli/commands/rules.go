package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/treelint/internal/cli/output"
	"github.com/leapstack-labs/treelint/pkg/lint"
	_ "github.com/leapstack-labs/treelint/pkg/lint/rules" // register built-in rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their metadata.

Rules are organized by group (widget, disposal, literal, ...). Use
--verbose to see full documentation including examples.`,
		Example: `  # List all rules
  treelint rules

  # Show details for a specific rule
  treelint rules WD01

  # List rules in the literal group
  treelint rules --group literal

  # Output as JSON
  treelint rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cctx := FromCommand(cmd)
	r := cctx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	var descriptors []lint.RuleDescriptor
	for _, rule := range lint.All() {
		d := rule.Descriptor()
		if opts.Group != "" && d.Group != opts.Group {
			continue
		}
		descriptors = append(descriptors, d)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(descriptors)
	case output.ModeMarkdown:
		listRulesMarkdown(r, descriptors)
		return nil
	default:
		listRulesTable(r, descriptors)
		return nil
	}
}

func listRulesTable(r *output.Renderer, descriptors []lint.RuleDescriptor) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Out())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Group", "Severity", "Impact", "Cost", "Files"})
	for _, d := range descriptors {
		files := "all"
		if len(d.Categories) > 0 {
			parts := make([]string, len(d.Categories))
			for i, c := range d.Categories {
				parts[i] = string(c)
			}
			files = strings.Join(parts, ",")
		}
		t.AppendRow(table.Row{d.ID, d.Name, d.Group, d.Severity, d.Impact, d.Cost, files})
	}
	t.Render()
}

func listRulesMarkdown(r *output.Renderer, descriptors []lint.RuleDescriptor) {
	r.Println("# Lint Rules")
	r.Println()
	group := ""
	for _, d := range descriptors {
		if d.Group != group {
			group = d.Group
			r.Printf("## %s\n\n", group)
		}
		r.Printf("- **%s** `%s` (%s): %s\n", d.ID, d.Name, d.Severity, d.Description)
	}
}

var (
	ruleTitleStyle   = lipgloss.NewStyle().Bold(true)
	ruleSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

func showRule(cmd *cobra.Command, id string, opts *RulesOptions) error {
	cctx := FromCommand(cmd)
	r := cctx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	rule, ok := lint.Get(strings.ToUpper(strings.TrimSpace(id)))
	if !ok {
		return fmt.Errorf("%w: %q", lint.ErrUnknownRule, id)
	}
	d := rule.Descriptor()

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(d)
	}

	r.Println(ruleTitleStyle.Render(fmt.Sprintf("%s — %s", d.ID, d.Name)))
	r.Println()
	r.Println(d.Description)
	r.Printf("\nGroup: %s  Severity: %s  Impact: %s  Cost: %s\n",
		d.Group, r.Severity(d.Severity), d.Impact, d.Cost)
	r.Printf("Docs:  %s\n", d.DocumentationURL())

	if d.Rationale != "" {
		r.Println()
		r.Println(ruleSectionStyle.Render("Rationale"))
		r.Println(strings.TrimSpace(d.Rationale))
	}
	if d.BadExample != "" {
		r.Println()
		r.Println(ruleSectionStyle.Render("Bad"))
		r.Println("  " + d.BadExample)
	}
	if d.GoodExample != "" {
		r.Println()
		r.Println(ruleSectionStyle.Render("Good"))
		r.Println("  " + d.GoodExample)
	}
	if d.FixGuidance != "" {
		r.Println()
		r.Println(ruleSectionStyle.Render("Fix"))
		r.Println(strings.TrimSpace(d.FixGuidance))
	}
	return nil
}
