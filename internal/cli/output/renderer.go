// Package output renders command results in text, markdown, or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/treelint/pkg/lint"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
}

// NewRenderer creates a renderer. Unknown modes fall back to auto.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	switch mode {
	case ModeText, ModeMarkdown, ModeJSON:
	default:
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode}
}

// EffectiveMode resolves auto to text; lipgloss degrades styling itself
// when the writer is not a terminal.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// Out returns the primary output writer.
func (r *Renderer) Out() io.Writer { return r.out }

// Err returns the error output writer.
func (r *Renderer) Err() io.Writer { return r.errOut }

// Printf writes formatted text to the primary output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Println writes a line to the primary output.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var severityStyles = map[lint.Severity]lipgloss.Style{
	lint.SeverityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true),
	lint.SeverityError:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	lint.SeverityWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	lint.SeverityInfo:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
}

// Severity renders a severity label, styled in text mode.
func (r *Renderer) Severity(s lint.Severity) string {
	if r.EffectiveMode() != ModeText {
		return s.String()
	}
	if style, ok := severityStyles[s]; ok {
		return style.Render(s.String())
	}
	return s.String()
}
