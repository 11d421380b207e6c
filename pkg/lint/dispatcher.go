package lint

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/treelint/pkg/syntax"
	"github.com/leapstack-labs/treelint/pkg/token"
)

// RuleContext is the per-rule, per-pass handle a callback receives. It
// carries the unit under analysis, the rule's options, a private
// pass-scoped state slot, and the reporter.
type RuleContext struct {
	dispatcher *Dispatcher
	desc       RuleDescriptor
	severity   Severity // default severity with any config override applied
	opts       map[string]any
	state      any
	muted      bool
}

// Unit returns the compilation unit under analysis.
func (c *RuleContext) Unit() *syntax.Unit {
	return c.dispatcher.unit
}

// Options returns the rule-specific options from configuration, or nil.
func (c *RuleContext) Options() map[string]any {
	return c.opts
}

// State returns the rule's private pass-scoped state. Fresh (nil) at the
// start of every compilation unit; never shared across rules or passes.
func (c *RuleContext) State() any {
	return c.state
}

// SetState stores the rule's private pass-scoped state.
func (c *RuleContext) SetState(v any) {
	c.state = v
}

// Report emits a diagnostic at the node's span.
func (c *RuleContext) Report(n *syntax.Node, msg string, fixes ...Fix) {
	c.ReportAt(n.Span, msg, fixes...)
}

// ReportAt emits a diagnostic at an explicit span. The reporter performs
// no deduplication: overlapping findings for one logical defect are a
// rule-authoring bug caught by that rule's tests.
func (c *RuleContext) ReportAt(span token.Span, msg string, fixes ...Fix) {
	c.dispatcher.diagnostics = append(c.dispatcher.diagnostics, Diagnostic{
		RuleID:           c.desc.ID,
		Severity:         c.severity,
		Message:          msg,
		Correction:       c.desc.Correction,
		Span:             span,
		Fixes:            fixes,
		DocumentationURL: c.desc.DocumentationURL(),
		ImpactScore:      c.desc.Impact.Int(),
	})
}

// interest binds one registered callback to its rule context.
type interest struct {
	ctx *RuleContext
	cb  Callback
}

// registrar scopes Registrar calls made during Rule.Register to the rule
// being registered.
type registrar struct {
	d   *Dispatcher
	ctx *RuleContext
}

func (r registrar) On(k syntax.Kind, cb Callback) {
	r.d.interests[k] = append(r.d.interests[k], interest{ctx: r.ctx, cb: cb})
}

// PassStats instruments one pass: exactly one tree walk regardless of
// how many rules are active.
type PassStats struct {
	NodesVisited   int
	CallbacksFired int
	RuleFailures   int
}

// Dispatcher performs the single shared traversal of one compilation
// unit and fans each visited node out to the rules that declared
// interest in its kind. One dispatcher serves exactly one pass; build a
// new one per unit so pass-scoped rule state never leaks across files.
type Dispatcher struct {
	unit        *syntax.Unit
	log         *slog.Logger
	interests   map[syntax.Kind][]interest
	contexts    []*RuleContext
	diagnostics []Diagnostic
	stats       PassStats
}

// NewDispatcher builds a dispatcher for one unit from the active
// registry. Rules whose file-category restriction does not match the
// unit are skipped entirely.
func NewDispatcher(reg *Registry, unit *syntax.Unit, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	d := &Dispatcher{
		unit:      unit,
		log:       log,
		interests: make(map[syntax.Kind][]interest),
	}

	cfg := reg.Config()
	for _, rule := range reg.Rules() {
		desc := rule.Descriptor()
		if !desc.AppliesTo(unit.Category) {
			continue
		}
		ctx := &RuleContext{
			dispatcher: d,
			desc:       desc,
			severity:   cfg.GetSeverity(desc.ID, desc.Severity),
			opts:       cfg.GetRuleOptions(desc.ID),
		}
		d.contexts = append(d.contexts, ctx)
		rule.Register(registrar{d: d, ctx: ctx})
	}
	return d
}

// Run walks the tree once, pre-order and parent-before-child, firing
// interested callbacks inline. Cancellation is checked between top-level
// node visits; a cancelled pass discards all partial diagnostics rather
// than reporting an incomplete set.
func (d *Dispatcher) Run(ctx context.Context) ([]Diagnostic, PassStats, error) {
	root := d.unit.Root
	if root == nil {
		return nil, d.stats, nil
	}

	d.visit(root)
	for _, child := range root.Children {
		if err := ctx.Err(); err != nil {
			return nil, d.stats, fmt.Errorf("pass over %s cancelled: %w", d.unit.Path, err)
		}
		d.walk(child)
	}

	if err := ctx.Err(); err != nil {
		return nil, d.stats, fmt.Errorf("pass over %s cancelled: %w", d.unit.Path, err)
	}
	d.visit(d.endOfUnit())

	return d.diagnostics, d.stats, nil
}

func (d *Dispatcher) walk(n *syntax.Node) {
	d.visit(n)
	for _, child := range n.Children {
		d.walk(child)
	}
}

func (d *Dispatcher) visit(n *syntax.Node) {
	d.stats.NodesVisited++
	for _, in := range d.interests[n.Kind] {
		if in.ctx.muted {
			continue
		}
		d.stats.CallbacksFired++
		d.invoke(in, n)
	}
}

// invoke isolates per-rule failures: a panicking callback is logged and
// its rule muted for the rest of the pass, so a bug in one check never
// blinds the others.
func (d *Dispatcher) invoke(in interest, n *syntax.Node) {
	defer func() {
		if r := recover(); r != nil {
			in.ctx.muted = true
			d.stats.RuleFailures++
			d.log.Error("rule failed, disabling for remainder of pass",
				"rule", in.ctx.desc.ID,
				"unit", d.unit.Path,
				"line", n.Span.Start.Line,
				"column", n.Span.Start.Column,
				"panic", r,
			)
		}
	}()
	in.cb(in.ctx, n)
}

// endOfUnit synthesizes the node fired after the real tree has been
// fully visited, anchored at the end of the source.
func (d *Dispatcher) endOfUnit() *syntax.Node {
	end := d.unit.Root.Span.End
	return &syntax.Node{
		Kind:   syntax.KindEndOfUnit,
		Span:   token.Span{Start: end, End: end},
		Parent: d.unit.Root,
	}
}
