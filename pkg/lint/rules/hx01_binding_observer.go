package rules

import (
	"fmt"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/lint/match"
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

func init() {
	lint.Register(BindingObserver)
}

// BindingObserver flags classes that register a binding observer without
// removing it. Purely textual: the resolver cannot see through the mixin
// machinery, so the check scans the class's rendered source and carries
// the documented false-positive risk of matching inside comments or
// string literals.
var BindingObserver = lint.RuleDef{
	RuleDescriptor: lint.RuleDescriptor{
		ID:          "HX01",
		Name:        "heuristic.binding-observer",
		Group:       "heuristic",
		Description: "Classes adding a binding observer must also remove it.",
		Correction:  "Call removeObserver in dispose.",
		Severity:    lint.SeverityWarning,
		Impact:      lint.ImpactHigh,
		Cost:        lint.CostMedium,

		BadExample: `class S { void init() { binding.addObserver(this); } }`,
		GoodExample: `class S { void init() { binding.addObserver(this); }
  void dispose() { binding.removeObserver(this); } }`,
	},
	Hooks: func(r lint.Registrar) {
		r.On(syntax.KindClassDecl, checkBindingObserver)
	},
}

func checkBindingObserver(ctx *lint.RuleContext, n *syntax.Node) {
	if !match.RenderContains(n, "addObserver(") {
		return
	}
	if match.RenderContains(n, "removeObserver(") {
		return
	}
	ctx.Report(n, fmt.Sprintf("%s adds a binding observer but never removes it", n.Name))
}
