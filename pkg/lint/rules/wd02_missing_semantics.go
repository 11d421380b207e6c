package rules

import (
	"fmt"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/lint/match"
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

func init() {
	lint.Register(MissingSemantics)
}

// MissingSemantics flags widget classes that never mention semantics.
// Restricted to widget files; the dispatcher skips it everywhere else.
var MissingSemantics = lint.RuleDef{
	RuleDescriptor: lint.RuleDescriptor{
		ID:          "WD02",
		Name:        "widget.missing-semantics",
		Group:       "widget",
		Description: "Widget classes should wrap meaningful content in Semantics.",
		Correction:  "Wrap the widget subtree in a Semantics node.",
		Severity:    lint.SeverityInfo,
		Impact:      lint.ImpactMedium,
		Cost:        lint.CostMedium,
		Categories:  []syntax.FileCategory{syntax.CategoryWidget},

		Rationale: `Custom widgets that render meaningful content without any
semantics leave assistive technology with nothing to announce. The check
is textual: it scans the class body for a Semantics construction, so a
mention inside a comment will satisfy it incorrectly.`,
	},
	Hooks: func(r lint.Registrar) {
		r.On(syntax.KindClassDecl, checkMissingSemantics)
	},
}

var widgetBases = map[string]bool{
	"StatelessWidget": true,
	"StatefulWidget":  true,
}

func checkMissingSemantics(ctx *lint.RuleContext, n *syntax.Node) {
	if !widgetBases[n.Super] {
		return
	}
	if match.RenderContains(n, "Semantics(") {
		return
	}
	ctx.Report(n, fmt.Sprintf("widget %s has no Semantics node", n.Name))
}
