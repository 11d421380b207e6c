package rules

import (
	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/lint/match"
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

func init() {
	lint.Register(BareRethrow)
}

// BareRethrow flags rethrow statements with no catch clause in the
// current scope. The ancestor search stops at function boundaries: a
// rethrow inside a closure does not belong to a catch in the enclosing
// function, even though the catch is an ancestor in the tree.
var BareRethrow = lint.RuleDef{
	RuleDescriptor: lint.RuleDescriptor{
		ID:          "HX02",
		Name:        "structure.bare-rethrow",
		Group:       "structure",
		Description: "rethrow is only valid directly inside a catch clause.",
		Correction:  "Move the rethrow into the catch clause, or throw a new error.",
		Severity:    lint.SeverityError,
		Impact:      lint.ImpactHigh,
		Cost:        lint.CostLow,

		BadExample:  `try { run(); } catch (e) { later(() { rethrow; }); }`,
		GoodExample: `try { run(); } catch (e) { rethrow; }`,
	},
	Hooks: func(r lint.Registrar) {
		r.On(syntax.KindRethrowStmt, checkBareRethrow)
	},
}

func checkBareRethrow(ctx *lint.RuleContext, n *syntax.Node) {
	catch := match.AncestorWhere(n, func(a *syntax.Node) bool {
		return a.Kind == syntax.KindCatchClause
	}, match.FunctionBoundary)
	if catch != nil {
		return
	}
	ctx.Report(n, "rethrow has no enclosing catch clause in this scope")
}
