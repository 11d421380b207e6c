package rules

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/lint/match"
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

func init() {
	lint.Register(MagicNumber)
}

// MagicNumber flags bare numeric literals outside constant contexts.
// Literals inside a const declaration or constant constructor call are
// exempt: extraction to a named constant is already structurally
// guaranteed there.
var MagicNumber = lint.RuleDef{
	RuleDescriptor: lint.RuleDescriptor{
		ID:          "LT01",
		Name:        "literal.magic-number",
		Group:       "literal",
		Description: "Numeric literals should be extracted to named constants.",
		Correction:  "Extract the literal to a named constant.",
		Severity:    lint.SeverityInfo,
		Impact:      lint.ImpactLow,
		Cost:        lint.CostLow,
		ConfigKeys:  []string{"allowed"},

		BadExample:  `padding = EdgeInsets.all(16.4)`,
		GoodExample: `padding = EdgeInsets.all(kDefaultPadding)`,
	},
	Hooks: func(r lint.Registrar) {
		r.On(syntax.KindNumberLit, checkMagicNumber)
	},
}

var defaultAllowedNumbers = []string{"-1", "0", "1", "2"}

func checkMagicNumber(ctx *lint.RuleContext, n *syntax.Node) {
	if match.IsInConstantContext(n) {
		return
	}

	allowed := lint.GetStringSliceOption(ctx.Options(), "allowed", defaultAllowedNumbers)
	value := n.Render()
	for _, a := range allowed {
		if sameNumber(value, a) {
			return
		}
	}

	ctx.Report(n, fmt.Sprintf("magic number %s", value))
}

// sameNumber compares literals numerically so "1.0" matches "1".
func sameNumber(a, b string) bool {
	if a == b {
		return true
	}
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	return errA == nil && errB == nil && fa == fb
}
