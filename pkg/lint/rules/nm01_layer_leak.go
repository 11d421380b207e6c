package rules

import (
	"fmt"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/lint/match"
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

func init() {
	lint.Register(LayerLeak)
}

// LayerLeak flags classes whose name marks them as an infrastructure
// layer (service, repository, ...) but that extend a widget base class.
// Layer detection is the pluggable suffix classifier: approximate by
// design, a class named unconventionally escapes the check.
var LayerLeak = lint.RuleDef{
	RuleDescriptor: lint.RuleDescriptor{
		ID:          "NM01",
		Name:        "naming.layer-leak",
		Group:       "naming",
		Description: "Infrastructure-layer classes must not extend widget classes.",
		Correction:  "Split the widget out of the service, or rename the class.",
		Severity:    lint.SeverityWarning,
		Impact:      lint.ImpactMedium,
		Cost:        lint.CostLow,

		BadExample:  `class SyncService extends StatelessWidget { ... }`,
		GoodExample: `class SyncService { ... }`,
	},
	Hooks: func(r lint.Registrar) {
		r.On(syntax.KindClassDecl, checkLayerLeak)
	},
}

func checkLayerLeak(ctx *lint.RuleContext, n *syntax.Node) {
	category, ok := match.DefaultClassifier(n.Name)
	if !ok {
		return
	}
	if !widgetBases[n.Super] {
		return
	}
	ctx.Report(n, fmt.Sprintf("%s is named like a %s but extends %s",
		n.Name, category, n.Super))
}
