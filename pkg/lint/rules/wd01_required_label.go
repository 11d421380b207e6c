package rules

import (
	"fmt"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/lint/match"
	"github.com/leapstack-labs/treelint/pkg/syntax"
	"github.com/leapstack-labs/treelint/pkg/token"
)

func init() {
	lint.Register(RequiredLabel)
}

// RequiredLabel flags constructions of labelled widgets that omit the
// accessibility label argument.
var RequiredLabel = lint.RuleDef{
	RuleDescriptor: lint.RuleDescriptor{
		ID:          "WD01",
		Name:        "widget.required-label",
		Group:       "widget",
		Description: "Interactive widgets must set their accessibility label argument.",
		Correction:  "Add the missing named argument.",
		Severity:    lint.SeverityWarning,
		Impact:      lint.ImpactHigh,
		Cost:        lint.CostLow,
		ConfigKeys:  []string{"required"},

		Rationale: `Screen readers announce interactive elements by their label. A
button or image constructed without one is invisible to assistive
technology.`,

		BadExample:  `IconButton(onPressed: save)`,
		GoodExample: `IconButton(onPressed: save, tooltip: 'Save')`,
	},
	Hooks: func(r lint.Registrar) {
		r.On(syntax.KindConstructorCall, checkRequiredLabel)
	},
}

// requiredLabelOptions is the typed form of the rule's configuration.
type requiredLabelOptions struct {
	// Required maps a widget type name to the argument it must carry.
	Required map[string]string `option:"required"`
}

var defaultRequiredLabels = map[string]string{
	"IconButton":           "tooltip",
	"Image":                "semanticLabel",
	"FloatingActionButton": "tooltip",
}

func checkRequiredLabel(ctx *lint.RuleContext, n *syntax.Node) {
	name, ok := match.ConstructorName(n)
	if !ok {
		// No resolver hint; fall back to the syntactic name.
		if n.Name == "" {
			return
		}
		name = n.Name
	}

	opts := requiredLabelOptions{Required: defaultRequiredLabels}
	if raw := ctx.Options(); raw != nil {
		if err := lint.DecodeOptions(raw, &opts); err != nil {
			opts.Required = defaultRequiredLabels
		}
	}

	arg, tracked := opts.Required[name]
	if !tracked || match.HasNamedArgument(n, arg) {
		return
	}

	ctx.Report(n, fmt.Sprintf("%s is missing the %q argument", name, arg),
		insertArgumentFix(n, arg))
}

// insertArgumentFix inserts `arg: ''` before the call's closing paren.
func insertArgumentFix(call *syntax.Node, arg string) lint.Fix {
	text := arg + ": ''"
	if len(call.Children) > 0 {
		text = ", " + text
	}
	at := token.Position{
		Line:   call.Span.End.Line,
		Column: call.Span.End.Column - 1,
		Offset: call.Span.End.Offset - 1,
	}
	return lint.Fix{
		Description: fmt.Sprintf("Add %s argument", arg),
		Priority:    1,
		Edits: []lint.TextEdit{{
			Span:    token.Span{Start: at, End: at},
			NewText: text,
		}},
	}
}
