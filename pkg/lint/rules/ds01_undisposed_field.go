package rules

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/lint/match"
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

func init() {
	lint.Register(UndisposedField)
}

// UndisposedField flags owned fields of releasable types that the class
// never releases in its dispose method. Collect-then-check: fields and
// dispose bodies are gathered during the traversal and reconciled at end
// of unit.
var UndisposedField = lint.RuleDef{
	RuleDescriptor: lint.RuleDescriptor{
		ID:          "DS01",
		Name:        "dispose.undisposed-field",
		Group:       "disposal",
		Description: "Owned releasable fields must be released in dispose.",
		Correction:  "Release the field in the dispose method.",
		Severity:    lint.SeverityError,
		Impact:      lint.ImpactCritical,
		Cost:        lint.CostHigh,
		ConfigKeys:  []string{"tracked_types"},

		Rationale: `Controllers, timers and stream controllers hold platform
resources that outlive the widget unless released. Ownership detection is
best-effort (it inspects the initializer text), so fields injected from
outside are deliberately not flagged and unusual assignment patterns may
escape the check.`,

		BadExample: `class A { final c = StreamController(); void dispose() {} }`,
		GoodExample: `class A { final c = StreamController(); void dispose() {
  c.close(); } }`,
	},
	Hooks: func(r lint.Registrar) {
		r.On(syntax.KindFieldDecl, collectTrackedField)
		r.On(syntax.KindMethodDecl, collectDisposeBody)
		r.On(syntax.KindEndOfUnit, reportUndisposed)
	},
}

var defaultTrackedTypes = []string{
	"StreamController",
	"AnimationController",
	"TextEditingController",
	"Timer",
}

// releaseCalls are the method invocations that count as releasing a
// tracked field.
var releaseCalls = []string{".dispose()", ".close()", ".cancel()"}

type trackedField struct {
	class string
	node  *syntax.Node
}

type disposalState struct {
	fields   []trackedField
	disposes map[string]string // class name -> dispose body text
}

func disposal(ctx *lint.RuleContext) *disposalState {
	if s, ok := ctx.State().(*disposalState); ok {
		return s
	}
	s := &disposalState{disposes: make(map[string]string)}
	ctx.SetState(s)
	return s
}

func collectTrackedField(ctx *lint.RuleContext, n *syntax.Node) {
	class := match.EnclosingClass(n)
	if class == nil {
		return
	}

	tracked := lint.GetStringSliceOption(ctx.Options(), "tracked_types", defaultTrackedTypes)
	isTracked := false
	for _, t := range tracked {
		if n.ResolvedType == t {
			isTracked = true
			break
		}
	}
	if !isTracked || !match.FieldIsOwned(n) {
		return
	}

	s := disposal(ctx)
	s.fields = append(s.fields, trackedField{class: class.Name, node: n})
}

func collectDisposeBody(ctx *lint.RuleContext, n *syntax.Node) {
	if n.Name != "dispose" {
		return
	}
	class := match.EnclosingClass(n)
	if class == nil {
		return
	}
	disposal(ctx).disposes[class.Name] = n.Render()
}

func reportUndisposed(ctx *lint.RuleContext, _ *syntax.Node) {
	s, ok := ctx.State().(*disposalState)
	if !ok {
		return
	}
	for _, f := range s.fields {
		if isReleased(f.node.Name, s.disposes[f.class]) {
			continue
		}
		ctx.Report(f.node, fmt.Sprintf("field %q of type %s is never released",
			f.node.Name, f.node.ResolvedType))
	}
}

func isReleased(field, disposeBody string) bool {
	if disposeBody == "" {
		return false
	}
	for _, call := range releaseCalls {
		if strings.Contains(disposeBody, field+call) {
			return true
		}
	}
	return false
}
