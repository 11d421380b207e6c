package rules

import (
	"fmt"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

func init() {
	lint.Register(DuplicateName)
}

// DuplicateName flags a top-level name declared more than once in a
// unit. Declarations are collected during the traversal and reconciled
// once at end of unit; each duplicated name is reported exactly once, at
// its first occurrence.
var DuplicateName = lint.RuleDef{
	RuleDescriptor: lint.RuleDescriptor{
		ID:          "ID01",
		Name:        "identifier.duplicate-name",
		Group:       "identifier",
		Description: "A name must be declared only once per unit.",
		Correction:  "Rename or remove the duplicate declaration.",
		Severity:    lint.SeverityError,
		Impact:      lint.ImpactHigh,
		Cost:        lint.CostLow,
	},
	Hooks: func(r lint.Registrar) {
		r.On(syntax.KindClassDecl, collectDeclaredName)
		r.On(syntax.KindEndOfUnit, reportDuplicateNames)
	},
}

type declaredNames struct {
	order  []string
	counts map[string]int
	first  map[string]*syntax.Node
}

func collectDeclaredName(ctx *lint.RuleContext, n *syntax.Node) {
	if n.Name == "" {
		return
	}
	s, ok := ctx.State().(*declaredNames)
	if !ok {
		s = &declaredNames{
			counts: make(map[string]int),
			first:  make(map[string]*syntax.Node),
		}
		ctx.SetState(s)
	}
	if s.counts[n.Name] == 0 {
		s.order = append(s.order, n.Name)
		s.first[n.Name] = n
	}
	s.counts[n.Name]++
}

func reportDuplicateNames(ctx *lint.RuleContext, _ *syntax.Node) {
	s, ok := ctx.State().(*declaredNames)
	if !ok {
		return
	}
	for _, name := range s.order {
		if s.counts[name] > 1 {
			ctx.Report(s.first[name],
				fmt.Sprintf("%q is declared %d times in this unit", name, s.counts[name]))
		}
	}
}
