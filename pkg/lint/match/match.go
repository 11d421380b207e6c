// Package match provides the shared predicates lint rules are composed
// from, so each concrete rule stays a handful of declarative lines and
// all rules share identical scope-boundary semantics.
//
// Every function is pure: given a node and/or its ancestor chain, no
// side effects, no tree mutation.
package match

import (
	"strings"

	"github.com/leapstack-labs/treelint/pkg/syntax"
)

// ConstructorName returns the resolved type name of a construction
// expression when it is statically known. The second return is false
// when the resolver attached no hint; callers fall back to a textual
// heuristic rather than silently mismatching.
func ConstructorName(n *syntax.Node) (string, bool) {
	if n == nil || n.Kind != syntax.KindConstructorCall {
		return "", false
	}
	if n.ResolvedType == "" {
		return "", false
	}
	return n.ResolvedType, true
}

// NamedArgument looks up an argument by label in a call's argument list.
// O(arguments); stable under argument reordering. Returns the argument's
// value expression, or nil when absent.
func NamedArgument(call *syntax.Node, label string) *syntax.Node {
	if call == nil {
		return nil
	}
	for _, c := range call.Children {
		if c.Kind == syntax.KindArgument && c.Name == label {
			if len(c.Children) > 0 {
				return c.Children[0]
			}
			return c
		}
	}
	return nil
}

// HasNamedArgument returns true if the call has an argument with the
// given label.
func HasNamedArgument(call *syntax.Node, label string) bool {
	return NamedArgument(call, label) != nil
}

// AncestorWhere walks the parent chain from n (exclusive) looking for
// the nearest ancestor satisfying pred. The stop predicate is a hard
// boundary: when an ancestor satisfies stop before pred, the search ends
// with nil so it never leaks into an unrelated enclosing scope. A nil
// stop never stops.
func AncestorWhere(n *syntax.Node, pred, stop func(*syntax.Node) bool) *syntax.Node {
	if n == nil {
		return nil
	}
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		if pred(cur) {
			return cur
		}
		if stop != nil && stop(cur) {
			return nil
		}
	}
	return nil
}

// FunctionBoundary reports whether a node opens a new executable scope.
// The usual stop predicate for AncestorWhere searches that must stay
// within the current function or method.
func FunctionBoundary(n *syntax.Node) bool {
	return n.Kind.IsFunctionBoundary()
}

// EnclosingClass returns the nearest enclosing class declaration, or nil.
func EnclosingClass(n *syntax.Node) *syntax.Node {
	return AncestorWhere(n, func(a *syntax.Node) bool {
		return a.Kind == syntax.KindClassDecl
	}, nil)
}

// EnclosingMethod returns the nearest enclosing method declaration
// without crossing a class boundary, or nil.
func EnclosingMethod(n *syntax.Node) *syntax.Node {
	return AncestorWhere(n, func(a *syntax.Node) bool {
		return a.Kind == syntax.KindMethodDecl
	}, func(a *syntax.Node) bool {
		return a.Kind == syntax.KindClassDecl
	})
}

// IsInConstantContext returns true if the node's evaluation is forced to
// a compile-time constant: inside a const declaration or a constant
// constructor call, without crossing a function boundary. Used to
// suppress magic-literal findings where extraction to a named constant
// is already structurally guaranteed.
func IsInConstantContext(n *syntax.Node) bool {
	if n == nil {
		return false
	}
	if n.Kind == syntax.KindConstDecl || (n.Kind == syntax.KindConstructorCall && n.Const) {
		return true
	}
	return AncestorWhere(n, func(a *syntax.Node) bool {
		return a.Kind == syntax.KindConstDecl || (a.Kind == syntax.KindConstructorCall && a.Const)
	}, FunctionBoundary) != nil
}

// EnclosingTypeExtends checks whether the nearest enclosing class
// declaration's direct supertype has the given name. Intentionally
// shallow: one hop, no inheritance-chain resolution. A heuristic, not a
// type checker.
func EnclosingTypeExtends(n *syntax.Node, superclass string) bool {
	class := EnclosingClass(n)
	if class == nil && n != nil && n.Kind == syntax.KindClassDecl {
		class = n
	}
	return class != nil && class.Super == superclass
}

// RenderContains reports whether the rendered source of the subtree
// contains the given substring. An explicit textual fallback for checks
// the type system cannot resolve; a match inside a comment or string
// literal is a known false positive.
func RenderContains(n *syntax.Node, substr string) bool {
	if n == nil {
		return false
	}
	return strings.Contains(n.Render(), substr)
}

// FieldIsOwned reports whether a field declaration appears to own its
// value, i.e. the field is created in place rather than injected from
// outside. Best-effort: it looks for construction syntax in the
// initializer's rendered source and false-negatives on unusual
// assignment patterns. Disposal checks consume this and inherit its
// uncertainty.
func FieldIsOwned(field *syntax.Node) bool {
	if field == nil || field.Kind != syntax.KindFieldDecl {
		return false
	}
	init := field.FirstChild(syntax.KindConstructorCall)
	if init != nil {
		return true
	}
	// No structural initializer; fall back to the rendered text.
	rendered := field.Render()
	if idx := strings.Index(rendered, "="); idx >= 0 {
		rhs := strings.TrimSpace(rendered[idx+1:])
		return strings.Contains(rhs, "(")
	}
	return false
}
