package syntax

import "github.com/leapstack-labs/treelint/pkg/token"

// Node is one node of a parsed syntax tree. Nodes are produced by an
// external parser, are immutable for the duration of an analysis pass,
// and are discarded once diagnostics have been collected.
type Node struct {
	// Kind tags the node shape.
	Kind Kind

	// Span is the source range covered by the node.
	Span token.Span

	// Name carries the declared or invoked name where the kind has one:
	// class/method/field names, constructor and method call targets,
	// identifiers, and argument labels (empty for positional arguments).
	Name string

	// ResolvedType is a best-effort static type hint attached by the
	// external resolver. Empty when resolution failed; rules fall back
	// to textual heuristics in that case rather than silently mismatch.
	ResolvedType string

	// Super is the direct supertype name for class declarations. One
	// hop only; the resolver does not flatten inheritance chains.
	Super string

	// Const marks constant declarations and constant constructor calls.
	Const bool

	// Text is the raw source slice the span covers.
	Text string

	// Parent is a navigation-only reference; the tree owns its children,
	// never its parent.
	Parent *Node

	// Children in source order.
	Children []*Node
}

// Render reconstructs the original source text for the subtree.
// Rules use this as an explicit escape hatch when a check cannot be
// expressed structurally; substring matches against rendered source may
// false-positive on comments and string literals.
func (n *Node) Render() string {
	if n == nil {
		return ""
	}
	return n.Text
}

// ChildrenOfKind returns the direct children with the given kind.
func (n *Node) ChildrenOfKind(k Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first direct child with the given kind, or nil.
func (n *Node) FirstChild(k Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == k {
			return c
		}
	}
	return nil
}
