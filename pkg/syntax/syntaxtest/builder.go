// Package syntaxtest builds syntax trees for tests without going through
// a parser dump. Node spans are located by searching for the node's text
// snippet inside the unit source, so tests stay readable.
package syntaxtest

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/treelint/pkg/syntax"
)

// NodeSpec describes one node to build. Snippet is the node's source
// text, located inside the parent's span; Occurrence selects the nth
// match (0-based) when the snippet appears more than once.
type NodeSpec struct {
	Kind       syntax.Kind
	Name       string
	Type       string
	Super      string
	Const      bool
	Snippet    string
	Occurrence int
	Children   []*NodeSpec
}

// Unit builds a syntax.Unit from source and a root spec. The root spec's
// snippet may be empty, in which case it covers the whole source.
func Unit(path string, category syntax.FileCategory, source string, root *NodeSpec) (*syntax.Unit, error) {
	u := &syntax.Unit{
		Path:     path,
		Source:   source,
		Category: category,
	}
	node, err := build(root, nil, source, 0, len(source))
	if err != nil {
		return nil, err
	}
	u.Root = node
	return u, nil
}

// MustUnit is Unit but panics on error; for test fixtures.
func MustUnit(path string, category syntax.FileCategory, source string, root *NodeSpec) *syntax.Unit {
	u, err := Unit(path, category, source, root)
	if err != nil {
		panic(err)
	}
	return u
}

func build(spec *NodeSpec, parent *syntax.Node, source string, lo, hi int) (*syntax.Node, error) {
	start, end := lo, hi
	if spec.Snippet != "" {
		off, err := locate(source[lo:hi], spec.Snippet, spec.Occurrence)
		if err != nil {
			return nil, fmt.Errorf("%s node: %w", spec.Kind, err)
		}
		start = lo + off
		end = start + len(spec.Snippet)
	}

	n := &syntax.Node{
		Kind:         spec.Kind,
		Name:         spec.Name,
		ResolvedType: spec.Type,
		Super:        spec.Super,
		Const:        spec.Const,
		Text:         source[start:end],
		Parent:       parent,
		Span:         syntax.SpanAt(source, start, end),
	}
	for _, c := range spec.Children {
		child, err := build(c, n, source, start, end)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

func locate(window, snippet string, occurrence int) (int, error) {
	off := 0
	for i := 0; ; i++ {
		idx := strings.Index(window[off:], snippet)
		if idx < 0 {
			return 0, fmt.Errorf("snippet %q not found (occurrence %d)", snippet, occurrence)
		}
		if i == occurrence {
			return off + idx, nil
		}
		off += idx + 1
	}
}
