package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/treelint/pkg/lint/match"
	"github.com/leapstack-labs/treelint/pkg/syntax"
	"github.com/leapstack-labs/treelint/pkg/syntax/syntaxtest"
)

func findKind(root *syntax.Node, kind syntax.Kind) *syntax.Node {
	var found *syntax.Node
	syntax.Walk(root, func(n *syntax.Node) bool {
		if found == nil && n.Kind == kind {
			found = n
		}
		return found == nil
	})
	return found
}

func TestConstructorName(t *testing.T) {
	src := "Foo() Bar()"
	unit := syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind: syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{
			{Kind: syntax.KindConstructorCall, Type: "Foo", Snippet: "Foo()"},
			{Kind: syntax.KindConstructorCall, Snippet: "Bar()"},
		},
	})

	name, ok := match.ConstructorName(unit.Root.Children[0])
	require.True(t, ok)
	assert.Equal(t, "Foo", name)

	// No resolver hint: callers must not treat the empty name as a match.
	_, ok = match.ConstructorName(unit.Root.Children[1])
	assert.False(t, ok)

	_, ok = match.ConstructorName(nil)
	assert.False(t, ok)
}

func TestNamedArgument(t *testing.T) {
	src := "Foo(bar: 1, baz: 2)"
	unit := syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind: syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{
			{
				Kind: syntax.KindConstructorCall, Type: "Foo", Snippet: src,
				Children: []*syntaxtest.NodeSpec{
					{Kind: syntax.KindArgument, Name: "bar", Snippet: "bar: 1", Children: []*syntaxtest.NodeSpec{
						{Kind: syntax.KindNumberLit, Snippet: "1"},
					}},
					{Kind: syntax.KindArgument, Name: "baz", Snippet: "baz: 2", Children: []*syntaxtest.NodeSpec{
						{Kind: syntax.KindNumberLit, Snippet: "2"},
					}},
				},
			},
		},
	})
	call := unit.Root.Children[0]

	val := match.NamedArgument(call, "baz")
	require.NotNil(t, val)
	assert.Equal(t, "2", val.Render())

	assert.True(t, match.HasNamedArgument(call, "bar"))
	assert.False(t, match.HasNamedArgument(call, "qux"))
	assert.Nil(t, match.NamedArgument(nil, "bar"))
}

// Boundary correctness: a search from inside a nested function must
// match the inner enclosing scope and never cross the function boundary
// into the outer one.
func TestAncestorWhereStopsAtBoundary(t *testing.T) {
	src := "try { run(() { rethrow; }); } catch (e) {}"
	unit := syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind: syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{
			{
				Kind: syntax.KindTryStmt, Snippet: src,
				Children: []*syntaxtest.NodeSpec{
					{Kind: syntax.KindFunctionExpr, Snippet: "() { rethrow; }", Children: []*syntaxtest.NodeSpec{
						{Kind: syntax.KindRethrowStmt, Snippet: "rethrow"},
					}},
					{Kind: syntax.KindCatchClause, Snippet: "catch (e) {}"},
				},
			},
		},
	})
	rethrow := findKind(unit.Root, syntax.KindRethrowStmt)
	require.NotNil(t, rethrow)

	isCatch := func(n *syntax.Node) bool { return n.Kind == syntax.KindCatchClause }

	// The rethrow sits inside a function expression; the try/catch that
	// surrounds it textually belongs to the outer scope, so the stop
	// predicate must end the search empty-handed.
	got := match.AncestorWhere(rethrow, isCatch, match.FunctionBoundary)
	assert.Nil(t, got)

	// Without the boundary the outer scope would (wrongly) be reachable.
	got = match.AncestorWhere(rethrow, func(n *syntax.Node) bool {
		return n.Kind == syntax.KindTryStmt
	}, nil)
	assert.NotNil(t, got)
}

func TestAncestorWherePredBeforeStop(t *testing.T) {
	// When one ancestor satisfies both pred and stop, pred wins.
	src := "void m() {}"
	unit := syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind: syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{
			{Kind: syntax.KindMethodDecl, Name: "m", Snippet: src, Children: []*syntaxtest.NodeSpec{
				{Kind: syntax.KindBlock, Snippet: "{}"},
			}},
		},
	})
	block := findKind(unit.Root, syntax.KindBlock)

	got := match.AncestorWhere(block, match.FunctionBoundary, match.FunctionBoundary)
	require.NotNil(t, got)
	assert.Equal(t, syntax.KindMethodDecl, got.Kind)
}

func TestEnclosingMethodDoesNotCrossClass(t *testing.T) {
	src := "class A { void m() { x } int f; }"
	unit := syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind: syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{
			{Kind: syntax.KindClassDecl, Name: "A", Snippet: src, Children: []*syntaxtest.NodeSpec{
				{Kind: syntax.KindMethodDecl, Name: "m", Snippet: "void m() { x }", Children: []*syntaxtest.NodeSpec{
					{Kind: syntax.KindIdentifier, Name: "x", Snippet: "x", Occurrence: 0},
				}},
				{Kind: syntax.KindFieldDecl, Name: "f", Snippet: "int f;"},
			}},
		},
	})

	ident := findKind(unit.Root, syntax.KindIdentifier)
	m := match.EnclosingMethod(ident)
	require.NotNil(t, m)
	assert.Equal(t, "m", m.Name)

	// A field declaration is inside the class but outside any method;
	// the class boundary must keep the search from escaping upward.
	field := findKind(unit.Root, syntax.KindFieldDecl)
	assert.Nil(t, match.EnclosingMethod(field))

	class := match.EnclosingClass(ident)
	require.NotNil(t, class)
	assert.Equal(t, "A", class.Name)
}

func TestIsInConstantContext(t *testing.T) {
	src := "const a = 12; const b = () { 12 }; const Foo(12)"
	unit := syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind: syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{
			{Kind: syntax.KindConstDecl, Name: "a", Snippet: "const a = 12;", Children: []*syntaxtest.NodeSpec{
				{Kind: syntax.KindNumberLit, Snippet: "12"},
			}},
			{Kind: syntax.KindConstDecl, Name: "b", Snippet: "const b = () { 12 };", Children: []*syntaxtest.NodeSpec{
				{Kind: syntax.KindFunctionExpr, Snippet: "() { 12 }", Children: []*syntaxtest.NodeSpec{
					{Kind: syntax.KindNumberLit, Snippet: "12"},
				}},
			}},
			{Kind: syntax.KindConstructorCall, Type: "Foo", Const: true, Snippet: "const Foo(12)", Children: []*syntaxtest.NodeSpec{
				{Kind: syntax.KindNumberLit, Snippet: "12"},
			}},
		},
	})

	inConst := unit.Root.Children[0].Children[0]
	assert.True(t, match.IsInConstantContext(inConst))

	// Inside a function expression the literal evaluates at run time even
	// when the expression is nested under a const declaration.
	inClosure := unit.Root.Children[1].Children[0].Children[0]
	assert.False(t, match.IsInConstantContext(inClosure))

	inConstCall := unit.Root.Children[2].Children[0]
	assert.True(t, match.IsInConstantContext(inConstCall))

	assert.False(t, match.IsInConstantContext(nil))
}

func TestEnclosingTypeExtends(t *testing.T) {
	src := "class MyWidget extends StatelessWidget { void build() { x } }"
	unit := syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind: syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{
			{Kind: syntax.KindClassDecl, Name: "MyWidget", Super: "StatelessWidget", Snippet: src, Children: []*syntaxtest.NodeSpec{
				{Kind: syntax.KindMethodDecl, Name: "build", Snippet: "void build() { x }", Children: []*syntaxtest.NodeSpec{
					{Kind: syntax.KindIdentifier, Name: "x", Snippet: "x", Occurrence: 0},
				}},
			}},
		},
	})

	ident := findKind(unit.Root, syntax.KindIdentifier)
	assert.True(t, match.EnclosingTypeExtends(ident, "StatelessWidget"))
	assert.False(t, match.EnclosingTypeExtends(ident, "StatefulWidget"))

	// The class node itself counts as its own enclosing class.
	class := findKind(unit.Root, syntax.KindClassDecl)
	assert.True(t, match.EnclosingTypeExtends(class, "StatelessWidget"))
}

func TestFieldIsOwned(t *testing.T) {
	tests := []struct {
		name   string
		source string
		spec   *syntaxtest.NodeSpec
		want   bool
	}{
		{
			name:   "structural initializer",
			source: "final c = StreamController();",
			spec: &syntaxtest.NodeSpec{
				Kind: syntax.KindFieldDecl, Name: "c", Snippet: "final c = StreamController();",
				Children: []*syntaxtest.NodeSpec{
					{Kind: syntax.KindConstructorCall, Type: "StreamController", Snippet: "StreamController()"},
				},
			},
			want: true,
		},
		{
			name:   "textual construction",
			source: "final t = Timer.periodic(d, f);",
			spec: &syntaxtest.NodeSpec{
				Kind: syntax.KindFieldDecl, Name: "t", Snippet: "final t = Timer.periodic(d, f);",
			},
			want: true,
		},
		{
			name:   "injected value",
			source: "final c = widget.controller;",
			spec: &syntaxtest.NodeSpec{
				Kind: syntax.KindFieldDecl, Name: "c", Snippet: "final c = widget.controller;",
			},
			want: false,
		},
		{
			name:   "no initializer",
			source: "late final Timer t;",
			spec: &syntaxtest.NodeSpec{
				Kind: syntax.KindFieldDecl, Name: "t", Snippet: "late final Timer t;",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, tt.source, &syntaxtest.NodeSpec{
				Kind:     syntax.KindUnit,
				Children: []*syntaxtest.NodeSpec{tt.spec},
			})
			assert.Equal(t, tt.want, match.FieldIsOwned(unit.Root.Children[0]))
		})
	}
}

func TestRenderContains(t *testing.T) {
	src := "Semantics(child: icon)"
	unit := syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind: syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{
			{Kind: syntax.KindConstructorCall, Type: "Semantics", Snippet: src},
		},
	})
	assert.True(t, match.RenderContains(unit.Root, "Semantics("))
	assert.False(t, match.RenderContains(unit.Root, "Tooltip("))
	assert.False(t, match.RenderContains(nil, "x"))
}

func TestSuffixClassifier(t *testing.T) {
	classify := match.SuffixClassifier(map[string]string{
		"Service":    "service",
		"Repository": "data",
	})

	tests := []struct {
		typeName string
		want     string
		ok       bool
	}{
		{"AuthService", "service", true},
		{"UserRepository", "data", true},
		{"Widget", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := classify(tt.typeName)
		assert.Equal(t, tt.want, got, tt.typeName)
		assert.Equal(t, tt.ok, ok, tt.typeName)
	}
}
