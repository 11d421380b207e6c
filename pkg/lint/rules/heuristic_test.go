package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/treelint/pkg/lint/rules"
	"github.com/leapstack-labs/treelint/pkg/syntax"
	"github.com/leapstack-labs/treelint/pkg/syntax/syntaxtest"
)

func classUnit(src string, spec *syntaxtest.NodeSpec) *syntax.Unit {
	return syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind:     syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{spec},
	})
}

func TestBindingObserver(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   int
	}{
		{
			name:   "observer added never removed",
			source: "class S { void init() { binding.addObserver(this); } }",
			want:   1,
		},
		{
			name:   "observer added and removed",
			source: "class S { void init() { binding.addObserver(this); } void dispose() { binding.removeObserver(this); } }",
			want:   0,
		},
		{
			name:   "no observer at all",
			source: "class S { void init() { } }",
			want:   0,
		},
		{
			// The check is textual over the class's rendered source, so a
			// mention inside a comment still counts. Accepted trade-off of
			// the heuristic.
			name:   "comment mention still matches",
			source: "class S { void init() { } // binding.addObserver(this)\n}",
			want:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := classUnit(tt.source, &syntaxtest.NodeSpec{
				Kind: syntax.KindClassDecl, Name: "S", Snippet: tt.source,
			})
			diags := runRule(t, rules.BindingObserver, nil, unit)
			if assert.Len(t, diags, tt.want) && tt.want > 0 {
				assert.Equal(t, "HX01", diags[0].RuleID)
				assert.Contains(t, diags[0].Message, "never removes")
			}
		})
	}
}

func TestBareRethrow(t *testing.T) {
	t.Run("rethrow inside catch", func(t *testing.T) {
		src := "try { run(); } catch (e) { rethrow; }"
		unit := classUnit(src, &syntaxtest.NodeSpec{
			Kind: syntax.KindTryStmt, Snippet: src,
			Children: []*syntaxtest.NodeSpec{
				{Kind: syntax.KindCatchClause, Snippet: "catch (e) { rethrow; }",
					Children: []*syntaxtest.NodeSpec{
						{Kind: syntax.KindRethrowStmt, Snippet: "rethrow"},
					}},
			},
		})

		assert.Empty(t, runRule(t, rules.BareRethrow, nil, unit))
	})

	t.Run("rethrow inside closure under catch", func(t *testing.T) {
		// The catch is an ancestor in the tree, but a function boundary
		// sits between it and the rethrow: the rethrow executes later, in
		// a scope with no active catch.
		src := "try { run(); } catch (e) { later(() { rethrow; }); }"
		unit := classUnit(src, &syntaxtest.NodeSpec{
			Kind: syntax.KindTryStmt, Snippet: src,
			Children: []*syntaxtest.NodeSpec{
				{Kind: syntax.KindCatchClause, Snippet: "catch (e) { later(() { rethrow; }); }",
					Children: []*syntaxtest.NodeSpec{
						{Kind: syntax.KindFunctionExpr, Snippet: "() { rethrow; }",
							Children: []*syntaxtest.NodeSpec{
								{Kind: syntax.KindRethrowStmt, Snippet: "rethrow"},
							}},
					}},
			},
		})

		diags := runRule(t, rules.BareRethrow, nil, unit)
		require.Len(t, diags, 1)
		assert.Equal(t, "HX02", diags[0].RuleID)
		assert.Contains(t, diags[0].Message, "no enclosing catch")
	})

	t.Run("rethrow with no try at all", func(t *testing.T) {
		src := "rethrow;"
		unit := classUnit(src, &syntaxtest.NodeSpec{
			Kind: syntax.KindRethrowStmt, Snippet: "rethrow",
		})

		assert.Len(t, runRule(t, rules.BareRethrow, nil, unit), 1)
	})
}
