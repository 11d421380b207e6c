package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/treelint/pkg/lint/rules"
	"github.com/leapstack-labs/treelint/pkg/lint/textedit"
	"github.com/leapstack-labs/treelint/pkg/syntax"
	"github.com/leapstack-labs/treelint/pkg/syntax/syntaxtest"
)

func constructorUnit(src string, spec *syntaxtest.NodeSpec) *syntax.Unit {
	return syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind:     syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{spec},
	})
}

func TestRequiredLabelConfiguredWidget(t *testing.T) {
	opts := map[string]any{"required": map[string]string{"Foo": "bar"}}

	t.Run("missing argument reported", func(t *testing.T) {
		src := "Foo()"
		unit := constructorUnit(src, &syntaxtest.NodeSpec{
			Kind: syntax.KindConstructorCall, Type: "Foo", Snippet: src,
		})

		diags := runRule(t, rules.RequiredLabel, opts, unit)
		require.Len(t, diags, 1)
		assert.Equal(t, "WD01", diags[0].RuleID)
		assert.Contains(t, diags[0].Message, `missing the "bar" argument`)
		assert.True(t, diags[0].AutoFixable())
	})

	t.Run("argument present", func(t *testing.T) {
		src := "Foo(bar: 1)"
		unit := constructorUnit(src, &syntaxtest.NodeSpec{
			Kind: syntax.KindConstructorCall, Type: "Foo", Snippet: src,
			Children: []*syntaxtest.NodeSpec{
				{Kind: syntax.KindArgument, Name: "bar", Snippet: "bar: 1"},
			},
		})

		assert.Empty(t, runRule(t, rules.RequiredLabel, opts, unit))
	})

	t.Run("unconfigured widget ignored", func(t *testing.T) {
		src := "Other()"
		unit := constructorUnit(src, &syntaxtest.NodeSpec{
			Kind: syntax.KindConstructorCall, Type: "Other", Snippet: src,
		})

		assert.Empty(t, runRule(t, rules.RequiredLabel, opts, unit))
	})
}

func TestRequiredLabelDefaults(t *testing.T) {
	src := "IconButton(onPressed: save)"
	unit := constructorUnit(src, &syntaxtest.NodeSpec{
		Kind: syntax.KindConstructorCall, Type: "IconButton", Snippet: src,
		Children: []*syntaxtest.NodeSpec{
			{Kind: syntax.KindArgument, Name: "onPressed", Snippet: "onPressed: save"},
		},
	})

	diags := runRule(t, rules.RequiredLabel, nil, unit)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "tooltip")
}

func TestRequiredLabelFixInsertsArgument(t *testing.T) {
	src := "IconButton(onPressed: save)"
	unit := constructorUnit(src, &syntaxtest.NodeSpec{
		Kind: syntax.KindConstructorCall, Type: "IconButton", Snippet: src,
		Children: []*syntaxtest.NodeSpec{
			{Kind: syntax.KindArgument, Name: "onPressed", Snippet: "onPressed: save"},
		},
	})

	diags := runRule(t, rules.RequiredLabel, nil, unit)
	require.Len(t, diags, 1)
	require.Len(t, diags[0].Fixes, 1)

	fixed, err := textedit.Apply(src, diags[0].Fixes[0])
	require.NoError(t, err)
	assert.Equal(t, "IconButton(onPressed: save, tooltip: '')", fixed)
}

func TestRequiredLabelSyntacticFallback(t *testing.T) {
	// No resolver hint on the node; the rule falls back to the
	// constructor's syntactic name.
	src := "Image(width: 10)"
	unit := constructorUnit(src, &syntaxtest.NodeSpec{
		Kind: syntax.KindConstructorCall, Name: "Image", Snippet: src,
		Children: []*syntaxtest.NodeSpec{
			{Kind: syntax.KindArgument, Name: "width", Snippet: "width: 10"},
		},
	})

	diags := runRule(t, rules.RequiredLabel, nil, unit)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "semanticLabel")
}

func widgetClassUnit(src string, spec *syntaxtest.NodeSpec) *syntax.Unit {
	return syntaxtest.MustUnit("lib/widgets/a.dart", syntax.CategoryWidget, src, &syntaxtest.NodeSpec{
		Kind:     syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{spec},
	})
}

func TestMissingSemantics(t *testing.T) {
	tests := []struct {
		name   string
		source string
		super  string
		want   int
	}{
		{
			name:   "widget without semantics",
			source: "class C extends StatelessWidget { build() { return Text(t); } }",
			super:  "StatelessWidget",
			want:   1,
		},
		{
			name:   "widget with semantics",
			source: "class C extends StatefulWidget { build() { return Semantics(child: t); } }",
			super:  "StatefulWidget",
			want:   0,
		},
		{
			name:   "not a widget class",
			source: "class C extends Thing { build() { return Text(t); } }",
			super:  "Thing",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := widgetClassUnit(tt.source, &syntaxtest.NodeSpec{
				Kind: syntax.KindClassDecl, Name: "C", Super: tt.super, Snippet: tt.source,
			})
			assert.Len(t, runRule(t, rules.MissingSemantics, nil, unit), tt.want)
		})
	}
}

func TestMissingSemanticsSkipsNonWidgetFiles(t *testing.T) {
	src := "class C extends StatelessWidget { }"
	unit := syntaxtest.MustUnit("lib/a.dart", syntax.CategorySource, src, &syntaxtest.NodeSpec{
		Kind: syntax.KindUnit,
		Children: []*syntaxtest.NodeSpec{
			{Kind: syntax.KindClassDecl, Name: "C", Super: "StatelessWidget", Snippet: src},
		},
	})

	assert.Empty(t, runRule(t, rules.MissingSemantics, nil, unit))
}
