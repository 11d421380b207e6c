package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

func TestRunnerKeepsUnitOrder(t *testing.T) {
	rule := lint.RuleDef{
		RuleDescriptor: lint.RuleDescriptor{
			ID: "RN01", Name: "test.runner", Group: "test",
			Severity: lint.SeverityWarning, Impact: lint.ImpactLow, Cost: lint.CostLow,
		},
		Hooks: func(r lint.Registrar) {
			r.On(syntax.KindIdentifier, func(ctx *lint.RuleContext, n *syntax.Node) {
				ctx.Report(n, "found")
			})
		},
	}

	reg, err := lint.NewRegistryFromRules([]lint.Rule{rule}, nil)
	require.NoError(t, err)

	var units []*syntax.Unit
	for i := 0; i < 8; i++ {
		u := identUnit(t, i+1)
		u.Path = u.Path + string(rune('a'+i))
		units = append(units, u)
	}

	runner := lint.NewRunner(reg, nil)
	runner.Workers = 4
	result, err := runner.Run(context.Background(), units)
	require.NoError(t, err)
	require.NotEmpty(t, result.RunID)
	require.Len(t, result.Units, 8)

	for i, u := range result.Units {
		assert.Equal(t, units[i].Path, u.Path, "results keep input order")
		assert.Len(t, u.Diagnostics, i+1)
	}
}

func TestRunnerCancelledContext(t *testing.T) {
	reg, err := lint.NewRegistryFromRules([]lint.Rule{testRule("RN02")}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := lint.NewRunner(reg, nil)
	result, err := runner.Run(ctx, []*syntax.Unit{identUnit(t, 2)})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, result.Units, 1)
	assert.True(t, result.Units[0].Cancelled)
	assert.Empty(t, result.Units[0].Diagnostics)
}
