package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

// runRule runs a single rule over one unit and returns its diagnostics.
func runRule(t *testing.T, rule lint.Rule, opts map[string]any, unit *syntax.Unit) []lint.Diagnostic {
	t.Helper()

	cfg := lint.NewConfig()
	if opts != nil {
		cfg.SetRuleOptions(rule.Descriptor().ID, opts)
	}
	reg, err := lint.NewRegistryFromRules([]lint.Rule{rule}, cfg)
	require.NoError(t, err)

	d := lint.NewDispatcher(reg, unit, nil)
	diags, _, err := d.Run(context.Background())
	require.NoError(t, err)
	return diags
}
