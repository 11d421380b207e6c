package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/treelint/pkg/lint"
)

// styleGroups are the rule groups the style profile keeps.
var styleGroups = map[string]bool{
	"literal": true,
	"naming":  true,
}

// EngineConfig translates the host configuration into the engine's rule
// configuration: profile and cost-cap disables first, then explicit
// disables, severity overrides, and rule options. Fails on an invalid
// severity or profile name; unknown rule codes are caught later by
// registry construction.
func (c *Config) EngineConfig(catalogue []lint.Rule) (*lint.Config, error) {
	cfg := lint.NewConfig()

	if err := applyProfile(cfg, catalogue, c.Profile); err != nil {
		return nil, err
	}
	if err := applyCostCap(cfg, catalogue, c.MaxCost); err != nil {
		return nil, err
	}

	for _, id := range c.Lint.Disabled {
		cfg.Disable(strings.TrimSpace(id))
	}
	for id, sev := range c.Lint.Severity {
		parsed, ok := lint.ParseSeverity(sev)
		if !ok {
			return nil, fmt.Errorf("rule %s: unknown severity %q", id, sev)
		}
		cfg.SetSeverity(id, parsed)
	}
	for id, opts := range c.Lint.Rules {
		cfg.SetRuleOptions(id, opts)
	}
	return cfg, nil
}

func applyProfile(cfg *lint.Config, catalogue []lint.Rule, profile string) error {
	switch profile {
	case "", ProfileStrict:
		return nil
	case ProfileBalanced:
		for _, r := range catalogue {
			if d := r.Descriptor(); d.Impact.Int() < lint.ImpactMedium.Int() {
				cfg.Disable(d.ID)
			}
		}
		return nil
	case ProfileStyle:
		for _, r := range catalogue {
			if d := r.Descriptor(); !styleGroups[d.Group] {
				cfg.Disable(d.ID)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown profile %q", profile)
	}
}

func applyCostCap(cfg *lint.Config, catalogue []lint.Rule, maxCost string) error {
	if maxCost == "" {
		return nil
	}
	cap, ok := lint.ParseCost(maxCost)
	if !ok {
		return fmt.Errorf("unknown cost class %q", maxCost)
	}
	for _, r := range catalogue {
		if d := r.Descriptor(); d.Cost > cap {
			cfg.Disable(d.ID)
		}
	}
	return nil
}
