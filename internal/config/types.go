// Package config loads the host configuration for treelint: which rules
// are active, severity overrides, rule options, and the enforcement
// profile. Read once at startup; the engine registry is built from it
// and is read-only afterwards.
package config

// Config holds all treelint configuration options.
type Config struct {
	// Profile selects an enforcement profile: strict, balanced, style.
	Profile string `koanf:"profile"`

	// MaxCost excludes rules above a cost class: low, medium, high.
	// Empty means no cap.
	MaxCost string `koanf:"max_cost"`

	// Output format: auto, text, markdown, json.
	Output string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// Workers bounds concurrent unit passes. Zero uses the engine default.
	Workers int `koanf:"workers"`

	// DocsBaseURL overrides the rule documentation site, for offline use.
	DocsBaseURL string `koanf:"docs_base_url"`

	// Lint configures individual rules.
	Lint LintSection `koanf:"lint"`
}

// LintSection configures individual rules.
type LintSection struct {
	// Disabled lists rule IDs to skip.
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to a severity override.
	Severity map[string]string `koanf:"severity"`

	// Rules holds rule-specific options keyed by rule ID.
	Rules map[string]map[string]any `koanf:"rules"`
}

// Enforcement profiles.
const (
	ProfileStrict   = "strict"   // every rule
	ProfileBalanced = "balanced" // impact medium and above
	ProfileStyle    = "style"    // stylistic groups only
)

// Default configuration values.
const (
	DefaultProfile = ProfileStrict
	DefaultOutput  = "auto"
)
