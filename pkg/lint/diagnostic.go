package lint

import "github.com/leapstack-labs/treelint/pkg/token"

// Diagnostic represents a single finding. Created by a rule during
// traversal, consumed by the host for display, never mutated after
// creation. Diagnostics for one pass are reported in traversal order.
type Diagnostic struct {
	RuleID     string     `json:"rule_id"`
	Severity   Severity   `json:"severity"`
	Message    string     `json:"message"`
	Correction string     `json:"correction,omitempty"`
	Span       token.Span `json:"span"`
	Fixes      []Fix      `json:"fixes,omitempty"`

	// Remediation metadata
	DocumentationURL string `json:"documentation_url,omitempty"`
	ImpactScore      int    `json:"impact_score"` // 0-100, for health weighting
}

// AutoFixable returns true if the diagnostic carries at least one fix.
func (d Diagnostic) AutoFixable() bool {
	return len(d.Fixes) > 0
}

// Fix is a suggested remediation for a diagnostic. Edits within one Fix
// are all computed against the same immutable source snapshot the
// diagnostic was derived from and apply atomically as one batch.
// Multiple fixes on one diagnostic are mutually exclusive alternatives,
// never combinable; Priority ranks them.
type Fix struct {
	Description string     `json:"description"`
	Priority    int        `json:"priority"`
	Edits       []TextEdit `json:"edits"`
}

// TextEdit replaces one source range with new text.
type TextEdit struct {
	Span    token.Span `json:"span"`
	NewText string     `json:"new_text"`
}
