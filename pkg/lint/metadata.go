package lint

import (
	"fmt"
	"strings"
)

// DefaultDocsBaseURL is the hosted documentation site.
const DefaultDocsBaseURL = "https://treelint.dev/docs/rules"

// DocsBaseURL can be overridden via config for local/offline mode.
var DocsBaseURL = DefaultDocsBaseURL

// BuildDocURL constructs a documentation URL for a rule.
func BuildDocURL(ruleID string) string {
	return fmt.Sprintf("%s/%s", DocsBaseURL, strings.ToLower(ruleID))
}

// SetDocsBaseURL overrides the default documentation base URL.
func SetDocsBaseURL(url string) {
	DocsBaseURL = strings.TrimSuffix(url, "/")
}

// ResetDocsBaseURL resets to the default documentation URL.
func ResetDocsBaseURL() {
	DocsBaseURL = DefaultDocsBaseURL
}

// Impact classifies how much a finding matters. Used for prioritization
// and profile selection, never enforcement. The numeric value doubles as
// a 0-100 score for health weighting.
type Impact int

// Impact levels.
const (
	// ImpactInformational for purely stylistic findings (0-15)
	ImpactInformational Impact = 10
	// ImpactLow for minor issues (16-30)
	ImpactLow Impact = 20
	// ImpactMedium for moderate issues (31-60)
	ImpactMedium Impact = 50
	// ImpactHigh for significant issues (61-80)
	ImpactHigh Impact = 70
	// ImpactCritical for critical issues (81-100)
	ImpactCritical Impact = 90
)

// Int returns the impact score as an integer.
func (i Impact) Int() int {
	return int(i)
}

// String returns the name of the impact band the score falls in.
func (i Impact) String() string {
	switch {
	case i <= 15:
		return "informational"
	case i <= 30:
		return "low"
	case i <= 60:
		return "medium"
	case i <= 80:
		return "high"
	default:
		return "critical"
	}
}

// ParseImpact converts a string to an Impact band value.
// Returns the impact and true if valid, or ImpactMedium and false if
// invalid.
func ParseImpact(s string) (Impact, bool) {
	switch strings.ToLower(s) {
	case "informational":
		return ImpactInformational, true
	case "low":
		return ImpactLow, true
	case "medium":
		return ImpactMedium, true
	case "high":
		return ImpactHigh, true
	case "critical":
		return ImpactCritical, true
	default:
		return ImpactMedium, false
	}
}

// Cost estimates the traversal/analysis cost of a rule, used to exclude
// expensive rules from fast enforcement profiles.
type Cost int

// Cost classes.
const (
	CostLow Cost = iota
	CostMedium
	CostHigh
)

// String returns the string representation of the cost class.
func (c Cost) String() string {
	switch c {
	case CostLow:
		return "low"
	case CostMedium:
		return "medium"
	case CostHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseCost converts a string to a Cost value.
// Returns the cost and true if valid, or CostMedium and false if invalid.
func ParseCost(s string) (Cost, bool) {
	switch strings.ToLower(s) {
	case "low":
		return CostLow, true
	case "medium":
		return CostMedium, true
	case "high":
		return CostHigh, true
	default:
		return CostMedium, false
	}
}
