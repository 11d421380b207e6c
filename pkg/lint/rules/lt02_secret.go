package rules

import (
	"regexp"

	"github.com/leapstack-labs/treelint/pkg/lint"
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

func init() {
	lint.Register(SecretLiteral)
}

// SecretLiteral flags string literals that look like embedded credentials.
var SecretLiteral = lint.RuleDef{
	RuleDescriptor: lint.RuleDescriptor{
		ID:          "LT02",
		Name:        "literal.secret",
		Group:       "literal",
		Description: "String literals must not contain credentials.",
		Correction:  "Move the secret to configuration or a secret store.",
		Severity:    lint.SeverityCritical,
		Impact:      lint.ImpactCritical,
		Cost:        lint.CostMedium,

		Rationale: `A credential committed in source survives in history forever.
Pattern matching over literals is approximate: high-entropy strings that
are not secrets will occasionally match.`,
	},
	Hooks: func(r lint.Registrar) {
		r.On(syntax.KindStringLit, checkSecretLiteral)
	},
}

var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),                      // AWS access key ID
	regexp.MustCompile(`(?i)(api[_-]?key|secret|token)\s*[:=]`), // labelled secret
	regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`),    // PEM private key
}

func checkSecretLiteral(ctx *lint.RuleContext, n *syntax.Node) {
	text := n.Render()
	for _, p := range secretPatterns {
		if p.MatchString(text) {
			ctx.Report(n, "string literal looks like a credential")
			return
		}
	}
}
