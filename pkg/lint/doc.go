// Package lint provides the rule-engine substrate: the contract every
// rule implements, the registry of active rules, the dispatcher that
// fans a single shared tree traversal out to interested rules, and the
// diagnostic and fix value types rules produce.
//
// # Architecture
//
//  1. Root package (pkg/lint): contracts, registry, dispatcher, runner
//  2. Matching utilities (pkg/lint/match): shared tree predicates
//  3. Fix application (pkg/lint/textedit): edit validation and apply
//  4. Catalogue (pkg/lint/rules): concrete rule definitions
//
// # Rule registration
//
// Rules are registered via init() functions when their package is
// imported:
//
//	import _ "github.com/leapstack-labs/treelint/pkg/lint/rules"
//
// A rule declares interest in node kinds rather than walking the tree
// itself; one traversal per compilation unit visits every node once and
// fires all interested rules' callbacks for that node kind. Rule count
// affects only per-node fan-out, never traversal count.
//
// # Configuration
//
// Config controls which rules run and how findings are ranked:
//
//	cfg := lint.NewConfig()
//	cfg.Disable("LT01")
//	cfg.SetSeverity("WD01", lint.SeverityError)
//	cfg.SetRuleOptions("LT01", map[string]any{"allowed": []int{0, 1}})
//
//	reg, err := lint.NewRegistry(cfg)
//
// Registry construction fails fast on configuration referencing unknown
// rule codes. A rule callback that panics is isolated: the dispatcher
// logs it and continues with the remaining rules for that pass.
package lint
