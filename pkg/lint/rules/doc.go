// Package rules contains the built-in rule catalogue. Each rule is a
// single declarative file: a RuleDef with descriptor metadata, an init()
// registration, and a check built from the match package primitives.
//
// Importing the package registers every rule:
//
//	import _ "github.com/leapstack-labs/treelint/pkg/lint/rules"
//
// Groups:
//   - WD (widget): UI construction checks
//   - DS (disposal): resource ownership and release
//   - LT (literal): literal value checks
//   - HX (heuristic/structure): textual and scope-boundary checks
//   - ID (identifier): cross-node declaration checks
//   - NM (naming): name-based architectural checks
package rules
