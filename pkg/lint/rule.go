package lint

import (
	"github.com/leapstack-labs/treelint/pkg/syntax"
)

// RuleDescriptor identifies a rule. Descriptors are compile-time
// constants: immutable once constructed, never dependent on analysis
// state. The ID is globally unique within the active rule set and stable
// across versions (it is what suppressions and config refer to).
type RuleDescriptor struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Group       string                `json:"group"`
	Description string                `json:"description"`
	Correction  string                `json:"correction,omitempty"`
	Severity    Severity              `json:"default_severity"`
	Impact      Impact                `json:"impact"`
	Cost        Cost                  `json:"cost"`
	Categories  []syntax.FileCategory `json:"categories,omitempty"` // nil means all files
	ConfigKeys  []string              `json:"config_keys,omitempty"`

	// Documentation fields for richer rule documentation
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	FixGuidance string `json:"fix_guidance,omitempty"`
}

// AppliesTo returns true if the rule runs against units of the given
// category. A nil Categories list means the rule applies to all files.
// This is a cost optimization for the dispatcher, not a correctness gate.
func (d RuleDescriptor) AppliesTo(category syntax.FileCategory) bool {
	if len(d.Categories) == 0 {
		return true
	}
	for _, c := range d.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// DocumentationURL returns the hosted documentation URL for the rule.
func (d RuleDescriptor) DocumentationURL() string {
	return BuildDocURL(d.ID)
}

// Callback is invoked once per node of the kind it was registered for,
// during the single shared traversal. Callbacks emit diagnostics through
// the context and must not mutate the tree.
type Callback func(ctx *RuleContext, n *syntax.Node)

// Registrar is handed to a rule so it can declare which node kinds it
// cares about.
type Registrar interface {
	// On registers a callback fired for every node of kind k.
	On(k syntax.Kind, cb Callback)
}

// Rule is the interface every check implements. Rules are stateless; a
// rule that accumulates cross-node state within one pass keeps it in the
// RuleContext state slot, which is fresh for every compilation unit.
type Rule interface {
	// Descriptor returns static metadata for the rule.
	Descriptor() RuleDescriptor

	// Register declares the node kinds the rule is interested in.
	// Called once per pass with a registrar bound to the rule.
	Register(r Registrar)
}

// RuleDef is a data-driven rule definition: descriptor plus a hook
// function declaring interests. Most catalogue rules are RuleDefs.
type RuleDef struct {
	RuleDescriptor

	// Hooks declares the rule's node-kind interests.
	Hooks func(r Registrar)
}

// Descriptor implements Rule.
func (d RuleDef) Descriptor() RuleDescriptor { return d.RuleDescriptor }

// Register implements Rule.
func (d RuleDef) Register(r Registrar) { d.Hooks(r) }
