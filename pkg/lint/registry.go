package lint

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownRule is returned when configuration references a rule code
// that is not in the catalogue.
var ErrUnknownRule = errors.New("unknown rule code")

// catalogue is the process-wide collection of every known rule,
// populated from init() functions in rule packages.
var catalogue = struct {
	mu    sync.RWMutex
	rules map[string]Rule
}{rules: make(map[string]Rule)}

// Register adds a rule to the global catalogue.
// Call this from init() functions in rule packages. Registering two
// rules with the same ID is a programming error and panics: rule codes
// must be globally unique.
func Register(rule Rule) {
	id := rule.Descriptor().ID
	catalogue.mu.Lock()
	defer catalogue.mu.Unlock()
	if _, exists := catalogue.rules[id]; exists {
		panic(fmt.Sprintf("lint: duplicate rule ID %q", id))
	}
	catalogue.rules[id] = rule
}

// All returns every catalogued rule, sorted by ID for deterministic
// iteration.
func All() []Rule {
	catalogue.mu.RLock()
	defer catalogue.mu.RUnlock()

	rules := make([]Rule, 0, len(catalogue.rules))
	for _, r := range catalogue.rules {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].Descriptor().ID < rules[j].Descriptor().ID
	})
	return rules
}

// Get returns a catalogued rule by its ID.
func Get(id string) (Rule, bool) {
	catalogue.mu.RLock()
	defer catalogue.mu.RUnlock()
	rule, ok := catalogue.rules[id]
	return rule, ok
}

// ByGroup returns all catalogued rules in a specific group, sorted by ID.
func ByGroup(group string) []Rule {
	var rules []Rule
	for _, r := range All() {
		if r.Descriptor().Group == group {
			rules = append(rules, r)
		}
	}
	return rules
}

// Count returns the number of catalogued rules.
func Count() int {
	catalogue.mu.RLock()
	defer catalogue.mu.RUnlock()
	return len(catalogue.rules)
}

// ClearCatalogue removes all catalogued rules. Used for testing.
func ClearCatalogue() {
	catalogue.mu.Lock()
	defer catalogue.mu.Unlock()
	catalogue.rules = make(map[string]Rule)
}

// Registry is the active rule set for one process: the catalogued rules
// minus disabled ones, with the configuration that shaped it. Built once
// at startup, read-only afterwards, safe to share across concurrent
// per-unit passes.
type Registry struct {
	rules  []Rule // sorted by ID
	config *Config
}

// NewRegistry builds a registry from the global catalogue and the given
// configuration. Construction fails fast if the configuration references
// a rule code that does not exist: a typo in config must not silently
// skip enforcement.
func NewRegistry(cfg *Config) (*Registry, error) {
	return NewRegistryFromRules(All(), cfg)
}

// NewRegistryFromRules builds a registry from an explicit rule list.
// Useful for tests and embedders with their own catalogues.
func NewRegistryFromRules(rules []Rule, cfg *Config) (*Registry, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	byID := make(map[string]Rule, len(rules))
	for _, r := range rules {
		id := r.Descriptor().ID
		if _, dup := byID[id]; dup {
			return nil, fmt.Errorf("building registry: duplicate rule ID %q", id)
		}
		byID[id] = r
	}

	for _, id := range cfg.referencedRuleIDs() {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("building registry: %w: %q", ErrUnknownRule, id)
		}
	}

	active := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if !cfg.IsDisabled(r.Descriptor().ID) {
			active = append(active, r)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].Descriptor().ID < active[j].Descriptor().ID
	})

	return &Registry{rules: active, config: cfg}, nil
}

// Rules returns the active rules, sorted by ID.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Config returns the configuration the registry was built with.
func (r *Registry) Config() *Config {
	return r.config
}

// Len returns the number of active rules.
func (r *Registry) Len() int {
	return len(r.rules)
}
