package permission

import (
	"sort"
	"strings"
)

// Modules is the closed set of permission domains. Keys outside this set
// are never granted.
var Modules = []string{"user", "booking", "trips", "blog", "contact", "product", "review", "orders"}

// Actions that can be granted per module.
var Actions = []string{"create", "update", "delete", "list"}

// Set maps a module name to its allowed actions.
type Set map[string][]string

// Key joins a module and action into the canonical "module:action" form.
func Key(module, action string) string {
	return module + ":" + action
}

// KnownModule reports whether m is part of the closed module set.
func KnownModule(m string) bool {
	for _, known := range Modules {
		if known == m {
			return true
		}
	}
	return false
}

// Prune returns a copy of the set with modules that have no selected
// actions removed.
func (s Set) Prune() Set {
	pruned := Set{}
	for module, actions := range s {
		if len(actions) > 0 {
			pruned[module] = actions
		}
	}
	return pruned
}

// Flatten returns the set as sorted "module:action" tokens.
func (s Set) Flatten() []string {
	var tokens []string
	for module, actions := range s {
		for _, action := range actions {
			tokens = append(tokens, Key(module, action))
		}
	}
	sort.Strings(tokens)
	return tokens
}

// FromList rebuilds a Set from flat "module:action" tokens, dropping
// malformed entries and unknown modules.
func FromList(tokens []string) Set {
	set := Set{}
	for _, token := range tokens {
		module, action, ok := strings.Cut(token, ":")
		if !ok || !KnownModule(module) {
			continue
		}
		set[module] = append(set[module], action)
	}
	return set
}

// Full returns a set granting every action on every module.
func Full() Set {
	set := Set{}
	for _, module := range Modules {
		set[module] = append([]string(nil), Actions...)
	}
	return set
}

// Evaluator is the read-only capability object handed to each view. It is
// built once from the login response and passed explicitly; there is no
// ambient lookup.
type Evaluator struct {
	set    Set
	loaded bool
}

// NewEvaluator wraps a loaded permission set.
func NewEvaluator(set Set) *Evaluator {
	return &Evaluator{set: set, loaded: true}
}

// Pending returns an evaluator in the loading state. Every Has call
// answers false until the set is supplied.
func Pending() *Evaluator {
	return &Evaluator{}
}

// Load supplies the permission set and clears the loading state.
func (e *Evaluator) Load(set Set) {
	e.set = set
	e.loaded = true
}

func (e *Evaluator) Loading() bool {
	return !e.loaded
}

// Has reports whether the "module:action" key is currently permitted.
// Unknown modules, unknown actions and the loading state all answer false.
func (e *Evaluator) Has(key string) bool {
	if !e.loaded {
		return false
	}
	module, action, ok := strings.Cut(key, ":")
	if !ok {
		return false
	}
	for _, a := range e.set[module] {
		if a == action {
			return true
		}
	}
	return false
}
