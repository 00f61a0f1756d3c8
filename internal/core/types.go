package core

import "sort"

// State is the condition of a single lattice cell.
type State uint8

const (
	// Dead is the implicit state of every cell outside the live-set.
	Dead State = iota
	// Alive marks a member of the live-set.
	Alive
)

func (s State) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Rule maps a cell's current state and its live-neighbour count to the state
// it takes in the next generation. Implementations must be pure: the stepper
// evaluates them concurrently and in no particular order.
type Rule interface {
	Next(cur State, neighbors int) State
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(cur State, neighbors int) State

// Next calls f.
func (f RuleFunc) Next(cur State, neighbors int) State { return f(cur, neighbors) }

// Factory constructs a Rule using an optional configuration map.
type Factory func(cfg map[string]string) Rule

var rules = map[string]Factory{}

// Register adds a rule factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	rules[name] = f
}

// Rules exposes the registry of available rule factories.
func Rules() map[string]Factory {
	return rules
}

// RuleNames returns the registered rule names in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
