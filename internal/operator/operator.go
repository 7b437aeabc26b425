// Package operator defines the operator model shared by the registry and
// the stack engine: raw specs as provided by a group, the registered
// definition form, and the tagged Outcome returned by an operator's
// compute function.
package operator

import "github.com/vk/rpncalc/internal/value"

// StdGroup is the group tag of the built-in operator set. The registry
// refuses to evict it.
const StdGroup = "std"

// Func is the compute contract of an operator. It receives exactly arity
// operands, deepest-first, and reports its result as a tagged Outcome.
type Func func(args []value.Value) Outcome

// Spec is a raw operator specification as handed to the registry by a
// group provider. The registry assigns the group tag itself.
type Spec struct {
	Opcode      string
	Arity       int
	Compute     Func
	Description string
}

// Def is a registered operator: a Spec plus the tag of the group that
// loaded it. The tag is used only for bulk eviction, never for dispatch.
type Def struct {
	Opcode      string
	Arity       int
	Compute     Func
	Description string
	Group       string
}

// Group is a named set of operator specs. Compiled-in groups and groups
// loaded from plugin files both satisfy this interface; how the specs were
// obtained is of no concern to the registry.
type Group interface {
	Name() string
	Specs() []Spec
}
