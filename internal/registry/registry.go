package registry

import (
	"context"
	"fmt"

	"github.com/vk/rpncalc/internal/ctxlog"
	"github.com/vk/rpncalc/internal/operator"
)

// Registry holds the current opcode → operator mapping for a single
// calculator instance. It is not safe for concurrent use; a calculator
// (registry plus engine) belongs to one logical owner at a time.
type Registry struct {
	ops   map[string]*operator.Def
	order []string
}

// New creates a Registry with the standard operator set installed under
// the "std" group tag.
func New() *Registry {
	r := &Registry{
		ops: make(map[string]*operator.Def),
	}
	for _, spec := range stdSpecs() {
		r.insert(spec, operator.StdGroup)
	}
	return r
}

// RegisterGroup validates the whole group and, only if every spec is well
// formed, inserts each one under the given group tag. An opcode that
// already exists is overwritten regardless of its original group and keeps
// its original listing position. A defective group is rejected in its
// entirety with a GroupSpecError and the registry is left untouched.
func (r *Registry) RegisterGroup(ctx context.Context, group string, specs []operator.Spec) error {
	logger := ctxlog.FromContext(ctx)

	var problems []string
	if group == "" {
		problems = append(problems, "group name must not be empty")
	}
	for i, spec := range specs {
		if spec.Opcode == "" {
			problems = append(problems, fmt.Sprintf("spec %d: opcode must not be empty", i))
		}
		if spec.Arity < 0 {
			problems = append(problems, fmt.Sprintf("spec %d (%q): arity must not be negative", i, spec.Opcode))
		}
		if spec.Compute == nil {
			problems = append(problems, fmt.Sprintf("spec %d (%q): compute function is missing", i, spec.Opcode))
		}
	}
	if len(problems) > 0 {
		return &GroupSpecError{Group: group, Problems: problems}
	}

	for _, spec := range specs {
		if prev, ok := r.ops[spec.Opcode]; ok {
			logger.Debug("Operator shadowed by group load.",
				"opcode", spec.Opcode, "old_group", prev.Group, "new_group", group)
		}
		r.insert(spec, group)
	}
	logger.Debug("Operator group registered.", "group", group, "operators", len(specs))
	return nil
}

// LoadGroup registers the specs of a named group provider.
func (r *Registry) LoadGroup(ctx context.Context, g operator.Group) error {
	return r.RegisterGroup(ctx, g.Name(), g.Specs())
}

// EvictGroup removes every operator whose group tag equals the given name.
// Evicting "std" fails with a ProtectedGroupError and changes nothing.
// Evicting a group with no members is a no-op success.
func (r *Registry) EvictGroup(ctx context.Context, group string) error {
	if group == operator.StdGroup {
		return &ProtectedGroupError{Group: group}
	}

	removed := 0
	kept := r.order[:0]
	for _, opcode := range r.order {
		if r.ops[opcode].Group == group {
			delete(r.ops, opcode)
			removed++
			continue
		}
		kept = append(kept, opcode)
	}
	r.order = kept

	ctxlog.FromContext(ctx).Debug("Operator group evicted.", "group", group, "removed", removed)
	return nil
}

// Lookup returns the definition registered for an opcode.
func (r *Registry) Lookup(opcode string) (*operator.Def, bool) {
	def, ok := r.ops[opcode]
	return def, ok
}

// Has reports whether an opcode is registered.
func (r *Registry) Has(opcode string) bool {
	_, ok := r.ops[opcode]
	return ok
}

// All returns the registered definitions in first-registration order.
// Redefining an opcode keeps its original position.
func (r *Registry) All() []*operator.Def {
	defs := make([]*operator.Def, 0, len(r.order))
	for _, opcode := range r.order {
		defs = append(defs, r.ops[opcode])
	}
	return defs
}

// Len returns the number of registered operators.
func (r *Registry) Len() int {
	return len(r.ops)
}

func (r *Registry) insert(spec operator.Spec, group string) {
	if _, exists := r.ops[spec.Opcode]; !exists {
		r.order = append(r.order, spec.Opcode)
	}
	r.ops[spec.Opcode] = &operator.Def{
		Opcode:      spec.Opcode,
		Arity:       spec.Arity,
		Compute:     spec.Compute,
		Description: spec.Description,
		Group:       group,
	}
}
