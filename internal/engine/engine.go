package engine

import (
	"context"
	"fmt"

	"github.com/vk/rpncalc/internal/ctxlog"
	"github.com/vk/rpncalc/internal/registry"
	"github.com/vk/rpncalc/internal/token"
	"github.com/vk/rpncalc/internal/value"
)

// Engine owns the value stack. The top of the stack is the end of the
// slice. Like the registry, an Engine is confined to one logical owner;
// independent calculators are independent Engine instances.
type Engine struct {
	stack []value.Value
}

// New creates an Engine with an empty stack.
func New() *Engine {
	return &Engine{}
}

// Execute runs a single token against the stack with an all-or-nothing
// contract. Numeric tokens always push. Opcode tokens are resolved in the
// given registry and fail — leaving the stack untouched — when the opcode
// is unknown, when the stack is shallower than the operator's arity, or
// when the compute function reports a failure. Compute failures roll back
// the popped operands before the error is returned.
func (e *Engine) Execute(ctx context.Context, tok token.Token, reg *registry.Registry) error {
	logger := ctxlog.FromContext(ctx)

	if tok.Kind == token.Number {
		e.stack = append(e.stack, tok.Value)
		logger.Debug("Pushed value.", "value", tok.Value.String(), "depth", len(e.stack))
		return nil
	}

	def, ok := reg.Lookup(tok.Text)
	if !ok {
		return &UnknownOperatorError{Opcode: tok.Text}
	}
	if len(e.stack) < def.Arity {
		return &InsufficientOperandsError{
			Opcode:    def.Opcode,
			Needed:    def.Arity,
			Available: len(e.stack),
		}
	}
	if def.Compute == nil {
		// Registration validates this; reaching here is a programming fault.
		panic(fmt.Sprintf("engine: operator %q has no compute function", def.Opcode))
	}

	// Pop the operands deepest-first. The popped slice still aliases the
	// stack array, so compute gets a copy and rollback is a reslice.
	depth := len(e.stack) - def.Arity
	args := make([]value.Value, def.Arity)
	copy(args, e.stack[depth:])
	e.stack = e.stack[:depth]

	out := def.Compute(args)
	if out.Failed() {
		e.stack = e.stack[:depth+def.Arity] // restore operands in place
		return &OperatorError{Opcode: def.Opcode, Cause: out.Err()}
	}

	e.stack = append(e.stack, out.Values()...)
	logger.Debug("Executed operator.", "opcode", def.Opcode, "depth", len(e.stack))
	return nil
}

// Peek returns up to n topmost values, deepest-first, without mutating the
// stack. A stack shallower than n yields the whole stack.
func (e *Engine) Peek(n int) []value.Value {
	if n > len(e.stack) {
		n = len(e.stack)
	}
	if n <= 0 {
		return nil
	}
	out := make([]value.Value, n)
	copy(out, e.stack[len(e.stack)-n:])
	return out
}

// All returns a copy of the entire stack, deepest-first.
func (e *Engine) All() []value.Value {
	return e.Peek(len(e.stack))
}

// Clear empties the stack unconditionally.
func (e *Engine) Clear() {
	e.stack = e.stack[:0]
}

// Depth returns the number of values on the stack.
func (e *Engine) Depth() int {
	return len(e.stack)
}
