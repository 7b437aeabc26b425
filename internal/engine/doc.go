// Package engine implements the calculator's stack machine.
//
// The Engine owns the value stack and executes one token at a time against
// it. Every Execute call is atomic: it either succeeds fully or leaves the
// stack exactly as it was, including when an operator's compute function
// fails after its operands were already popped. That per-call atomicity is
// the invariant the interactive driver depends on — a failed command never
// loses work.
//
// The engine has no mode state. It is a pure accumulator over a sequence
// of Execute calls; calculator errors (unknown opcode, missing operands,
// division by zero) are returned as values, never panics.
package engine
