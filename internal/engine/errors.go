package engine

import "fmt"

// UnknownOperatorError is returned when a token names an opcode that is
// not registered.
type UnknownOperatorError struct {
	Opcode string
}

// Error implements the error interface for UnknownOperatorError.
func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("operator %q undefined", e.Opcode)
}

// InsufficientOperandsError is returned when the stack holds fewer values
// than an operator's arity.
type InsufficientOperandsError struct {
	Opcode    string
	Needed    int
	Available int
}

// Error implements the error interface for InsufficientOperandsError.
func (e *InsufficientOperandsError) Error() string {
	return fmt.Sprintf("not enough operands for operator %q: need %d, have %d",
		e.Opcode, e.Needed, e.Available)
}

// OperatorError wraps a failure reported by an operator's compute function
// (e.g. division by zero). The stack has already been rolled back when the
// caller sees it.
type OperatorError struct {
	Opcode string
	Cause  error
}

// Error implements the error interface for OperatorError.
func (e *OperatorError) Error() string {
	return fmt.Sprintf("%s: %s", e.Opcode, e.Cause)
}

// Unwrap exposes the compute failure for errors.Is/As.
func (e *OperatorError) Unwrap() error {
	return e.Cause
}
