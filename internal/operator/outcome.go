package operator

import (
	"fmt"

	"github.com/vk/rpncalc/internal/value"
)

type outcomeKind int

const (
	kindNone outcomeKind = iota
	kindSingle
	kindMulti
	kindFailure
)

// Outcome is the classified result of invoking an operator's compute
// function: no value, a single value, multiple values, or a failure. A
// failure carries an error; callers never have to sniff result types.
type Outcome struct {
	kind   outcomeKind
	values []value.Value
	cause  error
}

// None reports success with nothing to push (e.g. drop).
func None() Outcome {
	return Outcome{kind: kindNone}
}

// Single reports success with one value to push.
func Single(v value.Value) Outcome {
	return Outcome{kind: kindSingle, values: []value.Value{v}}
}

// Multi reports success with several values to push, in the order given;
// the first element ends up deepest (e.g. dup, swap).
func Multi(vs ...value.Value) Outcome {
	return Outcome{kind: kindMulti, values: vs}
}

// Fail reports a failure with the given cause. The engine restores the
// popped operands before propagating it.
func Fail(cause error) Outcome {
	return Outcome{kind: kindFailure, cause: cause}
}

// Failf is Fail with fmt.Errorf formatting.
func Failf(format string, args ...any) Outcome {
	return Fail(fmt.Errorf(format, args...))
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o.kind == kindFailure
}

// Values returns the values to push, in push order. It is empty for the
// none and failure variants.
func (o Outcome) Values() []value.Value {
	return o.values
}

// Err returns the failure cause, or nil for success variants.
func (o Outcome) Err() error {
	return o.cause
}
