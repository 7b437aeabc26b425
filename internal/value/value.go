// Package value defines the numeric domain of the calculator.
//
// Every element on the calculator's stack is a Value: a number in the real
// or complex domain. Nothing else is ever pushed. Values are immutable;
// arithmetic helpers return new Values and report divide-by-zero as an
// ordinary error rather than producing infinities.
package value

import (
	"errors"
	"strconv"
	"strings"
)

// ErrDivisionByZero is reported by Div and Inv when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Value is a number in the real or complex domain.
type Value struct {
	c complex128
}

// Real constructs a Value from a real number.
func Real(r float64) Value {
	return Value{c: complex(r, 0)}
}

// Complex constructs a Value from a complex number.
func Complex(c complex128) Value {
	return Value{c: c}
}

// Parse converts a textual token into a Value. It accepts real literals in
// strconv.ParseFloat syntax and complex literals in the a+bj / a-bj / bj
// form, with either 'j' or 'i' as the imaginary-unit suffix.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, errors.New("empty numeric token")
	}
	if r, err := strconv.ParseFloat(s, 64); err == nil {
		return Real(r), nil
	}
	norm := s
	if i := strings.LastIndexByte(norm, 'j'); i == len(norm)-1 && i >= 0 {
		norm = norm[:i] + "i"
	}
	c, err := strconv.ParseComplex(norm, 128)
	if err != nil {
		return Value{}, err
	}
	return Complex(c), nil
}

// IsReal reports whether the value has no imaginary component.
func (v Value) IsReal() bool {
	return imag(v.c) == 0
}

// IsZero reports whether the value is exactly zero.
func (v Value) IsZero() bool {
	return v.c == 0
}

// Float returns the real component of the value.
func (v Value) Float() float64 {
	return real(v.c)
}

// Cmplx returns the value as a complex128.
func (v Value) Cmplx() complex128 {
	return v.c
}

// Add returns v + w.
func (v Value) Add(w Value) Value { return Value{c: v.c + w.c} }

// Sub returns v - w.
func (v Value) Sub(w Value) Value { return Value{c: v.c - w.c} }

// Mul returns v * w.
func (v Value) Mul(w Value) Value { return Value{c: v.c * w.c} }

// Neg returns -v.
func (v Value) Neg() Value { return Value{c: -v.c} }

// Div returns v / w, or ErrDivisionByZero when w is zero.
func (v Value) Div(w Value) (Value, error) {
	if w.IsZero() {
		return Value{}, ErrDivisionByZero
	}
	return Value{c: v.c / w.c}, nil
}

// Inv returns 1 / v, or ErrDivisionByZero when v is zero.
func (v Value) Inv() (Value, error) {
	return Real(1).Div(v)
}

// String renders real values without an imaginary part and complex values
// in Go's a+bi form.
func (v Value) String() string {
	if v.IsReal() {
		return strconv.FormatFloat(real(v.c), 'g', -1, 64)
	}
	re := strconv.FormatFloat(real(v.c), 'g', -1, 64)
	im := strconv.FormatFloat(imag(v.c), 'g', -1, 64)
	if imag(v.c) >= 0 {
		return re + "+" + im + "i"
	}
	return re + im + "i"
}
