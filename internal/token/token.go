// Package token classifies raw textual input into the two token kinds the
// engine understands: numeric pushes and opcodes. Classification is a
// driver concern; the engine only ever sees well-formed tokens.
package token

import (
	"fmt"

	"github.com/vk/rpncalc/internal/value"
)

// Kind distinguishes numeric tokens from opcode tokens.
type Kind int

const (
	// Number is a token carrying a parsed numeric value to push.
	Number Kind = iota
	// Opcode is a token naming an operator.
	Opcode
)

// Token is one unit of calculator input.
type Token struct {
	Kind  Kind
	Value value.Value // set when Kind == Number
	Text  string      // the raw token; the opcode when Kind == Opcode
}

// Num builds a numeric token.
func Num(v value.Value) Token {
	return Token{Kind: Number, Value: v, Text: v.String()}
}

// Op builds an opcode token.
func Op(opcode string) Token {
	return Token{Kind: Opcode, Text: opcode}
}

// InvalidTokenError is a driver-level error: a textual token that is
// neither a registered opcode nor a parseable number. Such tokens never
// reach the engine.
type InvalidTokenError struct {
	Text string
}

// Error implements the error interface for InvalidTokenError.
func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q: not an operator and not a number", e.Text)
}

// Opcodes is the registry view classification needs: just enough to ask
// whether a token names a known operator.
type Opcodes interface {
	Has(opcode string) bool
}

// Classify turns a raw textual token into a Token. Registered opcodes win
// over numeric parsing, then anything that parses as a number is a push;
// the rest is an InvalidTokenError.
func Classify(raw string, reg Opcodes) (Token, error) {
	if reg.Has(raw) {
		return Op(raw), nil
	}
	if v, err := value.Parse(raw); err == nil {
		return Token{Kind: Number, Value: v, Text: raw}, nil
	}
	return Token{}, &InvalidTokenError{Text: raw}
}
