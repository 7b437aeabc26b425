// Package extraops ships the sample extension group "extra_ops": power,
// integer division, modulo, percent, negation and inverse. Unlike the
// standard set it is an ordinary group — it can be evicted and reloaded at
// the prompt — and it doubles as the reference implementation of the
// operator.Group interface for compiled-in groups.
package extraops

import (
	"math"
	"math/cmplx"

	"github.com/vk/rpncalc/internal/operator"
	"github.com/vk/rpncalc/internal/value"
)

// GroupName is the tag the registry files these operators under.
const GroupName = "extra_ops"

// Module implements the operator.Group interface for this package.
type Module struct{}

// Name returns the group tag.
func (m *Module) Name() string { return GroupName }

// Specs returns the group's operator specs.
func (m *Module) Specs() []operator.Spec {
	return []operator.Spec{
		{
			Opcode: "**", Arity: 2, Description: "power",
			Compute: func(args []value.Value) operator.Outcome {
				return operator.Single(value.Complex(cmplx.Pow(args[0].Cmplx(), args[1].Cmplx())))
			},
		},
		{
			Opcode: "//", Arity: 2, Description: "integer division",
			Compute: func(args []value.Value) operator.Outcome {
				x, y, ok := realPair(args)
				if !ok {
					return operator.Failf("integer division needs real operands")
				}
				if y == 0 {
					return operator.Fail(value.ErrDivisionByZero)
				}
				return operator.Single(value.Real(math.Floor(x / y)))
			},
		},
		{
			Opcode: "mod", Arity: 2, Description: "modulo or remainder",
			Compute: func(args []value.Value) operator.Outcome {
				x, y, ok := realPair(args)
				if !ok {
					return operator.Failf("modulo needs real operands")
				}
				if y == 0 {
					return operator.Fail(value.ErrDivisionByZero)
				}
				return operator.Single(value.Real(math.Mod(x, y)))
			},
		},
		{
			Opcode: "%", Arity: 2, Description: "percent",
			Compute: func(args []value.Value) operator.Outcome {
				return operator.Single(args[0].Mul(args[1]).Mul(value.Real(0.01)))
			},
		},
		{
			Opcode: "neg", Arity: 1, Description: "sign reversal",
			Compute: func(args []value.Value) operator.Outcome {
				return operator.Single(args[0].Neg())
			},
		},
		{
			Opcode: "inv", Arity: 1, Description: "inverse",
			Compute: func(args []value.Value) operator.Outcome {
				r, err := args[0].Inv()
				if err != nil {
					return operator.Fail(err)
				}
				return operator.Single(r)
			},
		},
	}
}

func realPair(args []value.Value) (x, y float64, ok bool) {
	if !args[0].IsReal() || !args[1].IsReal() {
		return 0, 0, false
	}
	return args[0].Float(), args[1].Float(), true
}
