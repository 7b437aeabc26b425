package registry

import (
	"github.com/vk/rpncalc/internal/operator"
	"github.com/vk/rpncalc/internal/value"
)

// stdSpecs returns the standard operator set. It is installed once, at
// registry construction, under the protected "std" group tag.
func stdSpecs() []operator.Spec {
	return []operator.Spec{
		{
			Opcode: "+", Arity: 2, Description: "addition",
			Compute: func(args []value.Value) operator.Outcome {
				return operator.Single(args[0].Add(args[1]))
			},
		},
		{
			Opcode: "-", Arity: 2, Description: "subtraction",
			Compute: func(args []value.Value) operator.Outcome {
				return operator.Single(args[0].Sub(args[1]))
			},
		},
		{
			Opcode: "*", Arity: 2, Description: "multiplication",
			Compute: func(args []value.Value) operator.Outcome {
				return operator.Single(args[0].Mul(args[1]))
			},
		},
		{
			Opcode: "/", Arity: 2, Description: "division",
			Compute: func(args []value.Value) operator.Outcome {
				q, err := args[0].Div(args[1])
				if err != nil {
					return operator.Fail(err)
				}
				return operator.Single(q)
			},
		},
		{
			Opcode: "drop", Arity: 1, Description: "pop and lose element on top level of stack",
			Compute: func(args []value.Value) operator.Outcome {
				return operator.None()
			},
		},
		{
			Opcode: "swap", Arity: 2, Description: "swap the two topmost elements of stack",
			Compute: func(args []value.Value) operator.Outcome {
				return operator.Multi(args[1], args[0])
			},
		},
		{
			Opcode: "dup", Arity: 1, Description: "duplicate topmost level of stack",
			Compute: func(args []value.Value) operator.Outcome {
				return operator.Multi(args[0], args[0])
			},
		},
	}
}
