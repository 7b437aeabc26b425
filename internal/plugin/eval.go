package plugin

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/rpncalc/internal/operator"
	"github.com/vk/rpncalc/internal/value"
)

// exprFunctions is the function table available to plugin result
// expressions.
var exprFunctions = map[string]function.Function{
	"abs":    stdlib.AbsoluteFunc,
	"ceil":   stdlib.CeilFunc,
	"floor":  stdlib.FloorFunc,
	"int":    stdlib.IntFunc,
	"log":    stdlib.LogFunc,
	"max":    stdlib.MaxFunc,
	"min":    stdlib.MinFunc,
	"mod":    stdlib.ModuloFunc,
	"pow":    stdlib.PowFunc,
	"signum": stdlib.SignumFunc,
}

// exprCompute builds the compute function for an HCL-declared operator.
// The expression is evaluated on every call against the actual operands,
// bound to the declared param names deepest-first.
func exprCompute(opcode string, params []string, expr hcl.Expression) operator.Func {
	return func(args []value.Value) operator.Outcome {
		vars := make(map[string]cty.Value, len(params))
		for i, p := range params {
			if !args[i].IsReal() {
				return operator.Failf("operator %q accepts real operands only, got %s", opcode, args[i])
			}
			vars[p] = cty.NumberFloatVal(args[i].Float())
		}

		result, diags := expr.Value(&hcl.EvalContext{
			Variables: vars,
			Functions: exprFunctions,
		})
		if diags.HasErrors() {
			return operator.Failf("operator %q: %s", opcode, diags.Error())
		}
		if result.IsNull() || !result.IsKnown() {
			return operator.Failf("operator %q produced no usable result", opcode)
		}
		if !result.Type().Equals(cty.Number) {
			return operator.Failf("operator %q produced a %s, not a number",
				opcode, result.Type().FriendlyName())
		}

		f, _ := result.AsBigFloat().Float64()
		return operator.Single(value.Real(f))
	}
}
