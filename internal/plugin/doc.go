// Package plugin loads operator groups from HCL files.
//
// A plugin file declares one or more named groups of operators. Each
// operator names its parameters (deepest stack operand first) and gives
// its result as an HCL expression, which is kept unevaluated at load time
// and evaluated per call against the actual operands:
//
//	group "extra_ops" {
//	  operator "**" {
//	    params      = ["x", "y"]
//	    result      = pow(x, y)
//	    description = "power"
//	  }
//	}
//
// This replaces the usual dynamic-code plugin trick with plain data files:
// the calculator never imports or executes foreign code, it only hands the
// parsed groups to the registry. Expressions evaluate in the real domain —
// cty has no complex numbers — so applying a plugin operator to a value
// with a nonzero imaginary part is an ordinary calculator error.
//
// A structurally defective file (missing result, duplicate or invalid
// params) is rejected as a whole; none of its groups register.
package plugin
