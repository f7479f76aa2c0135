package expr

import "math"

// Evaluate computes n at the given variable bindings. It is pure and total
// over IEEE semantics: division by zero yields a signed infinity and domain
// errors such as sqrt(-1) yield NaN. Those are ordinary outputs, not
// failures; samplers must skip non-finite values rather than abort. An
// unbound variable evaluates to NaN.
func Evaluate(n Node, vars map[string]float64) float64 {
	switch v := n.(type) {
	case *Num:
		return v.Value
	case *Var:
		if val, ok := vars[v.Name]; ok {
			return val
		}
		return math.NaN()
	case *Const:
		return constValue[v.Name]
	case *Unary:
		return -Evaluate(v.X, vars)
	case *Binary:
		a := Evaluate(v.X, vars)
		b := Evaluate(v.Y, vars)
		switch v.Op {
		case '+':
			return a + b
		case '-':
			return a - b
		case '*':
			return a * b
		case '/':
			return a / b
		case '^':
			return math.Pow(a, b)
		}
	case *Call:
		return evalCall(v, vars)
	}
	return math.NaN()
}

func evalCall(c *Call, vars map[string]float64) float64 {
	args := make([]float64, len(c.Args))
	for i, a := range c.Args {
		args[i] = Evaluate(a, vars)
	}
	switch c.Fn {
	case "sin":
		return math.Sin(args[0])
	case "cos":
		return math.Cos(args[0])
	case "tan":
		return math.Tan(args[0])
	case "asin":
		return math.Asin(args[0])
	case "acos":
		return math.Acos(args[0])
	case "atan":
		return math.Atan(args[0])
	case "exp":
		return math.Exp(args[0])
	case "log":
		return math.Log(args[0])
	case "sqrt":
		return math.Sqrt(args[0])
	case "abs":
		return math.Abs(args[0])
	case "pow":
		return math.Pow(args[0], args[1])
	case "min":
		return math.Min(args[0], args[1])
	case "max":
		return math.Max(args[0], args[1])
	}
	return math.NaN()
}
