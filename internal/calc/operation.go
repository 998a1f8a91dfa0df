package calc

import (
	"fmt"
	"math"
)

// operationFunc evaluates one operation over already-validated operands.
// The calculator lock is held for the duration of the call.
type operationFunc func(c *Calculator, operands []float64) (float64, error)

// lookupOperation returns the evaluation rule for name, or nil when the
// name is not in the operation table.
func lookupOperation(name string) operationFunc {
	switch name {
	case "+":
		return opAdd
	case "-":
		return opSubtract
	case "*":
		return opMultiply
	case "/":
		return opDivide
	case "**":
		return opPower
	case "%":
		return opModulo
	case "sqrt":
		return opSqrt
	case "log":
		return opLog
	case "sin", "cos", "tan":
		return func(c *Calculator, operands []float64) (float64, error) {
			return opTrig(c, name, operands)
		}
	case "mean", "median", "mode", "stdev", "variance":
		return func(_ *Calculator, operands []float64) (float64, error) {
			return Statistics(name, operands)
		}
	case "sum", "avg", "product", "max", "min":
		return func(_ *Calculator, operands []float64) (float64, error) {
			return reduce(name, operands)
		}
	case "factorial":
		return opFactorial
	case "fibonacci":
		return opFibonacci
	}
	return nil
}

// arity rejects operand counts the operation does not accept. Arity
// failures are unknown-operation errors: "+" over three operands is no
// more recognized than "frobnicate" over two.
func arity(name string, operands []float64, want int) error {
	if len(operands) != want {
		return fmt.Errorf("%w: %s expects %d operand(s), got %d",
			ErrUnknownOperation, name, want, len(operands))
	}
	return nil
}

func opAdd(_ *Calculator, operands []float64) (float64, error) {
	if err := arity("+", operands, 2); err != nil {
		return 0, err
	}
	return operands[0] + operands[1], nil
}

func opSubtract(_ *Calculator, operands []float64) (float64, error) {
	if err := arity("-", operands, 2); err != nil {
		return 0, err
	}
	return operands[0] - operands[1], nil
}

func opMultiply(_ *Calculator, operands []float64) (float64, error) {
	if err := arity("*", operands, 2); err != nil {
		return 0, err
	}
	return operands[0] * operands[1], nil
}

func opDivide(_ *Calculator, operands []float64) (float64, error) {
	if err := arity("/", operands, 2); err != nil {
		return 0, err
	}
	if operands[1] == 0 {
		return 0, ErrDivisionByZero
	}
	return operands[0] / operands[1], nil
}

func opPower(_ *Calculator, operands []float64) (float64, error) {
	if err := arity("**", operands, 2); err != nil {
		return 0, err
	}
	return math.Pow(operands[0], operands[1]), nil
}

// opModulo keeps the sign of the dividend, math.Mod semantics.
func opModulo(_ *Calculator, operands []float64) (float64, error) {
	if err := arity("%", operands, 2); err != nil {
		return 0, err
	}
	if operands[1] == 0 {
		return 0, ErrModuloByZero
	}
	return math.Mod(operands[0], operands[1]), nil
}

func opSqrt(_ *Calculator, operands []float64) (float64, error) {
	if err := arity("sqrt", operands, 1); err != nil {
		return 0, err
	}
	if operands[0] < 0 {
		return 0, fmt.Errorf("%w: square root of negative number", ErrDomain)
	}
	return math.Sqrt(operands[0]), nil
}

// opLog is the natural logarithm with one operand and an arbitrary-base
// logarithm with two.
func opLog(_ *Calculator, operands []float64) (float64, error) {
	if len(operands) != 1 && len(operands) != 2 {
		return 0, fmt.Errorf("%w: log expects 1 or 2 operands, got %d",
			ErrUnknownOperation, len(operands))
	}
	if operands[0] <= 0 {
		return 0, fmt.Errorf("%w: logarithm of non-positive number", ErrDomain)
	}
	if len(operands) == 1 {
		return math.Log(operands[0]), nil
	}
	base := operands[1]
	if base <= 0 || base == 1 {
		return 0, fmt.Errorf("%w: invalid logarithm base %v", ErrDomain, base)
	}
	return math.Log(operands[0]) / math.Log(base), nil
}

func opTrig(c *Calculator, name string, operands []float64) (float64, error) {
	if err := arity(name, operands, 1); err != nil {
		return 0, err
	}
	angle := c.toRadians(operands[0])
	switch name {
	case "sin":
		return math.Sin(angle), nil
	case "cos":
		return math.Cos(angle), nil
	default:
		return math.Tan(angle), nil
	}
}

func opFactorial(_ *Calculator, operands []float64) (float64, error) {
	if err := arity("factorial", operands, 1); err != nil {
		return 0, err
	}
	n, err := wholeOperand("factorial", operands[0])
	if err != nil {
		return 0, err
	}
	v, err := Factorial(n)
	if err != nil {
		return 0, err
	}
	return float64(v), nil
}

func opFibonacci(_ *Calculator, operands []float64) (float64, error) {
	if err := arity("fibonacci", operands, 1); err != nil {
		return 0, err
	}
	n, err := wholeOperand("fibonacci", operands[0])
	if err != nil {
		return 0, err
	}
	v, err := Fibonacci(n)
	if err != nil {
		return 0, err
	}
	return float64(v), nil
}

// wholeOperand narrows a float operand to the int the integer operations
// take. Fractional operands are domain errors.
func wholeOperand(name string, v float64) (int, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: %s requires a whole number, got %v", ErrDomain, name, v)
	}
	return int(v), nil
}
