package dice

import (
	"fmt"
	"math"
	"strconv"
)

// Evaluate reduces a fully numeric postfix token sequence to a single
// integer using one stack. Operands push; an operator pops a (top) and b
// (second) and pushes b OP a, preserving left-to-right operand order.
// Division computes the float64 quotient and rounds to the nearest integer
// with ties away from zero, so 10/4 evaluates to 3 and -10/4 to -3.
//
// An empty sequence evaluates to 0. Division by zero returns
// ErrDivisionByZero; stack underflow, a non-numeric operand, or leftover
// stack depth != 1 returns ErrMalformedFormula.
func Evaluate(formula []Token) (int, error) {
	if len(formula) == 0 {
		return 0, nil
	}

	stack := make([]int, 0, len(formula))
	for _, tok := range formula {
		if tok.Kind != KindOperator {
			n, err := strconv.Atoi(tok.Text)
			if err != nil {
				return 0, fmt.Errorf("%w: non-numeric operand %q", ErrMalformedFormula, tok.Text)
			}
			stack = append(stack, n)
			continue
		}

		if len(stack) < 2 {
			return 0, fmt.Errorf("%w: operator %q with %d operands on stack", ErrMalformedFormula, tok.Text, len(stack))
		}
		a := stack[len(stack)-1]
		b := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var v int
		switch tok.Text {
		case "+":
			v = b + a
		case "-", "−":
			v = b - a
		case "*", "×":
			v = b * a
		case "/", "÷":
			if a == 0 {
				return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, b)
			}
			v = int(math.Round(float64(b) / float64(a)))
		default:
			return 0, fmt.Errorf("%w: unknown operator %q", ErrMalformedFormula, tok.Text)
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("%w: %d values left after evaluation", ErrMalformedFormula, len(stack))
	}
	return stack[0], nil
}
