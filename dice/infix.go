package dice

import "fmt"

// Infix reconstructs a fully parenthesized infix string from a postfix token
// sequence. An operator pops a (top) and b (second) and pushes
// "( b op a )", preserving left-to-right operand order; operands push their
// text unchanged. A single-operand sequence renders without brackets.
//
// Stack underflow or leftover stack depth != 1 returns ErrMalformedFormula.
func Infix(formula []Token) (string, error) {
	stack := make([]string, 0, len(formula))
	for _, tok := range formula {
		if tok.Kind != KindOperator {
			stack = append(stack, tok.Text)
			continue
		}

		if len(stack) < 2 {
			return "", fmt.Errorf("%w: operator %q with %d fragments on stack", ErrMalformedFormula, tok.Text, len(stack))
		}
		a := stack[len(stack)-1]
		b := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, "( "+b+" "+tok.Text+" "+a+" )")
	}

	if len(stack) != 1 {
		return "", fmt.Errorf("%w: %d fragments left after rendering", ErrMalformedFormula, len(stack))
	}
	return stack[0], nil
}
