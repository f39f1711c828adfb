package dice

// Parse converts an infix dice-notation expression into a postfix (Reverse
// Polish Notation) token sequence using the shunting-yard algorithm. Operand
// fragments (integer literals and dice terms) pass through unresolved;
// operators are reordered by precedence with left-associative folding for
// equal precedence.
//
// Parse is total: it never fails. Mismatched brackets silently produce a
// malformed postfix sequence — an unmatched ')' stops popping at an empty
// stack and a leftover '(' is discarded when the stack drains — which the
// evaluator and renderer detect through their stack-depth checks.
func Parse(expr string) []Token {
	var output []Token
	var stack []Token

	for _, tok := range tokenize(expr) {
		switch tok.Kind {
		case KindOperator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != KindOperator || Precedence(top.Text) < Precedence(tok.Text) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)

		case KindLeftBracket:
			stack = append(stack, tok)

		case KindRightBracket:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == KindLeftBracket {
					break
				}
				output = append(output, top)
			}

		default:
			output = append(output, tok)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == KindOperator {
			output = append(output, top)
		}
	}

	return output
}
