// Package dice implements a dice-notation expression engine: it parses an
// arithmetic expression containing dice terms, resolves each term into random
// die results, and evaluates the whole expression to an integer.
//
// Supported input:
//   - Standard dice notation: "d8", "2d12".
//   - Addition and subtraction: "d4 + 2d6", "d100 - 15".
//   - Multiplication and division: "d12 * 2", "d100 / 15" (quotients are
//     rounded to the nearest integer, ties away from zero).
//   - Brackets: "(d100 + d12) / 15".
//   - Percentile shorthand: "d%" rolls a d100.
//   - Boolean dice: "d1" yields 0 or 1.
//   - Unicode operator glyphs: "−", "×", "÷" are accepted alongside the
//     ASCII forms.
//   - Underscores and whitespace are ignored: "2_d_6" rolls 2d6.
package dice

import (
	"fmt"
	"strings"
)

// Outcome is a single generated die result. A plain integer literal in the
// expression is carried as an Outcome with Sides == 0 and Value equal to the
// literal.
type Outcome struct {
	Sides int // number of faces; 0 for a plain integer literal
	Value int // rolled value
}

// Result holds the full audit trail for one evaluated dice expression: every
// individual die outcome plus two parallel postfix formulas, one with dice
// terms replaced by their rolled sums and one preserving the original
// notation.
//
// A Result is immutable once returned by Roll.
type Result struct {
	value        int
	rolls        []Outcome
	formula      []Token // postfix, dice terms replaced by rolled sums
	rollsFormula []Token // postfix, original dice notation preserved
}

// Value returns the evaluated result of the whole expression, including all
// arithmetic operators.
func (r *Result) Value() int {
	return r.value
}

// Sum returns the simple sum of all individual die outcomes, ignoring any
// operators in the expression.
func (r *Result) Sum() int {
	total := 0
	for _, o := range r.rolls {
		total += o.Value
	}
	return total
}

// Rolls returns every individual die outcome in the order the operand
// fragments appear in the postfix formula.
func (r *Result) Rolls() []Outcome {
	return r.rolls
}

// RollsString returns a formatted list of the individual die outcomes, e.g.
// "d6 -> [4], d6 -> [2], d0 -> [3]" (a plain integer renders with 0 sides).
func (r *Result) RollsString() string {
	parts := make([]string, len(r.rolls))
	for i, o := range r.rolls {
		parts[i] = fmt.Sprintf("d%d -> [%d]", o.Sides, o.Value)
	}
	return strings.Join(parts, ", ")
}

// FormulaRPN returns the postfix formula with dice terms replaced by their
// rolled sums, operands wrapped in square brackets, e.g. "[6] [3] +".
func (r *Result) FormulaRPN() string {
	return formatRPN(r.formula)
}

// FormulaInfix returns the fully bracketed infix formula with dice terms
// replaced by their rolled sums, in the square-bracket display form, e.g.
// "[[6 + 3] * 2]".
func (r *Result) FormulaInfix() string {
	return displayInfix(r.formula)
}

// RollsFormulaRPN returns the postfix formula with the original dice notation
// preserved, operands wrapped in square brackets, e.g. "[2d6] [3] +".
func (r *Result) RollsFormulaRPN() string {
	return formatRPN(r.rollsFormula)
}

// RollsFormulaInfix returns the fully bracketed infix formula with the
// original dice notation preserved, in the square-bracket display form, e.g.
// "[[2d6 + 3] * 2]".
func (r *Result) RollsFormulaInfix() string {
	return displayInfix(r.rollsFormula)
}

// formatRPN renders a postfix token sequence as a space-separated string with
// operand tokens wrapped in square brackets.
func formatRPN(formula []Token) string {
	parts := make([]string, len(formula))
	for i, tok := range formula {
		if tok.Kind == KindOperator {
			parts[i] = tok.Text
		} else {
			parts[i] = "[" + tok.Text + "]"
		}
	}
	return strings.Join(parts, " ")
}

// displayInfix renders a postfix formula as infix and rewrites every round
// bracket pair to the square-bracket display form.
//
// Precondition: formula must have passed Evaluate during Roll, which
// guarantees the renderer cannot fail.
func displayInfix(formula []Token) string {
	s, _ := Infix(formula)
	return strings.ReplaceAll(strings.ReplaceAll(s, "( ", "["), " )", "]")
}
