package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// percentSides is the face count of the percentile die, "d%".
const percentSides = 100

// resolveFragment resolves one operand fragment into its individual die
// outcomes and their sum.
//
// A fragment that parses entirely as an integer produces a single outcome
// with Sides == 0. Otherwise the fragment is split on the first 'd': the
// leading segment is the count (defaults to 1 when omitted, must be a
// non-negative integer) and the trailing segment is the sides (a positive
// integer, or '%' meaning 100). A one-sided die is a boolean die drawing
// from {0, 1}; an n-sided die draws uniformly from [1, n].
func resolveFragment(fragment string, src Source) (int, []Outcome, error) {
	if n, err := strconv.Atoi(fragment); err == nil {
		return n, []Outcome{{Sides: 0, Value: n}}, nil
	}

	countStr, sidesStr := fragment, ""
	if i := strings.Index(fragment, "d"); i >= 0 {
		countStr, sidesStr = fragment[:i], fragment[i+1:]
		if countStr == "" {
			countStr = "1"
		}
	}

	count, err := strconv.Atoi(countStr)
	if err != nil || count < 0 {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidDiceCount, fragment)
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		if Precedence(sidesStr) != precPercent {
			return 0, nil, fmt.Errorf("%w: %q", ErrInvalidDiceSides, fragment)
		}
		sides = percentSides
	} else if sides < 1 {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidDiceSides, fragment)
	}

	sum := 0
	outcomes := make([]Outcome, 0, count)
	for i := 0; i < count; i++ {
		var v int
		if sides == 1 {
			v = src.Intn(2) // boolean die
		} else {
			v = src.Intn(sides) + 1
		}
		outcomes = append(outcomes, Outcome{Sides: sides, Value: v})
		sum += v
	}

	return sum, outcomes, nil
}

// resolveFormula walks a postfix token sequence, resolving every operand
// fragment through resolveFragment, and builds the two parallel formulas of a
// Result: one with dice terms replaced by their rolled sums, one preserving
// the original notation. Operators are copied into both unchanged.
//
// Outcomes accumulate in postfix scan order, not evaluation order, so the
// outcome list lines up with the notation-preserving formula. Any fragment
// error fails the whole resolution; no partial Result is returned.
func resolveFormula(postfix []Token, src Source) (*Result, error) {
	res := &Result{
		formula:      make([]Token, 0, len(postfix)),
		rollsFormula: make([]Token, 0, len(postfix)),
	}

	for _, tok := range postfix {
		if tok.Kind == KindOperator {
			res.formula = append(res.formula, tok)
			res.rollsFormula = append(res.rollsFormula, tok)
			continue
		}

		sum, outcomes, err := resolveFragment(tok.Text, src)
		if err != nil {
			return nil, err
		}

		res.rolls = append(res.rolls, outcomes...)
		res.formula = append(res.formula, Token{Kind: KindOperand, Text: strconv.Itoa(sum)})
		res.rollsFormula = append(res.rollsFormula, tok)
	}

	return res, nil
}
