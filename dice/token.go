package dice

import (
	"strings"
	"unicode"
)

// Kind identifies the lexical class of a Token.
type Kind int

const (
	// KindOperand is a contiguous run of non-operator, non-bracket
	// characters: a plain integer literal or a dice term such as "3d6".
	KindOperand Kind = iota
	// KindOperator is one of the four binary arithmetic operators.
	KindOperator
	// KindLeftBracket is an opening round bracket.
	KindLeftBracket
	// KindRightBracket is a closing round bracket.
	KindRightBracket
)

// Token is a single lexical unit produced by the tokenizer. Typing tokens
// once here means no downstream stage has to re-derive a token's class from
// its text.
type Token struct {
	Kind Kind
	Text string
}

// Sentinel precedence classes returned by Precedence for non-operator
// symbols. Operators have precedence > 0; ordinary literal characters have
// precedence 0.
const (
	precLeftBracket  = -1
	precRightBracket = -2
	precPercent      = -3
)

// Precedence classifies a single symbol, returning its operator precedence.
// Division binds tightest, then multiplication, addition, and subtraction.
// Brackets and the percent marker carry negative sentinel values; any
// unrecognized symbol returns 0. Both ASCII and Unicode operator glyphs are
// recognized so input and rendered output can use the same symbols.
//
// Pure function; total (never fails).
func Precedence(symbol string) int {
	switch symbol {
	case "/", "÷":
		return 4
	case "*", "×":
		return 3
	case "+":
		return 2
	case "-", "−":
		return 1
	case "(":
		return precLeftBracket
	case ")":
		return precRightBracket
	case "%":
		return precPercent
	default:
		return 0
	}
}

// tokenize scans expr left to right and produces typed tokens: operators,
// brackets, and operand fragments. Whitespace and underscores are stripped
// (underscores are allowed as visual separators, e.g. "2_d_6"). Any symbol
// that is not an operator or bracket accumulates into the current operand
// fragment, including digits, 'd', and '%'.
//
// The scan is rune-based: the Unicode glyphs '−', '×', and '÷' are multi-byte.
func tokenize(expr string) []Token {
	var tokens []Token
	var fragment strings.Builder

	flush := func() {
		if fragment.Len() > 0 {
			tokens = append(tokens, Token{Kind: KindOperand, Text: fragment.String()})
			fragment.Reset()
		}
	}

	for _, r := range expr {
		if unicode.IsSpace(r) || r == '_' {
			continue
		}
		sym := string(r)
		switch p := Precedence(sym); {
		case p > 0:
			flush()
			tokens = append(tokens, Token{Kind: KindOperator, Text: sym})
		case p == precLeftBracket:
			flush()
			tokens = append(tokens, Token{Kind: KindLeftBracket, Text: sym})
		case p == precRightBracket:
			flush()
			tokens = append(tokens, Token{Kind: KindRightBracket, Text: sym})
		default:
			fragment.WriteRune(r)
		}
	}
	flush()

	return tokens
}
