package dice

import "errors"

// Sentinel errors for the recoverable failure classes of the engine. They are
// wrapped with context at the failure site; match with errors.Is.
var (
	// ErrInvalidDiceCount reports a dice term whose count segment does not
	// parse as a non-negative integer.
	ErrInvalidDiceCount = errors.New("dice: invalid dice count")

	// ErrInvalidDiceSides reports a dice term whose sides segment is neither
	// a positive integer nor the percent marker.
	ErrInvalidDiceSides = errors.New("dice: invalid dice sides")

	// ErrDivisionByZero reports a division by zero during evaluation.
	ErrDivisionByZero = errors.New("dice: division by zero is undefined")

	// ErrMalformedFormula reports a postfix sequence that violates the
	// single-stack evaluation contract: stack underflow, a non-numeric
	// operand, an unknown operator, or leftover stack depth != 1.
	ErrMalformedFormula = errors.New("dice: malformed postfix formula")
)
