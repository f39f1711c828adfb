package dice

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultSource backs the package-level Roll entry point.
var defaultSource = NewCryptoSource()

// Roll parses, resolves, and evaluates a dice-notation expression using the
// process-default crypto-backed Source.
//
// Postcondition: returns an immutable Result, or an error wrapping one of
// ErrInvalidDiceCount, ErrInvalidDiceSides, ErrDivisionByZero, or
// ErrMalformedFormula. The whole roll fails atomically; no partial Result is
// ever returned.
func Roll(expr string) (*Result, error) {
	return roll(expr, defaultSource)
}

// roll runs the full pipeline: shunting-yard parse, fragment resolution, and
// postfix evaluation. Evaluating here, rather than lazily in an accessor,
// keeps the Result immutable and surfaces division by zero from the roll
// itself.
func roll(expr string, src Source) (*Result, error) {
	res, err := resolveFormula(Parse(strings.TrimSpace(expr)), src)
	if err != nil {
		return nil, err
	}

	value, err := Evaluate(res.formula)
	if err != nil {
		return nil, err
	}
	res.value = value

	return res, nil
}

// Roller combines a Source with a logger so every roll leaves an audit trail.
// Each successful roll is logged at debug level with a unique roll id, the
// expression, the individual outcomes, and the result.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewRoller creates a Roller that rolls with src and logs each roll to
// logger.
//
// Precondition: src and logger must be non-nil.
func NewRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates expr and logs the outcome.
//
// Postcondition: the roll is logged (debug on success, warn on failure);
// returns a Result or an error, never both.
func (r *Roller) Roll(expr string) (*Result, error) {
	res, err := roll(expr, r.src)
	if err != nil {
		r.logger.Warn("dice roll failed",
			zap.String("expression", expr),
			zap.Error(err),
		)
		return nil, err
	}

	r.logger.Debug("dice roll",
		zap.String("roll_id", uuid.NewString()),
		zap.String("expression", expr),
		zap.String("rolls", res.RollsString()),
		zap.Int("sum", res.Sum()),
		zap.Int("result", res.Value()),
	)
	return res, nil
}
