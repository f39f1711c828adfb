package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/roll/dice"
)

// seededRoller returns a deterministic Roller with a no-op logger.
func seededRoller(seed int64) *dice.Roller {
	return dice.NewRoller(dice.NewSeededSource(seed), zap.NewNop())
}

// TestRoll_PlainInteger verifies rolling a bare integer: result == n,
// sum == n, one outcome with 0 sides.
func TestRoll_PlainInteger(t *testing.T) {
	res, err := dice.Roll("17")
	require.NoError(t, err)
	assert.Equal(t, 17, res.Value())
	assert.Equal(t, 17, res.Sum())
	assert.Equal(t, []dice.Outcome{{Sides: 0, Value: 17}}, res.Rolls())
}

// TestRoll_BooleanDie verifies "d1" only ever yields 0 or 1 and both values
// are achievable.
func TestRoll_BooleanDie(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		res, err := dice.Roll("d1")
		require.NoError(t, err)
		v := res.Value()
		require.True(t, v == 0 || v == 1, "boolean die rolled %d", v)
		seen[v] = true
	}
	assert.True(t, seen[0] && seen[1], "both boolean outcomes must be achievable")
}

// TestRoll_Percentile verifies "d%" behaves as a d100.
func TestRoll_Percentile(t *testing.T) {
	res, err := dice.Roll("d%")
	require.NoError(t, err)
	require.Len(t, res.Rolls(), 1)
	assert.Equal(t, 100, res.Rolls()[0].Sides)
	assert.GreaterOrEqual(t, res.Value(), 1)
	assert.LessOrEqual(t, res.Value(), 100)
}

// TestRoll_SingleTerm_Property verifies that for any NdS term the roll has
// exactly N outcomes in [1, S] and the evaluated value equals the sum.
func TestRoll_SingleTerm_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(rt, "n")
		s := rapid.IntRange(2, 100).Draw(rt, "s")
		seed := rapid.Int64().Draw(rt, "seed")

		res, err := seededRoller(seed).Roll(fmt.Sprintf("%dd%d", n, s))
		require.NoError(rt, err)
		require.Len(rt, res.Rolls(), n)
		for _, o := range res.Rolls() {
			assert.GreaterOrEqual(rt, o.Value, 1)
			assert.LessOrEqual(rt, o.Value, s)
		}
		assert.Equal(rt, res.Sum(), res.Value(),
			"a single-term expression evaluates to the sum of its rolls")
	})
}

// TestRoll_ArithmeticOnly verifies a dice-free expression evaluates with
// standard precedence.
func TestRoll_ArithmeticOnly(t *testing.T) {
	res, err := dice.Roll("3 + 4 * 6")
	require.NoError(t, err)
	assert.Equal(t, 27, res.Value())
}

// TestRoll_Empty verifies the documented default: an empty expression
// evaluates to 0.
func TestRoll_Empty(t *testing.T) {
	res, err := dice.Roll("")
	require.NoError(t, err)
	assert.Zero(t, res.Value())
}

// TestRoll_DivisionByZero verifies the error surfaces from Roll itself, not
// from an accessor.
func TestRoll_DivisionByZero(t *testing.T) {
	_, err := dice.Roll("5 / 0")
	assert.ErrorIs(t, err, dice.ErrDivisionByZero)
}

// TestRoll_InvalidDiceSides verifies a malformed dice term fails the roll
// with a recoverable error, never a silent 0.
func TestRoll_InvalidDiceSides(t *testing.T) {
	_, err := dice.Roll("1dX")
	assert.ErrorIs(t, err, dice.ErrInvalidDiceSides)
}

// TestRoll_MalformedBrackets verifies mismatched bracket nesting surfaces
// as a malformed-formula error from evaluation, not a crash.
func TestRoll_MalformedBrackets(t *testing.T) {
	_, err := dice.Roll("(2 +) * 3")
	assert.ErrorIs(t, err, dice.ErrMalformedFormula)
}

// TestRoll_Deterministic verifies the same seed reproduces the same roll.
func TestRoll_Deterministic(t *testing.T) {
	a, err := seededRoller(42).Roll("10d20 + 1d4")
	require.NoError(t, err)
	b, err := seededRoller(42).Roll("10d20 + 1d4")
	require.NoError(t, err)
	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, a.Rolls(), b.Rolls())
}

// TestResult_FormulaStrings verifies the rendered forms of both parallel
// formulas for a mixed expression.
func TestResult_FormulaStrings(t *testing.T) {
	res, err := seededRoller(1).Roll("2d6 + 3")
	require.NoError(t, err)

	assert.Equal(t, "[2d6] [3] +", res.RollsFormulaRPN())
	assert.Equal(t, "[2d6 + 3]", res.RollsFormulaInfix())
	assert.Regexp(t, `^\[\d+\] \[3\] \+$`, res.FormulaRPN())
	assert.Regexp(t, `^\[\d+ \+ 3\]$`, res.FormulaInfix())
}

// TestResult_NestedInfixDisplay verifies every bracket pair is rewritten to
// the square-bracket display form, not just the outermost.
func TestResult_NestedInfixDisplay(t *testing.T) {
	res, err := seededRoller(1).Roll("(2 - 1) * 3 + 4")
	require.NoError(t, err)
	assert.Equal(t, "[[[2 - 1] * 3] + 4]", res.RollsFormulaInfix())
}

// TestResult_RollsString verifies the outcome list format, including the
// 0-sided rendering of integer literals.
func TestResult_RollsString(t *testing.T) {
	res, err := seededRoller(1).Roll("2d6 + 3")
	require.NoError(t, err)

	s := res.RollsString()
	assert.Regexp(t, `^d6 -> \[\d\], d6 -> \[\d\], d0 -> \[3\]$`, s)
}

// TestResult_SumIgnoresOperators verifies Sum() adds every outcome
// regardless of the operators between terms.
func TestResult_SumIgnoresOperators(t *testing.T) {
	res, err := seededRoller(3).Roll("2d6 - 1d4")
	require.NoError(t, err)

	total := 0
	for _, o := range res.Rolls() {
		total += o.Value
	}
	assert.Equal(t, total, res.Sum())
}

// TestRoller_LogsRollAtDebug verifies each successful roll is logged with a
// roll id, the expression, and the result.
func TestRoller_LogsRollAtDebug(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewRoller(dice.NewSeededSource(5), zap.New(core))

	res, err := roller.Roll("2d6")
	require.NoError(t, err)

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.NotEmpty(t, fields["roll_id"])
	assert.Equal(t, "2d6", fields["expression"])
	assert.Equal(t, int64(res.Value()), fields["result"])
}

// TestRoller_LogsFailureAtWarn verifies failed rolls are logged at warn with
// the error attached.
func TestRoller_LogsFailureAtWarn(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	roller := dice.NewRoller(dice.NewSeededSource(5), zap.New(core))

	_, err := roller.Roll("1dX")
	require.Error(t, err)

	entries := logs.FilterMessage("dice roll failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zap.WarnLevel, entries[0].Level)
}

// TestRoll_ComplexExpression exercises the full grammar in one expression.
func TestRoll_ComplexExpression(t *testing.T) {
	res, err := seededRoller(9).Roll("1d4 + 2d6 * 3d2 / 4d8 + (2d6 + 3d8) - 16 * (1 / 1d4)")
	require.NoError(t, err)
	assert.Len(t, res.Rolls(), 18, "16 dice plus 2 integer literals")
	assert.NotEmpty(t, res.FormulaInfix())
	assert.NotEmpty(t, res.RollsFormulaRPN())
}
