package rolltable_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/roll/dice"
	"github.com/cory-johannsen/roll/internal/rolltable"
)

const treasureYAML = `
table:
  name: treasure
  entries:
    - name: gold
      expression: "2d6 * 10"
      description: gold pieces
    - name: gems
      expression: "1d4"
`

func testRoller() *dice.Roller {
	return dice.NewRoller(dice.NewSeededSource(1), zap.NewNop())
}

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	return dir
}

func TestLoadFromBytes_Valid(t *testing.T) {
	table, err := rolltable.LoadFromBytes([]byte(treasureYAML))
	require.NoError(t, err)
	assert.Equal(t, "treasure", table.Name)
	assert.Len(t, table.Entries, 2)

	gold, ok := table.Entry("gold")
	require.True(t, ok)
	assert.Equal(t, "2d6 * 10", gold.Expression)
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	_, err := rolltable.LoadFromBytes([]byte("table: ["))
	assert.Error(t, err)
}

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name  string
		table rolltable.Table
	}{
		{"empty name", rolltable.Table{Entries: []rolltable.Entry{{Name: "a", Expression: "d6"}}}},
		{"no entries", rolltable.Table{Name: "t"}},
		{"entry without name", rolltable.Table{Name: "t", Entries: []rolltable.Entry{{Expression: "d6"}}}},
		{"entry without expression", rolltable.Table{Name: "t", Entries: []rolltable.Entry{{Name: "a"}}}},
		{"duplicate entry names", rolltable.Table{Name: "t", Entries: []rolltable.Entry{
			{Name: "a", Expression: "d6"},
			{Name: "a", Expression: "d8"},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.table.Validate())
		})
	}
}

func TestTable_Roll(t *testing.T) {
	table, err := rolltable.LoadFromBytes([]byte(treasureYAML))
	require.NoError(t, err)

	rec, err := table.Roll("gold", testRoller())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "treasure", rec.Table)
	assert.Equal(t, "gold", rec.Entry)
	assert.Equal(t, "2d6 * 10", rec.Expression)
	assert.GreaterOrEqual(t, rec.Result, 20, "2d6 * 10 is at least 20")
	assert.LessOrEqual(t, rec.Result, 120, "2d6 * 10 is at most 120")
	assert.NotEmpty(t, rec.Rolls)
}

func TestTable_Roll_UniqueIDs(t *testing.T) {
	table, err := rolltable.LoadFromBytes([]byte(treasureYAML))
	require.NoError(t, err)

	a, err := table.Roll("gems", testRoller())
	require.NoError(t, err)
	b, err := table.Roll("gems", testRoller())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTable_Roll_UnknownEntry(t *testing.T) {
	table, err := rolltable.LoadFromBytes([]byte(treasureYAML))
	require.NoError(t, err)

	_, err = table.Roll("mithril", testRoller())
	assert.Error(t, err)
}

func TestTable_Roll_BadExpression(t *testing.T) {
	table := &rolltable.Table{
		Name:    "broken",
		Entries: []rolltable.Entry{{Name: "bad", Expression: "1dX"}},
	}
	require.NoError(t, table.Validate(), "structural validation does not roll expressions")

	_, err := table.Roll("bad", testRoller())
	assert.ErrorIs(t, err, dice.ErrInvalidDiceSides)
}

func TestLoadDir(t *testing.T) {
	dir := writeTable(t, "treasure.yaml", treasureYAML)

	tables, err := rolltable.LoadDir(dir)
	require.NoError(t, err)
	require.Contains(t, tables, "treasure")
	assert.Len(t, tables["treasure"].Entries, 2)
}

func TestLoadDir_SkipsNonYAML(t *testing.T) {
	dir := writeTable(t, "treasure.yaml", treasureYAML)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not yaml"), 0o600))

	tables, err := rolltable.LoadDir(dir)
	require.NoError(t, err)
	assert.Len(t, tables, 1)
}

func TestLoadDir_DuplicateTableName(t *testing.T) {
	dir := writeTable(t, "a.yaml", treasureYAML)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(treasureYAML), 0o600))

	_, err := rolltable.LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate roll table")
}

func TestLoadDir_MissingDir(t *testing.T) {
	_, err := rolltable.LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
