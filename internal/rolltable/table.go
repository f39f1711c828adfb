// Package rolltable provides named roll tables: YAML-defined collections of
// dice expressions that can be rolled by name, each roll producing a
// uuid-stamped record for auditing.
package rolltable

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/roll/dice"
)

// Entry is a single named dice expression in a table.
type Entry struct {
	Name        string `yaml:"name"`
	Expression  string `yaml:"expression"`
	Description string `yaml:"description"`
}

// Table is a named collection of roll entries.
type Table struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Validate checks that the table satisfies its invariants.
//
// Postcondition: Returns nil iff the table has a name, at least one entry,
// and every entry has a unique non-empty name and a non-empty expression.
func (t *Table) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("roll table: name must not be empty")
	}
	if len(t.Entries) == 0 {
		return fmt.Errorf("roll table %q: must have at least one entry", t.Name)
	}
	seen := make(map[string]bool, len(t.Entries))
	for i, e := range t.Entries {
		if e.Name == "" {
			return fmt.Errorf("roll table %q: entry[%d] must have a non-empty name", t.Name, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("roll table %q: duplicate entry name %q", t.Name, e.Name)
		}
		seen[e.Name] = true
		if e.Expression == "" {
			return fmt.Errorf("roll table %q: entry %q must have a non-empty expression", t.Name, e.Name)
		}
	}
	return nil
}

// Entry returns the entry with the given name.
func (t *Table) Entry(name string) (Entry, bool) {
	for _, e := range t.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Record is the audit record of one table roll.
type Record struct {
	ID         string // unique roll id
	Table      string
	Entry      string
	Expression string
	Result     int
	Rolls      string // formatted outcome list, e.g. "d6 -> [4], d6 -> [2]"
}

// Roll rolls the named entry with roller and returns a Record.
//
// Precondition: t must have passed Validate(); roller must be non-nil.
// Postcondition: Returns a Record with a fresh uuid ID, or an error if the
// entry does not exist or its expression fails to roll.
func (t *Table) Roll(entryName string, roller *dice.Roller) (Record, error) {
	e, ok := t.Entry(entryName)
	if !ok {
		return Record{}, fmt.Errorf("roll table %q: no entry named %q", t.Name, entryName)
	}

	res, err := roller.Roll(e.Expression)
	if err != nil {
		return Record{}, fmt.Errorf("roll table %q: rolling entry %q: %w", t.Name, e.Name, err)
	}

	return Record{
		ID:         uuid.NewString(),
		Table:      t.Name,
		Entry:      e.Name,
		Expression: e.Expression,
		Result:     res.Value(),
		Rolls:      res.RollsString(),
	}, nil
}
