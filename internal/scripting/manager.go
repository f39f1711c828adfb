package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/roll/dice"
)

// Manager executes Lua scripts in fresh sandboxed VMs with the dice.* and
// log.* modules registered. Each Run or DoString gets its own VM, so scripts
// cannot leak state into each other.
type Manager struct {
	roller    *dice.Roller
	logger    *zap.Logger
	instLimit int
}

// NewManager creates a Manager.
//
// Precondition: roller and logger must be non-nil; instLimit >= 0, with 0
// meaning DefaultInstructionLimit.
func NewManager(roller *dice.Roller, logger *zap.Logger, instLimit int) *Manager {
	return &Manager{roller: roller, logger: logger, instLimit: instLimit}
}

// Run executes a single Lua script file in a fresh sandboxed VM.
//
// Precondition: path must point to a readable Lua file.
// Postcondition: Returns an error on load or runtime failure, including an
// exceeded instruction limit.
func (m *Manager) Run(path string) error {
	L := m.newState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("scripting: running %q: %w", path, err)
	}
	return nil
}

// RunDir executes every *.lua file in dir in lexicographic order, each in
// its own fresh VM.
//
// Precondition: dir must be a readable directory.
// Postcondition: Stops at and returns the first script failure.
func (m *Manager) RunDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		if err := m.Run(path); err != nil {
			return err
		}
	}
	return nil
}

// DoString executes Lua source in a fresh sandboxed VM.
//
// Postcondition: Returns an error on load or runtime failure.
func (m *Manager) DoString(src string) error {
	L := m.newState()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return fmt.Errorf("scripting: running inline script: %w", err)
	}
	return nil
}

func (m *Manager) newState() *lua.LState {
	L := NewSandboxedState(m.instLimit)
	m.RegisterModules(L)
	return L
}
