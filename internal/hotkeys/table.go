package hotkeys

import (
	"github.com/1broseidon/dragwm/internal/config"
	"github.com/1broseidon/dragwm/internal/platform"
)

// modifierBits covers Shift through Mod5; higher state bits are pointer buttons.
const modifierBits uint16 = 0x00ff

type combo struct {
	code platform.Keycode
	mods uint16
}

// Table resolves key presses to the bindings that were grabbed for them.
type Table struct {
	mods     uint16
	lockBits uint16
	bindings map[combo]config.Binding
}

// NewTable creates an empty table for bindings qualified by mods. Bits in any
// of locks are ignored on lookup.
func NewTable(mods uint16, locks []uint16) *Table {
	var lockBits uint16
	for _, l := range locks {
		lockBits |= l
	}
	lockBits &^= mods
	return &Table{
		mods:     mods,
		lockBits: lockBits,
		bindings: make(map[combo]config.Binding),
	}
}

// Add binds code (with the table's modifier) to b.
func (t *Table) Add(code platform.Keycode, b config.Binding) {
	t.bindings[combo{code: code, mods: t.mods}] = b
}

// Bound returns the binding already added for code, if any.
func (t *Table) Bound(code platform.Keycode) (config.Binding, bool) {
	b, ok := t.bindings[combo{code: code, mods: t.mods}]
	return b, ok
}

// Lookup finds the binding for a key press with the given event state.
func (t *Table) Lookup(code platform.Keycode, state uint16) (config.Binding, bool) {
	clean := state & modifierBits &^ t.lockBits
	b, ok := t.bindings[combo{code: code, mods: clean}]
	return b, ok
}

// Len returns the number of bound keycodes.
func (t *Table) Len() int {
	return len(t.bindings)
}
