package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Esc, function keys, Ctrl combinations)
	SpecialKeys map[tcell.Key]IntentType

	// Printable keys, including space
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyF1:     IntentToggleDebug,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentRestart,
			'm': IntentToggleMute,
			'd': IntentToggleDebug,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType, len(kt.SpecialKeys)),
		Runes:       make(map[rune]IntentType, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for r, v := range kt.Runes {
		c.Runes[r] = v
	}
	return c
}

// Resolve returns the intent bound to ev, or IntentNone
func (kt *KeyTable) Resolve(ev *tcell.EventKey) IntentType {
	return kt.Lookup(ev.Key(), ev.Rune())
}

// Lookup returns the intent bound to a key code and rune
// r is only consulted for tcell.KeyRune
func (kt *KeyTable) Lookup(k tcell.Key, r rune) IntentType {
	if k == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[k]
}
