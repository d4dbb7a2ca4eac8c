package key

import (
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character typed without
// Ctrl, Alt or Meta.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.IsModified()
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// Matches reports whether e is the key press described by binding.
// Letters bound together with Ctrl or Alt match in either case, since
// terminals disagree on the case they report for them.
func (e Event) Matches(binding Event) bool {
	if e.Key != binding.Key {
		return false
	}
	if e.Key != KeyRune {
		return e.Modifiers == binding.Modifiers
	}

	mods := e.Modifiers
	want := binding.Modifiers
	r, wr := e.Rune, binding.Rune
	if want&(ModCtrl|ModAlt) != 0 {
		r, wr = unicode.ToLower(r), unicode.ToLower(wr)
		mods = mods.Without(ModShift)
		want = want.Without(ModShift)
	}
	if !e.IsModified() && !binding.IsModified() {
		// Shift is implied by the character itself.
		mods, want = ModNone, ModNone
	}
	return r == wr && mods == want
}

// String returns a canonical string representation that Parse accepts.
// Examples: "a", "Ctrl+S", "Alt+J", "Enter", "F2", "Space"
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
			if e.IsModified() {
				name = string(unicode.ToUpper(e.Rune))
			}
		}
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.Key == KeyRune {
		mods = mods.Without(ModShift)
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}
