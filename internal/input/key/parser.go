package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidKey is returned for a key specification that cannot be parsed.
var ErrInvalidKey = errors.New("invalid key specification")

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "q", "@"
//   - Special keys: "Enter", "Esc", "Tab", "Backspace", "Space", "F2"
//   - With modifiers: "Ctrl+S", "Alt+J", "Ctrl+Shift+P"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, fmt.Errorf("%w: empty", ErrInvalidKey)
	}

	// A lone "+" is the plus key, not a separator.
	if spec == "+" {
		return NewRuneEvent('+', ModNone), nil
	}

	parts := strings.Split(spec, "+")
	if strings.HasSuffix(spec, "++") {
		parts = append(strings.Split(strings.TrimSuffix(spec, "++"), "+"), "+")
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.TrimSpace(p)
		mod := ModifierFromName(strings.ToLower(p))
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidKey, p)
		}
		mods = mods.With(mod)
	}

	return parseKey(strings.TrimSpace(parts[len(parts)-1]), mods)
}

// parseKey parses the final key part with already-known modifiers.
func parseKey(keyPart string, mods Modifier) (Event, error) {
	if keyPart == "" {
		return Event{}, fmt.Errorf("%w: missing key", ErrInvalidKey)
	}

	lower := strings.ToLower(keyPart)
	if lower == "space" {
		return NewRuneEvent(' ', mods), nil
	}
	if k := KeyFromName(lower); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidKey, keyPart)
	}

	r := runes[0]
	// Modified letters are stored in lower case.
	if mods&(ModCtrl|ModAlt|ModMeta) != 0 {
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
