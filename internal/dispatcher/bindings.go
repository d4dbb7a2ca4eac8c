package dispatcher

import (
	"fmt"

	"github.com/dshills/picoterm/internal/config"
	"github.com/dshills/picoterm/internal/input/key"
)

// Bindings are the global key bindings active outside Console mode.
type Bindings struct {
	Quit       key.Event
	Save       key.Event
	ToggleEdit key.Event
	Menu       key.Event
}

// DefaultBindings returns Esc, Ctrl+S, Alt+J and F2.
func DefaultBindings() Bindings {
	return Bindings{
		Quit:       key.NewSpecialEvent(key.KeyEscape, key.ModNone),
		Save:       key.NewRuneEvent('s', key.ModCtrl),
		ToggleEdit: key.NewRuneEvent('j', key.ModAlt),
		Menu:       key.NewSpecialEvent(key.KeyF2, key.ModNone),
	}
}

// BindingsFromConfig parses the configured key strings.
func BindingsFromConfig(keys config.KeysConfig) (Bindings, error) {
	var b Bindings
	specs := []struct {
		name string
		spec string
		dst  *key.Event
	}{
		{"quit", keys.Quit, &b.Quit},
		{"save", keys.Save, &b.Save},
		{"toggleEdit", keys.ToggleEdit, &b.ToggleEdit},
		{"menu", keys.Menu, &b.Menu},
	}

	for _, s := range specs {
		ev, err := key.Parse(s.spec)
		if err != nil {
			return Bindings{}, fmt.Errorf("keys.%s: %w", s.name, err)
		}
		*s.dst = ev
	}
	return b, nil
}
