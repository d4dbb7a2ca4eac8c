package renderer

import (
	"github.com/dshills/picoterm/internal/dispatcher"
	"github.com/dshills/picoterm/internal/input/mode"
)

// HelpText returns the help row shown in each mode, naming the
// configured global bindings. Console mode shows its prompt instead.
func HelpText(b dispatcher.Bindings) map[mode.Mode]string {
	return map[mode.Mode]string{
		mode.Write: "Quit: " + b.Quit.String() +
			" | Save: " + b.Save.String() +
			" | Edit mode: " + b.ToggleEdit.String() +
			" | Menu: " + b.Menu.String(),
		mode.Edit: "Move: I J K L | Word: W B | Line: U O | Swap: Alt+I Alt+K" +
			" | Copy: Y | Paste: P | Write mode: Q",
		mode.Menu: "Select: arrows | Confirm: Enter | Close: " + b.Menu.String(),
	}
}
