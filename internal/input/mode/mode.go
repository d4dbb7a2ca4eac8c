package mode

import "fmt"

// Mode identifies an editor mode.
type Mode uint8

const (
	// Write is the default text entry mode.
	Write Mode = iota
	// Edit is the navigation and line command mode.
	Edit
	// Menu gives the menu bar keyboard focus.
	Menu
	// Console captures a line of text for a pending action.
	Console
)

// String returns the mode identifier.
func (m Mode) String() string {
	switch m {
	case Write:
		return "write"
	case Edit:
		return "edit"
	case Menu:
		return "menu"
	case Console:
		return "console"
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Write:
		return "WRITE"
	case Edit:
		return "EDIT"
	case Menu:
		return "MENU"
	case Console:
		return "CONSOLE"
	default:
		return "?"
	}
}

// Action is the operation a Console prompt completes.
type Action uint8

const (
	// ActionNone means no action is pending.
	ActionNone Action = iota
	// ActionSaveAs saves the document under the entered name.
	ActionSaveAs
	// ActionOpen opens the entered path.
	ActionOpen
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionSaveAs:
		return "save-as"
	case ActionOpen:
		return "open"
	default:
		return fmt.Sprintf("action(%d)", a)
	}
}

// Prompt returns the console prompt shown for the action.
func (a Action) Prompt() string {
	switch a {
	case ActionSaveAs:
		return "Save as: "
	case ActionOpen:
		return "Open file: "
	default:
		return "> "
	}
}
