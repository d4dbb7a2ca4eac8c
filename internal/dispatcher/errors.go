package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrQuit is returned when the quit binding is pressed.
	ErrQuit = errors.New("dispatcher: quit requested")

	// ErrNoHandler indicates no handler is registered for the active mode.
	ErrNoHandler = errors.New("dispatcher: no handler for mode")

	// ErrNoClipboard indicates clipboard commands are unavailable.
	ErrNoClipboard = errors.New("dispatcher: clipboard unavailable")
)
