// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with modifiers
//
// # Key Specifications
//
// Bindings are written as "Ctrl+S", "Alt+J", "F2" or "Esc" and turned into
// events with Parse. Event.Matches compares a pressed key to a binding.
package key
