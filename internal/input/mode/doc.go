// Package mode provides the modal state machine of the editor.
//
// Exactly one of four modes is active at a time:
//   - Write: the default mode; printable keys insert text
//   - Edit: single-key navigation and line commands
//   - Menu: the menu bar has focus
//   - Console: a one-line prompt captures all keys
//
// # Transitions
//
//	Write  ──toggle edit──▶ Edit   ──toggle edit / q──▶ Write
//	Write, Edit ──menu──▶ Menu ──menu / confirm──▶ Write
//	Menu ──toggle edit──▶ Edit
//	Menu ──confirm (needs text)──▶ Console ──confirm / cancel──▶ Write
//
// The Controller rejects any other transition with ErrInvalidTransition.
// Callbacks registered with OnChange run after every successful switch.
package mode
