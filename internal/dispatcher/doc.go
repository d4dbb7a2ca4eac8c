// Package dispatcher routes terminal events to the editor state.
//
// Every event is handled in three steps:
//
//  1. Global bindings (quit, save, edit toggle, menu toggle) are checked
//     first, except in Console mode where the prompt captures every key.
//  2. Otherwise the key goes to the Handler registered for the active mode.
//  3. The handler mutates the State and returns a dirty.Region describing
//     the smallest part of the screen that must be redrawn.
//
// Non-key events (mouse wheel, resize, focus, disk changes) are handled
// directly by the dispatcher.
//
// File I/O is expressed as command objects (SaveCommand, OpenCommand)
// executed against a Store, so the dispatcher never touches the file
// system itself. I/O failures become status text and never end the
// session. The only error Dispatch returns in normal operation is ErrQuit.
package dispatcher
