// Package buffer provides the line-oriented text buffer at the heart of the
// editor engine.
//
// A Buffer is an ordered sequence of lines and always holds at least one line.
// Every column handled by the package is a grapheme-cluster index (see the
// grapheme package), so a multi-byte character or a base character with its
// combining marks occupies exactly one column.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("abc")
//	pos, _ := buf.InsertChar(buffer.Position{Line: 0, Column: 3}, 'd')
//	// buf.Text() == "abcd", pos == {0 4}
//
//	pos, _ = buf.SplitLineAt(buffer.Position{Line: 0, Column: 2})
//	// buf.Lines() == ["ab", "cd"], pos == {1 0}
//
//	pos, _ = buf.DeleteBefore(pos)
//	// buf.Lines() == ["abcd"], pos == {0 2}
//
// Positions that violate the buffer invariants are rejected with
// ErrIndexOutOfRange. Callers with correct discipline never trigger it; builds
// tagged "debug" panic instead so the bug surfaces at its origin.
//
// The buffer is owned by the editor's single event-loop goroutine and is not
// safe for concurrent use. Use Snapshot to hand an immutable copy to other code.
package buffer
