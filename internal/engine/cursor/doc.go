// Package cursor tracks the single editing cursor of a document.
//
// A Cursor is a {Line, Column} pair where Column counts grapheme clusters.
// All motions take the document as a Text so the cursor never holds a
// reference to the buffer and can be clamped after the document changes.
//
// Every motion reports whether the position actually changed; callers use
// the result to skip re-rendering at document boundaries.
//
// Basic usage:
//
//	c := cursor.New()
//	c.MoveRight(buf, false)
//	c.MoveDown(buf)
//	pos := c.Position()
package cursor
