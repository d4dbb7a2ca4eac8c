package buffer

import (
	"strings"

	"github.com/dshills/picoterm/internal/engine/grapheme"
)

// InsertChar inserts r at pos and returns the position just after it.
func (b *Buffer) InsertChar(pos Position, r rune) (Position, error) {
	return b.InsertText(pos, string(r))
}

// InsertTab inserts TabWidth spaces at pos as a single edit.
func (b *Buffer) InsertTab(pos Position) (Position, error) {
	return b.InsertText(pos, strings.Repeat(" ", b.tabWidth))
}

// InsertText inserts text at pos and returns the position just after it.
// Newlines in text split the line, so the result may be on a later line.
// The returned column is recomputed from the new line content, which keeps
// it within bounds even when inserted marks merge with a neighbouring cluster.
func (b *Buffer) InsertText(pos Position, text string) (Position, error) {
	if err := b.checkPosition(pos); err != nil {
		return pos, err
	}
	if text == "" {
		return pos, nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	head, tail := grapheme.SplitAt(b.lines[pos.Line], pos.Column)
	parts := strings.Split(text, "\n")

	if len(parts) == 1 {
		b.lines[pos.Line] = head + text + tail
		b.touch()
		return Position{Line: pos.Line, Column: grapheme.Count(head + text)}, nil
	}

	inserted := make([]string, len(parts))
	inserted[0] = head + parts[0]
	copy(inserted[1:], parts[1:])
	last := len(inserted) - 1
	endCol := grapheme.Count(inserted[last])
	inserted[last] += tail

	b.lines = append(b.lines[:pos.Line], append(inserted, b.lines[pos.Line+1:]...)...)
	b.touch()
	return Position{Line: pos.Line + last, Column: endCol}, nil
}

// DeleteBefore removes the character before pos and returns the new position.
//
// At column 0 of any line but the first, the line is joined onto the end of
// the previous line and the returned position is the join point. At the very
// start of the buffer it is a no-op and pos is returned unchanged.
func (b *Buffer) DeleteBefore(pos Position) (Position, error) {
	if err := b.checkPosition(pos); err != nil {
		return pos, err
	}

	if pos.Column > 0 {
		line := b.lines[pos.Line]
		start := grapheme.ByteOffset(line, pos.Column-1)
		end := grapheme.ByteOffset(line, pos.Column)
		b.lines[pos.Line] = line[:start] + line[end:]
		b.touch()
		return Position{Line: pos.Line, Column: pos.Column - 1}, nil
	}

	if pos.Line == 0 {
		return pos, nil
	}

	prev := pos.Line - 1
	join := grapheme.Count(b.lines[prev])
	b.lines[prev] += b.lines[pos.Line]
	b.lines = append(b.lines[:pos.Line], b.lines[pos.Line+1:]...)
	b.touch()
	return Position{Line: prev, Column: join}, nil
}

// SplitLineAt breaks the line at pos. Text from the column to the end of the
// line moves to a new line inserted right after it. Returns the start of the
// new line.
func (b *Buffer) SplitLineAt(pos Position) (Position, error) {
	if err := b.checkPosition(pos); err != nil {
		return pos, err
	}

	head, tail := grapheme.SplitAt(b.lines[pos.Line], pos.Column)
	b.lines[pos.Line] = head
	b.lines = append(b.lines, "")
	copy(b.lines[pos.Line+2:], b.lines[pos.Line+1:])
	b.lines[pos.Line+1] = tail
	b.touch()
	return Position{Line: pos.Line + 1, Column: 0}, nil
}

// SwapWithPrevious exchanges line with the line above it.
// Returns false without changes when line is the first line.
func (b *Buffer) SwapWithPrevious(line int) (bool, error) {
	if err := b.checkLine(line); err != nil {
		return false, err
	}
	if line == 0 {
		return false, nil
	}
	b.lines[line-1], b.lines[line] = b.lines[line], b.lines[line-1]
	b.touch()
	return true, nil
}

// SwapWithNext exchanges line with the line below it.
// Returns false without changes when line is the last line.
func (b *Buffer) SwapWithNext(line int) (bool, error) {
	if err := b.checkLine(line); err != nil {
		return false, err
	}
	if line == len(b.lines)-1 {
		return false, nil
	}
	b.lines[line], b.lines[line+1] = b.lines[line+1], b.lines[line]
	b.touch()
	return true, nil
}
