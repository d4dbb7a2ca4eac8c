package buffer

import "strings"

// Snapshot is a read-only copy of a buffer at a point in time.
// It does not change when the buffer is edited afterwards.
type Snapshot struct {
	lines    []string
	revision uint64
}

// Lines returns a copy of the snapshot lines.
func (s Snapshot) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// LineCount returns the number of lines in the snapshot.
func (s Snapshot) LineCount() int {
	return len(s.lines)
}

// Text returns the lines joined with a single newline.
func (s Snapshot) Text() string {
	return strings.Join(s.lines, "\n")
}

// Revision returns the buffer revision the snapshot was taken at.
func (s Snapshot) Revision() uint64 {
	return s.revision
}
