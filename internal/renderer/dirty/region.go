// Package dirty describes which parts of the screen must be redrawn after an
// event. Every dispatched event produces exactly one Region.
package dirty

import "fmt"

// Kind classifies a Region.
type Kind uint8

const (
	// KindNone means nothing changed.
	KindNone Kind = iota
	// KindAll means the whole screen must be redrawn.
	KindAll
	// KindSkeleton means only the chrome (header, banner, menu, console,
	// status) changed; text rows are untouched.
	KindSkeleton
	// KindSingleLine means one document line changed.
	KindSingleLine
	// KindLineRange means an inclusive range of document lines changed.
	KindLineRange
	// KindAllLines means every visible text row changed but the chrome did not.
	KindAllLines
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindAll:
		return "All"
	case KindSkeleton:
		return "Skeleton"
	case KindSingleLine:
		return "SingleLine"
	case KindLineRange:
		return "LineRange"
	case KindAllLines:
		return "AllLines"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Region is a redraw instruction. The zero value is None.
type Region struct {
	kind Kind
	// lo and hi are document lines (inclusive) for SingleLine and LineRange.
	lo, hi int
}

// None returns a region requiring no redraw.
func None() Region { return Region{} }

// All returns a region requiring a full redraw.
func All() Region { return Region{kind: KindAll} }

// Skeleton returns a region covering only the chrome.
func Skeleton() Region { return Region{kind: KindSkeleton} }

// AllLines returns a region covering every visible text row.
func AllLines() Region { return Region{kind: KindAllLines} }

// SingleLine returns a region covering one document line.
func SingleLine(line int) Region {
	return Region{kind: KindSingleLine, lo: line, hi: line}
}

// LineRange returns a region covering lines lo through hi inclusive.
// The bounds may be given in either order. Equal bounds yield SingleLine.
func LineRange(lo, hi int) Region {
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo == hi {
		return SingleLine(lo)
	}
	return Region{kind: KindLineRange, lo: lo, hi: hi}
}

// Kind returns the region kind.
func (r Region) Kind() Kind {
	return r.kind
}

// Lines returns the inclusive line bounds of a SingleLine or LineRange
// region. ok is false for the other kinds.
func (r Region) Lines() (lo, hi int, ok bool) {
	if r.kind != KindSingleLine && r.kind != KindLineRange {
		return 0, 0, false
	}
	return r.lo, r.hi, true
}

// IsNone reports whether the region requires no redraw.
func (r Region) IsNone() bool {
	return r.kind == KindNone
}

// IncludesChrome reports whether the chrome must be redrawn.
func (r Region) IncludesChrome() bool {
	return r.kind == KindAll || r.kind == KindSkeleton
}

// ContainsLine reports whether document line must be redrawn.
func (r Region) ContainsLine(line int) bool {
	switch r.kind {
	case KindAll, KindAllLines:
		return true
	case KindSingleLine, KindLineRange:
		return line >= r.lo && line <= r.hi
	default:
		return false
	}
}

// Merge returns a region covering both r and other. The result may
// redraw more than the exact union:
//   - lines with lines gives the covering range
//   - AllLines with lines gives AllLines
//   - Skeleton with any text change gives All
func (r Region) Merge(other Region) Region {
	switch {
	case r.kind == KindNone:
		return other
	case other.kind == KindNone:
		return r
	case r.kind == KindAll || other.kind == KindAll:
		return All()
	case r.kind == KindSkeleton && other.kind == KindSkeleton:
		return r
	case r.kind == KindSkeleton || other.kind == KindSkeleton:
		return All()
	case r.kind == KindAllLines || other.kind == KindAllLines:
		return AllLines()
	default:
		return LineRange(min(r.lo, other.lo), max(r.hi, other.hi))
	}
}

// String returns a debug representation of the region.
func (r Region) String() string {
	switch r.kind {
	case KindSingleLine:
		return fmt.Sprintf("SingleLine(%d)", r.lo)
	case KindLineRange:
		return fmt.Sprintf("LineRange(%d, %d)", r.lo, r.hi)
	default:
		return r.kind.String()
	}
}
