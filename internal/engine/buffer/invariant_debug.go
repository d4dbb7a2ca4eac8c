//go:build debug

package buffer

// invariantViolated panics so the offending call site shows up in the trace.
func invariantViolated(err error) error {
	panic(err)
}
