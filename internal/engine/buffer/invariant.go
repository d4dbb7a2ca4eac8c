//go:build !debug

package buffer

// invariantViolated reports a broken position invariant. Release builds
// only return the error to the caller.
func invariantViolated(err error) error {
	return err
}
