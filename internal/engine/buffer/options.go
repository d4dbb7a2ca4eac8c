package buffer

// DefaultTabWidth is the number of spaces inserted by InsertTab.
const DefaultTabWidth = 4

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithTabWidth sets the indent width used by InsertTab.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}
