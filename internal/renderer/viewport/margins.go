package viewport

// MarginConfig holds scroll margin configuration.
type MarginConfig struct {
	Top    int // Lines to keep above cursor
	Bottom int // Lines to keep below cursor
	Left   int // Columns to keep left of cursor
	Right  int // Columns to keep right of cursor
}

// DefaultMargins returns the editor's default margins: one row above the
// cursor and two below, none horizontally.
func DefaultMargins() MarginConfig {
	return MarginConfig{
		Top:    1,
		Bottom: 2,
	}
}

// NoMargins returns zero margins (cursor can go to edge).
func NoMargins() MarginConfig {
	return MarginConfig{}
}

// SetMargins replaces the scroll margins. Negative values become 0.
func (v *Viewport) SetMargins(m MarginConfig) {
	v.margins = MarginConfig{
		Top:    max(m.Top, 0),
		Bottom: max(m.Bottom, 0),
		Left:   max(m.Left, 0),
		Right:  max(m.Right, 0),
	}
}

// Margins returns the configured margins.
func (v *Viewport) Margins() MarginConfig {
	return v.margins
}

// verticalMargins returns the margins in effect for the current height.
// Each margin is limited to (height-1)/2 so a cursor row always remains
// between them.
func (v *Viewport) verticalMargins() (top, bottom int) {
	limit := (v.height - 1) / 2
	return min(v.margins.Top, limit), min(v.margins.Bottom, limit)
}

func (v *Viewport) horizontalMargins() (left, right int) {
	limit := (v.width - 1) / 2
	return min(v.margins.Left, limit), min(v.margins.Right, limit)
}
