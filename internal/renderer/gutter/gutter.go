// Package gutter formats the line-number column to the left of the text.
package gutter

// MinDigits is the minimum number of digit columns reserved for line numbers.
const MinDigits = 3

// Width returns the gutter width for a document of lineCount lines,
// including the separating blank column.
func Width(lineCount int) int {
	return max(countDigits(lineCount), MinDigits) + 1
}

// Format returns the 1-indexed number of line right-aligned to fill a
// gutter of the given width, followed by the separating blank.
func Format(line, width int) string {
	return PadLeft(FormatNumber(line+1), width-1) + " "
}

// Blank returns an empty gutter of the given width, used past the end of
// the document.
func Blank(width int) string {
	return PadLeft("", width)
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := make([]byte, width-len(s))
	for i := range padding {
		padding[i] = ' '
	}
	return string(padding) + s
}

// FormatPosition formats a 0-indexed position as "line:col", 1-indexed.
func FormatPosition(line, col int) string {
	return FormatNumber(line+1) + ":" + FormatNumber(col+1)
}

// FormatNumber converts a non-negative integer to decimal text.
func FormatNumber(n int) string {
	if n <= 0 {
		return "0"
	}

	var buf [20]byte
	i := len(buf)

	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}

	return string(buf[i:])
}

func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
