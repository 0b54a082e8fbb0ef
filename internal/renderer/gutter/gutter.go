// Package gutter renders the line number margin to the left of the text
// area. Numbers are 1-based and right-aligned; rows past the end of the
// buffer show a tilde marker.
package gutter

import "strconv"

// Config holds gutter configuration.
type Config struct {
	// Enabled turns the gutter on or off. A disabled gutter has zero
	// width.
	Enabled bool

	// MinWidth is the minimum width of the number column in digits.
	MinWidth int
}

// DefaultConfig returns the default gutter configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		MinWidth: 3,
	}
}

// Gutter formats the line number margin. The width adapts to the buffer
// size: a 1000-line buffer gets one more column than a 999-line buffer.
type Gutter struct {
	config    Config
	lineCount int
	digits    int
}

// New creates a gutter with the given configuration.
func New(config Config) *Gutter {
	g := &Gutter{config: config}
	g.SetLineCount(1)
	return g
}

// SetLineCount updates the buffer line count the width is derived from.
func (g *Gutter) SetLineCount(count int) {
	if count < 1 {
		count = 1
	}
	g.lineCount = count
	g.digits = countDigits(count)
	if g.digits < g.config.MinWidth {
		g.digits = g.config.MinWidth
	}
}

// Width returns the total gutter width in cells, including the
// separator space. Zero when the gutter is disabled.
func (g *Gutter) Width() int {
	if !g.config.Enabled {
		return 0
	}
	return g.digits + 1
}

// Format returns the margin text for a buffer row: the right-aligned
// 1-based line number followed by a separator space.
func (g *Gutter) Format(row int) string {
	if !g.config.Enabled {
		return ""
	}
	return padLeft(strconv.Itoa(row+1), g.digits) + " "
}

// FormatEmpty returns the margin text for a screen row past the end of
// the buffer: a tilde in the leftmost column.
func (g *Gutter) FormatEmpty() string {
	if !g.config.Enabled {
		return ""
	}
	b := make([]byte, g.digits+1)
	b[0] = '~'
	for i := 1; i < len(b); i++ {
		b[i] = ' '
	}
	return string(b)
}

// padLeft pads a string with spaces on the left to the specified width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := make([]byte, width-len(s))
	for i := range padding {
		padding[i] = ' '
	}
	return string(padding) + s
}

// countDigits returns the number of decimal digits in n.
func countDigits(n int) int {
	if n < 10 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
