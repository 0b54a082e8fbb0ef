package renderer

import "github.com/avray/skiff/internal/renderer/core"

// ExpandLine converts line content to display cells: tabs expand to the
// next tab stop, wide runes get a continuation cell, and zero-width
// runes are dropped.
func ExpandLine(content string, tabWidth int, style core.Style) []core.Cell {
	if tabWidth < 1 {
		tabWidth = 1
	}

	cells := make([]core.Cell, 0, len(content))
	col := 0
	for _, r := range content {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			for i := 0; i < n; i++ {
				cells = append(cells, core.NewStyledCell(' ', style))
			}
			col += n
			continue
		}

		w := core.RuneWidth(r)
		if w == 0 {
			continue
		}
		cells = append(cells, core.NewStyledCell(r, style))
		col += w
		if w == 2 {
			cont := core.ContinuationCell()
			cont.Style = style
			cells = append(cells, cont)
		}
	}
	return cells
}

// DisplayCol returns the display column of the rune at index col, using
// the same expansion rules as ExpandLine. col may equal the rune count,
// giving the column just past the end of the line.
func DisplayCol(content string, col, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}

	x := 0
	i := 0
	for _, r := range content {
		if i >= col {
			break
		}
		if r == '\t' {
			x += tabWidth - x%tabWidth
		} else {
			x += core.RuneWidth(r)
		}
		i++
	}
	return x
}
