// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Position selects where Overlay places the foreground.
type Position int

const (
	Center Position = iota
	BottomRight
	TopRight
)

// Overlay draws fg over bg inside a width x height canvas. Background cells
// outside fg are kept, so the screen behind a dialog stays visible.
func Overlay(bg, fg string, width, height int, pos Position) string {
	if fg == "" || width <= 0 || height <= 0 {
		return bg
	}

	bgLines := fitLines(bg, height)
	fgLines := strings.Split(fg, "\n")

	fgW := 0
	for _, ln := range fgLines {
		fgW = max(fgW, ansi.StringWidth(ln))
	}
	fgW = min(fgW, width)
	fgH := min(len(fgLines), height)

	var x, y int
	switch pos {
	case BottomRight:
		x = width - fgW - 1
		y = height - fgH - 1
	case TopRight:
		x = width - fgW - 1
		y = 1
	default:
		x = (width - fgW) / 2
		y = (height - fgH) / 2
	}
	x = max(x, 0)
	y = max(y, 0)

	for i := 0; i < fgH && y+i < len(bgLines); i++ {
		line := bgLines[y+i]
		if n := ansi.StringWidth(line); n < width {
			line += strings.Repeat(" ", width-n)
		}

		left := ansi.Cut(line, 0, x)
		right := ansi.Cut(line, x+fgW, width)

		cell := fgLines[i]
		if n := ansi.StringWidth(cell); n < fgW {
			cell += strings.Repeat(" ", fgW-n)
		} else if n > fgW {
			cell = ansi.Cut(cell, 0, fgW)
		}

		bgLines[y+i] = left + cell + right
	}

	return strings.Join(bgLines, "\n")
}

// fitLines splits s into exactly n lines, padding with empty lines.
func fitLines(s string, n int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
