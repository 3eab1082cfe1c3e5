// Package tui implements the Bubble Tea TUI for campus: the dashboard and
// the modal components drawn over it.
package tui

// Icons and symbols.
const (
	iconDot = "•" // Unicode bullet separator
)
