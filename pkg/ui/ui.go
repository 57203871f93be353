// Package ui supplies the terminal rendering used by the search command's
// --watch driver: a Screen buffer for the pattern grid and a bubbletea
// Model (WatchModel) that only ever reads Frame snapshots copied out of a
// search.World by a Driver goroutine.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultAliveColor is the default color for alive/active cells
	DefaultAliveColor = "#00FF00"
	// DefaultDeadColor is the default color for dead/inactive cells
	DefaultDeadColor = "#000000"

	// DefaultWidth is the default terminal width
	DefaultWidth = 80
	// DefaultHeight is the default terminal height
	DefaultHeight = 24
)

var (
	headerLineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#16213E")).
			MarginBottom(1).
			Align(lipgloss.Center)
	statusLineStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#94A3B8")).
			Background(lipgloss.Color("#0F3460")).
			Bold(true)
	controlLineStyle = lipgloss.NewStyle().
				Padding(0, 2).
				Foreground(lipgloss.Color("#94A3B8")).
				Background(lipgloss.Color("#0F3460")).
				Bold(true)
)
