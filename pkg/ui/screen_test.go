package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// TestNewScreen tests the creation of a new screen
func TestNewScreen(t *testing.T) {
	tests := []struct {
		name string
		rows int
		cols int
	}{
		{name: "Normal dimensions", rows: 10, cols: 20},
		{name: "Small dimensions", rows: 1, cols: 1},
		{name: "Large dimensions", rows: 100, cols: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := NewScreen(tt.rows, tt.cols)
			assert.NotNil(t, screen)
			assert.Equal(t, tt.rows, screen.rows)
			assert.Equal(t, tt.cols, screen.cols)
			assert.Equal(t, ' ', screen.zeroValue)
			assert.Len(t, screen.data, tt.rows)
			if tt.rows > 0 {
				assert.Len(t, screen.data[0], tt.cols)
			}
		})
	}
}

// TestSetZeroValue tests the SetZeroValue method
func TestSetZeroValue(t *testing.T) {
	screen := NewScreen(5, 5)

	newZeroValue := '*'
	screen.SetZeroValue(newZeroValue)
	assert.Equal(t, newZeroValue, screen.zeroValue)

	screen.Reset()
	for i := 0; i < screen.rows; i++ {
		for j := 0; j < screen.cols; j++ {
			assert.Equal(t, newZeroValue, screen.data[i][j])
		}
	}
}

// TestReset tests the Reset method
func TestReset(t *testing.T) {
	screen := NewScreen(5, 5)

	screen.SetData([][]rune{
		{'X', 'X', 'X', 'X', 'X'},
		{'X', 'X', 'X', 'X', 'X'},
		{'X', 'X', 'X', 'X', 'X'},
		{'X', 'X', 'X', 'X', 'X'},
		{'X', 'X', 'X', 'X', 'X'},
	})
	for i := 0; i < screen.rows; i++ {
		for j := 0; j < screen.cols; j++ {
			assert.Equal(t, 'X', screen.data[i][j])
		}
	}

	screen.Reset()
	for i := 0; i < screen.rows; i++ {
		for j := 0; j < screen.cols; j++ {
			assert.Equal(t, screen.zeroValue, screen.data[i][j])
		}
	}
}

// TestSetCharColor tests the SetCharColor method
func TestSetCharColor(t *testing.T) {
	screen := NewScreen(5, 5)

	charColor := lipgloss.Color("#0000FF")
	screen.SetCharColor('A', charColor)
	assert.NotNil(t, screen.charStyles['A'])

	// Zero char and empty color should both be no-ops
	screen.SetCharColor(0, charColor)
	_, exists := screen.charStyles[0]
	assert.False(t, exists)

	screen.SetCharColor('B', "")
	_, exists = screen.charStyles['B']
	assert.False(t, exists)
}

// TestSetData tests the SetData method
func TestSetData(t *testing.T) {
	tests := []struct {
		name       string
		screenRows int
		screenCols int
		data       [][]rune
	}{
		{
			name:       "Exact size data",
			screenRows: 3,
			screenCols: 3,
			data: [][]rune{
				{'A', 'B', 'C'},
				{'D', 'E', 'F'},
				{'G', 'H', 'I'},
			},
		},
		{
			name:       "Smaller data",
			screenRows: 5,
			screenCols: 5,
			data: [][]rune{
				{'A', 'B'},
				{'C', 'D'},
			},
		},
		{
			name:       "Larger data",
			screenRows: 2,
			screenCols: 2,
			data: [][]rune{
				{'A', 'B', 'C', 'D'},
				{'E', 'F', 'G', 'H'},
				{'I', 'J', 'K', 'L'},
			},
		},
		{
			name:       "Empty data",
			screenRows: 3,
			screenCols: 3,
			data:       [][]rune{},
		},
		{
			name:       "Irregular data",
			screenRows: 3,
			screenCols: 3,
			data: [][]rune{
				{'A'},
				{'B', 'C', 'D'},
				{'E', 'F'},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := NewScreen(tt.screenRows, tt.screenCols)
			screen.SetData(tt.data)

			assert.Equal(t, tt.screenRows, screen.rows)
			assert.Equal(t, tt.screenCols, screen.cols)

			for i := 0; i < tt.screenRows; i++ {
				for j := 0; j < tt.screenCols; j++ {
					if i < len(tt.data) && j < len(tt.data[i]) {
						assert.Equal(t, tt.data[i][j], screen.data[i][j])
					} else {
						assert.Equal(t, screen.zeroValue, screen.data[i][j])
					}
				}
			}

			assert.Equal(t, tt.screenRows-1, screen.writeLine)
			assert.Equal(t, 0, screen.viewLine)
		})
	}
}

// TestAppend tests the Append method, including wraparound once the
// scrolling buffer fills (the behavior the watch TUI's generation history
// relies on).
func TestAppend(t *testing.T) {
	tests := []struct {
		name       string
		rows       int
		cols       int
		appendRows [][]rune
	}{
		{
			name: "Simple append",
			rows: 5,
			cols: 5,
			appendRows: [][]rune{
				{'A', 'B', 'C', 'D', 'E'},
				{'F', 'G', 'H', 'I', 'J'},
			},
		},
		{
			name: "Append with wrap",
			rows: 3,
			cols: 5,
			appendRows: [][]rune{
				{'1', '2', '3', '4', '5'},
				{'6', '7', '8', '9', '0'},
				{'A', 'B', 'C', 'D', 'E'},
				{'F', 'G', 'H', 'I', 'J'}, // wraps back to row 0
			},
		},
		{
			name: "Append shorter rows",
			rows: 3,
			cols: 5,
			appendRows: [][]rune{
				{'A', 'B'},
				{'C'},
				{'D', 'E', 'F'},
			},
		},
		{
			name: "Append longer rows",
			rows: 3,
			cols: 3,
			appendRows: [][]rune{
				{'A', 'B', 'C', 'D', 'E'},
				{'F', 'G', 'H', 'I', 'J'},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := NewScreen(tt.rows, tt.cols)

			for _, row := range tt.appendRows {
				screen.Append(row)
			}

			expectedWriteLine := len(tt.appendRows) % tt.rows
			assert.Equal(t, expectedWriteLine, screen.writeLine)
			assert.Equal(t, screen.writeLine, screen.viewLine)
		})
	}
}

// TestView tests the View rendering method
func TestView(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		cols      int
		setupFunc func(*Screen)
		contains  []string
	}{
		{
			name:      "Empty screen",
			rows:      3,
			cols:      3,
			setupFunc: func(s *Screen) {},
		},
		{
			name: "Filled screen",
			rows: 3,
			cols: 3,
			setupFunc: func(s *Screen) {
				s.SetData([][]rune{
					{'X', 'X', 'X'},
					{'X', 'X', 'X'},
					{'X', 'X', 'X'},
				})
			},
			contains: []string{"XXX"},
		},
		{
			name: "Screen with colors",
			rows: 2,
			cols: 5,
			setupFunc: func(s *Screen) {
				s.SetCharColor('A', lipgloss.Color("#FF0000"))
				s.SetCharColor('B', lipgloss.Color("#00FF00"))
				s.Append([]rune{'A', 'B', 'A', 'B', 'A'})
				s.Append([]rune{'B', 'A', 'B', 'A', 'B'})
			},
			contains: []string{"A", "B"},
		},
		{
			name: "Screen with custom zero value",
			rows: 3,
			cols: 3,
			setupFunc: func(s *Screen) {
				s.SetZeroValue('.')
				s.Reset()
			},
			contains: []string{"..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := NewScreen(tt.rows, tt.cols)
			if tt.setupFunc != nil {
				tt.setupFunc(screen)
			}

			view := screen.View()
			lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
			assert.GreaterOrEqual(t, len(lines), 1)

			for _, expected := range tt.contains {
				assert.Contains(t, view, expected)
			}
		})
	}
}

// BenchmarkNewScreen benchmarks screen creation
func BenchmarkNewScreen(b *testing.B) {
	sizes := []struct {
		name string
		rows int
		cols int
	}{
		{"Small-10x10", 10, 10},
		{"Terminal-24x80", 24, 80},
		{"Large-100x100", 100, 100},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = NewScreen(size.rows, size.cols)
			}
		})
	}
}

// BenchmarkAppend benchmarks the scrolling-history append path
func BenchmarkAppend(b *testing.B) {
	sizes := []struct {
		name string
		rows int
		cols int
	}{
		{"Small-10x50", 10, 50},
		{"Large-100x200", 100, 200},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			screen := NewScreen(size.rows, size.cols)
			row := make([]rune, size.cols)
			for i := range row {
				row[i] = 'A'
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				screen.Append(row)
			}
		})
	}
}

// BenchmarkView benchmarks view rendering
func BenchmarkView(b *testing.B) {
	configurations := []struct {
		name      string
		rows      int
		cols      int
		hasColors bool
	}{
		{"Small-NoColor", 10, 40, false},
		{"Small-WithColor", 10, 40, true},
		{"Large-NoColor", 100, 200, false},
		{"Large-WithColor", 100, 200, true},
	}

	for _, config := range configurations {
		b.Run(config.name, func(b *testing.B) {
			screen := NewScreen(config.rows, config.cols)

			for i := 0; i < config.rows; i++ {
				row := make([]rune, config.cols)
				for j := range row {
					row[j] = rune('A' + (i+j)%26)
				}
				screen.Append(row)
			}

			if config.hasColors {
				for i := 0; i < 26; i++ {
					color := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", i*10, i*10, i*10))
					screen.SetCharColor(rune('A'+i), color)
				}
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = screen.View()
			}
		})
	}
}
