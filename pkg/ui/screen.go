package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var screenPadding = lipgloss.NewStyle().Padding(1, 1, 1, 1)

// Screen is a fixed-size terminal buffer for rendering one rune per cell,
// with per-character foreground colors. The watch TUI uses one Screen for
// the live generation grid (SetData, redrawn whole each frame) and a second,
// shorter one for a scrolling log of past frames' status lines (Append).
type Screen struct {
	rows, cols int

	zeroValue  rune
	charStyles map[rune]lipgloss.Style

	data      [][]rune
	writeLine int
	viewLine  int
	buf       strings.Builder
	lineBuf   strings.Builder
}

// NewScreen creates a rows x cols screen, cleared to the zero value.
func NewScreen(rows, cols int) *Screen {
	s := &Screen{
		rows:       rows,
		cols:       cols,
		zeroValue:  ' ',
		charStyles: make(map[rune]lipgloss.Style),
	}
	s.Reset()
	return s
}

// SetZeroValue sets the rune SetData/Append pad unwritten cells with.
func (s *Screen) SetZeroValue(zeroValue rune) {
	s.zeroValue = zeroValue
}

// Reset clears every cell back to the zero value.
func (s *Screen) Reset() {
	if s.data == nil {
		s.data = make([][]rune, s.rows)
	}
	for i := range s.rows {
		if s.data[i] == nil {
			s.data[i] = make([]rune, s.cols)
		}
		for j := range s.cols {
			s.data[i][j] = s.zeroValue
		}
	}
}

// SetCharColor gives char a foreground color wherever it appears in View.
func (s *Screen) SetCharColor(char rune, color lipgloss.Color) {
	if color == "" || char == 0 {
		return
	}
	s.charStyles[char] = lipgloss.NewStyle().Foreground(color)
}

// SetData overwrites the whole buffer with data, clipping or zero-padding to
// the screen's fixed size. Used to draw a full generation grid each frame.
func (s *Screen) SetData(data [][]rune) {
	if s.data == nil {
		s.data = make([][]rune, s.rows)
	}
	rows := min(len(data), s.rows)
	for i := range rows {
		if s.data[i] == nil {
			s.data[i] = make([]rune, s.cols)
		}
		cols := min(len(data[i]), s.cols)
		for j := range cols {
			s.data[i][j] = data[i][j]
		}
		for j := cols; j < s.cols; j++ {
			s.data[i][j] = s.zeroValue
		}
	}
	for i := rows; i < s.rows; i++ {
		if s.data[i] == nil {
			s.data[i] = make([]rune, s.cols)
		}
		for j := range s.cols {
			s.data[i][j] = s.zeroValue
		}
	}
	s.writeLine = s.rows - 1
	s.viewLine = 0
}

// Append adds row as the next line of a scrolling log, wrapping back to the
// first row once the buffer fills, oldest entries falling off the top.
func (s *Screen) Append(row []rune) {
	if s.data == nil {
		s.Reset()
	}
	if s.writeLine >= s.rows {
		s.writeLine = 0
	}

	cols := min(len(row), s.cols)
	if s.data[s.writeLine] == nil {
		s.data[s.writeLine] = make([]rune, s.cols)
	}
	copy(s.data[s.writeLine][:cols], row[:cols])
	for j := cols; j < s.cols; j++ {
		s.data[s.writeLine][j] = s.zeroValue
	}
	s.writeLine = (s.writeLine + 1) % s.rows
	s.viewLine = s.writeLine
}

// View renders the buffer as a styled string, one line per row, reading
// from viewLine forward so Append-scrolled content stays in chronological
// order (oldest line first) instead of wrapping mid-screen.
func (s *Screen) View() string {
	s.buf.Reset()
	for i := range s.rows {
		line := (s.viewLine + i) % s.rows
		s.lineBuf.Reset()
		for j := range s.cols {
			if style, ok := s.charStyles[s.data[line][j]]; ok {
				s.lineBuf.WriteString(style.Render(string(s.data[line][j])))
			} else {
				s.lineBuf.WriteRune(s.data[line][j])
			}
		}
		s.buf.WriteString(s.lineBuf.String())
		if i < s.rows-1 {
			s.buf.WriteRune('\n')
		}
	}
	return screenPadding.Render(s.buf.String())
}
