package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/telepair/lifesearch/internal/rule"
)

func cellChar(state rule.CellState, deadChar byte) byte {
	switch state {
	case rule.Dead:
		return deadChar
	case rule.Alive:
		return 'o'
	default:
		return '?'
	}
}

// RLE renders generation t as a run-length-encoded pattern string, per
// spec.md §6: header line, then the body terminated by "!". Non-compact
// uses "." for dead and a newline after every row; compact uses "b" for
// dead, trims trailing dead cells per row, run-length-encodes repeated
// characters, and wraps output to at most 70 characters per line.
func (w *World) RLE(t int, compact bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "x = %d, y = %d, rule = %s\n", w.Config.Width, w.Config.Height, w.Config.RuleStr)

	if !compact {
		for y := 0; y < w.Config.Height; y++ {
			for x := 0; x < w.Config.Width; x++ {
				b.WriteByte(cellChar(w.CellState(x, y, t), '.'))
			}
			if y < w.Config.Height-1 {
				b.WriteByte('$')
			}
			b.WriteByte('\n')
		}
		b.WriteByte('!')
		return b.String()
	}

	var body strings.Builder
	for y := 0; y < w.Config.Height; y++ {
		row := make([]byte, w.Config.Width)
		for x := 0; x < w.Config.Width; x++ {
			row[x] = cellChar(w.CellState(x, y, t), 'b')
		}
		for len(row) > 0 && row[len(row)-1] == 'b' {
			row = row[:len(row)-1]
		}
		body.WriteString(runLengthEncodeRow(row))
		if y < w.Config.Height-1 {
			body.WriteByte('$')
		}
	}
	body.WriteByte('!')

	b.WriteString(wrap70(body.String()))
	return b.String()
}

func runLengthEncodeRow(row []byte) string {
	var out strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j] == row[i] {
			j++
		}
		count := j - i
		if count > 1 {
			out.WriteString(strconv.Itoa(count))
		}
		out.WriteByte(row[i])
		i = j
	}
	return out.String()
}

func wrap70(s string) string {
	var out strings.Builder
	for len(s) > 70 {
		out.WriteString(s[:70])
		out.WriteByte('\n')
		s = s[70:]
	}
	out.WriteString(s)
	return out.String()
}
