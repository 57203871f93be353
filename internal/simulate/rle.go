package simulate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/telepair/lifesearch/internal/rule"
)

// ErrInvalidRLE is returned by ParseRLE when the pattern text is malformed.
var ErrInvalidRLE = errors.New("simulate: invalid RLE pattern")

// ParseRLE reads a run-length-encoded pattern (the format RLE produces, and
// the format most life-like pattern files in the wild use): "#"-prefixed
// comment lines, an optional "x = W, y = H, rule = ..." header, then a body
// of runs ("<count>b" dead, "<count>o" alive, "$" end of row) terminated by
// "!". Rows shorter than the declared width are padded with Dead, matching
// the convention that trailing dead cells are omitted from the encoding.
func ParseRLE(text string) ([][]rule.CellState, error) {
	width, height := -1, -1
	var body strings.Builder

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "x") {
			w, h, err := parseHeader(line)
			if err != nil {
				return nil, err
			}
			width, height = w, h
			continue
		}
		body.WriteString(line)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidRLE)
	}

	grid := make([][]rule.CellState, height)
	for y := range grid {
		grid[y] = make([]rule.CellState, width)
		for x := range grid[y] {
			grid[y][x] = rule.Dead
		}
	}

	x, y, count := 0, 0, 0
	for _, r := range body.String() {
		switch {
		case r >= '0' && r <= '9':
			count = count*10 + int(r-'0')
		case r == 'b' || r == 'o':
			n := count
			if n == 0 {
				n = 1
			}
			state := rule.Dead
			if r == 'o' {
				state = rule.Alive
			}
			for i := 0; i < n; i++ {
				if y >= height || x >= width {
					return nil, fmt.Errorf("%w: run overflows declared dimensions", ErrInvalidRLE)
				}
				grid[y][x] = state
				x++
			}
			count = 0
		case r == '$':
			n := count
			if n == 0 {
				n = 1
			}
			y += n
			x = 0
			count = 0
		case r == '!':
			return grid, nil
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidRLE, r)
		}
	}
	return grid, nil
}

func parseHeader(line string) (width, height int, err error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("%w: malformed header %q", ErrInvalidRLE, line)
	}
	width, err = parseHeaderField(fields[0], "x")
	if err != nil {
		return 0, 0, err
	}
	height, err = parseHeaderField(fields[1], "y")
	if err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

func parseHeaderField(field, name string) (int, error) {
	parts := strings.SplitN(field, "=", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != name {
		return 0, fmt.Errorf("%w: expected %s=<n>, got %q", ErrInvalidRLE, name, field)
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: bad %s value: %w", ErrInvalidRLE, name, err)
	}
	return v, nil
}

// Format renders grid as an RLE pattern string with the given rule name in
// the header, mirroring search.World.RLE's compact encoding.
func Format(grid [][]rule.CellState, ruleStr string) string {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "x = %d, y = %d, rule = %s\n", width, height, ruleStr)

	var out strings.Builder
	for y := 0; y < height; y++ {
		row := make([]byte, width)
		for x := 0; x < width; x++ {
			if grid[y][x] == rule.Alive {
				row[x] = 'o'
			} else {
				row[x] = 'b'
			}
		}
		for len(row) > 0 && row[len(row)-1] == 'b' {
			row = row[:len(row)-1]
		}
		out.WriteString(runLengthEncodeRow(row))
		if y < height-1 {
			out.WriteByte('$')
		}
	}
	out.WriteByte('!')

	body := out.String()
	for len(body) > 70 {
		b.WriteString(body[:70])
		b.WriteByte('\n')
		body = body[70:]
	}
	b.WriteString(body)
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
