// Package symmetry implements the D8 dihedral group algebra used to
// constrain a search to patterns with a given symmetry, and to apply the
// geometric transformation a symmetric or glide-symmetric pattern carries
// from one period to the next.
package symmetry

import "fmt"

// Transformation is a geometric transformation applied to a pattern before
// translating by (dx, dy) at the period boundary. There are 8 elements,
// one per member of the dihedral group D8.
type Transformation int

const (
	R0 Transformation = iota // identity
	R1                       // 90-degree clockwise rotation
	R2                       // 180-degree rotation
	R3                       // 270-degree clockwise rotation
	S0                       // vertical reflection
	S1                       // diagonal reflection
	S2                       // horizontal reflection
	S3                       // antidiagonal reflection
)

func (t Transformation) String() string {
	switch t {
	case R0:
		return "R0"
	case R1:
		return "R1"
	case R2:
		return "R2"
	case R3:
		return "R3"
	case S0:
		return "S0"
	case S1:
		return "S1"
	case S2:
		return "S2"
	case S3:
		return "S3"
	default:
		return fmt.Sprintf("Transformation(%d)", int(t))
	}
}

// ParseTransformation parses the PascalCase names R0, R1, R2, R3, S0, S1, S2, S3.
func ParseTransformation(s string) (Transformation, error) {
	for _, t := range AllTransformations {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrParseTransformation, s)
}

// AllTransformations lists every element of D8, in the canonical order.
var AllTransformations = [8]Transformation{R0, R1, R2, R3, S0, S1, S2, S3}

// d8Kind and d8Index decompose a Transformation into the (kind, index)
// representation used by symmetry.rs to make inverse and composition simple
// modular arithmetic: a rotation R(i) or a reflection S(i), i in 0..4.
type d8Kind int

const (
	d8Rotation d8Kind = iota
	d8Reflection
)

func (t Transformation) decompose() (d8Kind, int) {
	switch t {
	case R0:
		return d8Rotation, 0
	case R1:
		return d8Rotation, 1
	case R2:
		return d8Rotation, 2
	case R3:
		return d8Rotation, 3
	case S0:
		return d8Reflection, 0
	case S1:
		return d8Reflection, 1
	case S2:
		return d8Reflection, 2
	case S3:
		return d8Reflection, 3
	default:
		panic(fmt.Sprintf("invalid transformation %d", int(t)))
	}
}

func composeD8(kind d8Kind, index int) Transformation {
	index &= 3
	switch kind {
	case d8Rotation:
		return [4]Transformation{R0, R1, R2, R3}[index]
	default:
		return [4]Transformation{S0, S1, S2, S3}[index]
	}
}

// Inverse returns the inverse transformation.
func (t Transformation) Inverse() Transformation {
	kind, i := t.decompose()
	switch kind {
	case d8Rotation:
		return composeD8(d8Rotation, -i)
	default:
		return composeD8(d8Reflection, i)
	}
}

// Compose returns t after other, i.e. the transformation equivalent to
// applying other first and t second (matches Rust's self.compose(other)).
func (t Transformation) Compose(other Transformation) Transformation {
	k1, i := t.decompose()
	k2, j := other.decompose()
	switch {
	case k1 == d8Rotation && k2 == d8Rotation:
		return composeD8(d8Rotation, i+j)
	case k1 == d8Reflection && k2 == d8Reflection:
		return composeD8(d8Rotation, i-j)
	case k1 == d8Rotation && k2 == d8Reflection:
		return composeD8(d8Reflection, i+j)
	default: // k1 == d8Reflection && k2 == d8Rotation
		return composeD8(d8Reflection, i-j)
	}
}

// IsElementOf reports whether t is an element of the subgroup corresponding
// to symmetry s.
func (t Transformation) IsElementOf(s Symmetry) bool {
	switch s {
	case C1:
		return t == R0
	case C2:
		return t == R0 || t == R2
	case C4:
		return t == R0 || t == R1 || t == R2 || t == R3
	case D2V:
		return t == R0 || t == S0
	case D2H:
		return t == R0 || t == S2
	case D2D:
		return t == R0 || t == S1
	case D2A:
		return t == R0 || t == S3
	case D4O:
		return t == R0 || t == R2 || t == S0 || t == S2
	case D4X:
		return t == R0 || t == R2 || t == S1 || t == S3
	case D8:
		return true
	default:
		return false
	}
}

// RequiresSquare reports whether t requires the world to be square.
func (t Transformation) RequiresSquare() bool {
	return !t.IsElementOf(D4O)
}

// RequiresNoDiagonalWidth reports whether t requires the world to have no
// diagonal width.
func (t Transformation) RequiresNoDiagonalWidth() bool {
	return !t.IsElementOf(D4X)
}

// Apply applies t to (x, y), using (0, 0) as the center.
func (t Transformation) Apply(x, y int) (int, int) {
	switch t {
	case R0:
		return x, y
	case R1:
		return -y, x
	case R2:
		return -x, -y
	case R3:
		return y, -x
	case S0:
		return x, -y
	case S1:
		return y, x
	case S2:
		return -x, y
	case S3:
		return -y, -x
	default:
		panic(fmt.Sprintf("invalid transformation %d", int(t)))
	}
}

// ApplyWithSize applies t to (x, y), using the center of a width x height
// world as the center. If t requires the world to be square and it isn't,
// the result is not guaranteed to be meaningful.
func (t Transformation) ApplyWithSize(x, y, width, height int) (int, int) {
	switch t {
	case R0:
		return x, y
	case R1:
		return height - y - 1, x
	case R2:
		return width - x - 1, height - y - 1
	case R3:
		return y, width - x - 1
	case S0:
		return x, height - y - 1
	case S1:
		return y, x
	case S2:
		return width - x - 1, y
	case S3:
		return height - y - 1, width - x - 1
	default:
		panic(fmt.Sprintf("invalid transformation %d", int(t)))
	}
}
