// Package rule parses outer-totalistic rule strings and builds the
// Descriptor/Implication lookup table the search engine's propagation step
// consults on every cell touched.
package rule

import "fmt"

// CellState is the state of a known cell.
type CellState uint8

const (
	// Dead and Alive are chosen so that 0 stays reserved for "unknown" in a
	// packed Descriptor field.
	Dead  CellState = 0b01
	Alive CellState = 0b10
)

// Not returns the opposite state.
func (s CellState) Not() CellState {
	switch s {
	case Dead:
		return Alive
	case Alive:
		return Dead
	default:
		panic(fmt.Sprintf("rule: Not of invalid CellState %d", uint8(s)))
	}
}

func (s CellState) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	default:
		return "unknown"
	}
}
