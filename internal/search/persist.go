package search

import (
	"encoding/base64"
	"fmt"

	"github.com/telepair/lifesearch/internal/rule"
)

// StackEntry is the JSON-serializable form of a stackEntry.
type StackEntry struct {
	CellIndex int    `json:"cell_index"`
	State     string `json:"state"`
	Reason    string `json:"reason"`
}

// Snapshot is the serializable form of a World's search progress, per
// spec.md §6's optional persistence contract.
type Snapshot struct {
	Config Config `json:"config"`

	RNGState string `json:"rng_state"`

	Population    []int `json:"population"`
	MaxPopulation *int  `json:"max_population,omitempty"`
	FrontCount    int   `json:"front_count"`

	Stack      []StackEntry `json:"stack"`
	StackIndex int          `json:"stack_index"`
	Start      *int         `json:"start,omitempty"`

	Status Status `json:"status"`
}

func stateName(s rule.CellState) string {
	switch s {
	case rule.Dead:
		return "dead"
	case rule.Alive:
		return "alive"
	default:
		return "unknown"
	}
}

func parseStateName(s string) (rule.CellState, error) {
	switch s {
	case "dead":
		return rule.Dead, nil
	case "alive":
		return rule.Alive, nil
	default:
		return 0, fmt.Errorf("search: invalid cell state %q in snapshot", s)
	}
}

// Snapshot captures the World's current search progress.
func (w *World) Snapshot() (Snapshot, error) {
	rngBytes, err := w.pcg.MarshalBinary()
	if err != nil {
		return Snapshot{}, fmt.Errorf("search: marshal rng state: %w", err)
	}

	stack := make([]StackEntry, len(w.stack))
	for i, e := range w.stack {
		stack[i] = StackEntry{CellIndex: e.cell, State: stateName(e.state), Reason: e.reason.String()}
	}

	var start *int
	if w.start != noCell {
		s := w.start
		start = &s
	}

	return Snapshot{
		Config:        w.Config,
		RNGState:      base64.StdEncoding.EncodeToString(rngBytes),
		Population:    append([]int(nil), w.population...),
		MaxPopulation: w.maxPopulation,
		FrontCount:    w.frontCount,
		Stack:         stack,
		StackIndex:    w.stackIndex,
		Start:         start,
		Status:        w.status,
	}, nil
}

// Load reconstructs a World from config, then replays snap's stack onto it.
// Known entries must form a contiguous prefix of the stack; Known entries for
// cells New has already set to the same state are skipped. Any violation,
// or a cell index out of range, is rejected without mutating a partially
// replayed World.
func Load(config Config, snap Snapshot) (*World, error) {
	w, err := New(config)
	if err != nil {
		return nil, err
	}

	sawNonKnown := false
	for _, entry := range snap.Stack {
		if entry.CellIndex < 0 || entry.CellIndex >= len(w.cells) {
			return nil, ErrSerdeOutOfBounds
		}
		reason, err := parseReasonName(entry.Reason)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSerdeInvalidStack, err)
		}
		if reason == Known && sawNonKnown {
			return nil, ErrSerdeInvalidStack
		}
		if reason != Known {
			sawNonKnown = true
		}

		state, err := parseStateName(entry.State)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSerdeInvalidStack, err)
		}
		if cell := &w.cells[entry.CellIndex]; cell.Known() {
			// New has already set the cells it seeds as Known.
			if reason == Known && cell.State() == state {
				continue
			}
			return nil, ErrSerdeInvalidStack
		}
		w.setCell(entry.CellIndex, state, reason)
	}

	if snap.Start != nil {
		if *snap.Start < 0 || *snap.Start >= len(w.cells) {
			return nil, ErrSerdeOutOfBounds
		}
		w.start = *snap.Start
	} else {
		w.start = noCell
	}

	w.stackIndex = snap.StackIndex
	w.frontCount = snap.FrontCount
	w.maxPopulation = snap.MaxPopulation
	if len(snap.Population) == len(w.population) {
		copy(w.population, snap.Population)
	}
	w.status = snap.Status

	if rngBytes, err := base64.StdEncoding.DecodeString(snap.RNGState); err == nil {
		_ = w.pcg.UnmarshalBinary(rngBytes)
	}

	return w, nil
}

func parseReasonName(s string) (Reason, error) {
	switch s {
	case "known":
		return Known, nil
	case "deduced":
		return Deduced, nil
	case "guessed":
		return Guessed, nil
	default:
		return 0, fmt.Errorf("invalid reason %q", s)
	}
}
