package search

import (
	"log/slog"
	"math/rand/v2"

	"github.com/telepair/lifesearch/internal/rule"
)

// Status is the outcome of a search, the only channel through which search
// results are reported; internal conflicts never surface as errors.
type Status int

const (
	NotStarted Status = iota
	Running
	Solved
	NoSolution
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Solved:
		return "solved"
	case NoSolution:
		return "no solution"
	default:
		return "invalid"
	}
}

type stackEntry struct {
	cell   int
	state  rule.CellState
	reason Reason
}

// World owns the entire lattice of cells for one search, plus the
// constraint-propagation stack, population tracking, and search cursor.
// A World is single-threaded: every exported method must be called from one
// goroutine (see SPEC_FULL.md §5 for how the CLI/TUI drive it from a
// dedicated worker goroutine).
type World struct {
	Config Config
	Rule   *rule.Table

	cells []Cell

	stack      []stackEntry
	stackIndex int

	population    []int
	maxPopulation *int
	frontCount    int
	start         int

	pcg *rand.PCG
	rng *rand.Rand

	status Status

	dimX, dimY int
	radius     int

	log *slog.Logger
}

// New validates config, builds the lattice, and returns a ready-to-search
// World.
func New(config Config) (*World, error) {
	config, err := config.check()
	if err != nil {
		return nil, err
	}

	table, err := config.parseRule()
	if err != nil {
		return nil, err
	}

	w := &World{
		Config:        config,
		Rule:          table,
		maxPopulation: config.MaxPopulation,
		start:         noCell,
		status:        NotStarted,
		radius:        table.Radius,
		log:           slog.Default().With("component", "search"),
	}
	w.dimX = config.Width + 2*w.radius
	w.dimY = config.Height + 2*w.radius
	w.population = make([]int, config.Period)

	if config.Seed != nil {
		w.pcg = rand.NewPCG(*config.Seed, *config.Seed>>1|1)
	} else {
		w.pcg = rand.NewPCG(uint64(0xa5a5a5a5), uint64(0x5a5a5a5a))
	}
	w.rng = rand.New(w.pcg)

	w.build()

	w.log.Debug("world built", "width", config.Width, "height", config.Height,
		"period", config.Period, "cells", len(w.cells))

	return w, nil
}

// cellIndex returns the index of the cell at (x, y, t), where t must
// already be canonicalized into [0, Period). The second return value is
// false if (x, y) lies outside the world's spatial extent.
func (w *World) cellIndex(x, y, t int) (int, bool) {
	r := w.radius
	if x < -r || x >= w.Config.Width+r {
		return 0, false
	}
	if y < -r || y >= w.Config.Height+r {
		return 0, false
	}
	period := w.Config.Period
	idx := t + (x+r)*period + (y+r)*period*w.dimX
	return idx, true
}

// cellAt canonicalizes (x, y, t) and returns its cell index, or (0, false)
// if out of the world's spatial extent (time is always in range after
// canonicalization).
func (w *World) cellAt(x, y, t int) (int, bool) {
	x, y, t = w.canonicalize(x, y, t)
	return w.cellIndex(x, y, t)
}

// CellState returns the known state of the cell at (x, y, t), canonicalizing
// the coordinate first. Out-of-world coordinates are always Dead.
func (w *World) CellState(x, y, t int) rule.CellState {
	idx, ok := w.cellAt(x, y, t)
	if !ok {
		return rule.Dead
	}
	return w.cells[idx].State()
}

// Population returns the number of Alive cells at generation t.
func (w *World) Population(t int) int {
	return w.population[t%w.Config.Period]
}

// Status returns the World's current search status.
func (w *World) Status() Status {
	return w.status
}
