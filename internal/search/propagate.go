package search

import "github.com/telepair/lifesearch/internal/rule"

// setCell requires the cell at idx to be unknown. It records state, updates
// the descriptors of the cell, its neighbors, and its predecessor, adjusts
// frontCount/population, and pushes (idx, reason) onto the stack.
func (w *World) setCell(idx int, state rule.CellState, reason Reason) {
	cell := &w.cells[idx]
	debugAssert(!cell.Known(), "setCell on a known cell")

	cell.state = state
	cell.descriptor.SetCurrent(state)

	for _, n := range cell.Neighborhood {
		if n == noCell {
			continue
		}
		if state == rule.Dead {
			w.cells[n].descriptor.IncrementDead()
		} else {
			w.cells[n].descriptor.IncrementAlive()
		}
	}

	if cell.Predecessor != noCell {
		w.cells[cell.Predecessor].descriptor.SetSuccessor(state)
	}

	if cell.IsFront && state == rule.Dead {
		w.frontCount--
	}
	if state == rule.Alive {
		w.population[cell.Generation]++
	}

	w.stack = append(w.stack, stackEntry{cell: idx, state: state, reason: reason})
}

// unsetCell is the exact inverse of setCell, used by backtracking.
func (w *World) unsetCell(idx int) {
	cell := &w.cells[idx]
	state := cell.state
	debugAssert(cell.Known(), "unsetCell on an unknown cell")

	for _, n := range cell.Neighborhood {
		if n == noCell {
			continue
		}
		if state == rule.Dead {
			w.cells[n].descriptor.DecrementDead()
		} else {
			w.cells[n].descriptor.DecrementAlive()
		}
	}

	if cell.Predecessor != noCell {
		w.cells[cell.Predecessor].descriptor.SetSuccessor(state)
	}

	if cell.IsFront && state == rule.Dead {
		w.frontCount++
	}
	if state == rule.Alive {
		w.population[cell.Generation]--
	}

	cell.descriptor.SetCurrent(state)
	cell.state = 0
}

// checkDescriptor reads a cell's descriptor and acts on its implications.
// It returns false on Conflict.
func (w *World) checkDescriptor(idx int) bool {
	cell := &w.cells[idx]
	implication := w.Rule.Implies(cell.descriptor)

	if implication.Empty() {
		return true
	}
	if implication.Has(rule.Conflict) {
		return false
	}

	if implication.Intersects(rule.SuccessorDead | rule.SuccessorAlive) {
		if succ := cell.Successor; succ != noCell && !w.cells[succ].Known() {
			state := rule.Dead
			if implication.Has(rule.SuccessorAlive) {
				state = rule.Alive
			}
			w.setCell(succ, state, Deduced)
			return true
		}
	}

	if implication.Intersects(rule.CurrentDead | rule.CurrentAlive) {
		state := rule.Dead
		if implication.Has(rule.CurrentAlive) {
			state = rule.Alive
		}
		w.setCell(idx, state, Deduced)
	}

	if implication.Intersects(rule.NeighborhoodDead | rule.NeighborhoodAlive) {
		state := rule.Dead
		if implication.Has(rule.NeighborhoodAlive) {
			state = rule.Alive
		}
		for _, n := range cell.Neighborhood {
			if n != noCell && !w.cells[n].Known() {
				w.setCell(n, state, Deduced)
			}
		}
	}

	return true
}

// checkAffected checks every descriptor that may have changed because of
// idx's state change: symmetry replication, idx itself, its neighbors, and
// its predecessor. It also enforces the front-emptiness and population
// bound invariants.
func (w *World) checkAffected(idx int) bool {
	if w.frontCount == 0 {
		return false
	}
	if w.maxPopulation != nil && w.minPopulation() > *w.maxPopulation {
		return false
	}

	cell := &w.cells[idx]
	state := cell.State()
	for _, peer := range cell.Symmetry {
		p := &w.cells[peer]
		if !p.Known() {
			w.setCell(peer, state, Deduced)
		} else if p.State() != state {
			return false
		}
	}

	if !w.checkDescriptor(idx) {
		return false
	}
	for _, n := range cell.Neighborhood {
		if n != noCell && !w.checkDescriptor(n) {
			return false
		}
	}
	if pred := cell.Predecessor; pred != noCell && !w.checkDescriptor(pred) {
		return false
	}

	return true
}

// checkStack drains the stack from stackIndex forward.
func (w *World) checkStack() bool {
	for w.stackIndex < len(w.stack) {
		if !w.checkAffected(w.stack[w.stackIndex].cell) {
			return false
		}
		w.stackIndex++
	}
	return true
}

// backtrack pops entries until a Guessed entry is found, flips it to the
// opposite state, and resumes from there. It returns NoSolution if the
// stack empties (or hits a Known entry) without finding one.
func (w *World) backtrack() Status {
	for len(w.stack) > 0 {
		entry := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		switch entry.reason {
		case Known:
			return NoSolution
		case Deduced:
			w.unsetCell(entry.cell)
		case Guessed:
			state := w.cells[entry.cell].State()
			w.stackIndex = len(w.stack)
			w.start = w.cells[entry.cell].Next
			w.unsetCell(entry.cell)
			w.setCell(entry.cell, state.Not(), Deduced)
			return Running
		}
	}
	return NoSolution
}

// guess finds the next unknown cell in search order and assigns it a state
// per Config.NewState, recorded as Guessed. It returns false once the
// search order is exhausted (every cell is known).
func (w *World) guess() bool {
	for w.start != noCell {
		idx := w.start
		cell := &w.cells[idx]
		if !cell.Known() {
			var state rule.CellState
			switch w.Config.NewState {
			case NewStateAlive:
				state = rule.Alive
			case NewStateDead:
				state = rule.Dead
			default:
				if w.rng.Uint64()%2 == 0 {
					state = rule.Dead
				} else {
					state = rule.Alive
				}
			}
			w.setCell(idx, state, Guessed)
			w.start = cell.Next
			return true
		}
		w.start = cell.Next
	}
	return false
}

// step runs one iteration of the search: drain the stack, then either
// guess (Running), find nothing left to guess (Solved), or backtrack on
// conflict.
func (w *World) step() Status {
	if w.checkStack() {
		if w.guess() {
			return Running
		}
		return Solved
	}
	return w.backtrack()
}

func (w *World) minPopulation() int {
	m := w.population[0]
	for _, p := range w.population[1:] {
		if p < m {
			m = p
		}
	}
	return m
}

// Search runs the search loop for at most maxSteps iterations (unbounded if
// nil), updating and returning Status. Calling it again after Solved
// resumes the search for the next solution, optionally tightening
// maxPopulation first per Config.ReduceMaxPopulation.
func (w *World) Search(maxSteps *int) Status {
	steps := 0

	var status Status
	switch w.status {
	case Solved:
		if w.Config.ReduceMaxPopulation {
			m := w.minPopulation() - 1
			w.maxPopulation = &m
		}
		status = w.backtrack()
	case NoSolution:
		status = NoSolution
	default:
		status = Running
	}

	for status == Running && !(maxSteps != nil && steps >= *maxSteps) {
		status = w.step()

		if status == Solved && !w.checkPeriod() {
			status = w.backtrack()
		}

		steps++
	}

	w.status = status
	return status
}
