package ui

import (
	"github.com/telepair/lifesearch/internal/rule"
	"github.com/telepair/lifesearch/internal/search"
)

// Frame is a snapshot of a search in progress, copied out of a World so the
// UI goroutine never touches World state directly.
type Frame struct {
	Grid       [][]rule.CellState
	RLE        string
	Status     search.Status
	Population int
	Steps      int
}

// stepBudget bounds how much propagation work the driver does between
// frames, keeping the UI responsive even on a search that never converges.
const stepBudget = 64

// command is sent on the Driver's control channel to start, pause, or stop
// the search loop.
type command int

const (
	cmdStart command = iota
	cmdPause
	cmdStop
)

// Driver runs a World's search loop on a dedicated goroutine and publishes
// Frame snapshots for a UI to consume, per spec.md's external-driver
// concurrency model: the World is only ever touched here, never from the UI
// goroutine.
type Driver struct {
	world   *search.World
	frames  chan Frame
	control chan command
}

// NewDriver builds a Driver around world. Call Run in its own goroutine,
// then read Frames until it closes.
func NewDriver(world *search.World) *Driver {
	return &Driver{
		world:   world,
		frames:  make(chan Frame, 8),
		control: make(chan command, 1),
	}
}

// Frames returns the channel of Frame snapshots the driver publishes to.
func (d *Driver) Frames() <-chan Frame {
	return d.frames
}

// Start resumes the search loop if it is paused.
func (d *Driver) Start() {
	select {
	case d.control <- cmdStart:
	default:
	}
}

// Pause suspends the search loop after its current step budget completes.
func (d *Driver) Pause() {
	select {
	case d.control <- cmdPause:
	default:
	}
}

// Stop terminates the driver goroutine.
func (d *Driver) Stop() {
	select {
	case d.control <- cmdStop:
	default:
	}
}

// Run drives the search loop until Stop is called or the search reaches a
// terminal status, publishing a Frame after every step-budget chunk.
func (d *Driver) Run() {
	defer close(d.frames)

	running := true
	steps := 0
	for {
		select {
		case cmd := <-d.control:
			switch cmd {
			case cmdStart:
				running = true
			case cmdPause:
				running = false
			case cmdStop:
				return
			}
		default:
		}

		if !running {
			d.publish(steps)
			cmd, ok := <-d.control
			if !ok || cmd == cmdStop {
				return
			}
			running = cmd == cmdStart
			continue
		}

		budget := stepBudget
		status := d.world.Search(&budget)
		// Search doesn't report how many of budget it actually used before
		// hitting a terminal status, so this is an upper bound, not an
		// exact step count.
		steps += budget
		d.publish(steps)

		if status != search.Running {
			running = false
		}
	}
}

func (d *Driver) publish(steps int) {
	width, height := d.world.Config.Width, d.world.Config.Height
	grid := make([][]rule.CellState, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]rule.CellState, width)
		for x := 0; x < width; x++ {
			grid[y][x] = d.world.CellState(x, y, 0)
		}
	}

	frame := Frame{
		Grid:       grid,
		RLE:        d.world.RLE(0, false),
		Status:     d.world.Status(),
		Population: d.world.Population(0),
		Steps:      steps,
	}
	select {
	case d.frames <- frame:
	default:
		// Drop the frame rather than block the search loop; the UI reads
		// the next one.
	}
}
