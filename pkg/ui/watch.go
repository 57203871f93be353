package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/telepair/lifesearch/internal/rule"
)

// historyRows is the height of the scrolling log of past frames shown below
// the live grid.
const historyRows = 6

// WatchModel is the bubbletea Model for "lifesearch search --watch": it
// only ever reads Frame values already copied out of the World by a Driver
// goroutine, never touching the World itself.
type WatchModel struct {
	driver  *Driver
	frame   Frame
	paused  bool
	width   int
	history *Screen
}

// NewWatchModel builds a WatchModel around driver. driver.Run must be
// started in its own goroutine before the returned program runs.
func NewWatchModel(driver *Driver) *WatchModel {
	return &WatchModel{
		driver:  driver,
		width:   DefaultWidth,
		history: NewScreen(historyRows, DefaultWidth),
	}
}

// frameMsg wraps a Frame read off the driver's channel as a tea.Msg.
type frameMsg Frame

func waitForFrame(frames <-chan Frame) tea.Cmd {
	return func() tea.Msg {
		frame, ok := <-frames
		if !ok {
			return tea.Quit()
		}
		return frameMsg(frame)
	}
}

// Init starts the frame-reading loop.
func (m *WatchModel) Init() tea.Cmd {
	return waitForFrame(m.driver.Frames())
}

// Update handles bubbletea messages.
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.history = NewScreen(historyRows, msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch strings.ToLower(msg.String()) {
		case "ctrl+c", "q", "esc":
			m.driver.Stop()
			return m, tea.Quit
		case " ", "enter":
			m.paused = !m.paused
			if m.paused {
				m.driver.Pause()
			} else {
				m.driver.Start()
			}
		}
		return m, nil

	case frameMsg:
		m.frame = Frame(msg)
		m.history.Append([]rune(fmt.Sprintf("step %-6d pop %-5d %s",
			m.frame.Steps, m.frame.Population, m.frame.Status)))
		return m, waitForFrame(m.driver.Frames())
	}
	return m, nil
}

// View renders the current frame.
func (m *WatchModel) View() string {
	var b strings.Builder
	b.WriteString(headerLineStyle.Width(m.width).Render("lifesearch"))
	b.WriteString("\n")

	pausedStr := "Running"
	if m.paused {
		pausedStr = "Paused"
	}
	status := fmt.Sprintf("Status: %s | Population: %s | Steps: %s | %s",
		m.frame.Status, strconv.Itoa(m.frame.Population), strconv.Itoa(m.frame.Steps), pausedStr)
	b.WriteString(statusLineStyle.Width(m.width).Render(status))
	b.WriteString("\n")

	b.WriteString(renderGrid(m.frame.Grid))
	b.WriteString("\n")

	b.WriteString(m.history.View())
	b.WriteString("\n")

	b.WriteString(controlLineStyle.Width(m.width).Render("Space: Pause/Continue | Q: Quit"))
	return b.String()
}

// renderGrid draws grid onto a Screen, colored per cell state, reusing the
// same terminal screen buffer the other visualizations in this package
// render through.
func renderGrid(grid [][]rule.CellState) string {
	if len(grid) == 0 {
		return ""
	}
	screen := NewScreen(len(grid), len(grid[0]))
	screen.SetZeroValue(' ')
	screen.SetCharColor('#', lipgloss.Color(DefaultAliveColor))
	screen.SetCharColor('.', lipgloss.Color(DefaultDeadColor))

	data := make([][]rune, len(grid))
	for y, row := range grid {
		data[y] = make([]rune, len(row))
		for x, state := range row {
			if state == rule.Alive {
				data[y][x] = '#'
			} else {
				data[y][x] = '.'
			}
		}
	}
	screen.SetData(data)
	return screen.View()
}
