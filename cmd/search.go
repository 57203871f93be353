/*
Copyright © 2025 Liys <liys87x@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/telepair/lifesearch/internal/rule"
	"github.com/telepair/lifesearch/internal/search"
	"github.com/telepair/lifesearch/internal/simulate"
	"github.com/telepair/lifesearch/internal/symmetry"
	"github.com/telepair/lifesearch/pkg/ui"
)

var (
	searchRuleStr        string
	searchWidth          int
	searchHeight         int
	searchPeriod         int
	searchDX             int
	searchDY             int
	searchSymmetry       string
	searchTransformation string
	searchDiagonalWidth  int
	searchOrder          string
	searchNewState       string
	searchSeed           uint64
	searchMaxPopulation  int
	searchReduceMax      bool
	searchMaxSteps       int
	searchVerify         bool
	searchWatch          bool
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for a periodic pattern under a cellular automaton rule",
	Long: `search looks for a pattern of the given width, height, and period that is
a fixed point of the rule's evolution (optionally translated by dx, dy each
period, and optionally constrained to a symmetry).`,
	Run: func(cmd *cobra.Command, _ []string) {
		InitLog()
		ctx := context.Background()
		InitProfile(ctx)

		config, err := buildSearchConfig(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, "invalid configuration:", err)
			os.Exit(1)
		}

		world, err := search.New(config)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to build search world:", err)
			os.Exit(1)
		}

		if searchWatch {
			runWatch(world)
			return
		}
		runOnce(world)
	},
}

func buildSearchConfig(cmd *cobra.Command) (search.Config, error) {
	config := search.NewConfig(searchRuleStr, searchWidth, searchHeight, searchPeriod)
	config.DX, config.DY = searchDX, searchDY
	config.ReduceMaxPopulation = searchReduceMax

	sym, err := symmetry.ParseSymmetry(searchSymmetry)
	if err != nil {
		return config, err
	}
	config.Symmetry = sym

	transform, err := symmetry.ParseTransformation(searchTransformation)
	if err != nil {
		return config, err
	}
	config.Transformation = transform

	if cmd.Flags().Changed("diagonal-width") {
		dw := searchDiagonalWidth
		config.DiagonalWidth = &dw
	}

	order, err := parseSearchOrder(searchOrder)
	if err != nil {
		return config, err
	}
	config.SearchOrder = order

	newState, err := parseNewState(searchNewState)
	if err != nil {
		return config, err
	}
	config.NewState = newState

	if cmd.Flags().Changed("seed") {
		seed := searchSeed
		config.Seed = &seed
	}
	if cmd.Flags().Changed("max-population") {
		max := searchMaxPopulation
		config.MaxPopulation = &max
	}

	return config, nil
}

func parseSearchOrder(s string) (search.SearchOrder, error) {
	switch s {
	case "auto":
		return search.SearchOrderAuto, nil
	case "row":
		return search.RowFirst, nil
	case "column":
		return search.ColumnFirst, nil
	case "diagonal":
		return search.Diagonal, nil
	default:
		return 0, fmt.Errorf("unknown search order %q", s)
	}
}

func parseNewState(s string) (search.NewState, error) {
	switch s {
	case "dead":
		return search.NewStateDead, nil
	case "alive":
		return search.NewStateAlive, nil
	case "random":
		return search.NewStateRandom, nil
	default:
		return 0, fmt.Errorf("unknown new-state policy %q", s)
	}
}

func runOnce(world *search.World) {
	var maxSteps *int
	if searchMaxSteps > 0 {
		maxSteps = &searchMaxSteps
	}

	status := world.Search(maxSteps)
	fmt.Println("status:", status)
	if status != search.Solved {
		return
	}

	fmt.Println(world.RLE(0, false))

	if searchVerify {
		verifySolution(world)
	}
}

func verifySolution(world *search.World) {
	table, err := rule.Parse(searchRuleStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "verify: failed to reparse rule:", err)
		return
	}

	grid := make([][]rule.CellState, searchHeight)
	for y := 0; y < searchHeight; y++ {
		grid[y] = make([]rule.CellState, searchWidth)
		for x := 0; x < searchWidth; x++ {
			grid[y][x] = world.CellState(x, y, 0)
		}
	}

	period := simulate.Period(table, grid, searchDX, searchDY, searchPeriod)
	if period == searchPeriod {
		fmt.Println("verify: confirmed period", period)
	} else {
		fmt.Println("verify: FAILED, expected period", searchPeriod, "got", period)
	}
}

func runWatch(world *search.World) {
	driver := ui.NewDriver(world)
	go driver.Run()

	model := ui.NewWatchModel(driver)
	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "watch: error running program:", err)
		os.Exit(1)
	}
	driver.Stop()
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchRuleStr, "rule", "B3/S23", "Outer-totalistic rule string")
	searchCmd.Flags().IntVar(&searchWidth, "width", 3, "World width")
	searchCmd.Flags().IntVar(&searchHeight, "height", 3, "World height")
	searchCmd.Flags().IntVar(&searchPeriod, "period", 1, "Period")
	searchCmd.Flags().IntVar(&searchDX, "dx", 0, "Translation per period along x")
	searchCmd.Flags().IntVar(&searchDY, "dy", 0, "Translation per period along y")
	searchCmd.Flags().StringVar(&searchSymmetry, "symmetry", "C1", "Pattern symmetry (C1/C2/C4/D2|/D2-/D2\\/D2//D4+/D4X/D8)")
	searchCmd.Flags().StringVar(&searchTransformation, "transformation", "R0", "Transformation applied each period (R0/R1/R2/R3/S0/S1/S2/S3)")
	searchCmd.Flags().IntVar(&searchDiagonalWidth, "diagonal-width", 0, "Exclude cells with |x-y| >= this value")
	searchCmd.Flags().StringVar(&searchOrder, "search-order", "auto", "Guess order (auto/row/column/diagonal)")
	searchCmd.Flags().StringVar(&searchNewState, "new-state", "dead", "State guess() picks first (dead/alive/random)")
	searchCmd.Flags().Uint64Var(&searchSeed, "seed", 0, "RNG seed for random guesses")
	searchCmd.Flags().IntVar(&searchMaxPopulation, "max-population", 0, "Upper bound on minimum-across-generations population")
	searchCmd.Flags().BoolVar(&searchReduceMax, "reduce-max-population", false, "Tighten max-population to beat each solution found on resume")
	searchCmd.Flags().IntVar(&searchMaxSteps, "max-steps", 0, "Bound the number of propagation steps (0 = unbounded)")
	searchCmd.Flags().BoolVar(&searchVerify, "verify", false, "Re-simulate the solution to confirm its period")
	searchCmd.Flags().BoolVar(&searchWatch, "watch", false, "Run with the live TUI driver instead of printing once")
}
