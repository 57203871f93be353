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

	"github.com/spf13/cobra"

	"github.com/telepair/lifesearch/internal/rule"
	"github.com/telepair/lifesearch/internal/simulate"
)

var (
	simulateRuleStr string
	simulateRLEPath string
	simulateSteps   int
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Forward-step a pattern loaded from an RLE file",
	Long: `simulate loads a pattern from an RLE file and prints each generation as it
forward-steps it under a rule, independent of the search engine. It is
useful for inspecting a solution found by "lifesearch search".`,
	Run: func(_ *cobra.Command, _ []string) {
		InitLog()
		ctx := context.Background()
		InitProfile(ctx)

		table, err := rule.Parse(simulateRuleStr)
		if err != nil {
			fmt.Fprintln(os.Stderr, "invalid rule:", err)
			os.Exit(1)
		}

		data, err := os.ReadFile(simulateRLEPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to read RLE file:", err)
			os.Exit(1)
		}

		grid, err := simulate.ParseRLE(string(data))
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to parse RLE pattern:", err)
			os.Exit(1)
		}

		fmt.Println("generation 0:")
		fmt.Println(simulate.Format(grid, simulateRuleStr))
		for gen := 1; gen <= simulateSteps; gen++ {
			grid = simulate.Step(table, grid)
			fmt.Printf("generation %d:\n", gen)
			fmt.Println(simulate.Format(grid, simulateRuleStr))
		}
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVar(&simulateRuleStr, "rule", "B3/S23", "Outer-totalistic rule string")
	simulateCmd.Flags().StringVar(&simulateRLEPath, "rle", "", "Path to an RLE pattern file")
	simulateCmd.Flags().IntVar(&simulateSteps, "steps", 1, "Number of generations to step forward")
	_ = simulateCmd.MarkFlagRequired("rle")
}
