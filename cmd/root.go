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

// Package cmd contains the command line interface for the lifesearch application.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/telepair/lifesearch/pkg"
)

const (
	// DefaultProfilePort is the default profiling server port
	DefaultProfilePort = 6060
	// DefaultProfileInterval is the default interval for profile information output
	DefaultProfileInterval = 5 * time.Second
	// DefaultLogLevel is the default logging level
	DefaultLogLevel = "debug"
	// DefaultLogFormat is the default logging format
	DefaultLogFormat = "text"
	// DefaultLogFile is the default log file path (empty leaves the default slog logger in place)
	DefaultLogFile = ""
)

var (
	profile         bool
	profilePort     int
	profileInterval time.Duration
	logFile         string
	logLevel        string
	logFormat       string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lifesearch",
	Short: "Search for periodic patterns in 2-D outer-totalistic cellular automata",
	Long: `lifesearch searches for periodic patterns (oscillators, spaceships, still
lifes) in 2-D outer-totalistic cellular automata by constraint propagation
over a finite window of the lattice, in the style of tools like WinLifeSearch
and ntzfind.

- search: find a pattern satisfying a rule, window size, and period
- simulate: forward-step a pattern under a rule to verify or explore it`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&profile, "profile", false, "Enable profiling and monitoring")
	rootCmd.PersistentFlags().IntVar(&profilePort, "profile-port", DefaultProfilePort, "Profiling server port")
	rootCmd.PersistentFlags().DurationVar(&profileInterval, "profile-interval", DefaultProfileInterval, "Profile information output interval")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", DefaultLogFile, "Log file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", DefaultLogLevel, "Log level (debug/info/warn/error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", DefaultLogFormat, "Log format (text/json)")
}

// InitLog initializes the logging when a log file is set; otherwise the
// default slog logger is left unchanged.
func InitLog() {
	if logFile != "" {
		if err := pkg.InitLog(logLevel, logFormat, logFile); err != nil {
			slog.Error("Failed to initialize logging", "error", err)
		}
	}
}

// InitProfile starts the profiling and watchdog
func InitProfile(ctx context.Context) {
	if profile {
		go pkg.StartProfile(ctx, profilePort)
		go pkg.StartWatchdog(ctx, profileInterval)
	}
}
