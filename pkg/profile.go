package pkg

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof" //nolint:gosec
	"runtime"
	"time"
)

// StartProfile starts a pprof server and handles graceful shutdown. A long
// search over a wide window or high period can pin a CPU for a long time,
// so this is what an operator reaches for to find which propagation step is
// burning cycles.
func StartProfile(ctx context.Context, port int) {
	logger := slog.With("component", "profile")
	server := &http.Server{ //nolint:gosec
		Addr: fmt.Sprintf(":%d", port),
	}

	go func() {
		logger.Info("starting pprof server", "url", fmt.Sprintf("http://localhost:%d/debug/pprof/", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start pprof server", "error", err)
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()
	logger.Info("stopping pprof server")

	// Create a timeout context for graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Gracefully shutdown the server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to gracefully shut down pprof server", "error", err)
	} else {
		logger.Info("pprof server stopped gracefully")
	}
}

// StartWatchdog periodically logs process memory/goroutine stats, the signal
// an operator watches for a search that's leaking goroutines (e.g. a stuck
// Driver) or whose cell slice has grown past what the box can hold.
func StartWatchdog(ctx context.Context, interval time.Duration) {
	logger := slog.With("component", "watchdog")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("starting watchdog", "interval", interval)

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping watchdog")
			return
		case <-ticker.C:
			printRuntimeStats(logger)
		}
	}
}

// printRuntimeStats logs the process stats a search operator cares about:
// goroutine count (the Driver plus its bubbletea program should hold this
// near-constant) and heap growth (a proxy for how large the lattice the
// current search built has gotten).
func printRuntimeStats(logger *slog.Logger) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	logger.Info("runtime stats",
		"goroutines", runtime.NumGoroutine(),
		"alloc_mb", bToMb(m.Alloc),
		"total_alloc_mb", bToMb(m.TotalAlloc),
		"sys_mb", bToMb(m.Sys),
		"num_gc", m.NumGC,
		"next_gc_mb", bToMb(m.NextGC),
	)
}

// bToMb converts bytes to megabytes
func bToMb(b uint64) uint64 {
	return b / 1024 / 1024
}
