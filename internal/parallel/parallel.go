// Package parallel provides chunked parallel execution for per-row grid work.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled  bool // Whether parallel execution is enabled.
	Workers  int  // Number of worker goroutines to use.
	MinChunk int  // Minimum iterations per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
// MinChunk keeps goroutine overhead below the cost of a few rows of
// sliding-window work.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:  n > 1,
		Workers:  n,
		MinChunk: 16,
	}
}

// Sequential returns a config that disables all parallelism.
// Useful for deterministic comparisons in tests.
func Sequential() Config {
	return Config{Enabled: false}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Iterations must be independent; no ordering between them is
// guaranteed. Falls back to sequential execution if parallelism is
// disabled or n is too small to be worth fanning out.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.Workers < 2 || n < cfg.MinChunk {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunk)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
