package bench

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Throughput reports a completed workload's size and rate in
// human-readable form, e.g. for printing at the end of a benchmark run.
type Throughput struct {
	Operations int
	Elapsed    time.Duration
}

// PerSecond returns the operation rate.
func (t Throughput) PerSecond() float64 {
	if t.Elapsed <= 0 {
		return 0
	}
	return float64(t.Operations) / t.Elapsed.Seconds()
}

// String renders a line like "1,048,576 ops in 120ms (8,738,133/s)".
func (t Throughput) String() string {
	return fmt.Sprintf("%s ops in %s (%s/s)",
		humanize.Comma(int64(t.Operations)),
		t.Elapsed,
		humanize.Comma(int64(t.PerSecond())))
}
