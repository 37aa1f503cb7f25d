// Package progress wires a climb.Config.Report callback to a terminal
// spinner, grounded in drand-drand's cmd/drand-cli/control.go use of
// github.com/briandowns/spinner (PreUpdate callback formatting a
// running suffix from atomically-updated counters).
package progress

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/briandowns/spinner"

	"cipherclimb/internal/climb"
)

const refreshRate = 100 * time.Millisecond

// Reporter drives a spinner from climb.Config.Report callbacks.
type Reporter struct {
	spin    *spinner.Spinner
	cycle   int64
	accept  int64
	reject  int64
	total   int
}

// New returns a Reporter that will display progress against totalCycles.
func New(totalCycles int) *Reporter {
	s := spinner.New(spinner.CharSets[9], refreshRate)
	r := &Reporter{spin: s, total: totalCycles}
	s.PreUpdate = func(spin *spinner.Spinner) {
		cycle := atomic.LoadInt64(&r.cycle)
		accept := atomic.LoadInt64(&r.accept)
		reject := atomic.LoadInt64(&r.reject)
		pct := 0.0
		if r.total > 0 {
			pct = 100 * float64(cycle) / float64(r.total)
		}
		spin.Suffix = fmt.Sprintf("  cycle %d/%d (%.1f%%) - accepted %d, rejected %d",
			cycle, r.total, pct, accept, reject)
	}
	return r
}

// Start begins rendering the spinner.
func (r *Reporter) Start() { r.spin.Start() }

// Stop halts the spinner rendering and prints a trailing newline so
// the final line isn't overwritten.
func (r *Reporter) Stop() {
	r.spin.Stop()
	fmt.Println()
}

// Report implements the climb.Config.Report callback shape.
func (r *Reporter) Report(c *climb.Climber, cycle, accepted, rejected int) {
	atomic.StoreInt64(&r.cycle, int64(cycle))
	atomic.StoreInt64(&r.accept, int64(accepted))
	atomic.StoreInt64(&r.reject, int64(rejected))
}
