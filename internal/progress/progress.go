// Package progress renders conversion progress on the console.
//
// It implements the conversion's progress callback as an injected
// dependency, so the core rasterizer stays free of any console
// concerns.
package progress

import (
	"fmt"
	"io"
	"sync"
)

// Printer writes a single self-overwriting progress line. It is safe
// for concurrent use: the rasterizer reports from multiple workers.
type Printer struct {
	mu   sync.Mutex
	out  io.Writer
	last int // last percent written, -1 before the first report
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, last: -1}
}

// Report implements the conversion progress callback. It only writes
// when the integer percentage changes, keeping output lean.
func (p *Printer) Report(done, total int) {
	if total <= 0 {
		return
	}
	percent := done * 100 / total

	p.mu.Lock()
	defer p.mu.Unlock()

	// Workers report out of order; never let the display go backwards.
	if percent <= p.last {
		return
	}
	p.last = percent
	fmt.Fprintf(p.out, "\rconverting... %3d%%", percent)
}

// Done clears the progress line. Call once after the conversion ends.
func (p *Printer) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last >= 0 {
		fmt.Fprint(p.out, "\r\033[K")
		p.last = -1
	}
}
