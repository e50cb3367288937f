// Package progress displays a spinner while a batch run is in flight.
package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps the terminal spinner. When disabled (non-interactive
// output), updates degrade to plain printed lines so logs stay readable.
type Spinner struct {
	s       *spinner.Spinner
	w       io.Writer
	enabled bool
}

// New creates a spinner writing to w. enabled should be false when w is not
// a terminal.
func New(w io.Writer, enabled bool) *Spinner {
	return &Spinner{w: w, enabled: enabled}
}

// Start begins the spinner animation with the given message.
func (p *Spinner) Start(msg string) {
	if !p.enabled {
		fmt.Fprintln(p.w, msg)
		return
	}
	p.s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	p.s.Writer = p.w
	p.s.Suffix = " " + msg
	p.s.Start()
}

// Update replaces the spinner message.
func (p *Spinner) Update(msg string) {
	if p.s == nil {
		return
	}
	p.s.Suffix = " " + msg
}

// Stop halts the animation and clears the spinner line.
func (p *Spinner) Stop() {
	if p.s != nil {
		p.s.Stop()
		p.s = nil
	}
}
