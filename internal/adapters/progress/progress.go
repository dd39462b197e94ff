// Package progress holds console implementations of ports.ProgressReporter.
package progress

import (
	"fmt"
	"io"

	"github.com/hailam/randfile/internal/utils"
)

// CompleteMessage is printed once the write loop has finished.
const CompleteMessage = "File generation complete."

// Nop discards all progress.
type Nop struct{}

// Update does nothing.
func (Nop) Update(int64, int64) {}

// Done does nothing.
func (Nop) Done(int64) {}

// Line rewrites a single status line with a carriage return on every update.
type Line struct {
	w     io.Writer
	dirty bool
}

// NewLine returns a Line writing to w.
func NewLine(w io.Writer) *Line {
	return &Line{w: w}
}

// Update overwrites the status line with the megabytes written so far.
func (l *Line) Update(written, _ int64) {
	fmt.Fprintf(l.w, "\rWritten %.2f MB...", utils.BytesToMegabytes(written))
	l.dirty = true
}

// Done ends the status line and prints CompleteMessage.
func (l *Line) Done(int64) {
	if l.dirty {
		fmt.Fprintln(l.w)
		l.dirty = false
	}
	fmt.Fprintln(l.w, CompleteMessage)
}
