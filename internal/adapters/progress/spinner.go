package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"

	"github.com/hailam/randfile/internal/utils"
)

// Spinner shows an animated spinner whose suffix carries the amount written.
// It only animates when writing to a terminal; elsewhere just the final
// message is printed.
type Spinner struct {
	w       io.Writer
	s       *spinner.Spinner
	animate bool
}

// NewSpinner reports to f, animating only if f is a terminal. The spinner
// checks f itself, not stdout, so redirecting stdout keeps the animation.
func NewSpinner(f *os.File) *Spinner {
	return build(f, IsTerminal(f), spinner.WithWriterFile(f))
}

// newSpinner writes to an arbitrary writer; used where no file is at hand.
func newSpinner(w io.Writer, animate bool) *Spinner {
	return build(w, animate, spinner.WithWriter(w))
}

func build(w io.Writer, animate bool, out spinner.Option) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, out)
	_ = s.Color("cyan")
	return &Spinner{w: w, s: s, animate: animate}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Update starts the spinner on the first call and refreshes its suffix.
func (p *Spinner) Update(written, total int64) {
	if !p.animate {
		return
	}
	suffix := fmt.Sprintf(" Written %.2f MB of %.2f MB", utils.BytesToMegabytes(written), utils.BytesToMegabytes(total))
	if !p.s.Active() {
		p.s.Suffix = suffix
		p.s.Start()
		return
	}
	p.s.Lock()
	p.s.Suffix = suffix
	p.s.Unlock()
}

// Done stops the spinner, leaving the completion line behind.
func (p *Spinner) Done(int64) {
	if !p.s.Active() {
		fmt.Fprintln(p.w, CompleteMessage)
		return
	}
	p.s.FinalMSG = CompleteMessage + "\n"
	p.s.Stop()
}
