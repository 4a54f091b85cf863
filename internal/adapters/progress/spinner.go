package progress

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// SpinnerSink shows a spinner while events ask for one and stops it on the next event
type SpinnerSink struct {
	spinner *spinner.Spinner
	out     io.Writer
}

// NewSpinnerSink creates a spinner sink writing to stderr
func NewSpinnerSink() *SpinnerSink {
	return newSpinnerSink(os.Stderr)
}

func newSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		s.spinner.Suffix = " " + event.Message
		if !s.spinner.Active() {
			s.spinner.Start()
		}
		return
	}
	s.Stop()
}

// Stop stops the spinner if it is running
func (s *SpinnerSink) Stop() {
	if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// Info prints an info message
func (s *SpinnerSink) Info(message string) {
	s.withPausedSpinner(func() {
		color.New(color.FgCyan).Fprintln(s.out, message)
	})
}

// Error prints an error message
func (s *SpinnerSink) Error(message string) {
	s.withPausedSpinner(func() {
		color.New(color.FgRed).Fprintln(s.out, message)
	})
}

func (s *SpinnerSink) withPausedSpinner(fn func()) {
	wasActive := s.spinner.Active()
	if wasActive {
		s.spinner.Stop()
	}

	fn()

	if wasActive {
		s.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
