package progress

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/trebuchet-org/ignis/internal/usecase"
)

// QuietSink drops progress events and info messages. Errors still go to
// stderr so --json output on stdout stays machine readable.
type QuietSink struct {
	errOut io.Writer
}

// NewQuietSink creates a sink for --json and --non-interactive runs
func NewQuietSink() *QuietSink {
	return &QuietSink{errOut: os.Stderr}
}

func (s *QuietSink) OnProgress(context.Context, usecase.ProgressEvent) {}

func (s *QuietSink) Info(string) {}

// Error writes message without decoration
func (s *QuietSink) Error(message string) {
	fmt.Fprintln(s.errOut, message)
}

var _ usecase.ProgressSink = (*QuietSink)(nil)
