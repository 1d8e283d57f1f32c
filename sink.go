package stencil

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/stencil/pkg/domain"
)

// WriterSink writes each line's text followed by a newline.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink wraps w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteLine implements domain.Sink.
func (s *WriterSink) WriteLine(_ context.Context, line domain.Line) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.w, line.Text)
	return err
}
