package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/stencil/pkg/domain"
	"github.com/muesli/termenv"
)

// TextHandler writes plain text lines, one per emitted step output.
type TextHandler struct {
	mu      sync.Mutex
	Writer  io.Writer
	Profile termenv.Profile
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithColorProfile enables coloured speaker prefixes for the given terminal profile.
// termenv.Ascii (the default) leaves the text untouched.
func WithColorProfile(p termenv.Profile) TextHandlerOption {
	return func(h *TextHandler) {
		h.Profile = p
	}
}

// NewTextHandler creates a handler for standard text output.
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer:  w,
		Profile: termenv.Ascii,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// WriteLine implements domain.Sink.
func (h *TextHandler) WriteLine(_ context.Context, line domain.Line) error {
	return h.println(h.style(line))
}

// Announce writes a header line before a variant runs.
func (h *TextHandler) Announce(_ context.Context, text string) error {
	return h.println(text)
}

// Separate writes a blank line between variants.
func (h *TextHandler) Separate(_ context.Context) error {
	return h.println("")
}

func (h *TextHandler) println(s string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.Writer, s)
	return err
}

// style colours the "<source> says:" prefix. The rest of the line is left as is.
func (h *TextHandler) style(line domain.Line) string {
	if h.Profile == termenv.Ascii {
		return line.Text
	}
	prefix := line.Source + " says:"
	rest, ok := strings.CutPrefix(line.Text, prefix)
	if !ok {
		return line.Text
	}
	color := "#818cf8"
	switch line.Kind {
	case domain.KindRequired:
		color = "#34d399"
	case domain.KindHook:
		color = "#f472b6"
	}
	return termenv.String(prefix).Foreground(h.Profile.Color(color)).Bold().String() + rest
}
