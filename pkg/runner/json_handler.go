package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/aretw0/stencil/pkg/domain"
)

// JSONHandler writes one JSON object per emitted line (NDJSON).
// Announcements and separators are presentation only and are not written.
type JSONHandler struct {
	mu      sync.Mutex
	encoder *json.Encoder
}

// NewJSONHandler creates a handler writing NDJSON to w.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{encoder: json.NewEncoder(w)}
}

// WriteLine implements domain.Sink.
func (h *JSONHandler) WriteLine(_ context.Context, line domain.Line) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.encoder.Encode(line)
}

// Announce is a no-op for JSON output.
func (h *JSONHandler) Announce(context.Context, string) error { return nil }

// Separate is a no-op for JSON output.
func (h *JSONHandler) Separate(context.Context) error { return nil }
