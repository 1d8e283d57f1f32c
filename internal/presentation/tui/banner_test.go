package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/stencil/internal/presentation/tui"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPrintBanner_Ascii(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, termenv.Ascii)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "ascii profile carries no escape codes")
	assert.Contains(t, out, "|___/\\__\\___|_| |_|\\___|_|_|")
	assert.Equal(t, 7, strings.Count(out, "\n"))
}

func TestPrintBanner_Color(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, termenv.TrueColor)
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestNewRenderer(t *testing.T) {
	out, err := tui.NewRenderer()("# Skeleton\n\nseven steps\n")
	assert.NoError(t, err)
	assert.Contains(t, out, "seven steps")
}
