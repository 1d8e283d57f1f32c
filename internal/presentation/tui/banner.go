package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for stencil.
func PrintBanner(w io.Writer, p termenv.Profile) {
	lines := []struct {
		text  string
		color string
	}{
		{"     _                  _ _ ", "#818cf8"},
		{" ___| |_ ___ _ __   ___(_) |", "#a78bfa"},
		{"/ __| __/ _ \\ '_ \\ / __| | |", "#c084fc"},
		{"\\__ \\ ||  __/ | | | (__| | |", "#e879f9"},
		{"|___/\\__\\___|_| |_|\\___|_|_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
