package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"       _                           _          ", "#818cf8"},
		{"   ___| |__   ___  _ __ ___  ___| | ___   _ ", "#a78bfa"},
		{"  / __| '_ \\ / _ \\| '_ ` _ \\/ __| |/ / | | |", "#c084fc"},
		{" | (__| | | | (_) | | | | | \\__ \\   <| |_| |", "#e879f9"},
		{"  \\___|_| |_|\\___/|_| |_| |_|___/_|\\_\\\\__, |", "#f472b6"},
		{"                                      |___/ ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintf(w, "  %s\n\n", termenv.String("v"+strings.TrimSpace(version)).Faint())
}

// Status colours a verdict: green when ok, red otherwise.
func Status(ok bool, text string) string {
	p := termenv.ColorProfile()
	color := "#22c55e"
	if !ok {
		color = "#ef4444"
	}
	return termenv.String(text).Foreground(p.Color(color)).String()
}
