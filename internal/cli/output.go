package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/chomsky/internal/presentation/tui"
	"github.com/aretw0/chomsky/pkg/schema"
)

// WriteDefinition encodes def as YAML to w, or to path when set, in the
// format its extension names.
func WriteDefinition(w io.Writer, def *schema.Definition, path string) error {
	format := schema.FormatYAML
	if path != "" {
		format = schema.FormatFromPath(path)
	}
	data, err := schema.Encode(def, format)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Print renders a markdown report and writes it to w.
func Print(w io.Writer, render tui.Renderer, markdown string) error {
	out, err := render(markdown)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
