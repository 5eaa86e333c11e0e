package graph

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/aretw0/chomsky/pkg/domain"
)

// ErrRendererUnavailable is returned when the Graphviz "dot" binary is not
// installed. Callers report it and carry on.
var ErrRendererUnavailable = errors.New("graphviz renderer unavailable")

// DotBinary is the executable RenderPNG looks up on PATH.
var DotBinary = "dot"

// RenderPNG writes a PNG rendering of a to path using Graphviz.
func RenderPNG(ctx context.Context, a *domain.Automaton, path string) error {
	bin, err := exec.LookPath(DotBinary)
	if err != nil {
		return fmt.Errorf("%w: %s not found on PATH", ErrRendererUnavailable, DotBinary)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, "-Tpng", "-o", path)
	cmd.Stdin = strings.NewReader(DOT(a))
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("dot failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
