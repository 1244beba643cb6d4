package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/ports"
	"github.com/aalvaropc/patternkit/internal/usecase"
)

// DemoRunner executes a demo by name and captures its transcript.
type DemoRunner interface {
	Execute(ctx context.Context, name string, out io.Writer, save bool) (usecase.RunOutcome, error)
}

type Deps struct {
	Catalog ports.DemoCatalog
	Runner  DemoRunner

	Logger *slog.Logger
	Debug  bool
}

var _ DemoRunner = (*usecase.RunDemo)(nil)
