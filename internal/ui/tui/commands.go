package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/patternkit/internal/domain"
)

const runTimeout = 30 * time.Second

func cmdRunDemo(parent context.Context, deps Deps, ref domain.DemoRef) tea.Cmd {
	return func() tea.Msg {
		if deps.Runner == nil {
			return demoDoneMsg{ref: ref, err: errors.New("demo runner is nil")}
		}
		if parent == nil {
			parent = context.Background()
		}

		log := deps.Logger
		if log == nil {
			log = slog.New(slog.NewJSONHandler(io.Discard, nil))
		}
		log.Info("demo.start", "demo", ref.Name, "pattern", ref.Pattern)

		ctx, cancel := context.WithTimeout(parent, runTimeout)
		defer cancel()

		res, err := deps.Runner.Execute(ctx, ref.Name, nil, false)
		if err != nil {
			log.Error("demo.failed", "demo", ref.Name, "err", err)
		} else if deps.Debug {
			log.Debug("demo.ok", "demo", ref.Name, "lines", len(res.Transcript.Lines))
		}
		return demoDoneMsg{ref: ref, outcome: res, err: err}
	}
}
