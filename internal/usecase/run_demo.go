package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/ports"
)

// RunOutcome is the result of RunDemo.Execute. SavedAs is empty unless the
// transcript was persisted.
type RunOutcome struct {
	Transcript domain.Transcript
	SavedAs    string
}

type RunDemo struct {
	catalog ports.DemoCatalog
	store   ports.TranscriptStore
	newID   func() string
	now     func() time.Time
}

type RunDemoOption func(*RunDemo)

func WithTranscriptStore(s ports.TranscriptStore) RunDemoOption {
	return func(uc *RunDemo) { uc.store = s }
}

func WithRunIDs(gen func() string) RunDemoOption {
	return func(uc *RunDemo) {
		if gen != nil {
			uc.newID = gen
		}
	}
}

func WithRunClock(now func() time.Time) RunDemoOption {
	return func(uc *RunDemo) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewRunDemo(c ports.DemoCatalog, opts ...RunDemoOption) *RunDemo {
	uc := &RunDemo{
		catalog: c,
		newID:   uuid.NewString,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the named demo, streaming its output to out (may be nil) and
// capturing it line by line. When save is set the transcript is persisted even
// if the demo failed.
func (uc *RunDemo) Execute(ctx context.Context, name string, out io.Writer, save bool) (RunOutcome, error) {
	d, err := uc.catalog.Lookup(name)
	if err != nil {
		return RunOutcome{}, err
	}
	if save && uc.store == nil {
		return RunOutcome{}, &domain.OpError{
			Op:   "run_demo.save",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("no transcript store configured"),
		}
	}

	ref := d.Ref()
	var buf bytes.Buffer
	sink := io.Writer(&buf)
	if out != nil {
		sink = io.MultiWriter(out, &buf)
	}

	t := domain.Transcript{
		ID:        uc.newID(),
		Demo:      ref.Name,
		Pattern:   ref.Pattern,
		StartedAt: uc.now().UTC(),
	}
	runErr := d.Run(ctx, sink)
	t.EndedAt = uc.now().UTC()
	t.Lines = splitLines(buf.String())
	if runErr != nil {
		t.Error = runErr.Error()
	}

	res := RunOutcome{Transcript: t}
	if save {
		saved, err := uc.store.SaveTranscript(t)
		if err != nil {
			return res, err
		}
		res.SavedAs = saved
	}

	if runErr != nil {
		return res, &domain.OpError{Op: "run_demo", Kind: domain.KindExecution, Err: runErr}
	}
	return res, nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
