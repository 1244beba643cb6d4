package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/aalvaropc/patternkit/internal/demo"
	"github.com/aalvaropc/patternkit/internal/demo/form"
	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/ports"
)

// --- fakes ---

type fakeDemo struct {
	ref   domain.DemoRef
	lines []string
	err   error
}

func (d fakeDemo) Ref() domain.DemoRef { return d.ref }

func (d fakeDemo) Run(_ context.Context, out io.Writer) error {
	for _, l := range d.lines {
		fmt.Fprintln(out, l)
	}
	return d.err
}

type fakeStore struct {
	saved []domain.Transcript
	err   error
}

func (s *fakeStore) SaveTranscript(t domain.Transcript) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, t)
	return "runs/" + t.ID + ".json", nil
}

type fakeFixtures struct {
	rows    []domain.ScheduleRow
	form    domain.FormValues
	updates []domain.ScheduleUpdate
	err     error
}

func (f fakeFixtures) LoadSchedules(string) ([]domain.ScheduleRow, error) { return f.rows, f.err }
func (f fakeFixtures) LoadForm(string) (domain.FormValues, error)         { return f.form, f.err }
func (f fakeFixtures) LoadUpdates(string) ([]domain.ScheduleUpdate, error) {
	return f.updates, f.err
}

var _ ports.FixtureLoader = fakeFixtures{}

func fixedClock() func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

// --- ListDemos ---

func TestListDemos_Filter(t *testing.T) {
	uc := NewListDemos(demo.NewCatalog(domain.DefaultConfig(), nil))

	if got := len(uc.Execute("")); got != 15 {
		t.Fatalf("expected 15 demos, got %d", got)
	}

	chain := uc.Execute("Chain")
	if len(chain) != 4 {
		t.Fatalf("expected 4 chain demos, got %d", len(chain))
	}
	for _, r := range chain {
		if r.Pattern != "chain-of-responsibility" {
			t.Fatalf("unexpected pattern %s", r.Pattern)
		}
	}

	if got := uc.Execute("nothing"); len(got) != 0 {
		t.Fatalf("expected no demos, got %v", got)
	}
}

// --- RunDemo ---

func TestRunDemo_CapturesAndSaves(t *testing.T) {
	d := fakeDemo{ref: domain.DemoRef{Name: "x.demo", Pattern: "x"}, lines: []string{"one", "two"}}
	store := &fakeStore{}
	uc := NewRunDemo(demo.NewCatalogOf(d),
		WithTranscriptStore(store),
		WithRunIDs(func() string { return "id-1" }),
		WithRunClock(fixedClock()),
	)

	var out bytes.Buffer
	res, err := uc.Execute(context.Background(), "x.demo", &out, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "one\ntwo\n" {
		t.Fatalf("output should be streamed, got %q", out.String())
	}
	if !reflect.DeepEqual(res.Transcript.Lines, []string{"one", "two"}) {
		t.Fatalf("unexpected lines %v", res.Transcript.Lines)
	}
	if res.Transcript.ID != "id-1" || res.SavedAs != "runs/id-1.json" {
		t.Fatalf("unexpected outcome %+v", res)
	}
	if len(store.saved) != 1 {
		t.Fatalf("expected one saved transcript")
	}
}

func TestRunDemo_NoSaveByDefault(t *testing.T) {
	d := fakeDemo{ref: domain.DemoRef{Name: "x.demo"}, lines: []string{"one"}}
	store := &fakeStore{}
	uc := NewRunDemo(demo.NewCatalogOf(d), WithTranscriptStore(store))

	res, err := uc.Execute(context.Background(), "x.demo", nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.SavedAs != "" || len(store.saved) != 0 {
		t.Fatalf("nothing should be saved")
	}
}

func TestRunDemo_DemoFailure(t *testing.T) {
	boom := errors.New("boom")
	d := fakeDemo{ref: domain.DemoRef{Name: "x.demo"}, lines: []string{"partial"}, err: boom}
	store := &fakeStore{}
	uc := NewRunDemo(demo.NewCatalogOf(d), WithTranscriptStore(store))

	res, err := uc.Execute(context.Background(), "x.demo", nil, true)
	if !errors.Is(err, boom) || !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution error wrapping boom, got %v", err)
	}
	if res.Transcript.Error != "boom" || len(store.saved) != 1 {
		t.Fatalf("failed runs should still be saved, got %+v", res)
	}
}

func TestRunDemo_Errors(t *testing.T) {
	d := fakeDemo{ref: domain.DemoRef{Name: "x.demo"}}

	uc := NewRunDemo(demo.NewCatalogOf(d))
	if _, err := uc.Execute(context.Background(), "missing", nil, false); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), "x.demo", nil, true); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config without store, got %v", err)
	}

	storeErr := errors.New("disk full")
	uc = NewRunDemo(demo.NewCatalogOf(d), WithTranscriptStore(&fakeStore{err: storeErr}))
	if _, err := uc.Execute(context.Background(), "x.demo", nil, true); !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}
}

// --- ValidateSchedules ---

func TestValidateSchedules_RejectedRowsNeverAppended(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := func(n int) time.Time { return t0.Add(time.Duration(n) * time.Hour) }

	rows := []domain.ScheduleRow{
		{VesselCode: "A", ETA: h(0), ETB: h(1), ETD: h(2)},
		{VesselCode: "B", ETA: h(10), ETB: h(9), ETD: h(12)},
		{VesselCode: "C", ETA: h(20), ETB: h(21), ETD: h(22)},
	}
	uc := NewValidateSchedules(fakeFixtures{rows: rows}, nil)

	rep, err := uc.Execute("schedules.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Accepted) != 2 || rep.Accepted[1].VesselCode != "C" {
		t.Fatalf("unexpected accepted rows %v", rep.Accepted)
	}
	if len(rep.Rejected) != 1 || rep.Rejected[0].Index != 1 {
		t.Fatalf("unexpected rejections %+v", rep.Rejected)
	}
	if rep.Accepted[1].TravelHours == nil || *rep.Accepted[1].TravelHours != 20 {
		t.Fatalf("travel time should be measured from the last accepted row")
	}
}

func TestValidateSchedules_LoaderError(t *testing.T) {
	wantErr := errors.New("nope")
	uc := NewValidateSchedules(fakeFixtures{err: wantErr}, nil)
	if _, err := uc.Execute("x"); !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}
}

// --- ValidateForm ---

func TestValidateForm(t *testing.T) {
	uc := NewValidateForm(fakeFixtures{form: domain.FormValues{Name: "Ada", Age: "99", Email: "a@b.co"}}, nil)

	rep, err := uc.ExecuteFile("form.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Valid || rep.Errors[domain.FieldAge] != form.MsgAgeTooHigh {
		t.Fatalf("unexpected report %+v", rep)
	}

	sink := form.MapSink{}
	if !uc.Execute(form.StaticSource{Name: "Ada", Age: "30", Email: "a@b.co"}, sink) {
		t.Fatalf("expected valid form, got %v", sink)
	}
}

// --- ApplyUpdates ---

func TestApplyUpdates(t *testing.T) {
	list := []domain.ScheduleUpdate{
		domain.VesselCodeUpdate{OldVesselCode: "A", NewVesselCode: "B"},
		domain.DirectionUpdate{OldDirection: "North", NewDirection: "Up"},
		domain.VesselCodeUpdate{OldVesselCode: "B", NewVesselCode: ""},
	}
	uc := NewApplyUpdates(fakeFixtures{updates: list})

	var out bytes.Buffer
	rep, err := uc.Execute("updates.yaml", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Count != 3 || len(rep.Invalid) != 2 {
		t.Fatalf("unexpected report %+v", rep)
	}
	if rep.Invalid[0].Index != 1 || rep.Invalid[0].Field != "direction" || rep.Invalid[0].Message != "Invalid direction" {
		t.Fatalf("unexpected first issue %+v", rep.Invalid[0])
	}
	if !bytes.Contains(out.Bytes(), []byte("Vessel Code updated from A to B")) {
		t.Fatalf("expected log output, got:\n%s", out.String())
	}
}

// --- BrowseTranscripts ---

type fakeReader struct {
	entries []domain.TranscriptEntry
	byID    map[string]domain.Transcript
}

func (r fakeReader) Index() ([]domain.TranscriptEntry, error) { return r.entries, nil }

func (r fakeReader) Load(id string) (domain.Transcript, error) {
	t, ok := r.byID[id]
	if !ok {
		return domain.Transcript{}, &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return t, nil
}

var _ ports.TranscriptReader = fakeReader{}

func TestBrowseTranscripts_ListNewestFirstAndFilter(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := NewBrowseTranscripts(fakeReader{entries: []domain.TranscriptEntry{
		{ID: "a", Demo: "chain.form", StartedAt: t0},
		{ID: "b", Demo: "visitor.shape", StartedAt: t0.Add(time.Minute)},
		{ID: "c", Demo: "chain.form", StartedAt: t0.Add(2 * time.Minute)},
	}})

	all, err := uc.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var ids []string
	for _, e := range all {
		ids = append(ids, e.ID)
	}
	if !reflect.DeepEqual(ids, []string{"c", "b", "a"}) {
		t.Fatalf("expected newest first, got %v", ids)
	}

	forms, _ := uc.List("FORM")
	if len(forms) != 2 || forms[0].ID != "c" {
		t.Fatalf("unexpected filtered list %+v", forms)
	}
}

func TestBrowseTranscripts_Show(t *testing.T) {
	uc := NewBrowseTranscripts(fakeReader{byID: map[string]domain.Transcript{
		"x": {ID: "x", Demo: "chain.form", Lines: []string{"ok"}},
	}})

	got, err := uc.Show("x")
	if err != nil || got.Demo != "chain.form" {
		t.Fatalf("Show(x) = %+v, %v", got, err)
	}
	if _, err := uc.Show("missing"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if _, err := uc.Show("  "); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
