package schedule

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/aalvaropc/patternkit/internal/domain"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func hours(h int) time.Time { return t0.Add(time.Duration(h) * time.Hour) }

func row(code string, eta, etb, etd int) domain.ScheduleRow {
	return domain.ScheduleRow{VesselCode: code, ETA: hours(eta), ETB: hours(etb), ETD: hours(etd), Port: "HKG"}
}

func TestBook_Add(t *testing.T) {
	tests := []struct {
		name    string
		rows    []domain.ScheduleRow
		wantMsg string
		wantLen int
	}{
		{
			name:    "first valid row",
			rows:    []domain.ScheduleRow{row("A", 0, 1, 2)},
			wantLen: 1,
		},
		{
			name:    "eta after etb",
			rows:    []domain.ScheduleRow{row("A", 5, 4, 6)},
			wantMsg: MsgTimeOrder,
			wantLen: 0,
		},
		{
			name:    "duplicate vessel code",
			rows:    []domain.ScheduleRow{row("A", 0, 1, 2), row("A", 10, 11, 12)},
			wantMsg: "Vessel code A already exists.",
			wantLen: 1,
		},
		{
			name:    "eta not after last etd",
			rows:    []domain.ScheduleRow{row("A", 0, 1, 4), row("B", 4, 5, 6)},
			wantMsg: MsgAfterLast,
			wantLen: 1,
		},
		{
			name:    "second valid row",
			rows:    []domain.ScheduleRow{row("A", 0, 1, 2), row("B", 24, 25, 26)},
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBook(nil)
			var lastMsg string
			for _, r := range tt.rows {
				_, lastMsg, _ = b.Add(r)
			}
			if lastMsg != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, lastMsg)
			}
			if got := len(b.Rows()); got != tt.wantLen {
				t.Fatalf("expected %d rows, got %d", tt.wantLen, got)
			}
		})
	}
}

func TestBook_TravelTime(t *testing.T) {
	b := NewBook(nil)
	first, _, _ := b.Add(row("A", 0, 1, 2))
	if first.TravelHours != nil {
		t.Fatalf("first row should have no travel time")
	}

	second, _, ok := b.Add(row("B", 30, 31, 32))
	if !ok {
		t.Fatalf("expected second row to be accepted")
	}
	if second.TravelHours == nil || *second.TravelHours != 30 {
		t.Fatalf("expected 30h travel time, got %v", second.TravelHours)
	}
}

func TestBook_ChecksRunInOrder(t *testing.T) {
	// duplicate and out of order: the duplicate check comes first
	b := NewBook(nil)
	b.Add(row("A", 0, 1, 2))
	_, msg, ok := b.Add(row("A", 9, 8, 10))
	if ok || msg != "Vessel code A already exists." {
		t.Fatalf("expected duplicate message, got %q", msg)
	}
}

func newTestManager(n int) *Manager {
	codes := SequentialVesselCodes("T", 1)
	return NewManager(SeedRows(t0, n, []string{"HKG", "SIN"}, codes), WithVesselCodes(codes))
}

func TestManager_AddUndoRedo(t *testing.T) {
	m := newTestManager(2)
	before := m.Rows()

	add, err := NewAddCommand(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Execute(add); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := m.Rows()
	if len(after) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(after))
	}
	added := after[2]
	if added.VesselCode != "T003" {
		t.Fatalf("expected generated code T003, got %s", added.VesselCode)
	}
	if !added.ETA.Equal(before[1].ETA.Add(24 * time.Hour)) {
		t.Fatalf("expected new row one day after last, got %s", added)
	}

	if ok, err := m.Undo(); !ok || err != nil {
		t.Fatalf("undo: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(m.Rows(), before) {
		t.Fatalf("undo should restore the previous rows")
	}

	if ok, err := m.Redo(); !ok || err != nil {
		t.Fatalf("redo: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(m.Rows(), after) {
		t.Fatalf("redo should restore the same added row")
	}
}

func TestManager_EditUndo(t *testing.T) {
	m := newTestManager(2)
	orig := m.Rows()

	updated := orig[0].Shift(time.Hour)
	edit, err := NewEditCommand(m, orig[0].VesselCode, updated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Execute(edit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := m.Rows()[0]; !got.ETA.Equal(updated.ETA) {
		t.Fatalf("expected edited ETA %s, got %s", updated.ETA, got.ETA)
	}

	if _, err := m.Undo(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(m.Rows(), orig) {
		t.Fatalf("undo should restore the original row")
	}
}

func TestManager_RemoveUndoRestoresPosition(t *testing.T) {
	m := newTestManager(3)
	orig := m.Rows()

	rm, err := NewRemoveCommand(m, orig[1].VesselCode)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Execute(rm); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Rows()) != 2 {
		t.Fatalf("expected 2 rows after remove")
	}

	if _, err := m.Undo(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(m.Rows(), orig) {
		t.Fatalf("undo should reinsert at the original index")
	}
}

func TestManager_NewCommandClearsRedo(t *testing.T) {
	m := newTestManager(1)

	add, _ := NewAddCommand(m)
	_ = m.Execute(add)
	_, _ = m.Undo()
	if !m.CanRedo() {
		t.Fatalf("expected redo to be available")
	}

	again, _ := NewAddCommand(m)
	if err := m.Execute(again); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.CanRedo() {
		t.Fatalf("executing a new command should clear redo")
	}
	if ok, _ := m.Redo(); ok {
		t.Fatalf("redo should be a no-op")
	}
}

func TestManager_UndoEmptyIsNoop(t *testing.T) {
	m := newTestManager(1)
	ok, err := m.Undo()
	if ok || err != nil {
		t.Fatalf("expected no-op, got ok=%v err=%v", ok, err)
	}
	if len(m.Rows()) != 1 {
		t.Fatalf("rows should be untouched")
	}
}

func TestManager_Errors(t *testing.T) {
	empty := NewManager(nil)
	if _, err := NewAddCommand(empty); !errors.Is(err, ErrEmptySchedule) {
		t.Fatalf("expected ErrEmptySchedule, got %v", err)
	}

	m := newTestManager(1)
	if _, err := NewEditCommand(m, "missing", domain.ScheduleRow{}); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
	if _, err := NewRemoveCommand(m, "missing"); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}

func TestRandomVesselCode(t *testing.T) {
	code := RandomVesselCode()
	if len(code) != 7 || !strings.HasPrefix(code, "V") {
		t.Fatalf("unexpected code %q", code)
	}
	if code == RandomVesselCode() {
		t.Fatalf("expected distinct codes")
	}
}

func TestValidationDemo_Run(t *testing.T) {
	var out bytes.Buffer
	if err := NewValidationDemo(nil).Run(context.Background(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := out.String()
	for _, want := range []string{
		"rejected V002: Vessel code V002 already exists.",
		"rejected V003: " + MsgTimeOrder,
		"rejected V004: " + MsgAfterLast,
		"3 rows in schedule",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in output:\n%s", want, s)
		}
	}
}

func TestCommandDemo_Run(t *testing.T) {
	var out bytes.Buffer
	if err := NewCommandDemo(nil, nil).Run(context.Background(), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := out.String()
	for _, want := range []string{"== initial", "== add V004", "== edit V001", "== remove V001", "history: 2 commands"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in output:\n%s", want, s)
		}
	}
}
