package schedule

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/command"
)

var (
	ErrRowNotFound     = errors.New("schedule row not found")
	ErrDuplicateVessel = errors.New("vessel code already scheduled")
	ErrEmptySchedule   = errors.New("schedule is empty")
)

const day = 24 * time.Hour

// Manager is the receiver of the schedule commands. It owns the rows and the
// undo/redo history.
type Manager struct {
	rows    []domain.ScheduleRow
	history *command.History
	codes   func() string
	ports   []string
	log     *slog.Logger
}

type ManagerOption func(*Manager)

// WithVesselCodes overrides vessel code generation (useful for tests).
func WithVesselCodes(gen func() string) ManagerOption {
	return func(m *Manager) { m.codes = gen }
}

func WithPorts(ports []string) ManagerOption {
	return func(m *Manager) {
		if len(ports) > 0 {
			m.ports = ports
		}
	}
}

func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

func NewManager(seed []domain.ScheduleRow, opts ...ManagerOption) *Manager {
	m := &Manager{
		rows:  append([]domain.ScheduleRow(nil), seed...),
		codes: RandomVesselCode,
		ports: domain.DefaultConfig().Schedule.Ports,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.history = command.NewHistory(command.WithLogger(m.log))
	return m
}

// RandomVesselCode returns a code like "V3F9A1C".
func RandomVesselCode() string {
	return "V" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
}

// SequentialVesselCodes returns a generator yielding prefix+start, prefix+start+1, ...
func SequentialVesselCodes(prefix string, start int) func() string {
	n := start
	return func() string {
		code := fmt.Sprintf("%s%03d", prefix, n)
		n++
		return code
	}
}

// SeedRows builds n consecutive daily port calls starting at start.
func SeedRows(start time.Time, n int, ports []string, codes func() string) []domain.ScheduleRow {
	if len(ports) == 0 {
		ports = domain.DefaultConfig().Schedule.Ports
	}
	rows := make([]domain.ScheduleRow, 0, n)
	for i := 0; i < n; i++ {
		eta := start.Add(time.Duration(i) * day)
		rows = append(rows, domain.ScheduleRow{
			VesselCode: codes(),
			ETA:        eta,
			ETB:        eta.Add(2 * time.Hour),
			ETD:        eta.Add(4 * time.Hour),
			Port:       ports[i%len(ports)],
		})
	}
	return rows
}

// Rows returns a copy of the current schedule.
func (m *Manager) Rows() []domain.ScheduleRow {
	out := make([]domain.ScheduleRow, len(m.rows))
	copy(out, m.rows)
	return out
}

func (m *Manager) LastRow() (domain.ScheduleRow, bool) {
	if len(m.rows) == 0 {
		return domain.ScheduleRow{}, false
	}
	return m.rows[len(m.rows)-1], true
}

// Find returns the row with the given vessel code.
func (m *Manager) Find(code string) (domain.ScheduleRow, bool) {
	i := m.index(code)
	if i < 0 {
		return domain.ScheduleRow{}, false
	}
	return m.rows[i], true
}

// Execute runs cmd through the history. Redo is cleared.
func (m *Manager) Execute(cmd command.Command) error {
	_, err := m.history.Execute(cmd)
	return err
}

func (m *Manager) Undo() (bool, error) { return m.history.Undo() }
func (m *Manager) Redo() (bool, error) { return m.history.Redo() }

// History lists undoable commands, oldest first.
func (m *Manager) History() []command.Entry { return m.history.Entries() }

func (m *Manager) index(code string) int {
	for i, r := range m.rows {
		if r.VesselCode == code {
			return i
		}
	}
	return -1
}

func (m *Manager) insertRow(at int, row domain.ScheduleRow) error {
	if m.index(row.VesselCode) >= 0 {
		return fmt.Errorf("%s: %w", row.VesselCode, ErrDuplicateVessel)
	}
	if at < 0 || at > len(m.rows) {
		at = len(m.rows)
	}
	m.rows = append(m.rows, domain.ScheduleRow{})
	copy(m.rows[at+1:], m.rows[at:])
	m.rows[at] = row
	return nil
}

func (m *Manager) removeRow(code string) error {
	i := m.index(code)
	if i < 0 {
		return fmt.Errorf("%s: %w", code, ErrRowNotFound)
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return nil
}

func (m *Manager) replaceRow(code string, row domain.ScheduleRow) error {
	i := m.index(code)
	if i < 0 {
		return fmt.Errorf("%s: %w", code, ErrRowNotFound)
	}
	if row.VesselCode != code && m.index(row.VesselCode) >= 0 {
		return fmt.Errorf("%s: %w", row.VesselCode, ErrDuplicateVessel)
	}
	m.rows[i] = row
	return nil
}

// AddCommand appends a row one day after the last row.
type AddCommand struct {
	m   *Manager
	row domain.ScheduleRow
}

// NewAddCommand builds the new row now, so undo and redo always deal with
// the same row.
func NewAddCommand(m *Manager) (*AddCommand, error) {
	last, ok := m.LastRow()
	if !ok {
		return nil, ErrEmptySchedule
	}
	row := last.Shift(day)
	row.VesselCode = m.codes()
	row.Port = m.ports[len(m.rows)%len(m.ports)]
	return &AddCommand{m: m, row: row}, nil
}

func (c *AddCommand) Row() domain.ScheduleRow { return c.row }
func (c *AddCommand) Execute() error          { return c.m.insertRow(len(c.m.rows), c.row) }
func (c *AddCommand) Undo() error             { return c.m.removeRow(c.row.VesselCode) }
func (c *AddCommand) Describe() string        { return "add " + c.row.VesselCode }

// EditCommand replaces one row and remembers the original.
type EditCommand struct {
	m      *Manager
	oldRow domain.ScheduleRow
	newRow domain.ScheduleRow
}

func NewEditCommand(m *Manager, code string, updated domain.ScheduleRow) (*EditCommand, error) {
	old, ok := m.Find(code)
	if !ok {
		return nil, fmt.Errorf("%s: %w", code, ErrRowNotFound)
	}
	return &EditCommand{m: m, oldRow: old, newRow: updated}, nil
}

func (c *EditCommand) Execute() error   { return c.m.replaceRow(c.oldRow.VesselCode, c.newRow) }
func (c *EditCommand) Undo() error      { return c.m.replaceRow(c.newRow.VesselCode, c.oldRow) }
func (c *EditCommand) Describe() string { return "edit " + c.oldRow.VesselCode }

// RemoveCommand deletes a row; undo puts it back at its original position.
type RemoveCommand struct {
	m     *Manager
	row   domain.ScheduleRow
	index int
}

func NewRemoveCommand(m *Manager, code string) (*RemoveCommand, error) {
	i := m.index(code)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w", code, ErrRowNotFound)
	}
	return &RemoveCommand{m: m, row: m.rows[i], index: i}, nil
}

func (c *RemoveCommand) Execute() error   { return c.m.removeRow(c.row.VesselCode) }
func (c *RemoveCommand) Undo() error      { return c.m.insertRow(c.index, c.row) }
func (c *RemoveCommand) Describe() string { return "remove " + c.row.VesselCode }

var (
	_ command.Command = (*AddCommand)(nil)
	_ command.Command = (*EditCommand)(nil)
	_ command.Command = (*RemoveCommand)(nil)
)

func (m *Manager) CanUndo() bool { return m.history.CanUndo() }
func (m *Manager) CanRedo() bool { return m.history.CanRedo() }
