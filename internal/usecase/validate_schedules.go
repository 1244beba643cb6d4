package usecase

import (
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/demo/schedule"
	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/ports"
)

// RejectedRow is a candidate the validation chain refused.
type RejectedRow struct {
	Index  int
	Row    domain.ScheduleRow
	Reason string
}

type ScheduleReport struct {
	Accepted []domain.ScheduleRow
	Rejected []RejectedRow
}

type ValidateSchedules struct {
	fixtures ports.FixtureLoader
	log      *slog.Logger
}

func NewValidateSchedules(f ports.FixtureLoader, log *slog.Logger) *ValidateSchedules {
	return &ValidateSchedules{fixtures: f, log: log}
}

// Execute feeds the rows of the fixture at path through the schedule
// validation chain one at a time. Rejected rows never reach the schedule.
func (uc *ValidateSchedules) Execute(path string) (ScheduleReport, error) {
	rows, err := uc.fixtures.LoadSchedules(path)
	if err != nil {
		return ScheduleReport{}, err
	}
	return uc.Check(rows), nil
}

// Check validates rows already in memory.
func (uc *ValidateSchedules) Check(rows []domain.ScheduleRow) ScheduleReport {
	book := schedule.NewBook(uc.log)
	rep := ScheduleReport{Rejected: []RejectedRow{}}
	for i, r := range rows {
		if _, msg, ok := book.Add(r); !ok {
			rep.Rejected = append(rep.Rejected, RejectedRow{Index: i, Row: r, Reason: msg})
		}
	}
	rep.Accepted = book.Rows()
	return rep
}
