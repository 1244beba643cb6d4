package schedule

import (
	"fmt"
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/chain"
)

const (
	MsgTimeOrder = "ETA must be less than or equal to ETB and ETB must be less than or equal to ETD."
	MsgAfterLast = "ETA of the new row must be greater than ETD of the last schedule."
)

// Candidate is what the validation chain inspects: the new row and the rows
// already accepted. Row is a pointer because the travel time step fills it in.
type Candidate struct {
	Row      *domain.ScheduleRow
	Accepted []domain.ScheduleRow
}

// Check is one validation link. It returns a failure message and Stop, or
// "" and Forward.
type Check = chain.Handler[Candidate, string]

func UniqueVesselCode() Check {
	return chain.HandlerFunc[Candidate, string](func(c Candidate) (string, chain.Step) {
		for _, s := range c.Accepted {
			if s.VesselCode == c.Row.VesselCode {
				return fmt.Sprintf("Vessel code %s already exists.", c.Row.VesselCode), chain.Stop
			}
		}
		return "", chain.Forward
	})
}

func TimeOrder() Check {
	return chain.HandlerFunc[Candidate, string](func(c Candidate) (string, chain.Step) {
		if !c.Row.InOrder() {
			return MsgTimeOrder, chain.Stop
		}
		return "", chain.Forward
	})
}

// AfterLast requires the new ETA to be strictly after the last accepted ETD.
func AfterLast() Check {
	return chain.HandlerFunc[Candidate, string](func(c Candidate) (string, chain.Step) {
		if len(c.Accepted) == 0 {
			return "", chain.Forward
		}
		last := c.Accepted[len(c.Accepted)-1]
		if !c.Row.ETA.After(last.ETD) {
			return MsgAfterLast, chain.Stop
		}
		return "", chain.Forward
	})
}

// TravelTime never fails; it records the hours between the previous ETA and
// the new one.
func TravelTime() Check {
	return chain.HandlerFunc[Candidate, string](func(c Candidate) (string, chain.Step) {
		if len(c.Accepted) == 0 {
			return "", chain.Forward
		}
		last := c.Accepted[len(c.Accepted)-1]
		h := c.Row.ETA.Sub(last.ETA).Hours()
		c.Row.TravelHours = &h
		return "", chain.Forward
	})
}

// NewValidator wires the four checks in their canonical order. The result is
// the first failure message, or "" when the row is acceptable.
func NewValidator(log *slog.Logger) *chain.Chain[Candidate, string] {
	c := chain.New[Candidate, string](
		chain.FirstMatch[string](),
		chain.WithName[Candidate, string]("schedule.validation"),
		chain.WithLogger[Candidate, string](log),
	)
	c.Add("unique-vessel-code", UniqueVesselCode()).
		Add("time-order", TimeOrder()).
		Add("after-last", AfterLast()).
		Add("travel-time", TravelTime())
	return c
}

// Book keeps the accepted rows and only appends rows that pass validation.
type Book struct {
	rows      []domain.ScheduleRow
	validator *chain.Chain[Candidate, string]
}

func NewBook(log *slog.Logger) *Book {
	return &Book{validator: NewValidator(log)}
}

// Add validates row and appends it on success. It returns the failure
// message and false otherwise.
func (b *Book) Add(row domain.ScheduleRow) (domain.ScheduleRow, string, bool) {
	msg := b.validator.Handle(Candidate{Row: &row, Accepted: b.rows})
	if msg != "" {
		return row, msg, false
	}
	b.rows = append(b.rows, row)
	return row, "", true
}

// Rows returns a copy of the accepted rows.
func (b *Book) Rows() []domain.ScheduleRow {
	out := make([]domain.ScheduleRow, len(b.rows))
	copy(out, b.rows)
	return out
}
