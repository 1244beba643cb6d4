package domain

import (
	"fmt"
	"time"
)

// ScheduleRow is one port call of a vessel.
type ScheduleRow struct {
	VesselCode string
	ETA        time.Time
	ETB        time.Time
	ETD        time.Time
	Port       string

	// TravelHours is filled by the validation chain when a previous row exists.
	TravelHours *float64
}

// InOrder reports whether ETA <= ETB <= ETD.
func (r ScheduleRow) InOrder() bool {
	return !r.ETA.After(r.ETB) && !r.ETB.After(r.ETD)
}

// Shift returns a copy with all three timestamps moved by d.
func (r ScheduleRow) Shift(d time.Duration) ScheduleRow {
	out := r
	out.ETA = r.ETA.Add(d)
	out.ETB = r.ETB.Add(d)
	out.ETD = r.ETD.Add(d)
	out.TravelHours = nil
	return out
}

func (r ScheduleRow) String() string {
	s := fmt.Sprintf("%s @ %s ETA=%s ETB=%s ETD=%s",
		r.VesselCode, r.Port,
		r.ETA.Format(time.RFC3339), r.ETB.Format(time.RFC3339), r.ETD.Format(time.RFC3339))
	if r.TravelHours != nil {
		s += fmt.Sprintf(" travel=%.1fh", *r.TravelHours)
	}
	return s
}
