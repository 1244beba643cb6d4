package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/aalvaropc/patternkit/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

// pickFormat prefers the --format flag and falls back to the configured
// output format.
func pickFormat(flag string, changed bool, cfg domain.Config) (string, error) {
	f := strings.ToLower(strings.TrimSpace(flag))
	if !changed || f == "" {
		f = cfg.Output.Format
	}
	switch f {
	case formatPretty, formatJSON:
		return f, nil
	case "":
		return formatPretty, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json)", f)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type demoView struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
	Summary string `json:"summary"`
}

type transcriptView struct {
	ID         string    `json:"id"`
	Demo       string    `json:"demo"`
	Pattern    string    `json:"pattern"`
	StartedAt  time.Time `json:"started_at"`
	EndedAt    time.Time `json:"ended_at"`
	DurationMS int64     `json:"duration_ms"`
	Lines      []string  `json:"lines"`
	Error      string    `json:"error,omitempty"`
	SavedAs    string    `json:"saved_as,omitempty"`
}

func toTranscriptView(t domain.Transcript, savedAs string) transcriptView {
	lines := t.Lines
	if lines == nil {
		lines = []string{}
	}
	return transcriptView{
		ID:         t.ID,
		Demo:       t.Demo,
		Pattern:    t.Pattern,
		StartedAt:  t.StartedAt,
		EndedAt:    t.EndedAt,
		DurationMS: t.EndedAt.Sub(t.StartedAt).Milliseconds(),
		Lines:      lines,
		Error:      t.Error,
		SavedAs:    savedAs,
	}
}

type rowView struct {
	VesselCode  string   `json:"vessel_code"`
	Port        string   `json:"port"`
	ETA         string   `json:"eta"`
	ETB         string   `json:"etb"`
	ETD         string   `json:"etd"`
	TravelHours *float64 `json:"travel_hours,omitempty"`
}

func toRowView(r domain.ScheduleRow) rowView {
	return rowView{
		VesselCode:  r.VesselCode,
		Port:        r.Port,
		ETA:         r.ETA.Format(time.RFC3339),
		ETB:         r.ETB.Format(time.RFC3339),
		ETD:         r.ETD.Format(time.RFC3339),
		TravelHours: r.TravelHours,
	}
}

type rejectionView struct {
	Index  int     `json:"index"`
	Row    rowView `json:"row"`
	Reason string  `json:"reason"`
}
