// Package yamlfixture reads schedule, form and update fixtures from YAML
// files.
package yamlfixture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/ports"
)

// Accepted timestamp layouts, tried in order.
var layouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04"}

type Loader struct {
	fixturesDir string
}

type Option func(*Loader)

// WithFixturesDir sets the directory used for relative paths that do not
// exist as given.
func WithFixturesDir(dir string) Option {
	return func(l *Loader) { l.fixturesDir = dir }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.FixtureLoader = (*Loader)(nil)

func (l *Loader) LoadSchedules(path string) ([]domain.ScheduleRow, error) {
	var doc yamlSchedules
	path, err := l.read(path, "yamlfixture.schedules", &doc)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ScheduleRow, 0, len(doc.Schedules))
	for i, s := range doc.Schedules {
		prefix := fmt.Sprintf("schedules[%d]", i)
		if strings.TrimSpace(s.VesselCode) == "" {
			return nil, invalidField(path, prefix+".vessel_code", "vessel code is required")
		}
		row := domain.ScheduleRow{VesselCode: s.VesselCode, Port: s.Port}
		for _, f := range []struct {
			name string
			raw  string
			dst  *time.Time
		}{
			{"eta", s.ETA, &row.ETA},
			{"etb", s.ETB, &row.ETB},
			{"etd", s.ETD, &row.ETD},
		} {
			t, err := parseTime(f.raw)
			if err != nil {
				return nil, invalidField(path, prefix+"."+f.name, err.Error())
			}
			*f.dst = t
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (l *Loader) LoadForm(path string) (domain.FormValues, error) {
	var doc yamlForm
	if _, err := l.read(path, "yamlfixture.form", &doc); err != nil {
		return domain.FormValues{}, err
	}
	return domain.FormValues{
		Name:  doc.Form.Name,
		Age:   doc.Form.Age,
		Email: doc.Form.Email,
	}, nil
}

func (l *Loader) LoadUpdates(path string) ([]domain.ScheduleUpdate, error) {
	var doc yamlUpdates
	path, err := l.read(path, "yamlfixture.updates", &doc)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ScheduleUpdate, 0, len(doc.Updates))
	for i, u := range doc.Updates {
		prefix := fmt.Sprintf("updates[%d]", i)
		switch strings.ToLower(strings.TrimSpace(u.Kind)) {
		case "vessel_code":
			out = append(out, domain.VesselCodeUpdate{OldVesselCode: u.Old, NewVesselCode: u.New})
		case "direction":
			out = append(out, domain.DirectionUpdate{OldDirection: u.Old, NewDirection: u.New})
		case "estimate_time":
			var et domain.EstimateTimeUpdate
			for _, f := range []struct {
				name string
				raw  string
				dst  *time.Time
			}{
				{"old_eta", u.OldETA, &et.OldETA}, {"new_eta", u.NewETA, &et.NewETA},
				{"old_etb", u.OldETB, &et.OldETB}, {"new_etb", u.NewETB, &et.NewETB},
				{"old_etd", u.OldETD, &et.OldETD}, {"new_etd", u.NewETD, &et.NewETD},
			} {
				t, err := parseTime(f.raw)
				if err != nil {
					return nil, invalidField(path, prefix+"."+f.name, err.Error())
				}
				*f.dst = t
			}
			out = append(out, et)
		default:
			return nil, invalidField(path, prefix+".kind", fmt.Sprintf("unsupported kind %q", u.Kind))
		}
	}
	return out, nil
}

// read resolves path, decodes it into v and returns the resolved path.
func (l *Loader) read(path, op string, v any) (string, error) {
	path = l.resolve(path)
	b, err := os.ReadFile(path)
	if err != nil {
		return path, &domain.OpError{
			Op:   op,
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	if err := yaml.Unmarshal(b, v); err != nil {
		return path, &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return path, nil
}

func (l *Loader) resolve(path string) string {
	if l.fixturesDir == "" || filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(l.fixturesDir, path)
}

func parseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("timestamp is required")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlfixture.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
