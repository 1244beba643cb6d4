package ports

import "github.com/aalvaropc/patternkit/internal/domain"

// FixtureLoader reads demo inputs from a source (e.g., YAML files).
type FixtureLoader interface {
	LoadSchedules(path string) ([]domain.ScheduleRow, error)
	LoadForm(path string) (domain.FormValues, error)
	LoadUpdates(path string) ([]domain.ScheduleUpdate, error)
}
