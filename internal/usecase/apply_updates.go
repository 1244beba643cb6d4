package usecase

import (
	"errors"
	"io"

	"github.com/aalvaropc/patternkit/internal/demo/updates"
	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/ports"
)

// UpdateIssue is one update the validation visitor rejected.
type UpdateIssue struct {
	Index   int
	Field   string
	Message string
}

type UpdatesReport struct {
	Count   int
	Invalid []UpdateIssue
}

type ApplyUpdates struct {
	fixtures ports.FixtureLoader
}

func NewApplyUpdates(f ports.FixtureLoader) *ApplyUpdates {
	return &ApplyUpdates{fixtures: f}
}

// Execute logs every update of the fixture at path to out, then validates
// each of them.
func (uc *ApplyUpdates) Execute(path string, out io.Writer) (UpdatesReport, error) {
	list, err := uc.fixtures.LoadUpdates(path)
	if err != nil {
		return UpdatesReport{}, err
	}
	if out == nil {
		out = io.Discard
	}

	if err := updates.Log(list, out); err != nil {
		return UpdatesReport{}, err
	}

	rep := UpdatesReport{Count: len(list), Invalid: []UpdateIssue{}}
	for i, err := range updates.ValidateAll(list, out) {
		if err == nil {
			continue
		}
		issue := UpdateIssue{Index: i, Message: err.Error()}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			issue.Field, issue.Message = ve.Field, ve.Message
		}
		rep.Invalid = append(rep.Invalid, issue)
	}
	return rep, nil
}
