package usecase

import (
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/demo/form"
	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/ports"
)

type FormReport struct {
	Valid  bool
	Errors map[domain.FormField]string
}

type ValidateForm struct {
	fixtures ports.FixtureLoader
	log      *slog.Logger
}

func NewValidateForm(f ports.FixtureLoader, log *slog.Logger) *ValidateForm {
	return &ValidateForm{fixtures: f, log: log}
}

// Execute runs the form chain over src and writes field errors to sink.
func (uc *ValidateForm) Execute(src ports.FieldSource, sink ports.ErrorSink) bool {
	return form.Validate(src, sink, uc.log)
}

// ExecuteFile validates the form fixture at path.
func (uc *ValidateForm) ExecuteFile(path string) (FormReport, error) {
	values, err := uc.fixtures.LoadForm(path)
	if err != nil {
		return FormReport{}, err
	}
	sink := form.MapSink{}
	ok := uc.Execute(form.StaticSource(values), sink)
	return FormReport{Valid: ok, Errors: map[domain.FormField]string(sink)}, nil
}
