// Package form validates the registration form with a chain of field
// validators. A failing validator writes its field's error slot and stops the
// chain; a passing one clears its slot and forwards.
package form

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/chain"
	"github.com/aalvaropc/patternkit/internal/ports"
)

const (
	MsgNameRequired  = "Name is required"
	MsgNameTooLong   = "Name must be under 100 characters"
	MsgNameSpecial   = "Name must not contain special characters"
	MsgAgeRequired   = "Age is required"
	MsgAgeNotNumber  = "Age must be a number"
	MsgAgeTooHigh    = "Age must be less than 80"
	MsgEmailRequired = "Email is required"
	MsgEmailInvalid  = "Invalid email format"
	maxNameLength    = 100
	maxAge           = 80
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Submission is what travels down the chain.
type Submission struct {
	Values domain.FormValues
	Errors ports.ErrorSink
}

// Validator reports false and Stop on the first failing field.
type Validator = chain.Handler[Submission, bool]

// fieldCheck returns the failure message for one field, or "".
type fieldCheck func(domain.FormValues) string

func field(f domain.FormField, check fieldCheck) Validator {
	return chain.HandlerFunc[Submission, bool](func(s Submission) (bool, chain.Step) {
		if msg := check(s.Values); msg != "" {
			s.Errors.SetFieldError(f, msg)
			return false, chain.Stop
		}
		s.Errors.ClearFieldError(f)
		return true, chain.Forward
	})
}

func NameValidator() Validator {
	return field(domain.FieldName, func(v domain.FormValues) string {
		switch {
		case v.Name == "":
			return MsgNameRequired
		case utf8.RuneCountInString(v.Name) > maxNameLength:
			return MsgNameTooLong
		case !namePattern.MatchString(v.Name):
			return MsgNameSpecial
		}
		return ""
	})
}

func AgeValidator() Validator {
	return field(domain.FieldAge, func(v domain.FormValues) string {
		if v.Age == "" {
			return MsgAgeRequired
		}
		age, ok := leadingInt(v.Age)
		if !ok {
			return MsgAgeNotNumber
		}
		if age >= maxAge {
			return MsgAgeTooHigh
		}
		return ""
	})
}

// leadingInt reads an optionally signed run of digits at the start of s,
// ignoring leading spaces and anything after the digits ("12abc" is 12).
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func EmailValidator() Validator {
	return field(domain.FieldEmail, func(v domain.FormValues) string {
		if v.Email == "" {
			return MsgEmailRequired
		}
		if !emailPattern.MatchString(v.Email) {
			return MsgEmailInvalid
		}
		return ""
	})
}

// NewValidator wires name, age and email in that order. An exhausted chain
// means the form is valid.
func NewValidator(log *slog.Logger) *chain.Chain[Submission, bool] {
	c := chain.New[Submission, bool](
		chain.FirstMatch[bool](),
		chain.WithFallback[Submission](true),
		chain.WithName[Submission, bool]("form.validation"),
		chain.WithLogger[Submission, bool](log),
	)
	c.Add("name", NameValidator()).
		Add("age", AgeValidator()).
		Add("email", EmailValidator())
	return c
}

// Validate runs the form chain over src and reports to sink.
func Validate(src ports.FieldSource, sink ports.ErrorSink, log *slog.Logger) bool {
	return NewValidator(log).Handle(Submission{Values: src.FieldValues(), Errors: sink})
}

// StaticSource serves fixed values.
type StaticSource domain.FormValues

func (s StaticSource) FieldValues() domain.FormValues { return domain.FormValues(s) }

// MapSink keeps one message per field. A cleared slot is absent.
type MapSink map[domain.FormField]string

func (m MapSink) SetFieldError(f domain.FormField, msg string) { m[f] = msg }
func (m MapSink) ClearFieldError(f domain.FormField)           { delete(m, f) }

// Fields lists the fields with an error, sorted.
func (m MapSink) Fields() []domain.FormField {
	out := make([]domain.FormField, 0, len(m))
	for f := range m {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var (
	_ ports.FieldSource = StaticSource{}
	_ ports.ErrorSink   = MapSink{}
)

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "chain.form",
		Pattern: "chain-of-responsibility",
		Summary: "Registration form checked field by field; the first failure fills its error slot",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	submissions := []domain.FormValues{
		{Name: "Ada Lovelace", Age: "36", Email: "ada@example.com"},
		{Name: "", Age: "36", Email: "ada@example.com"},
		{Name: "R2-D2", Age: "33", Email: "r2@example.com"},
		{Name: "Grace Hopper", Age: "85", Email: "grace@example.com"},
		{Name: "Linus", Age: "twenty", Email: "linus@example.com"},
		{Name: "Ken", Age: "40", Email: "ken@example"},
	}
	for _, v := range submissions {
		if err := ctx.Err(); err != nil {
			return err
		}
		sink := MapSink{}
		if Validate(StaticSource(v), sink, d.log) {
			fmt.Fprintf(out, "%q: Form submitted successfully!\n", v.Name)
			continue
		}
		for _, f := range sink.Fields() {
			fmt.Fprintf(out, "%q: %s error: %s\n", v.Name, f, sink[f])
		}
	}
	return nil
}
