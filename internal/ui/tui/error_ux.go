package tui

import (
	"errors"
	"strings"

	"github.com/aalvaropc/patternkit/internal/domain"
)

// userMessage turns an error into a one-line message for the status area.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "demo.") {
				return "Demo not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			return "Invalid config"

		case domain.KindValidation:
			return "Rejected: " + innermost(err)

		case domain.KindExecution:
			return "Demo failed: " + innermost(err)

		default:
			return "Unexpected error (see logs)"
		}
	}

	if errors.Is(err, domain.ErrNotFound) {
		return "Not found"
	}
	return "Unexpected error (see logs)"
}

// innermost returns the message of the deepest wrapped error.
func innermost(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
