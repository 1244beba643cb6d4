package tui

import (
	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/usecase"
)

type demoDoneMsg struct {
	ref     domain.DemoRef
	outcome usecase.RunOutcome
	err     error
}
