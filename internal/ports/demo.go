package ports

import (
	"context"
	"io"

	"github.com/aalvaropc/patternkit/internal/domain"
)

// Demo is one runnable pattern demonstration.
type Demo interface {
	Ref() domain.DemoRef
	Run(ctx context.Context, out io.Writer) error
}

// DemoCatalog finds demos by name.
type DemoCatalog interface {
	List() []domain.DemoRef
	Lookup(name string) (Demo, error)
}
