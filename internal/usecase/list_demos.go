package usecase

import (
	"strings"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/ports"
)

type ListDemos struct {
	catalog ports.DemoCatalog
}

func NewListDemos(c ports.DemoCatalog) *ListDemos {
	return &ListDemos{catalog: c}
}

// Execute lists demos in catalog order. A non-empty pattern keeps only demos
// whose pattern contains it (case-insensitive), so "chain" matches
// "chain-of-responsibility".
func (uc *ListDemos) Execute(pattern string) []domain.DemoRef {
	all := uc.catalog.List()
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		return all
	}
	out := make([]domain.DemoRef, 0, len(all))
	for _, ref := range all {
		if strings.Contains(strings.ToLower(ref.Pattern), pattern) {
			out = append(out, ref)
		}
	}
	return out
}
