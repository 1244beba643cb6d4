package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/ports"
)

type BrowseTranscripts struct {
	reader ports.TranscriptReader
}

func NewBrowseTranscripts(r ports.TranscriptReader) *BrowseTranscripts {
	return &BrowseTranscripts{reader: r}
}

// List returns saved transcripts, newest first. A non-empty demo keeps only
// entries whose demo name contains it (case-insensitive).
func (uc *BrowseTranscripts) List(demo string) ([]domain.TranscriptEntry, error) {
	entries, err := uc.reader.Index()
	if err != nil {
		return nil, err
	}

	demo = strings.ToLower(strings.TrimSpace(demo))
	out := make([]domain.TranscriptEntry, 0, len(entries))
	for _, e := range entries {
		if demo == "" || strings.Contains(strings.ToLower(e.Demo), demo) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

// Show loads one transcript by the id printed at save time.
func (uc *BrowseTranscripts) Show(id string) (domain.Transcript, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Transcript{}, &domain.OpError{
			Op:   "browse_transcripts.show",
			Kind: domain.KindValidation,
			Err:  fmt.Errorf("transcript id is required"),
		}
	}
	return uc.reader.Load(id)
}
