package transcript

import (
	"time"

	"github.com/aalvaropc/patternkit/internal/domain"
)

type transcriptDTO struct {
	ID        string    `json:"id"`
	Demo      string    `json:"demo"`
	Pattern   string    `json:"pattern"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
	Lines     []string  `json:"lines"`
	Error     string    `json:"error,omitempty"`
}

func toDTO(t domain.Transcript) transcriptDTO {
	lines := t.Lines
	if lines == nil {
		lines = []string{}
	}
	return transcriptDTO{
		ID:        t.ID,
		Demo:      t.Demo,
		Pattern:   t.Pattern,
		StartedAt: t.StartedAt,
		EndedAt:   t.EndedAt.UTC(),
		Lines:     lines,
		Error:     t.Error,
	}
}

func (d transcriptDTO) toDomain() domain.Transcript {
	return domain.Transcript{
		ID:        d.ID,
		Demo:      d.Demo,
		Pattern:   d.Pattern,
		StartedAt: d.StartedAt,
		EndedAt:   d.EndedAt,
		Lines:     d.Lines,
		Error:     d.Error,
	}
}

// indexLine is one line of index.jsonl.
type indexLine struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Demo      string    `json:"demo"`
	Pattern   string    `json:"pattern"`
	Failed    bool      `json:"failed"`
	StartedAt time.Time `json:"started_at"`
}

func (l indexLine) toDomain() domain.TranscriptEntry {
	return domain.TranscriptEntry{
		ID:        l.ID,
		File:      l.File,
		Demo:      l.Demo,
		Pattern:   l.Pattern,
		Failed:    l.Failed,
		StartedAt: l.StartedAt,
	}
}
