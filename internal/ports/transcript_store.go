package ports

import "github.com/aalvaropc/patternkit/internal/domain"

// TranscriptStore persists demo transcripts.
type TranscriptStore interface {
	SaveTranscript(t domain.Transcript) (id string, err error)
}

// TranscriptReader lists and loads saved transcripts.
type TranscriptReader interface {
	Index() ([]domain.TranscriptEntry, error)
	Load(id string) (domain.Transcript, error)
}
