package domain

import "time"

// DemoRef describes a runnable demo without running it.
type DemoRef struct {
	Name    string
	Pattern string
	Summary string
}

// Transcript is the captured output of one demo run.
type Transcript struct {
	ID      string
	Demo    string
	Pattern string

	StartedAt time.Time
	EndedAt   time.Time

	Lines []string
	Error string
}

// TranscriptEntry is the index record of one saved transcript.
type TranscriptEntry struct {
	ID        string
	File      string
	Demo      string
	Pattern   string
	Failed    bool
	StartedAt time.Time
}
