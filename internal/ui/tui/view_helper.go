package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/patternkit/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderTranscript lays out the captured lines of a run. width <= 0 disables
// clamping.
func renderTranscript(t domain.Transcript, width int) string {
	var b strings.Builder

	if len(t.Lines) == 0 {
		b.WriteString("(no output)\n")
	}
	for _, line := range t.Lines {
		if width > 0 {
			line = clampString(line, width)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if !t.StartedAt.IsZero() && !t.EndedAt.IsZero() {
		b.WriteString(fmt.Sprintf("\n%d line(s) in %s\n", len(t.Lines), t.EndedAt.Sub(t.StartedAt)))
	}
	if t.Error != "" {
		b.WriteString("\nError: ")
		b.WriteString(t.Error)
		b.WriteString("\n")
	}
	return b.String()
}
