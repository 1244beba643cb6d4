// Package transcript persists demo transcripts as JSON files under the runs
// directory, with an optional JSONL index.
package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/infra/logger"
	"github.com/aalvaropc/patternkit/internal/ports"
)

const (
	defaultRunsDir = "runs"
	indexFile      = "index.jsonl"

	// Characters of the transcript ID kept in the file name.
	shortIDLen = 8
	// Suffixes tried when a file name is already taken.
	maxCollisions = 1000
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
	log         *slog.Logger
}

type Option func(*JSONStore)

// WithIndex appends one line per saved transcript to runs/index.jsonl.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *JSONStore) {
		if l != nil {
			s.log = l
		}
	}
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		now:         time.Now,
		log:         logger.Component("transcript"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.TranscriptStore  = (*JSONStore)(nil)
	_ ports.TranscriptReader = (*JSONStore)(nil)
)

// Dir is the directory transcripts are written to.
func (s *JSONStore) Dir() string {
	return filepath.Join(s.rootDir, s.runsDirName)
}

// SaveTranscript writes t to <runs>/<timestamp>_<demo>_<id prefix>.json and
// returns the file stem as id. A taken name gets a numeric suffix; existing
// transcripts are never overwritten.
func (s *JSONStore) SaveTranscript(t domain.Transcript) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "transcript.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	if t.StartedAt.IsZero() {
		t.StartedAt = s.now()
	}
	t.StartedAt = t.StartedAt.UTC()

	id, path, err := s.reserve(dir, baseName(t))
	if err != nil {
		return "", err
	}
	filename := filepath.Base(path)

	b, err := json.MarshalIndent(toDTO(t), "", "  ")
	if err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "transcript.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "transcript.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		_ = os.Remove(path)
		return "", &domain.OpError{
			Op:   "transcript.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		err := s.appendIndex(dir, indexLine{
			ID:        id,
			File:      filename,
			Demo:      t.Demo,
			Pattern:   t.Pattern,
			Failed:    t.Error != "",
			StartedAt: t.StartedAt,
		})
		if err != nil {
			s.log.Warn("transcript.index.failed", "id", id, "dir", dir, "err", err)
		}
	}
	return id, nil
}

func baseName(t domain.Transcript) string {
	slug := slugify(t.Demo)
	if slug == "" {
		slug = "demo"
	}
	base := t.StartedAt.Format("20060102T150405Z") + "_" + slug
	if short := slugify(t.ID); short != "" {
		if len(short) > shortIDLen {
			short = short[:shortIDLen]
		}
		base += "_" + strings.TrimSuffix(short, "-")
	}
	return base
}

// reserve creates an empty placeholder for the first free name derived from
// base, so concurrent saves cannot pick the same file.
func (s *JSONStore) reserve(dir, base string) (id, path string, err error) {
	id = base
	for n := 2; n <= maxCollisions+1; n++ {
		path = filepath.Join(dir, id+".json")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_ = f.Close()
			return id, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", &domain.OpError{Op: "transcript.create", Kind: domain.KindExecution, Path: path, Err: err}
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return "", "", &domain.OpError{
		Op:   "transcript.create",
		Kind: domain.KindExecution,
		Path: filepath.Join(dir, base+".json"),
		Err:  fmt.Errorf("no free file name after %d attempts", maxCollisions),
	}
}

// Load reads a saved transcript by id.
func (s *JSONStore) Load(id string) (domain.Transcript, error) {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".json")
	path := filepath.Join(s.Dir(), id+".json")
	if id == "" || id == "." || id == ".." || filepath.Base(id) != id || strings.ContainsAny(id, `/\`) {
		return domain.Transcript{}, &domain.OpError{
			Op:   "transcript.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  fmt.Errorf("%w: transcript %q", domain.ErrNotFound, id),
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Transcript{}, &domain.OpError{
			Op:   "transcript.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	var dto transcriptDTO
	if err := json.Unmarshal(b, &dto); err != nil {
		return domain.Transcript{}, &domain.OpError{
			Op:   "transcript.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return dto.toDomain(), nil
}

// Index returns the index entries in write order. A missing index is empty.
func (s *JSONStore) Index() ([]domain.TranscriptEntry, error) {
	path := filepath.Join(s.Dir(), indexFile)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return []domain.TranscriptEntry{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{Op: "transcript.index", Kind: domain.KindExecution, Path: path, Err: err}
	}
	defer f.Close()

	out := []domain.TranscriptEntry{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var e indexLine
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, &domain.OpError{Op: "transcript.index", Kind: domain.KindInvalidConfig, Path: path, Err: err}
		}
		out = append(out, e.toDomain())
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{Op: "transcript.index", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return out, nil
}

func (s *JSONStore) appendIndex(dir string, e indexLine) error {
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))

	lastDash := true
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
