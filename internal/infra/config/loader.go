package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/patternkit/internal/domain"
)

type yamlConfig struct {
	Patternkit struct {
		Output struct {
			Format string `yaml:"format"`
		} `yaml:"output"`

		Transcripts struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"transcripts"`

		Paths struct {
			FixturesDir string `yaml:"fixtures_dir"`
			RunsDir     string `yaml:"runs_dir"`
		} `yaml:"paths"`

		Schedule struct {
			Ports []string `yaml:"ports"`
		} `yaml:"schedule"`
	} `yaml:"patternkit"`
}

// Load reads <root>/patternkit.yaml. A missing file yields the defaults
// without error.
func Load(root string) (domain.Config, error) {
	cfg, err := LoadFile(filepath.Join(root, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads an explicit config file and applies it on top of the
// defaults.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	p := y.Patternkit
	if f := strings.ToLower(strings.TrimSpace(p.Output.Format)); f != "" {
		if f != "pretty" && f != "json" {
			return cfg, invalidField(path, "patternkit.output.format", fmt.Sprintf("unsupported format %q", p.Output.Format))
		}
		cfg.Output.Format = f
	}
	if p.Transcripts.Enabled != nil {
		cfg.Transcripts.Enabled = *p.Transcripts.Enabled
	}
	if p.Paths.FixturesDir != "" {
		cfg.Paths.FixturesDir = p.Paths.FixturesDir
	}
	if p.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = p.Paths.RunsDir
	}
	if len(p.Schedule.Ports) > 0 {
		ports := make([]string, 0, len(p.Schedule.Ports))
		for i, port := range p.Schedule.Ports {
			port = strings.TrimSpace(port)
			if port == "" {
				return cfg, invalidField(path, fmt.Sprintf("patternkit.schedule.ports[%d]", i), "port code is empty")
			}
			ports = append(ports, port)
		}
		cfg.Schedule.Ports = ports
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.load",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
