package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/patternkit/internal/demo"
	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/infra/config"
	"github.com/aalvaropc/patternkit/internal/infra/logger"
	"github.com/aalvaropc/patternkit/internal/infra/transcript"
	"github.com/aalvaropc/patternkit/internal/infra/yamlfixture"
	"github.com/aalvaropc/patternkit/internal/ports"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	debug      bool
	configPath string
	workspace  string
}

type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config
	log   *slog.Logger

	catalog  *demo.Catalog
	fixtures ports.FixtureLoader
	store    *transcript.JSONStore
}

// loadWorkspace resolves the workspace root and its configuration. Outside a
// workspace the current directory is used with the default configuration.
func loadWorkspace(opts *globalOptions) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(opts.workspace)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if p := strings.TrimSpace(opts.configPath); p != "" {
		cfg, err = config.LoadFile(p)
	} else {
		cfg, err = config.Load(root)
	}
	if err != nil {
		return nil, err
	}

	log := logger.Component("cli")
	return &workspaceCtx{
		root:    root,
		found:   found,
		cfg:     cfg,
		log:     log,
		catalog: demo.NewCatalog(cfg, logger.Component("demo")),
		fixtures: yamlfixture.NewLoader(
			yamlfixture.WithFixturesDir(filepath.Join(root, cfg.Paths.FixturesDir)),
		),
		store: transcript.NewJSONStore(root, cfg, transcript.WithIndex(true)),
	}, nil
}

// resolveWorkspaceRoot returns the explicit workspace when given, otherwise
// the nearest ancestor holding patternkit.yaml, otherwise the working
// directory. found reports whether a patternkit.yaml was located.
func resolveWorkspaceRoot(workspaceFlag string) (root string, found bool, err error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, config.FileName)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}
	wd, _ = filepath.Abs(wd)

	if r, ferr := config.NewFinder().FindRoot(wd); ferr == nil && r != "" {
		return r, true, nil
	}
	return wd, false, nil
}

// resolveFixturePath maps a --file argument to a fixture file. Path-like
// arguments resolve against the working directory; bare names are looked up
// in the fixtures dir, with or without a YAML extension.
func resolveFixturePath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("fixture file is required (use --file or -f)")
	}

	if looksLikePath(in) || fileExists(in) {
		return filepath.Clean(in), nil
	}

	fixturesDir := filepath.Join(ws.root, ws.cfg.Paths.FixturesDir)
	candidates := []string{filepath.Join(fixturesDir, in)}
	if !hasYAMLExt(in) {
		candidates = append(candidates,
			filepath.Join(fixturesDir, in+".yaml"),
			filepath.Join(fixturesDir, in+".yml"),
		)
	}
	for _, p := range candidates {
		if fileExists(p) {
			return p, nil
		}
	}

	return "", fmt.Errorf("fixture %q not found in %q", in, fixturesDir)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
