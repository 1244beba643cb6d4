package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/patternkit/internal/infra/logger"
	"github.com/aalvaropc/patternkit/internal/ui/tui"
	"github.com/aalvaropc/patternkit/internal/usecase"
)

func Execute() {
	a := newApp()
	err := a.root.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

type app struct {
	opts    globalOptions
	root    *cobra.Command
	cleanup func() error
}

func newApp() *app {
	a := &app{}
	a.root = a.rootCmd()
	return a
}

func newRootCmd() *cobra.Command {
	return newApp().root
}

func (a *app) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
		a.cleanup = nil
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "patternkit",
		Short:        "patternkit: runnable design pattern demos",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setupLogging()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			a.close()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(&a.opts)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Catalog: ws.catalog,
				Runner:  usecase.NewRunDemo(ws.catalog),
				Logger:  logger.Component("tui"),
				Debug:   a.opts.debug,
			}
			return tui.Run(cmd.Context(), deps)
		},
	}

	pf := cmd.PersistentFlags()
	pf.BoolVar(&a.opts.debug, "debug", false, "enable verbose logging to .patternkit/logs/patternkit.log")
	pf.StringVar(&a.opts.configPath, "config", "", "path to a patternkit.yaml (default: autodetected)")
	pf.StringVarP(&a.opts.workspace, "workspace", "w", "", "workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		listCmd(&a.opts),
		runCmd(&a.opts),
		validateCmd(&a.opts),
		updatesCmd(&a.opts),
		runsCmd(&a.opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging opens the log file inside a detected workspace. Outside a
// workspace logging stays off unless --debug is set.
func (a *app) setupLogging() error {
	if a.cleanup != nil {
		return nil
	}
	root, found, err := resolveWorkspaceRoot(a.opts.workspace)
	if err != nil {
		return err
	}
	if !found && !a.opts.debug {
		return nil
	}

	cleanup, err := logger.Setup(logger.Config{Root: root, Debug: a.opts.debug})
	if err != nil {
		// Logging is best effort; commands still run.
		return nil
	}
	a.cleanup = cleanup
	return nil
}
