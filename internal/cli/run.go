package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/patternkit/internal/usecase"
)

func runCmd(opts *globalOptions) *cobra.Command {
	var format string
	var save bool

	c := &cobra.Command{
		Use:   "run <demo>",
		Short: "Run one demo and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(opts)
			if err != nil {
				return err
			}
			f, err := pickFormat(format, cmd.Flags().Changed("format"), ws.cfg)
			if err != nil {
				return err
			}

			persist := save || ws.cfg.Transcripts.Enabled
			uc := usecase.NewRunDemo(ws.catalog, usecase.WithTranscriptStore(ws.store))

			out := cmd.OutOrStdout()
			var stream io.Writer
			if f == formatPretty {
				stream = out
			}

			ws.log.Info("run.start", "demo", args[0], "save", persist)
			res, runErr := uc.Execute(cmd.Context(), args[0], stream, persist)
			if runErr != nil {
				ws.log.Error("run.failed", "demo", args[0], "err", runErr, "saved_id", res.SavedAs)
			} else {
				ws.log.Info("run.ok", "demo", args[0], "saved_id", res.SavedAs)
			}

			// Lookup failures produce no transcript worth printing.
			if res.Transcript.Demo == "" {
				return runErr
			}

			if f == formatJSON {
				if err := writeJSON(out, toTranscriptView(res.Transcript, res.SavedAs)); err != nil {
					return err
				}
				return runErr
			}

			printRunFooter(out, res)
			return runErr
		},
	}

	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	c.Flags().BoolVar(&save, "save", false, "Save the transcript under the runs dir")
	return c
}

func printRunFooter(w io.Writer, res usecase.RunOutcome) {
	t := res.Transcript
	dur := t.EndedAt.Sub(t.StartedAt)
	if t.StartedAt.IsZero() || t.EndedAt.IsZero() {
		dur = 0
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Demo:       %s (%s)\n", t.Demo, t.Pattern)
	fmt.Fprintf(w, "Duration:   %s\n", dur.Round(time.Microsecond))
	if t.Error != "" {
		fmt.Fprintf(w, "Error:      %s\n", t.Error)
	}
	if res.SavedAs != "" {
		fmt.Fprintf(w, "Saved as:   %s\n", res.SavedAs)
	}
}
