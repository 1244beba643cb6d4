package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/usecase"
)

func runsCmd(opts *globalOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Browse transcripts saved with run --save",
	}
	c.AddCommand(runsListCmd(opts), runsShowCmd(opts))
	return c
}

type entryView struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Demo      string    `json:"demo"`
	Pattern   string    `json:"pattern"`
	Failed    bool      `json:"failed"`
	StartedAt time.Time `json:"started_at"`
}

func runsListCmd(opts *globalOptions) *cobra.Command {
	var demo string
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List saved transcripts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(opts)
			if err != nil {
				return err
			}
			f, err := pickFormat(format, cmd.Flags().Changed("format"), ws.cfg)
			if err != nil {
				return err
			}

			entries, err := usecase.NewBrowseTranscripts(ws.store).List(demo)
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), entries, f)
		},
	}

	c.Flags().StringVar(&demo, "demo", "", "Only list transcripts of demos matching this name")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}

func printEntries(w io.Writer, entries []domain.TranscriptEntry, format string) error {
	if format == formatJSON {
		views := make([]entryView, 0, len(entries))
		for _, e := range entries {
			views = append(views, entryView(e))
		}
		return writeJSON(w, views)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "no saved transcripts (use run --save)")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDEMO\tSTARTED\tSTATUS")
	for _, e := range entries {
		status := "ok"
		if e.Failed {
			status = "failed"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Demo, e.StartedAt.Format(time.RFC3339), status)
	}
	return tw.Flush()
}

func runsShowCmd(opts *globalOptions) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one saved transcript",
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

			t, err := usecase.NewBrowseTranscripts(ws.store).Show(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f == formatJSON {
				return writeJSON(out, toTranscriptView(t, args[0]))
			}
			for _, line := range t.Lines {
				fmt.Fprintln(out, line)
			}
			printRunFooter(out, usecase.RunOutcome{Transcript: t, SavedAs: args[0]})
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}
