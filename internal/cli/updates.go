package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/patternkit/internal/usecase"
)

func updatesCmd(opts *globalOptions) *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:   "updates",
		Short: "Log and validate schedule updates with the visitors",
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
			path, err := resolveFixturePath(ws, file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			uc := usecase.NewApplyUpdates(ws.fixtures)

			var rep usecase.UpdatesReport
			if f == formatJSON {
				rep, err = uc.Execute(path, nil)
			} else {
				rep, err = uc.Execute(path, out)
			}
			if err != nil {
				return err
			}

			if f == formatJSON {
				type issue struct {
					Index   int    `json:"index"`
					Field   string `json:"field"`
					Message string `json:"message"`
				}
				payload := struct {
					Count   int     `json:"count"`
					Invalid []issue `json:"invalid"`
				}{Count: rep.Count, Invalid: make([]issue, 0, len(rep.Invalid))}
				for _, in := range rep.Invalid {
					payload.Invalid = append(payload.Invalid, issue(in))
				}
				if err := writeJSON(out, payload); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Updates: %d (%d invalid)\n", rep.Count, len(rep.Invalid))
				for _, in := range rep.Invalid {
					fmt.Fprintf(out, "  ✗ #%d %s: %s\n", in.Index, in.Field, in.Message)
				}
			}

			if n := len(rep.Invalid); n > 0 {
				return fmt.Errorf("validation failed (%d invalid update(s))", n)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Updates fixture name or path (required)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	_ = c.MarkFlagRequired("file")
	return c
}
