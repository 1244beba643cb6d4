package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/patternkit/internal/infra/logger"
	"github.com/aalvaropc/patternkit/internal/usecase"
)

func validateCmd(opts *globalOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "validate",
		Short: "Run a validation chain over a fixture file",
	}
	c.AddCommand(validateSchedulesCmd(opts), validateFormCmd(opts))
	return c
}

func validateSchedulesCmd(opts *globalOptions) *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:   "schedules",
		Short: "Validate schedule rows (unique vessel, time order, after last, travel time)",
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

			uc := usecase.NewValidateSchedules(ws.fixtures, logger.Component("chain"))
			rep, err := uc.Execute(path)
			if err != nil {
				return err
			}

			if err := printScheduleReport(cmd.OutOrStdout(), rep, f); err != nil {
				return err
			}
			if n := len(rep.Rejected); n > 0 {
				return fmt.Errorf("validation failed (%d rejected row(s))", n)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Schedules fixture name or path (required)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	_ = c.MarkFlagRequired("file")
	return c
}

func printScheduleReport(w io.Writer, rep usecase.ScheduleReport, format string) error {
	if format == formatJSON {
		payload := struct {
			Accepted []rowView       `json:"accepted"`
			Rejected []rejectionView `json:"rejected"`
		}{
			Accepted: make([]rowView, 0, len(rep.Accepted)),
			Rejected: make([]rejectionView, 0, len(rep.Rejected)),
		}
		for _, r := range rep.Accepted {
			payload.Accepted = append(payload.Accepted, toRowView(r))
		}
		for _, r := range rep.Rejected {
			payload.Rejected = append(payload.Rejected, rejectionView{Index: r.Index, Row: toRowView(r.Row), Reason: r.Reason})
		}
		return writeJSON(w, payload)
	}

	fmt.Fprintf(w, "Accepted: %d\n", len(rep.Accepted))
	for _, r := range rep.Accepted {
		fmt.Fprintf(w, "  ✓ %s\n", r)
	}
	fmt.Fprintf(w, "Rejected: %d\n", len(rep.Rejected))
	for _, r := range rep.Rejected {
		fmt.Fprintf(w, "  ✗ #%d %s: %s\n", r.Index, r.Row.VesselCode, r.Reason)
	}
	return nil
}

func validateFormCmd(opts *globalOptions) *cobra.Command {
	var file string
	var format string

	c := &cobra.Command{
		Use:   "form",
		Short: "Validate registration form values (name, age, email)",
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

			uc := usecase.NewValidateForm(ws.fixtures, logger.Component("chain"))
			rep, err := uc.ExecuteFile(path)
			if err != nil {
				return err
			}

			if err := printFormReport(cmd.OutOrStdout(), rep, f); err != nil {
				return err
			}
			if !rep.Valid {
				return fmt.Errorf("validation failed (%d field error(s))", len(rep.Errors))
			}
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Form fixture name or path (required)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	_ = c.MarkFlagRequired("file")
	return c
}

func printFormReport(w io.Writer, rep usecase.FormReport, format string) error {
	errs := make(map[string]string, len(rep.Errors))
	for k, v := range rep.Errors {
		errs[string(k)] = v
	}

	if format == formatJSON {
		return writeJSON(w, struct {
			Valid  bool              `json:"valid"`
			Errors map[string]string `json:"errors"`
		}{Valid: rep.Valid, Errors: errs})
	}

	if rep.Valid {
		fmt.Fprintln(w, "OK")
		return nil
	}
	fields := make([]string, 0, len(errs))
	for k := range errs {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	for _, k := range fields {
		fmt.Fprintf(w, "  ✗ %s: %s\n", k, errs[k])
	}
	return nil
}
