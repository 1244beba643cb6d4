package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/patternkit/internal/usecase"
)

func listCmd(opts *globalOptions) *cobra.Command {
	var pattern string
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
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

			refs := usecase.NewListDemos(ws.catalog).Execute(pattern)
			out := cmd.OutOrStdout()

			if f == formatJSON {
				views := make([]demoView, 0, len(refs))
				for _, r := range refs {
					views = append(views, demoView{Name: r.Name, Pattern: r.Pattern, Summary: r.Summary})
				}
				return writeJSON(out, views)
			}

			if len(refs) == 0 {
				fmt.Fprintf(out, "no demos match %q\n", pattern)
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPATTERN\tSUMMARY")
			for _, r := range refs {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Pattern, r.Summary)
			}
			return tw.Flush()
		},
	}

	c.Flags().StringVarP(&pattern, "pattern", "p", "", "Only list demos of this pattern (substring match)")
	c.Flags().StringVar(&format, "format", formatPretty, "Output format: pretty|json")
	return c
}
