package gen

import (
	"fmt"
	"text/tabwriter"

	"github.com/shrewx/suitex/pkg/suite"
	"github.com/spf13/cobra"
)

func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the files a domain suite consists of",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tPATH")
			for _, t := range suite.Templates() {
				fmt.Fprintf(w, "%s\t%s\n", t.Kind, t.Pattern())
			}
			return w.Flush()
		},
	}
}
