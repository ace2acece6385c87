package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/shrewx/suitex/pkg/toolx/cmd.version=..."
var version = "dev"

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the suitex version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "suitex %s\n", version)
		},
	}
}
