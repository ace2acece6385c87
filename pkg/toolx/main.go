package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/shrewx/suitex/pkg/toolx/cmd"
	"github.com/shrewx/suitex/pkg/toolx/cmd/gen"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "suitex",
	Short:         "scaffold layered FastAPI domain suites",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(gen.CmdGen)
	rootCmd.AddCommand(cmd.Init())
	rootCmd.AddCommand(cmd.Version())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
