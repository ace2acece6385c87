package gen

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shrewx/suitex"
	"github.com/shrewx/suitex/pkg/conf"
	"github.com/shrewx/suitex/pkg/host"
	"github.com/shrewx/suitex/pkg/logx"
	"github.com/spf13/cobra"
)

func suiteCommand() *cobra.Command {
	var (
		root       string
		configFile string
		dryRun     bool
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "suite [domain-name]",
		Short: "generate model, repository, dto, use cases, orm, sql repository and endpoint for a domain",
		Long: `Generate a domain suite for a layered FastAPI backend.

Without a domain name the command prompts for one. Existing files are
overwritten. The new endpoint still has to be registered in src/api/router.py
by hand; src/api/router_update_helper.py shows how.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := conf.Load(configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("root") {
				c.Root = root
			}
			if cmd.Flags().Changed("dry-run") {
				c.DryRun = dryRun
			}
			if err := logx.Load(&c.Log); err != nil {
				return errors.Wrap(err, "load logger")
			}
			if verbose {
				logx.SetLogLevel("debug")
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			term := host.NewTerminal(c.Root)
			term.Out = cmd.OutOrStdout()

			var (
				h   suitex.Host = term
				dry *host.DryRun
			)
			if c.DryRun {
				dry = host.NewDryRun(term)
				h = dry
			}

			res, err := suitex.Run(ctx, h, name)
			if err != nil {
				return err
			}
			if res == nil {
				return nil
			}

			if dry != nil {
				return dry.WriteYAML(cmd.OutOrStdout(), c.Root)
			}

			paths := make([]string, 0, len(res.Files))
			for _, f := range res.Files {
				paths = append(paths, f.Path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n📁 Generated files:\n")
			host.PrintTree(cmd.OutOrStdout(), c.Root, paths)
			return nil
		},
	}

	cmd.Flags().StringVarP(&root, "root", "r", ".", "project root the src/ tree is written under")
	cmd.Flags().StringVarP(&configFile, "config", "f", conf.DefaultConfigFile, "config file path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the plan as yaml instead of writing files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "enable debug logging")
	return cmd
}
