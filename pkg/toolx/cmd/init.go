package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/shrewx/suitex/pkg/conf"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Init writes a suitex.yml with the default settings into the target directory.
func Init() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "write a default suitex.yml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			file := filepath.Join(dir, conf.DefaultConfigFile)

			if _, err := os.Stat(file); err == nil && !force {
				return fmt.Errorf("config file already exists: %s", file)
			}

			c := defaultSuite()
			buff, err := yaml.Marshal(c)
			if err != nil {
				return errors.Wrap(err, "encode config")
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, "create directory %s", dir)
			}
			if err := os.WriteFile(file, buff, 0644); err != nil {
				return errors.Wrapf(err, "write %s", file)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✨ Wrote %s\n", file)
			fmt.Fprintf(cmd.OutOrStdout(), "📝 To generate a domain suite, run:\n")
			fmt.Fprintf(cmd.OutOrStdout(), "   suitex gen suite <DomainName> -f %s\n", file)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func defaultSuite() *conf.Suite {
	return &conf.Suite{
		Root: ".",
		Log: conf.Log{
			LogFileName: "suitex.log",
			LogLevel:    "warn",
		},
	}
}
