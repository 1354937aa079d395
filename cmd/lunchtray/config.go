package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jask/lunchtray/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the lunchtray config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration, with env overrides applied, as TOML",
		Args:  cobra.NoArgs,
		// The target file may not exist yet, so only defaults and env are read.
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg, err := config.FromViper(config.New(a.cfgFile))
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.Path(a.cfgFile)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(a.cfg, path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}
