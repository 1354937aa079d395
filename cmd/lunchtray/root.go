package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jask/lunchtray/internal/config"
	"github.com/jask/lunchtray/internal/logging"
)

// app carries state shared by every subcommand once the config is loaded.
type app struct {
	cfgFile string
	cfg     config.Config
	log     *logging.Logger
}

func (a *app) load() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	lg, err := logging.NewLogger(cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.cfg = cfg
	a.log = lg
	return nil
}

func (a *app) close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lunchtray",
		Short: "Order lunch from the terminal",
		Long: `Lunch Tray walks through an entree, a side dish and an accompaniment,
keeps a running total with tax, and checks the order out.

Running lunchtray without a subcommand starts an interactive order.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOrder(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/lunchtray/config.toml)")

	root.AddCommand(newOrderCmd(a), newMenuCmd(a), newQuoteCmd(a), newConfigCmd(a))
	return root
}

// execute runs the CLI with args and releases the logger afterwards.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}
