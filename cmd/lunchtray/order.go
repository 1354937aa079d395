package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/lunchtray/internal/logging"
	"github.com/jask/lunchtray/internal/order"
	"github.com/jask/lunchtray/internal/session"
	"github.com/jask/lunchtray/internal/tui"
)

func newOrderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Start an interactive lunch order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOrder(cmd.Context())
		},
	}
}

func (a *app) runOrder(ctx context.Context) error {
	rate, err := a.cfg.TaxRate()
	if err != nil {
		return err
	}
	log := a.interactiveLogger()
	catalog, closeCatalog, err := openCatalog(ctx, a.cfg, log)
	if err != nil {
		return err
	}
	defer closeCatalog()

	sess := session.New(order.NewState(rate),
		session.WithLogger(log),
		session.WithCurrency(a.cfg.UI.CurrencySymbol),
	)
	model := tui.NewModel(ctx, sess, catalog, tui.Options{
		Currency: a.cfg.UI.CurrencySymbol,
		Logger:   log.WithSession(sess.ID),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error("tui exited", "error", err.Error())
		return err
	}
	log.Info("session ended", "session_id", sess.ID, "orders_placed", sess.OrdersPlaced())
	return nil
}

// interactiveLogger drops logs that would otherwise land on stderr under the alt screen.
func (a *app) interactiveLogger() *logging.Logger {
	if a.cfg.Log.Dir == "" {
		return logging.NopLogger()
	}
	return a.log
}
