// Package session pairs the screen sequencer with the order it is building.
// Cancelling, or completing checkout, always resets both together so no
// selection outlives the order it belonged to.
package session

import (
	"errors"

	"github.com/google/uuid"

	"github.com/jask/lunchtray/internal/flow"
	"github.com/jask/lunchtray/internal/logging"
	"github.com/jask/lunchtray/internal/menu"
	"github.com/jask/lunchtray/internal/order"
)

// ErrNoMenuAtStage is returned by Select on stages without a menu.
var ErrNoMenuAtStage = errors.New("no menu at this stage")

// Session is one interactive ordering session.
type Session struct {
	ID       string
	order    *order.State
	flow     *flow.Sequencer
	log      *logging.Logger
	currency string
	placed   int
}

// Option configures a Session.
type Option func(*Session)

func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCurrency sets the symbol used when totals are logged.
func WithCurrency(symbol string) Option {
	return func(s *Session) { s.currency = symbol }
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.ID = id
		}
	}
}

func New(state *order.State, opts ...Option) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		order:    state,
		flow:     flow.NewSequencer(),
		log:      logging.NopLogger(),
		currency: "$",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithSession(s.ID)
	state.Subscribe(func(o order.Order) {
		s.log.Debug("order updated", "items", len(o.Items()), "total", order.Money(s.currency, o.Total))
	})
	return s
}

func (s *Session) Stage() flow.Stage     { return s.flow.Current() }
func (s *Session) Order() order.Order    { return s.order.Snapshot() }
func (s *Session) State() *order.State   { return s.order }
func (s *Session) History() []flow.Stage { return s.flow.History() }
func (s *Session) CanNavigateBack() bool { return s.flow.CanNavigateBack() }
func (s *Session) OrdersPlaced() int     { return s.placed }

// Next advances one stage. From CheckOut it completes the order.
func (s *Session) Next() flow.Stage {
	if s.flow.Current() == flow.CheckOut {
		return s.Complete()
	}
	return s.transition("next", s.flow.Next)
}

// Back pops one stage without touching the order.
func (s *Session) Back() flow.Stage {
	return s.transition("back", s.flow.Back)
}

// Cancel abandons the order and returns to Start.
func (s *Session) Cancel() flow.Stage {
	s.order.Reset()
	return s.transition("cancel", s.flow.Cancel)
}

// Complete places the order. With no order history this is equivalent to
// Cancel apart from the log entry.
func (s *Session) Complete() flow.Stage {
	o := s.order.Snapshot()
	s.placed++
	s.log.Info("order placed",
		"items", len(o.Items()),
		"item_total", order.Money(s.currency, o.ItemTotal),
		"tax", order.Money(s.currency, o.Tax),
		"total", order.Money(s.currency, o.Total),
	)
	s.order.Reset()
	return s.transition("complete", s.flow.Cancel)
}

// Navigate jumps to route, resolving unknown routes to Start. Landing on
// Start resets the order the same way Cancel does.
func (s *Session) Navigate(route string) flow.Stage {
	to := s.transition("navigate", func() flow.Stage { return s.flow.Navigate(route) })
	if to == flow.Start {
		s.order.Reset()
	}
	return to
}

// Select stores item in the slot for the current menu stage.
func (s *Session) Select(item menu.Item) error {
	cat, ok := s.flow.Current().Category()
	if !ok {
		return ErrNoMenuAtStage
	}
	s.order.Update(cat, item)
	s.log.Debug("item selected", "category", string(cat), "item", item.Name)
	return nil
}

// Selected returns the item chosen on the current menu stage, if any.
func (s *Session) Selected() menu.Item {
	cat, ok := s.flow.Current().Category()
	if !ok {
		return menu.Item{}
	}
	return s.order.Snapshot().Selected(cat)
}

func (s *Session) transition(action string, fn func() flow.Stage) flow.Stage {
	from := s.flow.Current()
	to := fn()
	s.log.Debug("stage transition", "action", action, "from", from.String(), "to", to.String())
	return to
}
