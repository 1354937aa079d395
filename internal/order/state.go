package order

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jask/lunchtray/internal/menu"
)

// State owns the order for one session. It is not safe for concurrent use.
type State struct {
	rate    decimal.Decimal
	current Order
	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(Order)
}

// NewState returns an empty order priced with rate.
func NewState(rate decimal.Decimal) *State {
	s := &State{rate: rate}
	s.current = Compute(menu.Item{}, menu.Item{}, menu.Item{}, rate)
	return s
}

// Snapshot returns the current order.
func (s *State) Snapshot() Order {
	return s.current
}

func (s *State) UpdateEntree(item menu.Item) {
	s.set(item, s.current.SideDish, s.current.Accompaniment)
}

func (s *State) UpdateSideDish(item menu.Item) {
	s.set(s.current.Entree, item, s.current.Accompaniment)
}

func (s *State) UpdateAccompaniment(item menu.Item) {
	s.set(s.current.Entree, s.current.SideDish, item)
}

// Update replaces the slot for category. Unknown categories are ignored.
func (s *State) Update(category menu.Category, item menu.Item) {
	switch category {
	case menu.CategoryEntree:
		s.UpdateEntree(item)
	case menu.CategorySideDish:
		s.UpdateSideDish(item)
	case menu.CategoryAccompaniment:
		s.UpdateAccompaniment(item)
	}
}

// Reset clears every selection and zeroes the totals.
func (s *State) Reset() {
	s.set(menu.Item{}, menu.Item{}, menu.Item{})
}

// Subscribe registers fn to receive the order after every mutation.
// The returned func removes the subscription.
func (s *State) Subscribe(fn func(Order)) func() {
	if fn == nil {
		return func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscriber) bool { return sub.id == id })
	}
}

func (s *State) set(entree, sideDish, accompaniment menu.Item) {
	s.current = Compute(entree, sideDish, accompaniment, s.rate)
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(s.current)
	}
}
