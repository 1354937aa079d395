// Package flow sequences the ordering screens.
//
// The forward path is fixed: Start, EntreeMenu, SideDishMenu, AccompanimentMenu,
// CheckOut. Cancelling from anywhere, or completing checkout, returns to Start.
// Every transition is total; unknown route identifiers resolve to Start.
package flow

import "github.com/jask/lunchtray/internal/menu"

// Stage is one step of the ordering flow.
type Stage int

const (
	Start Stage = iota
	EntreeMenu
	SideDishMenu
	AccompanimentMenu
	CheckOut
)

var stageInfo = [...]struct {
	route string
	title string
}{
	Start:             {"Start", "Start Order"},
	EntreeMenu:        {"EntreeMenu", "Choose Entree"},
	SideDishMenu:      {"SideDishMenu", "Choose Side Dish"},
	AccompanimentMenu: {"AccompanimentMenu", "Choose Accompaniment"},
	CheckOut:          {"CheckOut", "Order Checkout"},
}

// Stages returns the forward path in order.
func Stages() []Stage {
	return []Stage{Start, EntreeMenu, SideDishMenu, AccompanimentMenu, CheckOut}
}

func (s Stage) valid() bool {
	return s >= Start && s <= CheckOut
}

// String returns the route identifier of the stage.
func (s Stage) String() string {
	if !s.valid() {
		return stageInfo[Start].route
	}
	return stageInfo[s].route
}

// Title returns the display title of the stage.
func (s Stage) Title() string {
	if !s.valid() {
		return stageInfo[Start].title
	}
	return stageInfo[s].title
}

// Category returns the menu shown on the stage, if any.
func (s Stage) Category() (menu.Category, bool) {
	switch s {
	case EntreeMenu:
		return menu.CategoryEntree, true
	case SideDishMenu:
		return menu.CategorySideDish, true
	case AccompanimentMenu:
		return menu.CategoryAccompaniment, true
	}
	return "", false
}

// ParseStage resolves a route identifier by exact match. Anything else is Start.
func ParseStage(route string) Stage {
	for _, s := range Stages() {
		if s.String() == route {
			return s
		}
	}
	return Start
}
