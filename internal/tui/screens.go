package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lunchtray/internal/flow"
	"github.com/jask/lunchtray/internal/menu"
	"github.com/jask/lunchtray/internal/order"
	"github.com/jask/lunchtray/internal/widgets"
)

var errChooseFirst = errors.New("choose an item before continuing")

type startScreen struct{}

func (startScreen) Stage() flow.Stage { return flow.Start }

func (startScreen) HandleAction(m *Model, action string, _ tea.KeyMsg) tea.Cmd {
	if action == actionNext {
		m.next()
		m.SetStatus("Order started")
	}
	return nil
}

func (startScreen) View(m *Model, width, height int) string {
	lines := []string{
		headerTitleStyle.UnsetBackground().Render("Lunch Tray"),
		"",
		"Build a lunch from an entree, a side dish and an accompaniment.",
		mutedStyle.Render(fmt.Sprintf("Orders placed this session: %d", m.session.OrdersPlaced())),
		"",
		"Press enter to start your order.",
	}
	return widgets.Box{Title: flow.Start.Title(), Content: strings.Join(lines, "\n"), BorderColor: colorBorder}.Render(width, height)
}

// menuItem adapts a menu.Item to the bubbles list.
type menuItem struct {
	item     menu.Item
	selected bool
	currency string
}

func (i menuItem) Title() string {
	marker := "○ "
	name := i.item.Name
	if i.selected {
		marker = "● "
		name = selectedStyle.Render(name)
	}
	return marker + name + "  " + priceStyle.Render(order.Money(i.currency, i.item.Price))
}
func (i menuItem) Description() string { return i.item.Description }
func (i menuItem) FilterValue() string { return i.item.Name }

type menuScreen struct {
	stage    flow.Stage
	category menu.Category
	currency string
	items    []menu.Item
	selected menu.Item
	list     list.Model
}

func newMenuScreen(stage flow.Stage, category menu.Category, currency string) *menuScreen {
	lst := list.New(nil, list.NewDefaultDelegate(), 40, 12)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	return &menuScreen{stage: stage, category: category, currency: currency, list: lst}
}

func (s *menuScreen) Stage() flow.Stage { return s.stage }

func (s *menuScreen) setItems(items []menu.Item) {
	s.items = items
	s.refresh(s.selected)
}

// refresh redraws the radio markers and moves the cursor onto selected.
func (s *menuScreen) refresh(selected menu.Item) {
	s.selected = selected
	litems := make([]list.Item, 0, len(s.items))
	cursor := -1
	for i, it := range s.items {
		isSel := !selected.IsZero() && it.Name == selected.Name
		if isSel {
			cursor = i
		}
		litems = append(litems, menuItem{item: it, selected: isSel, currency: s.currency})
	}
	_ = s.list.SetItems(litems)
	if cursor >= 0 {
		s.list.Select(cursor)
	}
}

func (s *menuScreen) highlighted() (menu.Item, bool) {
	it, ok := s.list.SelectedItem().(menuItem)
	if !ok {
		return menu.Item{}, false
	}
	return it.item, true
}

func (s *menuScreen) HandleAction(m *Model, action string, _ tea.KeyMsg) tea.Cmd {
	switch action {
	case actionUp:
		s.list.CursorUp()
	case actionDown:
		s.list.CursorDown()
	case actionSelect:
		it, ok := s.highlighted()
		if !ok {
			return nil
		}
		if err := m.session.Select(it); err != nil {
			m.SetError(err)
			return nil
		}
		s.refresh(it)
		m.SetStatus("Selected " + it.Name)
	case actionNext:
		if m.session.Selected().IsZero() {
			m.SetError(errChooseFirst)
			return nil
		}
		m.next()
		m.SetStatus(m.session.Stage().Title())
	case actionBack:
		m.back()
	case actionCancel:
		m.cancel()
	}
	return nil
}

func (s *menuScreen) View(m *Model, width, height int) string {
	if len(s.items) == 0 {
		return mutedStyle.Render("Loading " + strings.ToLower(s.category.Label()) + " menu…")
	}
	subtotal := "Subtotal: " + order.Money(m.currency, m.session.Order().ItemTotal)
	s.list.SetSize(max(20, width), max(4, height-2))
	return s.list.View() + "\n\n" + totalStyle.Render(subtotal)
}

type checkoutScreen struct{}

func (checkoutScreen) Stage() flow.Stage { return flow.CheckOut }

func (checkoutScreen) HandleAction(m *Model, action string, _ tea.KeyMsg) tea.Cmd {
	switch action {
	case actionSubmit:
		total := m.session.Order().Total
		m.session.Complete()
		m.syncCursor()
		return StatusCmd("Order placed, total " + order.Money(m.currency, total))
	case actionBack:
		m.back()
	case actionCancel:
		m.cancel()
	}
	return nil
}

// Summary renders the order as an aligned table of items and totals.
func Summary(o order.Order, currency string) string {
	rows := make([][]string, 0, 7)
	for _, it := range o.Items() {
		rows = append(rows, []string{it.Category.Label(), it.Name, order.Money(currency, it.Price)})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"", "No items selected", ""})
	}
	rows = append(rows,
		[]string{"", "", ""},
		[]string{"", "Subtotal", order.Money(currency, o.ItemTotal)},
		[]string{"", "Tax", order.Money(currency, o.Tax)},
		[]string{"", "Total", order.Money(currency, o.Total)},
	)
	return widgets.Table{Rows: rows, RightAlign: []int{2}}.Render(120, len(rows))
}

func (checkoutScreen) View(m *Model, width, height int) string {
	body := Summary(m.session.Order(), m.currency) + "\n\n" + mutedStyle.Render("Press enter to submit the order.")
	return widgets.Box{Title: flow.CheckOut.Title(), Content: body, BorderColor: colorBorder}.Render(width, height)
}
