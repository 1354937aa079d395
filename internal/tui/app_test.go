package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lunchtray/internal/flow"
	"github.com/jask/lunchtray/internal/menu"
	"github.com/jask/lunchtray/internal/order"
	"github.com/jask/lunchtray/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	sess := session.New(order.NewState(order.DefaultTaxRate))
	m := NewModel(context.Background(), sess, menu.DefaultCatalog(), Options{})
	for _, c := range menu.Categories() {
		m = send(t, m, m.loadMenu(c)())
	}
	return m
}

// send updates m with msg and feeds the message of any returned command back in.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		if follow := cmd(); follow != nil {
			next, _ = m.Update(follow)
			m = next.(Model)
		}
	}
	return m
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		m = send(t, m, msg)
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyBack  = tea.KeyMsg{Type: tea.KeyBackspace}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFullOrderThenSubmit(t *testing.T) {
	m := newTestModel(t)
	sess := m.Session()

	m = press(t, m, keyEnter)
	if sess.Stage() != flow.EntreeMenu {
		t.Fatalf("enter on Start should open the entree menu, got %v", sess.Stage())
	}

	m = press(t, m, keyEnter, runes("n"))
	if sess.Order().Entree.Name != "Cauliflower" {
		t.Fatalf("expected Cauliflower selected, got %q", sess.Order().Entree.Name)
	}
	if sess.Stage() != flow.SideDishMenu {
		t.Fatalf("expected SideDishMenu, got %v", sess.Stage())
	}

	m = press(t, m, keyDown, keyDown, keyEnter, runes("n"))
	if sess.Order().SideDish.Name != "Spicy Potatoes" {
		t.Fatalf("expected Spicy Potatoes, got %q", sess.Order().SideDish.Name)
	}

	m = press(t, m, keySpace, runes("n"))
	if sess.Stage() != flow.CheckOut {
		t.Fatalf("expected CheckOut, got %v", sess.Stage())
	}
	if got := order.Money("$", sess.Order().Total); got != "$10.26" {
		t.Fatalf("total = %s, want $10.26", got)
	}
	if view := m.View(); !strings.Contains(view, "Spicy Potatoes") || !strings.Contains(view, "$10.26") {
		t.Fatalf("checkout view missing order lines:\n%s", view)
	}

	next, cmd := m.Update(keyEnter)
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("submit should return a status command")
	}
	m = send(t, m, cmd())
	if sess.Stage() != flow.Start || !sess.Order().IsEmpty() {
		t.Fatalf("submit should reset to an empty Start, got %v %+v", sess.Stage(), sess.Order())
	}
	status, isErr := m.Status()
	if isErr || !strings.Contains(status, "$10.26") {
		t.Fatalf("unexpected status %q (err=%v)", status, isErr)
	}
	if sess.OrdersPlaced() != 1 {
		t.Fatalf("expected one placed order")
	}
}

func TestNextRequiresSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyEnter, runes("n"))
	if m.Session().Stage() != flow.EntreeMenu {
		t.Fatalf("next without a selection must stay on the menu")
	}
	status, isErr := m.Status()
	if !isErr || status != errChooseFirst.Error() {
		t.Fatalf("expected choose-first error, got %q", status)
	}
}

func TestCancelFromMenuAndCheckout(t *testing.T) {
	for _, cancelKey := range []tea.KeyMsg{keyEsc, runes("c")} {
		m := newTestModel(t)
		m = press(t, m, keyEnter, keyEnter, runes("n"))
		m = press(t, m, cancelKey)
		if m.Session().Stage() != flow.Start || !m.Session().Order().IsEmpty() {
			t.Fatalf("cancel from menu should reset, got %v", m.Session().Stage())
		}

		m = press(t, m, keyEnter, keyEnter, runes("n"), keyEnter, runes("n"), keyEnter, runes("n"))
		if m.Session().Stage() != flow.CheckOut {
			t.Fatalf("expected CheckOut, got %v", m.Session().Stage())
		}
		m = press(t, m, cancelKey)
		if m.Session().Stage() != flow.Start || !m.Session().Order().IsEmpty() {
			t.Fatalf("cancel from checkout should reset")
		}
		if status, _ := m.Status(); status != "Order cancelled" {
			t.Fatalf("unexpected status %q", status)
		}
	}
}

func TestBackRestoresCursorOnSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyEnter, keyDown, keyDown, keyEnter, runes("n"), keyBack)
	if m.Session().Stage() != flow.EntreeMenu {
		t.Fatalf("back should return to EntreeMenu, got %v", m.Session().Stage())
	}
	ms := m.menuScreen(menu.CategoryEntree)
	it, ok := ms.highlighted()
	if !ok || it.Name != "Mushroom Pasta" {
		t.Fatalf("cursor should rest on the selected item, got %q", it.Name)
	}
	if m.Session().Order().Entree.Name != "Mushroom Pasta" {
		t.Fatalf("back must not change the order")
	}
}

func TestCancelIgnoredOnStart(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyEsc, keyBack)
	if m.Session().Stage() != flow.Start {
		t.Fatalf("expected to stay on Start")
	}
	if status, _ := m.Status(); status != "Ready" {
		t.Fatalf("status should be untouched, got %q", status)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if next.(Model).View() != "Goodbye\n" {
		t.Fatalf("expected goodbye view")
	}
}

func TestHeaderShowsBackMarkerOffStart(t *testing.T) {
	m := newTestModel(t)
	if strings.Contains(renderHeader(m), "←") {
		t.Fatalf("Start must not show a back marker")
	}
	m = press(t, m, keyEnter)
	header := renderHeader(m)
	if !strings.Contains(header, "←") || !strings.Contains(header, "Choose Entree") {
		t.Fatalf("unexpected header %q", header)
	}
	if footer := renderFooter(m); !strings.Contains(footer, "cancel") || !strings.Contains(footer, "esc") {
		t.Fatalf("footer missing menu bindings: %q", footer)
	}
}

type failingCatalog struct{}

func (failingCatalog) Items(context.Context, menu.Category) ([]menu.Item, error) {
	return nil, errors.New("disk on fire")
}

func TestMenuLoadErrorSurfacesInStatus(t *testing.T) {
	sess := session.New(order.NewState(order.DefaultTaxRate))
	m := NewModel(context.Background(), sess, failingCatalog{}, Options{})
	next, cmd := m.Update(m.loadMenu(menu.CategoryEntree)())
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("expected an error status command")
	}
	if msg, ok := cmd().(StatusMsg); !ok || !msg.IsErr {
		t.Fatalf("expected error StatusMsg, got %#v", msg)
	}
	m = send(t, m, m.loadMenu(menu.CategoryEntree)())
	status, isErr := m.Status()
	if !isErr || !strings.Contains(status, "disk on fire") {
		t.Fatalf("expected load error in status, got %q", status)
	}
	m = press(t, m, keyEnter)
	if !strings.Contains(m.View(), "Loading entree menu") {
		t.Fatalf("empty menu should render a loading hint")
	}
}

func TestKeyRegistryScopes(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if !reg.IsAction(keyEnter, actionNext, scopeStart) {
		t.Fatalf("enter should start the order")
	}
	if !reg.IsAction(keyEnter, actionSelect, scopeMenu) {
		t.Fatalf("enter should select on menus")
	}
	if reg.IsAction(keyEsc, actionCancel, scopeStart) {
		t.Fatalf("cancel is not bound on Start")
	}
	if !reg.IsAction(runes("q"), actionQuit, scopeCheckOut) {
		t.Fatalf("q should quit everywhere")
	}
	if ScopeFor(flow.SideDishMenu) != scopeMenu || ScopeFor(flow.CheckOut) != scopeCheckOut {
		t.Fatalf("unexpected scope mapping")
	}
}
