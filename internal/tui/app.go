package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lunchtray/internal/flow"
	"github.com/jask/lunchtray/internal/logging"
	"github.com/jask/lunchtray/internal/menu"
	"github.com/jask/lunchtray/internal/session"
)

// Screen renders one stage and turns key actions into session calls.
type Screen interface {
	Stage() flow.Stage
	HandleAction(m *Model, action string, msg tea.KeyMsg) tea.Cmd
	View(m *Model, width, height int) string
}

// Options configures the presentation layer.
type Options struct {
	Currency string
	Keys     []KeyBinding
	Logger   *logging.Logger
}

type Model struct {
	ctx       context.Context
	session   *session.Session
	catalog   menu.Catalog
	screens   map[flow.Stage]Screen
	keys      *KeyRegistry
	currency  string
	log       *logging.Logger
	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

func NewModel(ctx context.Context, sess *session.Session, catalog menu.Catalog, opts Options) Model {
	if opts.Currency == "" {
		opts.Currency = "$"
	}
	if opts.Keys == nil {
		opts.Keys = DefaultKeyBindings()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	m := Model{
		ctx:      ctx,
		session:  sess,
		catalog:  catalog,
		keys:     NewKeyRegistry(opts.Keys),
		currency: opts.Currency,
		log:      opts.Logger,
		status:   "Ready",
		width:    80,
		height:   24,
	}
	m.screens = map[flow.Stage]Screen{
		flow.Start:    startScreen{},
		flow.CheckOut: checkoutScreen{},
	}
	for _, s := range flow.Stages() {
		if cat, ok := s.Category(); ok {
			m.screens[s] = newMenuScreen(s, cat, opts.Currency)
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(menu.Categories()))
	for _, c := range menu.Categories() {
		cmds = append(cmds, m.loadMenu(c))
	}
	return tea.Batch(cmds...)
}

func (m Model) loadMenu(c menu.Category) tea.Cmd {
	return func() tea.Msg {
		items, err := m.catalog.Items(m.ctx, c)
		return menuLoadedMsg{Category: c, Items: items, Err: err}
	}
}

// Session exposes the underlying ordering session.
func (m Model) Session() *session.Session { return m.session }

// Status returns the status bar text and whether it is an error.
func (m Model) Status() (string, bool) { return m.status, m.statusErr }

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	return ScopeFor(m.session.Stage())
}

func (m Model) activeScreen() Screen {
	if s, ok := m.screens[m.session.Stage()]; ok {
		return s
	}
	return m.screens[flow.Start]
}

func (m Model) menuScreen(c menu.Category) *menuScreen {
	for _, s := range m.screens {
		if ms, ok := s.(*menuScreen); ok && ms.category == c {
			return ms
		}
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case menuLoadedMsg:
		if msg.Err != nil {
			m.log.Error("load menu failed", "category", string(msg.Category), "error", msg.Err.Error())
			return m, ErrorCmd(fmt.Errorf("load %s menu: %w", msg.Category.Label(), msg.Err))
		}
		if ms := m.menuScreen(msg.Category); ms != nil {
			ms.setItems(msg.Items)
		}
		return m, nil
	case tea.KeyMsg:
		scope := m.ActiveScope()
		action, ok := m.keys.ActionFor(msg, scope)
		if !ok {
			return m, nil
		}
		m.log.Debug("key action", "action", action, "stage", m.session.Stage().String())
		if action == actionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		cmd := m.activeScreen().HandleAction(&m, action, msg)
		return m, cmd
	}
	return m, nil
}

// cancel abandons the order from any stage.
func (m *Model) cancel() {
	if m.session.Stage() == flow.Start {
		return
	}
	m.session.Cancel()
	m.SetStatus("Order cancelled")
}

func (m *Model) back() {
	m.session.Back()
	m.syncCursor()
}

func (m *Model) next() {
	m.session.Next()
	m.syncCursor()
}

// syncCursor points the list of the new stage at its current selection.
func (m *Model) syncCursor() {
	if ms, ok := m.activeScreen().(*menuScreen); ok {
		ms.refresh(m.session.Selected())
	}
}
