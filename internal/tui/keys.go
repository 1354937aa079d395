package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/lunchtray/internal/flow"
)

const (
	actionQuit   = "quit"
	actionNext   = "next"
	actionSelect = "select"
	actionSubmit = "submit"
	actionCancel = "cancel"
	actionBack   = "back"
	actionUp     = "up"
	actionDown   = "down"
)

const (
	scopeStart    = "stage:Start"
	scopeMenu     = "stage:menu"
	scopeCheckOut = "stage:CheckOut"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// ActionFor returns the first action bound to msg in scope.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) (string, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, true
			}
		}
	}
	return "", false
}

func normalizeKey(k string) string {
	// The space bar reports itself as " ".
	if strings.TrimSpace(k) == "" {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// ScopeFor maps a stage to its key scope.
func ScopeFor(s flow.Stage) string {
	switch s {
	case flow.Start:
		return scopeStart
	case flow.CheckOut:
		return scopeCheckOut
	default:
		return scopeMenu
	}
}

func DefaultKeyBindings() []KeyBinding {
	nonStart := []string{scopeMenu, scopeCheckOut}
	return []KeyBinding{
		{Keys: []string{"enter", "n"}, Action: actionNext, Description: "start order", Scopes: []string{scopeStart}},
		{Keys: []string{"up", "k"}, Action: actionUp, Description: "up", Scopes: []string{scopeMenu}},
		{Keys: []string{"down", "j"}, Action: actionDown, Description: "down", Scopes: []string{scopeMenu}},
		{Keys: []string{"enter", " "}, Action: actionSelect, Description: "select", Scopes: []string{scopeMenu}},
		{Keys: []string{"n", "tab"}, Action: actionNext, Description: "next", Scopes: []string{scopeMenu}},
		{Keys: []string{"enter", "s"}, Action: actionSubmit, Description: "submit", Scopes: []string{scopeCheckOut}},
		{Keys: []string{"backspace", "b"}, Action: actionBack, Description: "back", Scopes: nonStart},
		{Keys: []string{"esc", "c"}, Action: actionCancel, Description: "cancel", Scopes: nonStart},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{"*"}},
	}
}
