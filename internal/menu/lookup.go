package menu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownItem is wrapped by every lookup miss.
var ErrUnknownItem = errors.New("unknown menu item")

// NotFoundError reports a lookup miss and the closest known name, if any.
type NotFoundError struct {
	Name       string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s %q (did you mean %q?)", ErrUnknownItem, e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%s %q", ErrUnknownItem, e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrUnknownItem }

// Find returns the item whose name matches name, ignoring case and surrounding space.
func Find(items []Item, name string) (Item, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, it := range items {
		if strings.ToUpper(it.Name) == want {
			return it, nil
		}
	}
	return Item{}, &NotFoundError{Name: name, Suggestion: suggest(items, want)}
}

// suggest picks the nearest name, rejecting anything further than a third of its length.
func suggest(items []Item, want string) string {
	if want == "" {
		return ""
	}
	best := ""
	bestDist := -1
	for _, it := range items {
		cand := strings.ToUpper(it.Name)
		dist := levenshtein.ComputeDistance(want, cand)
		if dist*3 > max(len(want), len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = it.Name, dist
		}
	}
	return best
}
