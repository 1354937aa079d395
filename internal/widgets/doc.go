// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (boxed panes, aligned tables, line fitting)
//
// Not allowed here:
// - key handling, order state, or stage transitions
package widgets
