package flow

// Sequencer tracks the current stage and the stages visited to reach it.
// The bottom of the stack is always Start.
type Sequencer struct {
	stack []Stage
}

func NewSequencer() *Sequencer {
	return &Sequencer{stack: []Stage{Start}}
}

// Current returns the stage on top of the stack.
func (q *Sequencer) Current() Stage {
	if len(q.stack) == 0 {
		return Start
	}
	return q.stack[len(q.stack)-1]
}

// CanNavigateBack reports whether a back control should be offered.
func (q *Sequencer) CanNavigateBack() bool {
	return q.Current() != Start
}

// Depth returns the number of stages on the stack.
func (q *Sequencer) Depth() int {
	return max(1, len(q.stack))
}

// History returns the stack from Start to the current stage.
func (q *Sequencer) History() []Stage {
	if len(q.stack) == 0 {
		return []Stage{Start}
	}
	return append([]Stage(nil), q.stack...)
}

// Next moves forward one stage. From CheckOut it completes the order and
// returns to Start, exactly like Cancel.
func (q *Sequencer) Next() Stage {
	cur := q.Current()
	if cur == CheckOut {
		return q.Cancel()
	}
	q.push(cur + 1)
	return q.Current()
}

// Cancel returns directly to Start, dropping the history.
func (q *Sequencer) Cancel() Stage {
	q.stack = []Stage{Start}
	return Start
}

// Back pops one stage. It is a no-op at Start.
func (q *Sequencer) Back() Stage {
	if len(q.stack) > 1 {
		q.stack = q.stack[:len(q.stack)-1]
	}
	return q.Current()
}

// Navigate jumps to the stage named by route, rebuilding the history as the
// forward path up to it. Unknown routes land on Start.
func (q *Sequencer) Navigate(route string) Stage {
	target := ParseStage(route)
	q.stack = q.stack[:0]
	for s := Start; s <= target; s++ {
		q.push(s)
	}
	return q.Current()
}

func (q *Sequencer) push(s Stage) {
	if len(q.stack) == 0 && s != Start {
		q.stack = append(q.stack, Start)
	}
	q.stack = append(q.stack, s)
}
