// Package tracker decides which letter is active from the keys held down.
//
// The first letter pressed stays active while any letter key is held, even if
// other letters are pressed later. The queue of pressed letters is dropped as a
// whole only once every letter key is released; releasing one of several held
// keys does not remove it.
package tracker

import "grapheme/internal/letter"

// Outcome classifies one frame of input.
type Outcome int

const (
	Idle      Outcome = iota // no letter key held
	Active                   // Result.Letter is the active letter
	Cancelled                // cancel key held, show nothing
)

func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case Active:
		return "active"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single Update.
type Result struct {
	Outcome Outcome
	Letter  letter.Letter // valid when Outcome is Active
}

// Code encodes the result as an integer: letter ordinal + 1 when active,
// 0 when idle and -1 when cancelled.
func (r Result) Code() int {
	switch r.Outcome {
	case Active:
		return int(r.Letter) + 1
	case Cancelled:
		return -1
	default:
		return 0
	}
}

// Tracker owns the press queue.
type Tracker struct {
	queue Queue
}

// New creates a tracker with an empty queue.
func New() *Tracker {
	return &Tracker{}
}

// Update applies one frame of held keys to the queue and reports the result.
// The queue is updated even when the cancel key is held.
func (t *Tracker) Update(keys Keys) Result {
	held := 0
	for _, l := range letter.All() {
		if !keys.Held(l) {
			continue
		}
		held++
		t.queue.Push(l)
	}

	if held == 0 {
		t.queue.Clear()
	}

	if keys.Cancel {
		return Result{Outcome: Cancelled}
	}
	if front, ok := t.queue.Front(); ok {
		return Result{Outcome: Active, Letter: front}
	}
	return Result{Outcome: Idle}
}

// Front returns the active letter, if any.
func (t *Tracker) Front() (letter.Letter, bool) {
	return t.queue.Front()
}

// Len returns the number of queued letters.
func (t *Tracker) Len() int {
	return t.queue.Len()
}

// Queued returns a copy of the press queue.
func (t *Tracker) Queued() []letter.Letter {
	return t.queue.Letters()
}
