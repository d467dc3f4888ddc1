package tracker

import "grapheme/internal/letter"

// Queue is an ordered set of letters: insertion order is kept and a letter
// appears at most once.
type Queue struct {
	order  []letter.Letter
	member [letter.Count]bool
}

// Push appends l unless it is already queued. It reports whether l was added.
func (q *Queue) Push(l letter.Letter) bool {
	if !l.Valid() || q.member[l] {
		return false
	}
	q.member[l] = true
	q.order = append(q.order, l)
	return true
}

// Front returns the earliest queued letter.
func (q *Queue) Front() (letter.Letter, bool) {
	if len(q.order) == 0 {
		return 0, false
	}
	return q.order[0], true
}

// Contains reports whether l is queued.
func (q *Queue) Contains(l letter.Letter) bool {
	return l.Valid() && q.member[l]
}

// Len returns the number of queued letters.
func (q *Queue) Len() int {
	return len(q.order)
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.order = q.order[:0]
	q.member = [letter.Count]bool{}
}

// Letters returns a copy of the queue in order.
func (q *Queue) Letters() []letter.Letter {
	return append([]letter.Letter(nil), q.order...)
}
