package tracker

import "grapheme/internal/letter"

// Keys is the set of tracked keys currently held down.
type Keys struct {
	letters [letter.Count]bool
	Cancel  bool
}

// Set marks l as held or released.
func (k *Keys) Set(l letter.Letter, held bool) {
	if l.Valid() {
		k.letters[l] = held
	}
}

// Held reports whether l is held.
func (k Keys) Held(l letter.Letter) bool {
	return l.Valid() && k.letters[l]
}

// Count returns how many letter keys are held. Cancel is not counted.
func (k Keys) Count() int {
	n := 0
	for _, held := range k.letters {
		if held {
			n++
		}
	}
	return n
}

// Clear releases every key.
func (k *Keys) Clear() {
	*k = Keys{}
}

// KeysOf is a shorthand for a set with the given letters held.
func KeysOf(ls ...letter.Letter) Keys {
	var k Keys
	for _, l := range ls {
		k.Set(l, true)
	}
	return k
}
