// Package letter defines the closed set of letters the toy reacts to.
package letter

import "strings"

// Letter is one of the 26 latin letters, A is zero.
type Letter uint8

const (
	A Letter = iota
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
)

// Count is the number of letters.
const Count = 26

// All returns every letter in alphabetical order.
func All() []Letter {
	all := make([]Letter, Count)
	for i := range all {
		all[i] = Letter(i)
	}
	return all
}

// Parse accepts a single ASCII letter of either case.
func Parse(s string) (Letter, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	switch {
	case c >= 'a' && c <= 'z':
		return Letter(c - 'a'), true
	case c >= 'A' && c <= 'Z':
		return Letter(c - 'A'), true
	}
	return 0, false
}

// Valid reports whether l is inside A..Z.
func (l Letter) Valid() bool {
	return l < Count
}

// String returns the lowercase letter, which is also the name of the letter's
// sound directory.
func (l Letter) String() string {
	if !l.Valid() {
		return "?"
	}
	return string(rune('a' + l))
}

// Upper returns the uppercase letter as shown on screen.
func (l Letter) Upper() string {
	return strings.ToUpper(l.String())
}
