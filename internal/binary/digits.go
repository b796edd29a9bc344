package binary

import (
	"fmt"
	"strings"
)

// Digits is a binary digit sequence, most significant digit first.
type Digits []byte

// ParseError reports an input string that is not a binary digit sequence.
type ParseError struct {
	// Input is the rejected string.
	Input string
	// Pos is the byte offset of the first offending character, or -1 when
	// the input is empty.
	Pos int
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return "empty input is not a binary number"
	}
	return fmt.Sprintf("invalid binary digit %q at position %d in %q", e.Input[e.Pos], e.Pos, e.Input)
}

// IsBinaryDigitSequence reports whether s is non-empty and made only of the
// characters '0' and '1'.
func IsBinaryDigitSequence(s string) bool {
	return invalidIndex(s) == len(s) && s != ""
}

// invalidIndex returns the index of the first character that is not '0' or
// '1', or len(s) if there is none.
func invalidIndex(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return i
		}
	}
	return len(s)
}

// Parse converts a string of '0' and '1' characters into Digits.
// Leading zeros are preserved.
func Parse(s string) (Digits, error) {
	if s == "" {
		return nil, &ParseError{Input: s, Pos: -1}
	}
	if i := invalidIndex(s); i < len(s) {
		return nil, &ParseError{Input: s, Pos: i}
	}
	d := make(Digits, len(s))
	for i := 0; i < len(s); i++ {
		d[i] = s[i] - '0'
	}
	return d, nil
}

// MustParse is like Parse but panics on invalid input.
// It is intended for tests and package-level literals.
func MustParse(s string) Digits {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// String formats d as a string of '0' and '1' characters. An empty sequence
// formats as "0".
func (d Digits) String() string {
	if len(d) == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(len(d))
	for _, v := range d {
		b.WriteByte('0' + v)
	}
	return b.String()
}

// PadLeft returns a sequence of length n made by prepending zero digits to d.
// When n <= len(d), d is returned unchanged; PadLeft never truncates.
func PadLeft(d Digits, n int) Digits {
	if n <= len(d) {
		return d
	}
	out := make(Digits, n)
	copy(out[n-len(d):], d)
	return out
}

// AlignLengths pads a and b to the length of the longer one.
func AlignLengths(a, b Digits) (Digits, Digits) {
	n := max(len(a), len(b))
	return PadLeft(a, n), PadLeft(b, n)
}

// StripLeadingZeros returns the suffix of d that starts at its first non-zero
// digit. If d has no non-zero digit the result is the single digit 0.
// The result never has length 0.
func StripLeadingZeros(d Digits) Digits {
	for i, v := range d {
		if v != 0 {
			return d[i:]
		}
	}
	return Digits{0}
}

// IsZero reports whether d represents the value 0.
func IsZero(d Digits) bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}

// Compare compares the values of a and b, ignoring leading zeros.
// It returns -1 if a < b, 0 if a == b and +1 if a > b.
func Compare(a, b Digits) int {
	a, b = StripLeadingZeros(a), StripLeadingZeros(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b represent the same value.
func Equal(a, b Digits) bool {
	return Compare(a, b) == 0
}
