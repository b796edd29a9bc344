// Package binary implements arithmetic primitives over binary digit sequences.
//
// A [Digits] value holds the digits of a non-negative integer in base 2, most
// significant digit first. Every element is the numeric value 0 or 1 (not the
// ASCII characters). Intermediate values may carry leading zero digits;
// [StripLeadingZeros] produces the normalized form.
//
// All operations are pure: inputs are never mutated and every result is a
// freshly allocated sequence, or the unchanged input where documented.
// Passing sequences with elements other than 0 or 1 results in undefined
// (but non-crashing) behavior; use [Parse] at the boundary.
package binary
