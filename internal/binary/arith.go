package binary

// Add returns a + b using a right-to-left ripple carry over the aligned
// operands. The result has length max(len(a), len(b)), or one more when a
// final carry occurs. Leading zeros introduced by alignment are kept.
func Add(a, b Digits) Digits {
	a, b = AlignLengths(a, b)
	n := len(a)

	// Written back to front; out[0] holds the final carry slot.
	out := make(Digits, n+1)
	var carry byte
	for i := n - 1; i >= 0; i-- {
		sum := a[i] + b[i] + carry
		out[i+1] = sum & 1
		carry = sum >> 1
	}
	if carry == 0 {
		return out[1:]
	}
	out[0] = carry
	return out
}

// Subtract returns a - b using a right-to-left ripple borrow over the aligned
// operands, with leading zeros stripped (minimum length 1).
//
// The caller must guarantee a >= b. When it does not, the result is
// meaningless but every digit stays in range and Subtract does not panic.
func Subtract(a, b Digits) Digits {
	a, b = AlignLengths(a, b)
	n := len(a)

	out := make(Digits, n)
	var borrow int
	for i := n - 1; i >= 0; i-- {
		sub := int(a[i]) - int(b[i]) - borrow
		if sub < 0 {
			sub += 2
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(sub)
	}
	return StripLeadingZeros(out)
}

// ShiftLeft returns d with n zero digits appended, i.e. d * 2^n.
// The result never aliases d, including when n == 0.
func ShiftLeft(d Digits, n int) Digits {
	if n < 0 {
		n = 0
	}
	out := make(Digits, len(d)+n)
	copy(out, d)
	return out
}
