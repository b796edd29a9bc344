package multiply

import "github.com/agbru/karatsuba/internal/binary"

// packBytes converts a digit sequence to a big-endian byte slice, the
// format accepted by the SetBytes method of arbitrary precision integers.
func packBytes(d binary.Digits) []byte {
	buf := make([]byte, (len(d)+7)/8)
	for i, j := len(d)-1, 0; i >= 0; i, j = i-1, j+1 {
		if d[i] != 0 {
			buf[len(buf)-1-j/8] |= 1 << (j % 8)
		}
	}
	return buf
}

// unpackBytes is the inverse of packBytes. The result is normalized; an
// empty buffer yields "0".
func unpackBytes(buf []byte) binary.Digits {
	d := make(binary.Digits, 8*len(buf))
	for i, b := range buf {
		for bit := 0; bit < 8; bit++ {
			d[8*i+bit] = (b >> (7 - bit)) & 1
		}
	}
	return binary.StripLeadingZeros(d)
}
