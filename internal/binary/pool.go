// This file provides pooled scratch buffers for in-place digit accumulation.

package binary

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Scratch Pools
// ─────────────────────────────────────────────────────────────────────────────

// scratchPools pools digit buffers by size class. Size classes are powers of
// 4 starting from 4^3 = 64 digits, so bits.Len maps a size to its class.
var scratchPools = [...]sync.Pool{
	{New: func() any { return make(Digits, 64) }},
	{New: func() any { return make(Digits, 256) }},
	{New: func() any { return make(Digits, 1024) }},
	{New: func() any { return make(Digits, 4096) }},
	{New: func() any { return make(Digits, 16384) }},
	{New: func() any { return make(Digits, 65536) }},
	{New: func() any { return make(Digits, 262144) }},
	{New: func() any { return make(Digits, 1048576) }},
}

// scratchSizes defines the size classes for scratchPools.
var scratchSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576}

// scratchPoolIndex returns the pool index for a given size, or -1 if the
// size is too large for pooling.
func scratchPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > scratchSizes[len(scratchSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// AcquireScratch returns a zeroed buffer of exactly size digits. Buffers that
// fit a size class come from a pool and should be handed back with
// ReleaseScratch once no longer referenced:
//
//	acc := binary.AcquireScratch(n)
//	defer binary.ReleaseScratch(acc)
func AcquireScratch(size int) Digits {
	idx := scratchPoolIndex(size)
	if idx < 0 {
		return make(Digits, size)
	}
	buf := scratchPools[idx].Get().(Digits)
	clear(buf)
	return buf[:size]
}

// ReleaseScratch returns a buffer obtained from AcquireScratch to its pool.
// Buffers whose capacity does not match a size class are left to the GC.
// Safe to call with nil.
func ReleaseScratch(d Digits) {
	if d == nil {
		return
	}
	c := cap(d)
	idx := scratchPoolIndex(c)
	if idx >= 0 && scratchSizes[idx] == c {
		scratchPools[idx].Put(d[:c])
	}
}

// AccumulateShifted adds x * 2^shift into acc in place and returns the carry
// that fell off the most significant end (0 when acc is wide enough).
//
// acc must satisfy len(acc) >= len(x)+shift. It is the fused form of
// acc = Add(acc, ShiftLeft(x, shift)) for a pre-sized accumulator.
func AccumulateShifted(acc, x Digits, shift int) byte {
	j := len(acc) - 1 - shift
	var carry byte
	for i := len(x) - 1; i >= 0; i-- {
		sum := acc[j] + x[i] + carry
		acc[j] = sum & 1
		carry = sum >> 1
		j--
	}
	for carry != 0 && j >= 0 {
		sum := acc[j] + carry
		acc[j] = sum & 1
		carry = sum >> 1
		j--
	}
	return carry
}
