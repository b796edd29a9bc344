package karatsuba

import "sync/atomic"

// Stats summarizes the shape of a recursion tree.
type Stats struct {
	// RecursiveCalls counts nodes that split their operands.
	RecursiveCalls uint64
	// BaseCases counts nodes resolved by direct multiplication, including
	// zero operands.
	BaseCases uint64
	// MaxDepth is the deepest recursion level reached; the root is level 0.
	MaxDepth int
}

// statsCollector accumulates Stats from concurrently running sub-products.
type statsCollector struct {
	calls    atomic.Uint64
	bases    atomic.Uint64
	maxDepth atomic.Int64
}

func (c *statsCollector) recordCall(depth int) {
	c.calls.Add(1)
	c.observeDepth(depth)
}

func (c *statsCollector) recordBaseCase(depth int) {
	c.bases.Add(1)
	c.observeDepth(depth)
}

func (c *statsCollector) observeDepth(depth int) {
	d := int64(depth)
	for {
		cur := c.maxDepth.Load()
		if d <= cur || c.maxDepth.CompareAndSwap(cur, d) {
			return
		}
	}
}

func (c *statsCollector) snapshot() Stats {
	return Stats{
		RecursiveCalls: c.calls.Load(),
		BaseCases:      c.bases.Load(),
		MaxDepth:       int(c.maxDepth.Load()),
	}
}

func (c *statsCollector) reset() {
	c.calls.Store(0)
	c.bases.Store(0)
	c.maxDepth.Store(0)
}
