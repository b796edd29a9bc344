// Package progress defines the progress reporting types shared by the
// multiplication strategies, the orchestration layer and the CLI.
package progress

// ProgressUpdate is a progress notification sent by a running strategy.
type ProgressUpdate struct {
	// CalculatorIndex identifies the strategy in a concurrent run.
	CalculatorIndex int
	// Value is the normalized progress, from 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives normalized progress values (0.0 to 1.0).
// Implementations must be cheap and must not block.
type ProgressCallback func(value float64)

// Report invokes cb with value clamped to [0, 1]. A nil callback is ignored.
func (cb ProgressCallback) Report(value float64) {
	if cb == nil {
		return
	}
	switch {
	case value < 0:
		value = 0
	case value > 1:
		value = 1
	}
	cb(value)
}

// ChannelCallback returns a callback that forwards updates for the given
// calculator index to ch without blocking. Updates are dropped when the
// channel is full.
func ChannelCallback(ch chan<- ProgressUpdate, index int) ProgressCallback {
	if ch == nil {
		return nil
	}
	return func(value float64) {
		select {
		case ch <- ProgressUpdate{CalculatorIndex: index, Value: value}:
		default:
		}
	}
}
