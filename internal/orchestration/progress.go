package orchestration

import (
	"time"

	"github.com/agbru/karatsuba/internal/format"
	"github.com/agbru/karatsuba/internal/progress"
)

// ProgressAggregator folds the updates of concurrent strategy runs into one
// average with a smoothed ETA. A single display goroutine owns it.
type ProgressAggregator struct {
	state *format.ProgressWithETA
}

// AggregatedProgress is the view after one update.
type AggregatedProgress struct {
	CalculatorIndex int
	Value           float64 // raw value of the update
	AverageProgress float64
	ETA             time.Duration
}

// NewProgressAggregator returns nil when there is nothing to track.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewProgressWithETA(numCalculators)}
}

// Update records one update.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avg, eta := a.state.UpdateWithETA(update.CalculatorIndex, update.Value)
	return AggregatedProgress{
		CalculatorIndex: update.CalculatorIndex,
		Value:           update.Value,
		AverageProgress: avg,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average without recording anything.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current estimate without recording anything.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// DrainChannel discards updates until progressChan is closed.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
