package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps estimates produced from very slow progress rates.
const maxETA = 24 * time.Hour

// ProgressState tracks the latest progress of several concurrent calculators.
// It is not safe for concurrent use; a single display goroutine owns it.
type ProgressState struct {
	progresses     []float64
	numCalculators int
}

// NewProgressState creates a state for numCalculators calculators.
func NewProgressState(numCalculators int) *ProgressState {
	if numCalculators < 0 {
		numCalculators = 0
	}
	return &ProgressState{
		progresses:     make([]float64, numCalculators),
		numCalculators: numCalculators,
	}
}

// Update records value for calculator index. Out of range indexes are
// ignored and values are clamped to [0, 1].
func (s *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(s.progresses) {
		return
	}
	s.progresses[index] = clamp01(value)
}

// CalculateAverage returns the mean progress over all calculators.
func (s *ProgressState) CalculateAverage() float64 {
	if s.numCalculators == 0 {
		return 0
	}
	var sum float64
	for _, p := range s.progresses {
		sum += p
	}
	return sum / float64(s.numCalculators)
}

// ProgressWithETA extends ProgressState with a smoothed progress rate used
// to estimate the remaining time.
type ProgressWithETA struct {
	*ProgressState
	numCalculators int
	startTime      time.Time
	progressRate   float64 // fraction per second
}

// NewProgressWithETA creates a tracker for numCalculators calculators.
func NewProgressWithETA(numCalculators int) *ProgressWithETA {
	return &ProgressWithETA{
		ProgressState:  NewProgressState(numCalculators),
		numCalculators: numCalculators,
		startTime:      time.Now(),
	}
}

// UpdateWithETA records value for calculator index and returns the new
// average progress and the estimated remaining time.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.Update(index, value)
	avg := p.CalculateAverage()

	if elapsed := time.Since(p.startTime).Seconds(); elapsed > 0 && avg > 0 {
		rate := avg / elapsed
		if p.progressRate == 0 {
			p.progressRate = rate
		} else {
			p.progressRate = 0.3*rate + 0.7*p.progressRate
		}
	}
	return avg, p.GetETA()
}

// GetETA returns the estimated remaining time, or 0 while no rate is known.
func (p *ProgressWithETA) GetETA() time.Duration {
	if p.progressRate <= 0 {
		return 0
	}
	remaining := 1 - p.CalculateAverage()
	if remaining <= 0 {
		return 0
	}
	seconds := remaining / p.progressRate
	if seconds > maxETA.Seconds() {
		return maxETA
	}
	return time.Duration(seconds * float64(time.Second))
}

// FormatETA renders an estimate as "45s", "2m30s" or "1h15m".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m, s := int(eta.Minutes()), int(eta.Seconds())%60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h, m := int(eta.Hours()), int(eta.Minutes())%60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders progress as a bar of length cells.
func ProgressBar(progress float64, length int) string {
	filled := int(clamp01(progress) * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar]  50.00% ETA: 30s".
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %6.2f%% ETA: %s", ProgressBar(progress, width), clamp01(progress)*100, FormatETA(eta))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
