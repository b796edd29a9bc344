//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/karatsuba/internal/format"
	"github.com/agbru/karatsuba/internal/orchestration"
	"github.com/agbru/karatsuba/internal/progress"
)

const (
	// TruncationLimit is the product length from which the details section
	// adds a preview showing only the edges of the product.
	TruncationLimit = 100
	// DisplayEdges is the number of digits kept at each end of a product
	// preview.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so that DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress renders a spinner followed by the average progress of all
// running strategies and an ETA, until progressChan is closed. It prints a
// final progress line and calls wg.Done before returning.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numCalculators)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(" " + format.FormatProgressBarWithETA(0, 0, ProgressBarWidth))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var (
		avg float64
		eta time.Duration
	)
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				final := agg.CalculateAverage()
				fmt.Fprintf(out, "\r[%s] %6.2f%%\n", format.ProgressBar(final, ProgressBarWidth), final*100)
				return
			}
			p := agg.Update(update)
			avg, eta = p.AverageProgress, p.ETA
		case <-ticker.C:
			s.UpdateSuffix(" " + progressLine(avg, eta))
		}
	}
}

func progressLine(avg float64, eta time.Duration) string {
	return format.FormatProgressBarWithETA(avg, eta, ProgressBarWidth)
}
