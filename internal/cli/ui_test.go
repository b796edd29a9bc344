package cli

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/agbru/karatsuba/internal/binary"
	"github.com/agbru/karatsuba/internal/cli/mocks"
	"github.com/agbru/karatsuba/internal/karatsuba"
	"github.com/agbru/karatsuba/internal/orchestration"
	"github.com/agbru/karatsuba/internal/progress"
)

func TestDisplayResult(t *testing.T) {
	t.Parallel()

	long := binary.MustParse("1" + strings.Repeat("0", 150) + "1")

	tests := []struct {
		name        string
		result      orchestration.CalculationResult
		opts        orchestration.PresentationOptions
		contains    []string
		notContains []string
	}{
		{
			name:        "Short product",
			result:      orchestration.CalculationResult{Name: "karatsuba", Product: binary.MustParse("10010110")},
			contains:    []string{"--- Result ---", "Result: 10010110\n"},
			notContains: []string{"Details", "Product preview"},
		},
		{
			name:        "Long product printed in full",
			result:      orchestration.CalculationResult{Name: "karatsuba", Product: long},
			contains:    []string{"Result: " + long.String() + "\n"},
			notContains: []string{"...", "Product preview"},
		},
		{
			name:     "Long product preview in details",
			result:   orchestration.CalculationResult{Name: "karatsuba", Product: long},
			opts:     orchestration.PresentationOptions{Details: true},
			contains: []string{"Result: " + long.String() + "\n", "Product preview:  1" + strings.Repeat("0", 24) + "..."},
		},
		{
			name: "Details",
			result: orchestration.CalculationResult{
				Name:     "karatsuba",
				Product:  binary.MustParse("10010110"),
				Duration: 2 * time.Millisecond,
				Stats:    &karatsuba.Stats{RecursiveCalls: 3, BaseCases: 9, MaxDepth: 2},
			},
			opts: orchestration.PresentationOptions{XDigits: 4, YDigits: 4, Details: true},
			contains: []string{
				"--- Details ---", "Algorithm:        karatsuba", "Calculation time: 2ms",
				"x=4 y=4", "Product digits:   8", "Recursive calls:  3", "Base cases:       9",
				"Max depth:        2", "Memory Stats:",
			},
		},
		{
			name:        "Details without stats",
			result:      orchestration.CalculationResult{Name: "mathbig", Product: binary.MustParse("1")},
			opts:        orchestration.PresentationOptions{XDigits: 1, YDigits: 1, Details: true},
			contains:    []string{"Product digits:   1", "Memory Stats:"},
			notContains: []string{"Recursive calls"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			DisplayResult(tt.result, tt.opts, &buf)
			output := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, output, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, output, s)
			}
		})
	}
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	rs := &realSpinner{spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))}

	assert.NotPanics(t, func() {
		rs.Start()
		rs.UpdateSuffix(" test")
		rs.Stop()
	})
}

func TestDisplayProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(...spinner.Option) Spinner { return mockS }

	gomock.InOrder(
		mockS.EXPECT().UpdateSuffix(gomock.Any()),
		mockS.EXPECT().Start(),
	)
	mockS.EXPECT().UpdateSuffix(gomock.Any()).AnyTimes()
	mockS.EXPECT().Stop().Times(1)

	progressChan := make(chan progress.ProgressUpdate)
	go func() {
		progressChan <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
		progressChan <- progress.ProgressUpdate{CalculatorIndex: 1, Value: 1}
		time.Sleep(ProgressRefreshRate + 50*time.Millisecond)
		progressChan <- progress.ProgressUpdate{CalculatorIndex: 0, Value: 1}
		close(progressChan)
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	var buf bytes.Buffer
	DisplayProgress(&wg, progressChan, 2, &buf)
	wg.Wait()

	assert.Contains(t, buf.String(), "100.00%")
}

func TestDisplayProgress_ZeroCalculators(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockS := mocks.NewMockSpinner(ctrl)

	originalNewSpinner := newSpinner
	defer func() { newSpinner = originalNewSpinner }()
	newSpinner = func(...spinner.Option) Spinner { return mockS }

	progressChan := make(chan progress.ProgressUpdate, 1)
	progressChan <- progress.ProgressUpdate{Value: 0.5}
	close(progressChan)

	var wg sync.WaitGroup
	wg.Add(1)
	var buf bytes.Buffer
	DisplayProgress(&wg, progressChan, 0, &buf)
	wg.Wait()

	assert.Empty(t, buf.String())
}
