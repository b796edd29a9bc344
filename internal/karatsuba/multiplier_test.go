package karatsuba

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/karatsuba/internal/binary"
)

// oracle computes x*y with math/big and returns it in normalized binary.
func oracle(x, y string) string {
	a, _ := new(big.Int).SetString(x, 2)
	b, _ := new(big.Int).SetString(y, 2)
	return new(big.Int).Mul(a, b).Text(2)
}

func normalized(d binary.Digits) string {
	return binary.StripLeadingZeros(d).String()
}

func TestMultiplyScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{"ten times fifteen", "1010", "1111", "10010110"},
		{"zero operand", "0", "1111", "0"},
		{"one times one", "1", "1", "1"},
		{"seventeen digits times two", "11111111111111111", "10", "111111111111111110"},
		{"leading zeros in input", "0001010", "001111", "10010110"},
		{"both zero", "000", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Multiply(binary.MustParse(tt.x), binary.MustParse(tt.y))
			assert.Equal(t, tt.want, normalized(got))
		})
	}
}

// TestThresholdBoundary checks that results agree on both sides of the
// recursion cutoff and that the recursive path is really taken above it.
func TestThresholdBoundary(t *testing.T) {
	t.Parallel()
	for _, n := range []int{DefaultThreshold - 1, DefaultThreshold, DefaultThreshold + 1, 2 * DefaultThreshold} {
		x := strings.Repeat("1", n)
		y := "1" + strings.Repeat("01", (n-1)/2) + strings.Repeat("1", (n-1)%2)
		require.Len(t, y, n)

		m := New(Options{})
		got := m.Multiply(binary.MustParse(x), binary.MustParse(y))
		assert.Equal(t, oracle(x, y), normalized(got), "n=%d", n)

		stats := m.Stats()
		if n <= DefaultThreshold {
			assert.Zero(t, stats.RecursiveCalls, "n=%d must use the base case", n)
		} else {
			assert.NotZero(t, stats.RecursiveCalls, "n=%d must recurse", n)
		}
	}
}

func TestThresholdUsesSignificantLength(t *testing.T) {
	t.Parallel()
	x := strings.Repeat("0", 19) + "1"
	y := strings.Repeat("1", 20)

	m := New(Options{})
	got := m.Multiply(binary.MustParse(x), binary.MustParse(y))
	assert.Equal(t, oracle(x, y), normalized(got))
	assert.Zero(t, m.Stats().RecursiveCalls, "a zero-padded operand is compared by its significant length")
}

func TestMultiplyDirect(t *testing.T) {
	t.Parallel()
	tests := []struct{ x, y string }{
		{"1010", "1111"},
		{"0", "1"},
		{"1", "0"},
		{"1111111111", "1"},
		{strings.Repeat("1", 70), strings.Repeat("10", 40)},
	}
	for _, tt := range tests {
		got := MultiplyDirect(binary.MustParse(tt.x), binary.MustParse(tt.y))
		assert.Equal(t, oracle(tt.x, tt.y), got.String(), "%s*%s", tt.x, tt.y)
	}
}

type goldenCase struct {
	Name    string `json:"name"`
	X       string `json:"x"`
	Y       string `json:"y"`
	Product string `json:"product"`
}

func loadGolden(t *testing.T) []goldenCase {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "products.golden.json"))
	require.NoError(t, err)
	var file struct {
		Cases []goldenCase `json:"cases"`
	}
	require.NoError(t, json.Unmarshal(data, &file))
	require.NotEmpty(t, file.Cases)
	return file.Cases
}

func TestMultiplyGolden(t *testing.T) {
	t.Parallel()
	configs := map[string]Options{
		"default":    {},
		"cutoff-1":   {Threshold: 1},
		"cutoff-4":   {Threshold: 4},
		"cutoff-64":  {Threshold: 64},
		"parallel":   {ParallelThreshold: MinParallelThreshold},
		"parallel-4": {Threshold: 4, ParallelThreshold: 1},
	}
	cases := loadGolden(t)
	for name, opts := range configs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			m := New(opts)
			for _, c := range cases {
				got := m.Multiply(binary.MustParse(c.X), binary.MustParse(c.Y))
				assert.Equal(t, c.Product, normalized(got), c.Name)
			}
		})
	}
}

func TestMultiplyDoesNotMutateOperands(t *testing.T) {
	t.Parallel()
	xs := "1" + strings.Repeat("0110", 20)
	ys := strings.Repeat("1", 50)
	x, y := binary.MustParse(xs), binary.MustParse(ys)

	New(Options{ParallelThreshold: 1}).Multiply(x, y)

	assert.Equal(t, xs, x.String())
	assert.Equal(t, ys, y.String())
}

func TestMultiplierConcurrentUse(t *testing.T) {
	t.Parallel()
	m := New(Options{ParallelThreshold: MinParallelThreshold})
	cases := loadGolden(t)

	var wg sync.WaitGroup
	errs := make(chan string, len(cases))
	for _, c := range cases {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := normalized(m.Multiply(binary.MustParse(c.X), binary.MustParse(c.Y)))
			if got != c.Product {
				errs <- c.Name
			}
		}()
	}
	wg.Wait()
	close(errs)
	for name := range errs {
		t.Errorf("%s: mismatch under concurrent use", name)
	}
}

func TestMultiplyContextCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	x := binary.MustParse(strings.Repeat("1", 200))
	_, err := New(Options{}).MultiplyContext(ctx, x, x, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestMultiplyContextCanceledInBaseCase(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		opts Options
		x, y binary.Digits
	}{
		{"direct over full operands", Options{Threshold: math.MaxInt},
			binary.MustParse(strings.Repeat("1", 2000)), binary.MustParse(strings.Repeat("1", 2000))},
		{"long operand against short operand", Options{},
			binary.MustParse(strings.Repeat("1", 100000)), binary.MustParse(strings.Repeat("1", 16))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			_, err := New(tt.opts).MultiplyContext(ctx, tt.x, tt.y, func(float64) { cancel() })
			require.Error(t, err)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestMultiplyContextProgress(t *testing.T) {
	t.Parallel()

	t.Run("recursive root reports thirds then completion", func(t *testing.T) {
		t.Parallel()
		var values []float64
		x := binary.MustParse(strings.Repeat("1", 64))
		_, err := New(Options{}).MultiplyContext(context.Background(), x, x, func(v float64) {
			values = append(values, v)
		})
		require.NoError(t, err)
		require.NotEmpty(t, values)
		assert.InDelta(t, 1.0/3, values[0], 1e-9)
		assert.Equal(t, 1.0, values[len(values)-1])
		for i := 1; i < len(values); i++ {
			assert.GreaterOrEqual(t, values[i], values[i-1], "progress must not go backwards")
		}
	})

	t.Run("base case root reports per digit", func(t *testing.T) {
		t.Parallel()
		var calls int
		var last float64
		x := binary.MustParse("1011")
		_, err := New(Options{}).MultiplyContext(context.Background(), x, x, func(v float64) {
			calls++
			last = v
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, calls, 4)
		assert.Equal(t, 1.0, last)
	})
}

func TestStats(t *testing.T) {
	t.Parallel()
	m := New(Options{})
	x := binary.MustParse(strings.Repeat("1", 64))
	m.Multiply(x, x)

	stats := m.Stats()
	assert.NotZero(t, stats.RecursiveCalls)
	assert.NotZero(t, stats.BaseCases)
	assert.GreaterOrEqual(t, stats.MaxDepth, 2)

	m.ResetStats()
	assert.Equal(t, Stats{}, m.Stats())
}

func TestOptions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, DefaultThreshold, Options{}.threshold())
	assert.Equal(t, DefaultThreshold, Options{Threshold: -3}.threshold())
	assert.Equal(t, 8, Options{Threshold: 8}.threshold())

	assert.False(t, Options{}.parallelAt(1 << 20))
	assert.False(t, Options{ParallelThreshold: 1}.parallelAt(MinParallelThreshold-1))
	assert.True(t, Options{ParallelThreshold: 1}.parallelAt(MinParallelThreshold))
	assert.False(t, Options{ParallelThreshold: 4096}.parallelAt(4095))
	assert.Equal(t, Options{Threshold: 5}, New(Options{Threshold: 5}).Options())
}

func TestExecuteParallel3PropagatesError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	err := executeParallel3(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) error { return boom },
		func(context.Context) error { return nil },
	)
	assert.ErrorIs(t, err, boom)
}
