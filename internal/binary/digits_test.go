package binary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBinaryDigitSequence(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"1", true},
		{"1010", true},
		{"0001", true},
		{"", false},
		{"102", false},
		{"10 1", false},
		{"-101", false},
		{"0b101", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsBinaryDigitSequence(tt.in), "input %q", tt.in)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("valid input keeps leading zeros", func(t *testing.T) {
		t.Parallel()
		d, err := Parse("00101")
		require.NoError(t, err)
		assert.Equal(t, Digits{0, 0, 1, 0, 1}, d)
		assert.Equal(t, "00101", d.String())
	})

	t.Run("invalid character reports position", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("102")
		require.Error(t, err)
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, 2, pe.Pos)
		assert.Contains(t, err.Error(), `"102"`)
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("")
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, -1, pe.Pos)
	})
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParse("12") })
}

func TestDigitsStringEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0", Digits{}.String())
}

func TestPadLeft(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"pads to length", "101", 6, "000101"},
		{"same length unchanged", "101", 3, "101"},
		{"shorter target never truncates", "10101", 2, "10101"},
		{"single zero", "0", 4, "0000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PadLeft(MustParse(tt.in), tt.n).String())
		})
	}
}

func TestPadLeftDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := MustParse("11")
	out := PadLeft(in, 4)
	out[3] = 0
	assert.Equal(t, "11", in.String())
}

func TestAlignLengths(t *testing.T) {
	t.Parallel()
	a, b := AlignLengths(MustParse("1"), MustParse("10110"))
	assert.Equal(t, "00001", a.String())
	assert.Equal(t, "10110", b.String())

	a, b = AlignLengths(MustParse("1111"), MustParse("1"))
	assert.Len(t, a, 4)
	assert.Len(t, b, 4)
}

func TestStripLeadingZeros(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"00101", "101"},
		{"101", "101"},
		{"0", "0"},
		{"0000", "0"},
		{"00000000000000000000", "0"},
		{"1", "1"},
		{"0001000", "1000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripLeadingZeros(MustParse(tt.in)).String(), "input %q", tt.in)
	}
	assert.Equal(t, Digits{0}, StripLeadingZeros(nil))
}

func TestCompare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b string
		want int
	}{
		{"0", "0000", 0},
		{"101", "00101", 0},
		{"110", "101", 1},
		{"11", "100", -1},
		{"1000", "111", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compare(MustParse(tt.a), MustParse(tt.b)), "%s vs %s", tt.a, tt.b)
	}
	assert.True(t, Equal(MustParse("0011"), MustParse("11")))
	assert.True(t, IsZero(MustParse("000")))
	assert.False(t, IsZero(MustParse("010")))
}
