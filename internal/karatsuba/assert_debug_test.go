//go:build debug

package karatsuba

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agbru/karatsuba/internal/binary"
)

func TestAssertCrossTerm(t *testing.T) {
	t.Parallel()
	assert.True(t, assertionsEnabled)

	z2 := binary.MustParse("11")
	z0 := binary.MustParse("1")

	assert.NotPanics(t, func() { assertCrossTerm(binary.MustParse("100"), z2, z0) })
	assert.NotPanics(t, func() { assertCrossTerm(binary.MustParse("111"), z2, z0) })
	assert.Panics(t, func() { assertCrossTerm(binary.MustParse("11"), z2, z0) })
}
