package mathutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anfomin/helperscore/mathutil"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, mathutil.Clamp(5, 0, 10))
	assert.Equal(t, 0, mathutil.Clamp(-3, 0, 10))
	assert.Equal(t, 10, mathutil.Clamp(42, 0, 10))
	assert.Equal(t, 1.5, mathutil.Clamp(2.0, 0.0, 1.5))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 1, mathutil.Min(3, 1, 2))
	assert.Equal(t, 3, mathutil.Max(3, 1, 2))
	assert.Equal(t, 7, mathutil.Min(7))
	assert.Equal(t, "a", mathutil.Min("b", "a", "c"))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, mathutil.Abs(-3))
	assert.Equal(t, 3, mathutil.Abs(3))
	assert.Equal(t, 1.5, mathutil.Abs(-1.5))
	assert.Equal(t, int8(5), mathutil.Abs(int8(-5)))
}
