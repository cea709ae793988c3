package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPDF(t *testing.T) {
	assert.InDelta(t, 0.3989422804014327, PDF(0), 1e-15)
	assert.Equal(t, PDF(1.3), PDF(-1.3))
	assert.Equal(t, 0.0, PDF(40))
}

func TestCDFKnownValues(t *testing.T) {
	tests := []struct {
		x        float64
		expected float64
	}{
		{0, 0.5},
		{1.96, 0.9750021048517795},
		{-1.96, 0.024997895148220435},
		{1, 0.8413447460685429},
		{-3, 0.0013498980316301},
	}

	for _, test := range tests {
		assert.InDelta(t, test.expected, CDF(test.x), 1e-7, "CDF(%v)", test.x)
	}
}

func TestCDFSymmetry(t *testing.T) {
	for i := -1000; i <= 1000; i++ {
		x := float64(i) / 100
		assert.InDelta(t, 1.0, CDF(x)+CDF(-x), 1e-7, "x=%v", x)
	}
}

func TestCDFMonotonic(t *testing.T) {
	prev := CDF(-12)
	for i := -11999; i <= 12000; i++ {
		x := float64(i) / 1000
		cur := CDF(x)
		if cur < prev {
			t.Fatalf("CDF not monotonic at x=%v: %v < %v", x, cur, prev)
		}
		prev = cur
	}
}

func TestCDFBounds(t *testing.T) {
	for i := -500; i <= 500; i++ {
		v := CDF(float64(i) / 10)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestCDFExtremeArguments(t *testing.T) {
	// PDF underflows to zero, which collapses the tails onto the bounds.
	assert.Equal(t, 0.0, CDF(-40))
	assert.Equal(t, 1.0, CDF(40))
}

func TestCDFAgainstErf(t *testing.T) {
	for i := -8000; i <= 8000; i++ {
		x := float64(i) / 1000
		ref := 0.5 * (1 + math.Erf(x/math.Sqrt2))
		if diff := math.Abs(CDF(x) - ref); diff > 7.5e-8 {
			t.Fatalf("CDF(%v) off by %g", x, diff)
		}
	}
}
