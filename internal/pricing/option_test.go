package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVanillaOption(t *testing.T) {
	o := DefaultVanillaOption()

	assert.Equal(t, 100.0, o.Strike())
	assert.Equal(t, 0.05, o.Rate())
	assert.Equal(t, 1.0, o.Maturity())
	assert.Equal(t, 100.0, o.Spot())
	assert.Equal(t, 0.2, o.Volatility())

	assert.InDelta(t, 0.35, o.D1(), 1e-12)
	assert.InDelta(t, 0.15, o.D2(), 1e-12)
	assert.InDelta(t, 10.4506, o.CallPrice(), 1e-4)
	assert.InDelta(t, 5.5735, o.PutPrice(), 1e-4)
}

func TestUserDefinedScenario(t *testing.T) {
	o, err := NewVanillaOption(1000, 0.025, 2, 1000, 0.1)
	require.NoError(t, err)

	call, put := o.CallPrice(), o.PutPrice()
	assert.GreaterOrEqual(t, call, 0.0)
	assert.GreaterOrEqual(t, put, 0.0)
	assert.InDelta(t, 82.7781, call, 1e-4)
	assert.InDelta(t, 34.0075, put, 1e-4)
	assert.InDelta(t, 1000-1000*math.Exp(-0.025*2), call-put, 1e-6)
}

func TestPutCallParity(t *testing.T) {
	tests := []struct {
		strike, rate, maturity, spot, volatility float64
	}{
		{100, 0.05, 1, 100, 0.2},
		{100, 0.05, 1, 110, 0.25},
		{95, 0.03, 0.5, 100, 0.3},
		{50, -0.01, 3, 40, 0.6},
		{1500, 0.0, 0.1, 1450, 0.15},
	}

	for _, test := range tests {
		o, err := NewVanillaOption(test.strike, test.rate, test.maturity, test.spot, test.volatility)
		require.NoError(t, err)

		lhs := o.CallPrice() - o.PutPrice()
		rhs := test.spot - test.strike*math.Exp(-test.rate*test.maturity)
		if math.Abs(lhs-rhs) > 1e-6 {
			t.Fatalf("put-call parity violated for %v: LHS=%f RHS=%f", o, lhs, rhs)
		}
	}
}

func TestZeroVolatilityLimit(t *testing.T) {
	// In the money forward: call tends to S - K·e^(-rT).
	o, err := NewVanillaOption(100, 0.05, 1, 100, 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, 100-100*math.Exp(-0.05), o.CallPrice(), 1e-6)
	assert.InDelta(t, 0.0, o.PutPrice(), 1e-6)

	// Out of the money forward: call tends to zero.
	o, err = NewVanillaOption(100, 0.05, 1, 90, 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, o.CallPrice(), 1e-6)
}

func TestNewVanillaOptionRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name                                     string
		strike, rate, maturity, spot, volatility float64
	}{
		{"zero volatility", 100, 0.05, 1, 100, 0},
		{"negative volatility", 100, 0.05, 1, 100, -0.2},
		{"zero maturity", 100, 0.05, 0, 100, 0.2},
		{"zero strike", 0, 0.05, 1, 100, 0.2},
		{"negative spot", 100, 0.05, 1, -1, 0.2},
		{"nan rate", 100, math.NaN(), 1, 100, 0.2},
		{"infinite spot", 100, 0.05, 1, math.Inf(1), 0.2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewVanillaOption(test.strike, test.rate, test.maturity, test.spot, test.volatility)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter))
		})
	}
}

func TestNegativeRateAccepted(t *testing.T) {
	o, err := NewVanillaOption(100, -0.005, 1, 100, 0.2)
	require.NoError(t, err)
	assert.Greater(t, o.DiscountFactor(), 1.0)
}

func TestPricesAreIdempotent(t *testing.T) {
	o := DefaultVanillaOption()
	call, put := o.CallPrice(), o.PutPrice()
	for i := 0; i < 10; i++ {
		assert.Equal(t, call, o.CallPrice())
		assert.Equal(t, put, o.PutPrice())
	}
}

func TestConcurrentReads(t *testing.T) {
	o := DefaultVanillaOption()
	want := o.CallPrice()

	done := make(chan float64, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- o.CallPrice() }()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, want, <-done)
	}
}
