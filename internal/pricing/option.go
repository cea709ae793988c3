// Package pricing computes closed-form Black-Scholes prices for European
// vanilla options.
//
// Design notes:
//   - All functions are pure; a VanillaOption is immutable once built
//   - Inputs are validated once at construction, queries never fail
//   - The normal CDF is a rational approximation (see CDF), not math.Erf
package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned when an option is built from inputs outside
// the Black-Scholes domain.
var ErrInvalidParameter = errors.New("invalid option parameter")

// Parameters of the default contract: at the money, one year, 5% rate, 20% vol.
const (
	DefaultStrike     = 100.0
	DefaultRate       = 0.05
	DefaultMaturity   = 1.0
	DefaultSpot       = 100.0
	DefaultVolatility = 0.2
)

// VanillaOption is a European call/put pair on one underlying.
//
// d1 and d2 are derived at construction time and never change afterwards, so
// a VanillaOption can be shared freely between goroutines.
type VanillaOption struct {
	strike     float64 // K
	rate       float64 // r, annualised, continuously compounded
	maturity   float64 // T, in years
	spot       float64 // S
	volatility float64 // σ, annualised

	d1 float64
	d2 float64
}

// NewVanillaOption validates the market parameters and builds an option.
//
// Parameters:
//   - strike: strike price K, must be > 0
//   - rate: risk-free rate r, any finite value
//   - maturity: time to expiry T in years, must be > 0
//   - spot: underlying price S, must be > 0
//   - volatility: annualised σ, must be > 0
//
// Errors wrap ErrInvalidParameter and name the offending field.
func NewVanillaOption(strike, rate, maturity, spot, volatility float64) (VanillaOption, error) {
	checks := []struct {
		name     string
		value    float64
		positive bool
	}{
		{"strike", strike, true},
		{"rate", rate, false},
		{"maturity", maturity, true},
		{"spot", spot, true},
		{"volatility", volatility, true},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return VanillaOption{}, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, c.name, c.value)
		}
		if c.positive && c.value <= 0 {
			return VanillaOption{}, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParameter, c.name, c.value)
		}
	}

	o := VanillaOption{
		strike:     strike,
		rate:       rate,
		maturity:   maturity,
		spot:       spot,
		volatility: volatility,
	}

	sigmaSqrtT := volatility * math.Sqrt(maturity)
	o.d1 = (math.Log(spot/strike) + (rate+volatility*volatility*0.5)*maturity) / sigmaSqrtT
	o.d2 = o.d1 - sigmaSqrtT

	return o, nil
}

// DefaultVanillaOption returns the at-the-money reference contract
// K=100, r=5%, T=1y, S=100, σ=20%.
func DefaultVanillaOption() VanillaOption {
	o, err := NewVanillaOption(DefaultStrike, DefaultRate, DefaultMaturity, DefaultSpot, DefaultVolatility)
	if err != nil {
		panic(err) // constants are in range
	}
	return o
}

// CallPrice returns S·N(d1) - K·e^(-rT)·N(d2).
func (o VanillaOption) CallPrice() float64 {
	return o.spot*CDF(o.d1) - o.strike*o.DiscountFactor()*CDF(o.d2)
}

// PutPrice returns K·e^(-rT)·N(-d2) - S·N(-d1).
func (o VanillaOption) PutPrice() float64 {
	return o.strike*o.DiscountFactor()*CDF(-o.d2) - o.spot*CDF(-o.d1)
}

// DiscountFactor returns e^(-rT).
func (o VanillaOption) DiscountFactor() float64 {
	return math.Exp(-o.rate * o.maturity)
}

// Strike returns K.
func (o VanillaOption) Strike() float64 { return o.strike }

// Rate returns the annualised risk-free rate r.
func (o VanillaOption) Rate() float64 { return o.rate }

// Maturity returns the time to expiry T in years.
func (o VanillaOption) Maturity() float64 { return o.maturity }

// Spot returns the underlying price S.
func (o VanillaOption) Spot() float64 { return o.spot }

// Volatility returns the annualised volatility σ.
func (o VanillaOption) Volatility() float64 { return o.volatility }

// D1 is the standardised moneyness of the underlying at expiry.
func (o VanillaOption) D1() float64 { return o.d1 }

// D2 is d1 less the volatility over the life of the option.
func (o VanillaOption) D2() float64 { return o.d2 }

// String formats the defining parameters.
func (o VanillaOption) String() string {
	return fmt.Sprintf("K=%.2f r=%.4f T=%.4f S=%.2f sigma=%.4f", o.strike, o.rate, o.maturity, o.spot, o.volatility)
}
