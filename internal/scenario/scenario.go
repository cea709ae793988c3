// Package scenario prices labelled lists of option contracts.
//
// A Scenario is the user-facing description of one contract (as read from
// YAML, CSV or HTTP query strings); a Quote is the priced result.
package scenario

import (
	"context"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
)

// Scenario defines a single European option contract.
type Scenario struct {
	Name       string  `yaml:"name" csv:"name" json:"name" schema:"name"`
	Strike     float64 `yaml:"strike" csv:"strike" json:"strike" schema:"strike"`                 // K
	Rate       float64 `yaml:"rate" csv:"rate" json:"rate" schema:"rate"`                         // r
	Maturity   float64 `yaml:"maturity" csv:"maturity" json:"maturity" schema:"maturity"`         // T in years
	Spot       float64 `yaml:"spot" csv:"spot" json:"spot" schema:"spot"`                         // S
	Volatility float64 `yaml:"volatility" csv:"volatility" json:"volatility" schema:"volatility"` // σ
}

// Quote is a priced Scenario.
type Quote struct {
	Scenario
	D1        float64 `json:"d1"`
	D2        float64 `json:"d2"`
	CallPrice float64 `json:"call_price"`
	PutPrice  float64 `json:"put_price"`

	// ParityResidual is (C - P) - (S - K·e^(-rT)); zero up to rounding.
	ParityResidual float64 `json:"parity_residual"`
}

// Default returns the at-the-money reference contract.
func Default() Scenario {
	return Scenario{
		Name:       "default",
		Strike:     pricing.DefaultStrike,
		Rate:       pricing.DefaultRate,
		Maturity:   pricing.DefaultMaturity,
		Spot:       pricing.DefaultSpot,
		Volatility: pricing.DefaultVolatility,
	}
}

// Defaults returns the two demonstration contracts.
func Defaults() []Scenario {
	return []Scenario{
		Default(),
		{Name: "user-defined", Strike: 1000, Rate: 0.025, Maturity: 2, Spot: 1000, Volatility: 0.1},
	}
}

// Option builds the validated pricing.VanillaOption for the scenario.
func (s Scenario) Option() (pricing.VanillaOption, error) {
	return pricing.NewVanillaOption(s.Strike, s.Rate, s.Maturity, s.Spot, s.Volatility)
}

// Price prices a single scenario.
func Price(s Scenario) (Quote, error) {
	opt, err := s.Option()
	if err != nil {
		return Quote{}, fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	call, put := opt.CallPrice(), opt.PutPrice()
	q := Quote{
		Scenario:       s,
		D1:             opt.D1(),
		D2:             opt.D2(),
		CallPrice:      call,
		PutPrice:       put,
		ParityResidual: (call - put) - (s.Spot - s.Strike*opt.DiscountFactor()),
	}

	logger.Tracef("scenario %q: d1=%.6f d2=%.6f call=%.6f put=%.6f", s.Name, q.D1, q.D2, call, put)
	return q, nil
}

// PriceAll prices scenarios in order. It stops at the first invalid scenario
// or when ctx is cancelled.
func PriceAll(ctx context.Context, scenarios []Scenario) ([]Quote, error) {
	logger.Debugf("pricing %d scenarios", len(scenarios))

	quotes := make([]Quote, 0, len(scenarios))
	for i, s := range scenarios {
		if err := ctx.Err(); err != nil {
			return quotes, err
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("scenario-%d", i+1)
		}

		q, err := Price(s)
		if err != nil {
			logger.Errorf("%v", err)
			return quotes, err
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// LoadCSV reads scenarios from CSV with a header row naming the columns
// name, strike, rate, maturity, spot and volatility.
func LoadCSV(r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario
	if err := gocsv.Unmarshal(r, &scenarios); err != nil {
		return nil, fmt.Errorf("failed to parse scenario csv: %w", err)
	}
	return scenarios, nil
}
