// Package volatility estimates annualised volatility from close prices.
package volatility

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
)

// TradingDaysPerYear is the usual annualisation factor for daily closes.
const TradingDaysPerYear = 252.0

var (
	ErrInsufficientData = errors.New("need at least three closes")
	ErrInvalidClose     = errors.New("close prices must be positive")
)

// Bar is one row of a close-price CSV. Only the close column is required.
type Bar struct {
	Date  string  `csv:"date,omitempty"`
	Close float64 `csv:"close"`
}

// LogReturns returns ln(c[i]/c[i-1]) for consecutive closes.
func LogReturns(closes []float64) ([]float64, error) {
	rets := make([]float64, 0, len(closes))
	for i, c := range closes {
		if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: close[%d]=%v", ErrInvalidClose, i, c)
		}
		if i > 0 {
			rets = append(rets, math.Log(c/closes[i-1]))
		}
	}
	return rets, nil
}

// Annualized returns the sample standard deviation of log returns scaled by
// √periodsPerYear. A non-positive periodsPerYear selects TradingDaysPerYear.
func Annualized(closes []float64, periodsPerYear float64) (float64, error) {
	if len(closes) < 3 {
		return 0, fmt.Errorf("%w: got %d", ErrInsufficientData, len(closes))
	}
	if periodsPerYear <= 0 {
		periodsPerYear = TradingDaysPerYear
	}

	rets, err := LogReturns(closes)
	if err != nil {
		return 0, err
	}

	sd, err := stats.StandardDeviationSample(rets)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate the standard deviation: %w", err)
	}
	return sd * math.Sqrt(periodsPerYear), nil
}

// LoadCloses reads a CSV with a "close" column and returns the closes in
// file order.
func LoadCloses(r io.Reader) ([]float64, error) {
	var bars []Bar
	if err := gocsv.Unmarshal(r, &bars); err != nil {
		return nil, fmt.Errorf("failed to parse closes csv: %w", err)
	}

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes, nil
}
