package pricing

import "math"

// invSqrt2Pi is 1/√(2π), the normalising constant of the standard normal density.
var invSqrt2Pi = 1.0 / math.Sqrt(2.0*math.Pi)

// Coefficients of the Zelen & Severo (Hastings) rational approximation.
const (
	hastingsP  = 0.2316419
	hastingsB1 = 0.319381530
	hastingsB2 = -0.356563782
	hastingsB3 = 1.781477937
	hastingsB4 = -1.821255978
	hastingsB5 = 1.330274429
)

// PDF calculates the probability density function of the standard normal
// distribution: exp(-0.5 * x^2) / sqrt(2π).
func PDF(x float64) float64 {
	return invSqrt2Pi * math.Exp(-0.5*x*x)
}

// CDF approximates the cumulative distribution function of the standard
// normal distribution, i.e. the probability that a standard normal random
// variable is less than or equal to x.
//
// The fifth-order polynomial in k = 1/(1+p|x|) is only evaluated for |x| and
// the result is reflected with Φ(-x) = 1 - Φ(x). The absolute error is below
// 7.5e-8 everywhere. For very large |x| the density underflows to zero and
// the result is exactly 0 or 1.
func CDF(x float64) float64 {
	a := math.Abs(x)
	k := 1.0 / (1.0 + hastingsP*a)
	poly := k * (hastingsB1 + k*(hastingsB2+k*(hastingsB3+k*(hastingsB4+hastingsB5*k))))

	if x >= 0.0 {
		return 1.0 - PDF(a)*poly
	}
	return PDF(a) * poly
}
