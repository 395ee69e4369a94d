package variogram

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// A is the practical range constant: the exponential family reaches about
// 95% of its partial sill at lag = range.
const A = 1.0 / 3.0

func exp(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Exp(x)
}

func pow2(x float64) float64 {
	return x * x
}

func pow3(x float64) float64 {
	return x * x * x
}

func pow5(x float64) float64 {
	return pow2(x) * pow3(x)
}

func pow7(x float64) float64 {
	return pow2(x) * pow5(x)
}

const (
	besselNodes = 16
	besselTail  = 60.0
	besselFloor = 1e-10
)

func logCosh(y float64) float64 {
	y = math.Abs(y)
	return y + math.Log1p(math.Exp(-2*y)) - math.Ln2
}

// maternCorrelation returns 2^(1-nu)/Gamma(nu) * d^nu * K_nu(d), the Matern
// correlation at scaled lag d, using the integral form
// K_nu(d) = int_0^inf exp(-d cosh t) cosh(nu t) dt.
//
// The integrand is kept in log space so the large K_nu near the origin never
// overflows. It is increasing up to asinh(nu/d) at most and decreasing after,
// so the interval is cut past that point once the integrand drops below
// exp(-besselTail), and integrated one unit piece at a time.
func maternCorrelation(nu, d float64) float64 {
	if d < besselFloor {
		return 1
	}
	lg, _ := math.Lgamma(nu)
	scale := (1-nu)*math.Ln2 - lg + nu*math.Log(d)
	logf := func(t float64) float64 {
		return scale - d*math.Cosh(t) + logCosh(nu*t)
	}
	f := func(t float64) float64 {
		return math.Exp(logf(t))
	}

	upper := math.Max(1, math.Ceil(math.Asinh(nu/d)))
	for logf(upper) > -besselTail {
		upper++
	}

	var r float64
	for lo := 0.0; lo < upper; lo++ {
		r += quad.Fixed(f, lo, lo+1, besselNodes, quad.Legendre{}, 0)
	}
	if r > 1 {
		return 1
	}
	return r
}
