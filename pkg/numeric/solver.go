package numeric

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// ErrNoBracket indicates that a root search was given bounds whose function
// values share a sign, so no root is guaranteed to exist between them.
var ErrNoBracket = errors.New("numeric: bounds do not bracket a root")

// DefaultSolverTolerance is the convergence tolerance used when SolveOptions
// leaves Tolerance unset.
const DefaultSolverTolerance = 1e-10

// brentEps is the double-precision machine epsilon used in the convergence test.
const brentEps = 2.2204460492503131e-16

// Root reports the outcome of a root search. Converged is false when the
// iteration cap was reached before the tolerance was met; Value then holds the
// best estimate so far.
type Root struct {
	Value      float64
	Iterations int
	Converged  bool
}

// SolveOptions tunes a root search. Zero values select the defaults.
type SolveOptions struct {
	Tolerance     float64
	MaxIterations int
}

// Brent finds a root of f in the bracketing interval [lo, hi] using Brent's
// method (inverse quadratic interpolation with a bisection fallback). The
// bracket must satisfy sign(f(lo)) != sign(f(hi)); otherwise ErrNoBracket is
// returned. Hitting the iteration cap is not an error: the returned Root has
// Converged false so the caller can report non-convergence explicitly.
func Brent(f func(float64) float64, lo, hi float64, opts SolveOptions) (Root, error) {
	tol := opts.Tolerance
	if tol <= 0 {
		tol = DefaultSolverTolerance
	}
	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = constants.MaxSolverIterations
	}

	a, b := lo, hi
	fa, fb := f(a), f(b)
	if !isFinite(fa) || !isFinite(fb) {
		return Root{}, fmt.Errorf("%w: f is not finite at the bracket bounds", ErrNonFinite)
	}
	if fa == 0 {
		return Root{Value: a, Converged: true}, nil
	}
	if fb == 0 {
		return Root{Value: b, Converged: true}, nil
	}
	if (fa > 0) == (fb > 0) {
		return Root{}, fmt.Errorf("%w: f(%g)=%g and f(%g)=%g", ErrNoBracket, lo, fa, hi, fb)
	}

	c, fc := b, fb
	var d, e float64

	for iteration := 1; iteration <= maxIterations; iteration++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*brentEps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return Root{Value: b, Iterations: iteration, Converged: true}, nil
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation (secant when a == c).
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * xm * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
		if !isFinite(fb) {
			return Root{Value: b, Iterations: iteration}, fmt.Errorf("%w: f(%g) is not finite", ErrNonFinite, b)
		}
	}

	return Root{Value: b, Iterations: maxIterations, Converged: false}, nil
}
