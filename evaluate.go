package variogram

import (
	"fmt"

	"github.com/flywave/go-variogram/geometry"
)

type (
	Point    = geometry.Point
	Geometry = geometry.Geometry
)

// evaluator resolves a model's metric once so the inner loops of the
// regularized forms do not go back to the ball for every pair.
type evaluator struct {
	v      Variogram
	metric Metric
	// dims is the coordinate length an anisotropic ball requires, 0 if any.
	dims int
}

func newEvaluator(v Variogram) *evaluator {
	e := &evaluator{v: v, metric: Euclidean{}}
	if b := v.Ball(); b != nil {
		e.metric = b.Metric()
		if !b.IsIsotropic() {
			e.dims = len(b.Ranges())
		}
	}
	return e
}

func (e *evaluator) points(u, w Point) (float64, error) {
	a, b := u.Coordinates(), w.Coordinates()
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d and %d coordinates", ErrDimensionMismatch, len(a), len(b))
	}
	if e.dims != 0 && len(a) != e.dims {
		return 0, fmt.Errorf("%w: %d coordinates for a %d axis ball", ErrDimensionMismatch, len(a), e.dims)
	}
	return At(e.v, e.metric.Distance(a, b))
}

// mean averages the point evaluations over every pair of su x sw.
func (e *evaluator) mean(su, sw []Point) (float64, error) {
	var sum float64
	for _, u := range su {
		for _, w := range sw {
			g, err := e.points(u, w)
			if err != nil {
				return 0, err
			}
			sum += g
		}
	}
	return sum / float64(len(su)*len(sw)), nil
}

// sample reduces a point or a geometry to its discretization sample.
func sample(x interface{}) ([]Point, error) {
	switch x := x.(type) {
	case Point:
		return []Point{x}, nil
	case Geometry:
		s := x.Discretize()
		if len(s) == 0 {
			return nil, fmt.Errorf("%w: %T has an empty sample", ErrIncompatibleGeometry, x)
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %T is neither a point nor a geometry", ErrIncompatibleGeometry, x)
}

func PointToPoint(v Variogram, u, w Point) (float64, error) {
	return newEvaluator(v).points(u, w)
}

// GeometryToPoint averages the model between w and every sample of U.
func GeometryToPoint(v Variogram, U Geometry, w Point) (float64, error) {
	su, err := sample(U)
	if err != nil {
		return 0, err
	}
	return newEvaluator(v).mean(su, []Point{w})
}

func PointToGeometry(v Variogram, u Point, W Geometry) (float64, error) {
	sw, err := sample(W)
	if err != nil {
		return 0, err
	}
	return newEvaluator(v).mean([]Point{u}, sw)
}

// GeometryToGeometry is the regularized variogram between two supports: the
// mean over all pairs of their samples.
func GeometryToGeometry(v Variogram, U, W Geometry) (float64, error) {
	su, err := sample(U)
	if err != nil {
		return 0, err
	}
	sw, err := sample(W)
	if err != nil {
		return 0, err
	}
	return newEvaluator(v).mean(su, sw)
}

// Evaluate accepts any combination of points and geometries. A value that is
// a Point is used as a point even if it can also discretize itself.
func Evaluate(v Variogram, a, b interface{}) (float64, error) {
	sa, err := sample(a)
	if err != nil {
		return 0, err
	}
	sb, err := sample(b)
	if err != nil {
		return 0, err
	}
	return newEvaluator(v).mean(sa, sb)
}

// Probe performs exactly one evaluation on a representative pair. Matrices
// always hold float64, so the probe serves to reject a malformed domain
// before any storage is allocated.
func Probe(v Variogram, a, b interface{}) (float64, error) {
	return Evaluate(v, a, b)
}
