package variogram

import (
	"fmt"
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
	"gonum.org/v1/gonum/floats"

	"github.com/flywave/go-variogram/geometry"
)

// Metric measures the distance between two coordinate vectors of the same
// length.
type Metric interface {
	Distance(a, b []float64) float64
}

// MetricBall pairs a metric with one range per principal axis.
type MetricBall interface {
	Metric() Metric
	Ranges() []float64
	IsIsotropic() bool
}

type Euclidean struct{}

func (Euclidean) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Scaled is a Euclidean metric measured in the principal axes of a rotated
// ellipsoid, each axis stretched by its scale. Rotation applies to planar
// coordinates only.
type Scaled struct {
	Scales   []float64
	Rotation geometry.Rotator
}

func (m Scaled) Distance(a, b []float64) float64 {
	d := make([]float64, len(a))
	floats.SubTo(d, b, a)
	if len(d) == 2 && !m.Rotation.IsZero() {
		r := m.Rotation.Inverse().RotateVector(vec2d.T{d[0], d[1]})
		d[0], d[1] = r[0], r[1]
	}
	floats.Mul(d, m.Scales)
	return floats.Norm(d, 2)
}

// Ball is a metric ball. With equal ranges it is isotropic and measures
// plain Euclidean lags in any dimension; otherwise it measures lags in units
// of its largest range, so a point on the ellipsoid surface lies at a lag
// equal to that range.
type Ball struct {
	ranges   []float64
	rotation geometry.Rotator
	metric   Metric
}

func NewBall(ranges ...float64) (*Ball, error) {
	return newBall(ranges, geometry.NoRotation())
}

// NewRotatedBall builds a planar ball with the given ranges along its
// principal axes, the first axis turned by rot from the x axis.
func NewRotatedBall(ranges [2]float64, rot geometry.Rotator) (*Ball, error) {
	return newBall(ranges[:], rot)
}

func newBall(ranges []float64, rot geometry.Rotator) (*Ball, error) {
	if err := validRanges(ranges); err != nil {
		return nil, err
	}
	b := &Ball{
		ranges:   append([]float64(nil), ranges...),
		rotation: rot,
	}
	if b.IsIsotropic() {
		b.metric = Euclidean{}
		return b, nil
	}
	radius := floats.Max(b.ranges)
	scales := make([]float64, len(b.ranges))
	for i, r := range b.ranges {
		scales[i] = radius / r
	}
	b.metric = Scaled{Scales: scales, Rotation: rot}
	return b, nil
}

func validRanges(ranges []float64) error {
	if len(ranges) == 0 {
		return fmt.Errorf("%w: ball without ranges", ErrInvalidParameter)
	}
	for _, r := range ranges {
		if !(r > 0) || math.IsInf(r, 0) {
			return fmt.Errorf("%w: range %v", ErrInvalidParameter, r)
		}
	}
	return nil
}

func (b *Ball) Metric() Metric {
	return b.metric
}

func (b *Ball) Ranges() []float64 {
	return append([]float64(nil), b.ranges...)
}

func (b *Ball) Rotation() geometry.Rotator {
	return b.rotation
}

func (b *Ball) IsIsotropic() bool {
	return isotropic(b.ranges)
}

func (b *Ball) Radius() float64 {
	return floats.Max(b.ranges)
}

func isotropic(ranges []float64) bool {
	for _, r := range ranges[1:] {
		if r != ranges[0] {
			return false
		}
	}
	return true
}

func (b *Ball) String() string {
	if b.IsIsotropic() {
		return fmt.Sprintf("MetricBall(%g)", b.ranges[0])
	}
	if b.rotation.IsZero() {
		return fmt.Sprintf("MetricBall(%v)", b.ranges)
	}
	return fmt.Sprintf("MetricBall(%v, %g°)", b.ranges, b.rotation.Degrees)
}
