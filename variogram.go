package variogram

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Variogram is a theoretical variogram model. The set of implementations is
// closed: one per ModelType.
type Variogram interface {
	Kind() ModelType
	Sill() float64
	Nugget() float64
	// Ball is nil for the families without a spatial range.
	Ball() MetricBall
	String() string

	value(h float64) float64
}

// structure holds what every model carries.
type structure struct {
	sill   float64
	nugget float64
	ball   MetricBall
	radius float64
}

func newStructure(kind ModelType, sill, nugget float64, ball MetricBall) (structure, error) {
	if !(sill >= 0) || math.IsInf(sill, 0) {
		return structure{}, fmt.Errorf("%w: %s sill %v", ErrInvalidParameter, kind, sill)
	}
	if !(nugget >= 0) || math.IsInf(nugget, 0) {
		return structure{}, fmt.Errorf("%w: %s nugget %v", ErrInvalidParameter, kind, nugget)
	}
	if kind.Stationary() && nugget > sill {
		return structure{}, fmt.Errorf("%w: %s nugget %v above sill %v", ErrInvalidParameter, kind, nugget, sill)
	}

	s := structure{sill: sill, nugget: nugget}
	if !kind.Ranged() {
		return s, nil
	}
	if ball == nil {
		return structure{}, fmt.Errorf("%w: %s needs a metric ball", ErrInvalidParameter, kind)
	}
	ranges := ball.Ranges()
	if err := validRanges(ranges); err != nil {
		return structure{}, err
	}
	s.ball = ball
	s.radius = floats.Max(ranges)
	return s, nil
}

func (s structure) Sill() float64 {
	return s.sill
}

func (s structure) Nugget() float64 {
	return s.nugget
}

func (s structure) Ball() MetricBall {
	return s.ball
}

// partial is the sill above the nugget.
func (s structure) partial() float64 {
	return s.sill - s.nugget
}

type param struct {
	name  string
	value interface{}
}

func (s structure) describe(kind ModelType, extra ...param) string {
	params := []param{{"sill", s.sill}, {"nugget", s.nugget}}
	params = append(params, extra...)
	if s.ball != nil {
		params = append(params, param{"ball", describeBall(s.ball)})
	}

	var sb strings.Builder
	sb.WriteString(kind.title())
	for i, p := range params {
		branch := "├─"
		if i == len(params)-1 {
			branch = "└─"
		}
		fmt.Fprintf(&sb, "\n%s %s: %v", branch, p.name, p.value)
	}
	return sb.String()
}

func describeBall(b MetricBall) string {
	if s, ok := b.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("MetricBall(%v)", b.Ranges())
}

// At evaluates the scalar model at lag h.
func At(v Variogram, h float64) (float64, error) {
	if !(h >= 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidLag, h)
	}
	return v.value(h), nil
}

// Range is the largest range of the model's ball, zero for the nugget effect
// and +Inf for the power model.
func Range(v Variogram) float64 {
	switch v.Kind() {
	case Nugget:
		return 0
	case Power:
		return math.Inf(1)
	}
	return floats.Max(v.Ball().Ranges())
}

func IsStationary(v Variogram) bool {
	return v.Kind().Stationary()
}

func IsIsotropic(v Variogram) bool {
	if b := v.Ball(); b != nil {
		return b.IsIsotropic()
	}
	return true
}

// Covariance is sill - γ(h), defined for stationary models only.
func Covariance(v Variogram, h float64) (float64, error) {
	if !IsStationary(v) {
		return 0, fmt.Errorf("%w: %s", ErrNotStationary, v.Kind())
	}
	g, err := At(v, h)
	if err != nil {
		return 0, err
	}
	return v.Sill() - g, nil
}
