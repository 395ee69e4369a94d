package variogram

import (
	"fmt"
	"math"
)

var (
	_ Variogram = (*GaussianVariogram)(nil)
	_ Variogram = (*ExponentialVariogram)(nil)
	_ Variogram = (*SphericalVariogram)(nil)
	_ Variogram = (*MaternVariogram)(nil)
	_ Variogram = (*CubicVariogram)(nil)
	_ Variogram = (*PentasphericalVariogram)(nil)
	_ Variogram = (*SineHoleVariogram)(nil)
	_ Variogram = (*PowerVariogram)(nil)
	_ Variogram = (*NuggetEffect)(nil)
	_ Variogram = (*CircularVariogram)(nil)
)

type GaussianVariogram struct {
	structure
}

func NewGaussian(sill, nugget float64, ball MetricBall) (*GaussianVariogram, error) {
	s, err := newStructure(Gaussian, sill, nugget, ball)
	if err != nil {
		return nil, err
	}
	return &GaussianVariogram{s}, nil
}

func (*GaussianVariogram) Kind() ModelType { return Gaussian }

func (g *GaussianVariogram) value(h float64) float64 {
	x := -(1.0 / A) * pow2(h/g.radius)
	return g.nugget + g.partial()*(1.0-exp(x))
}

func (g *GaussianVariogram) String() string { return g.describe(Gaussian) }

type ExponentialVariogram struct {
	structure
}

func NewExponential(sill, nugget float64, ball MetricBall) (*ExponentialVariogram, error) {
	s, err := newStructure(Exponential, sill, nugget, ball)
	if err != nil {
		return nil, err
	}
	return &ExponentialVariogram{s}, nil
}

func (*ExponentialVariogram) Kind() ModelType { return Exponential }

func (e *ExponentialVariogram) value(h float64) float64 {
	x := -(1.0 / A) * (h / e.radius)
	return e.nugget + e.partial()*(1.0-exp(x))
}

func (e *ExponentialVariogram) String() string { return e.describe(Exponential) }

type SphericalVariogram struct {
	structure
}

func NewSpherical(sill, nugget float64, ball MetricBall) (*SphericalVariogram, error) {
	s, err := newStructure(Spherical, sill, nugget, ball)
	if err != nil {
		return nil, err
	}
	return &SphericalVariogram{s}, nil
}

func (*SphericalVariogram) Kind() ModelType { return Spherical }

func (s *SphericalVariogram) value(h float64) float64 {
	if h >= s.radius {
		return s.sill
	}
	x := h / s.radius
	return s.nugget + s.partial()*(1.5*x-0.5*pow3(x))
}

func (s *SphericalVariogram) String() string { return s.describe(Spherical) }

// MaternVariogram has smoothness Nu. Nu = 1/2 gives the exponential model.
type MaternVariogram struct {
	structure
	nu float64
}

func NewMatern(sill, nugget, nu float64, ball MetricBall) (*MaternVariogram, error) {
	if !(nu > 0) || math.IsInf(nu, 0) {
		return nil, fmt.Errorf("%w: matern smoothness %v", ErrInvalidParameter, nu)
	}
	s, err := newStructure(Matern, sill, nugget, ball)
	if err != nil {
		return nil, err
	}
	return &MaternVariogram{structure: s, nu: nu}, nil
}

func (*MaternVariogram) Kind() ModelType { return Matern }

func (m *MaternVariogram) Nu() float64 { return m.nu }

func (m *MaternVariogram) value(h float64) float64 {
	d := math.Sqrt(2*m.nu) * (h / m.radius) / A
	return m.nugget + m.partial()*(1.0-maternCorrelation(m.nu, d))
}

func (m *MaternVariogram) String() string {
	return m.describe(Matern, param{"nu", m.nu})
}

type CubicVariogram struct {
	structure
}

func NewCubic(sill, nugget float64, ball MetricBall) (*CubicVariogram, error) {
	s, err := newStructure(Cubic, sill, nugget, ball)
	if err != nil {
		return nil, err
	}
	return &CubicVariogram{s}, nil
}

func (*CubicVariogram) Kind() ModelType { return Cubic }

func (c *CubicVariogram) value(h float64) float64 {
	if h >= c.radius {
		return c.sill
	}
	x := h / c.radius
	return c.nugget + c.partial()*(7*pow2(x)-(35.0/4.0)*pow3(x)+(7.0/2.0)*pow5(x)-(3.0/4.0)*pow7(x))
}

func (c *CubicVariogram) String() string { return c.describe(Cubic) }

type PentasphericalVariogram struct {
	structure
}

func NewPentaspherical(sill, nugget float64, ball MetricBall) (*PentasphericalVariogram, error) {
	s, err := newStructure(Pentaspherical, sill, nugget, ball)
	if err != nil {
		return nil, err
	}
	return &PentasphericalVariogram{s}, nil
}

func (*PentasphericalVariogram) Kind() ModelType { return Pentaspherical }

func (p *PentasphericalVariogram) value(h float64) float64 {
	if h >= p.radius {
		return p.sill
	}
	x := h / p.radius
	return p.nugget + p.partial()*((15.0/8.0)*x-(5.0/4.0)*pow3(x)+(3.0/8.0)*pow5(x))
}

func (p *PentasphericalVariogram) String() string { return p.describe(Pentaspherical) }

// SineHoleVariogram oscillates around the sill; it is not monotone.
type SineHoleVariogram struct {
	structure
}

func NewSineHole(sill, nugget float64, ball MetricBall) (*SineHoleVariogram, error) {
	s, err := newStructure(SineHole, sill, nugget, ball)
	if err != nil {
		return nil, err
	}
	return &SineHoleVariogram{s}, nil
}

func (*SineHoleVariogram) Kind() ModelType { return SineHole }

func (s *SineHoleVariogram) value(h float64) float64 {
	if h == 0 {
		return s.nugget
	}
	x := math.Pi * h / s.radius
	return s.nugget + s.partial()*(1.0-math.Sin(x)/x)
}

func (s *SineHoleVariogram) String() string { return s.describe(SineHole) }

type CircularVariogram struct {
	structure
}

func NewCircular(sill, nugget float64, ball MetricBall) (*CircularVariogram, error) {
	s, err := newStructure(Circular, sill, nugget, ball)
	if err != nil {
		return nil, err
	}
	return &CircularVariogram{s}, nil
}

func (*CircularVariogram) Kind() ModelType { return Circular }

func (c *CircularVariogram) value(h float64) float64 {
	if h >= c.radius {
		return c.sill
	}
	x := h / c.radius
	return c.nugget + c.partial()*(1.0-(2.0/math.Pi)*math.Acos(x)+(2.0/math.Pi)*x*math.Sqrt(1.0-pow2(x)))
}

func (c *CircularVariogram) String() string { return c.describe(Circular) }

// PowerVariogram is sill * h^exponent + nugget, where the sill plays the
// part of a scaling factor. It has no range and no finite sill.
type PowerVariogram struct {
	structure
	exponent float64
}

func NewPower(scaling, nugget, exponent float64) (*PowerVariogram, error) {
	if !(exponent > 0 && exponent <= 2) {
		return nil, fmt.Errorf("%w: power exponent %v outside (0, 2]", ErrInvalidParameter, exponent)
	}
	s, err := newStructure(Power, scaling, nugget, nil)
	if err != nil {
		return nil, err
	}
	return &PowerVariogram{structure: s, exponent: exponent}, nil
}

func (*PowerVariogram) Kind() ModelType { return Power }

func (p *PowerVariogram) Exponent() float64 { return p.exponent }

func (p *PowerVariogram) value(h float64) float64 {
	return p.sill*math.Pow(h, p.exponent) + p.nugget
}

func (p *PowerVariogram) String() string {
	return p.describe(Power, param{"exponent", p.exponent})
}

// NuggetEffect is nugget at zero lag and sill at every positive lag.
type NuggetEffect struct {
	structure
}

func NewNugget(sill, nugget float64) (*NuggetEffect, error) {
	s, err := newStructure(Nugget, sill, nugget, nil)
	if err != nil {
		return nil, err
	}
	return &NuggetEffect{s}, nil
}

func (*NuggetEffect) Kind() ModelType { return Nugget }

func (n *NuggetEffect) value(h float64) float64 {
	if h == 0 {
		return n.nugget
	}
	return n.sill
}

func (n *NuggetEffect) String() string { return n.describe(Nugget) }

// New builds a model of the given kind. Params carries the shape parameter
// of the Matern (nu) and Power (exponent) families.
func New(kind ModelType, sill, nugget float64, ball MetricBall, params ...float64) (Variogram, error) {
	shape := func(name string) (float64, error) {
		if len(params) == 0 {
			return 0, fmt.Errorf("%w: %s needs %s", ErrInvalidParameter, kind, name)
		}
		return params[0], nil
	}

	var (
		v   Variogram
		err error
		p   float64
	)
	switch kind {
	case Gaussian:
		v, err = NewGaussian(sill, nugget, ball)
	case Exponential:
		v, err = NewExponential(sill, nugget, ball)
	case Spherical:
		v, err = NewSpherical(sill, nugget, ball)
	case Matern:
		if p, err = shape("nu"); err == nil {
			v, err = NewMatern(sill, nugget, p, ball)
		}
	case Cubic:
		v, err = NewCubic(sill, nugget, ball)
	case Pentaspherical:
		v, err = NewPentaspherical(sill, nugget, ball)
	case SineHole:
		v, err = NewSineHole(sill, nugget, ball)
	case Power:
		if p, err = shape("exponent"); err == nil {
			v, err = NewPower(sill, nugget, p)
		}
	case Nugget:
		v, err = NewNugget(sill, nugget)
	case Circular:
		v, err = NewCircular(sill, nugget, ball)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownModel, kind)
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
