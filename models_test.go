package variogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBall(t *testing.T, ranges ...float64) *Ball {
	t.Helper()
	b, err := NewBall(ranges...)
	require.NoError(t, err)
	return b
}

func mustAt(t *testing.T, v Variogram, h float64) float64 {
	t.Helper()
	g, err := At(v, h)
	require.NoError(t, err)
	return g
}

// catalog builds one model of every kind with sill 2, nugget 0.5 and
// range 10 where those apply.
func catalog(t *testing.T) []Variogram {
	t.Helper()
	ball := mustBall(t, 10)
	var models []Variogram
	for _, kind := range ModelTypes() {
		var params []float64
		switch kind {
		case Matern:
			params = []float64{1.5}
		case Power:
			params = []float64{1.5}
		}
		v, err := New(kind, 2, 0.5, ball, params...)
		require.NoError(t, err, kind)
		models = append(models, v)
	}
	return models
}

func TestCatalogKinds(t *testing.T) {
	a := assert.New(t)

	models := catalog(t)
	a.Len(models, 10)
	for i, v := range models {
		a.Equal(ModelTypes()[i], v.Kind())
	}
}

func TestAtZeroIsNugget(t *testing.T) {
	a := assert.New(t)

	for _, v := range catalog(t) {
		a.Equal(0.5, mustAt(t, v, 0), v.Kind())
	}
}

func TestNonNegativeAndMonotone(t *testing.T) {
	a := assert.New(t)

	for _, v := range catalog(t) {
		prev := mustAt(t, v, 0)
		for h := 0.25; h <= 30; h += 0.25 {
			g := mustAt(t, v, h)
			a.GreaterOrEqual(g, 0.0, v.Kind())
			if v.Kind() == SineHole {
				continue
			}
			a.GreaterOrEqual(g, prev, "%s at %v", v.Kind(), h)
			prev = g
		}
	}
}

func TestBoundedModelsReachSillAtRange(t *testing.T) {
	a := assert.New(t)

	for _, v := range catalog(t) {
		switch v.Kind() {
		case Spherical, Cubic, Pentaspherical, Circular, Nugget:
			a.InDelta(2.0, mustAt(t, v, 10), 1e-12, v.Kind())
			a.Equal(2.0, mustAt(t, v, 25), v.Kind())
		case Gaussian, Exponential:
			a.InDelta(0.5+1.5*(1-math.Exp(-3)), mustAt(t, v, 10), 1e-12, v.Kind())
			a.InDelta(2.0, mustAt(t, v, 100), 1e-9, v.Kind())
		case Matern:
			a.InDelta(2.0, mustAt(t, v, 100), 1e-9, v.Kind())
		}
	}
}

func TestGaussianScenario(t *testing.T) {
	a := assert.New(t)

	v, err := NewGaussian(2.0, 0.5, mustBall(t, 10))
	require.NoError(t, err)

	a.Equal(0.5, mustAt(t, v, 0))
	a.InDelta(1.5*(1-math.Exp(-3))+0.5, mustAt(t, v, 10), 1e-12)
	a.InDelta(1.5*(1-math.Exp(-3.0/4.0))+0.5, mustAt(t, v, 5), 1e-12)
}

func TestNuggetScenario(t *testing.T) {
	a := assert.New(t)

	v, err := NewNugget(1.0, 0.3)
	require.NoError(t, err)

	a.Equal(0.3, mustAt(t, v, 0))
	a.Equal(1.0, mustAt(t, v, 0.0001))
	a.Equal(1.0, mustAt(t, v, 1e6))
}

func TestSphericalShape(t *testing.T) {
	a := assert.New(t)

	v, err := NewSpherical(1, 0, mustBall(t, 4))
	require.NoError(t, err)

	a.InDelta(1.5*0.5-0.5*0.125, mustAt(t, v, 2), 1e-12)
}

func TestSineHoleOvershoots(t *testing.T) {
	a := assert.New(t)

	v, err := NewSineHole(1, 0, mustBall(t, 1))
	require.NoError(t, err)

	a.InDelta(1.0, mustAt(t, v, 1), 1e-12)
	a.Greater(mustAt(t, v, 1.43), 1.0)
}

func TestPowerModel(t *testing.T) {
	a := assert.New(t)

	v, err := NewPower(2, 0.1, 1.5)
	require.NoError(t, err)

	a.Equal(0.1, mustAt(t, v, 0))
	a.InDelta(2*math.Pow(4, 1.5)+0.1, mustAt(t, v, 4), 1e-12)
	a.Nil(v.Ball())
	a.Equal(1.5, v.Exponent())
}

func TestMaternHalfIsExponential(t *testing.T) {
	a := assert.New(t)

	ball := mustBall(t, 8)
	m, err := NewMatern(3, 0.2, 0.5, ball)
	require.NoError(t, err)
	e, err := NewExponential(3, 0.2, ball)
	require.NoError(t, err)

	for _, h := range []float64{0, 1e-6, 0.1, 1, 4, 8, 16, 40} {
		a.InDelta(mustAt(t, e, h), mustAt(t, m, h), 1e-9, "lag %v", h)
	}
}

func TestMaternThreeHalves(t *testing.T) {
	a := assert.New(t)

	m, err := NewMatern(1, 0, 1.5, mustBall(t, 10))
	require.NoError(t, err)

	for _, h := range []float64{0.01, 0.5, 2, 5, 10, 20} {
		d := math.Sqrt(3) * 3 * h / 10
		want := 1 - (1+d)*math.Exp(-d)
		a.InDelta(want, mustAt(t, m, h), 1e-9, "lag %v", h)
	}
	a.Equal(1.5, m.Nu())
}

func TestInvalidLag(t *testing.T) {
	v, err := NewExponential(1, 0, mustBall(t, 1))
	require.NoError(t, err)

	_, err = At(v, -1)
	assert.ErrorIs(t, err, ErrInvalidLag)
	_, err = At(v, math.NaN())
	assert.ErrorIs(t, err, ErrInvalidLag)
}

func TestConstructionValidation(t *testing.T) {
	ball := mustBall(t, 5)

	cases := map[string]func() error{
		"negative sill": func() error {
			_, err := NewGaussian(-1, 0, ball)
			return err
		},
		"negative nugget": func() error {
			_, err := NewSpherical(1, -0.1, ball)
			return err
		},
		"nan sill": func() error {
			_, err := NewCubic(math.NaN(), 0, ball)
			return err
		},
		"nugget above sill": func() error {
			_, err := NewExponential(1, 2, ball)
			return err
		},
		"nugget effect above sill": func() error {
			_, err := NewNugget(1, 2)
			return err
		},
		"missing ball": func() error {
			_, err := NewCircular(1, 0, nil)
			return err
		},
		"zero smoothness": func() error {
			_, err := NewMatern(1, 0, 0, ball)
			return err
		},
		"negative smoothness": func() error {
			_, err := NewMatern(1, 0, -2, ball)
			return err
		},
		"zero exponent": func() error {
			_, err := NewPower(1, 0, 0)
			return err
		},
		"exponent above two": func() error {
			_, err := NewPower(1, 0, 2.5)
			return err
		},
		"missing shape": func() error {
			_, err := New(Matern, 1, 0, ball)
			return err
		},
	}
	for name, build := range cases {
		assert.ErrorIs(t, build(), ErrInvalidParameter, name)
	}

	_, err := New(ModelType("hole"), 1, 0, ball)
	assert.ErrorIs(t, err, ErrUnknownModel)
}

func TestPowerAllowsNuggetAboveScaling(t *testing.T) {
	_, err := NewPower(0.1, 5, 1)
	assert.NoError(t, err)
}

func TestStationarity(t *testing.T) {
	a := assert.New(t)

	for _, v := range catalog(t) {
		a.Equal(v.Kind() != Power, IsStationary(v), v.Kind())
	}
}

func TestIsotropy(t *testing.T) {
	a := assert.New(t)

	iso, err := NewGaussian(1, 0, mustBall(t, 3, 3))
	require.NoError(t, err)
	aniso, err := NewGaussian(1, 0, mustBall(t, 3, 1))
	require.NoError(t, err)
	n, err := NewNugget(1, 0)
	require.NoError(t, err)
	p, err := NewPower(1, 0, 1)
	require.NoError(t, err)

	a.True(IsIsotropic(iso))
	a.False(IsIsotropic(aniso))
	a.True(IsIsotropic(n))
	a.True(IsIsotropic(p))
}

func TestRange(t *testing.T) {
	a := assert.New(t)

	g, err := NewGaussian(1, 0, mustBall(t, 3, 7))
	require.NoError(t, err)
	n, err := NewNugget(1, 0)
	require.NoError(t, err)
	p, err := NewPower(1, 0, 1)
	require.NoError(t, err)

	a.Equal(7.0, Range(g))
	a.Equal(0.0, Range(n))
	a.True(math.IsInf(Range(p), 1))
}

func TestCovariance(t *testing.T) {
	a := assert.New(t)

	g, err := NewGaussian(2, 0.5, mustBall(t, 10))
	require.NoError(t, err)

	c, err := Covariance(g, 0)
	require.NoError(t, err)
	a.Equal(1.5, c)

	c, err = Covariance(g, 1000)
	require.NoError(t, err)
	a.InDelta(0, c, 1e-12)

	p, err := NewPower(1, 0, 1)
	require.NoError(t, err)
	_, err = Covariance(p, 1)
	a.ErrorIs(err, ErrNotStationary)
}

func TestString(t *testing.T) {
	a := assert.New(t)

	g, err := NewGaussian(2, 0.5, mustBall(t, 10))
	require.NoError(t, err)
	a.Equal("GaussianVariogram\n├─ sill: 2\n├─ nugget: 0.5\n└─ ball: MetricBall(10)", g.String())

	m, err := NewMatern(1, 0, 2.5, mustBall(t, 4, 2))
	require.NoError(t, err)
	a.Equal("MaternVariogram\n├─ sill: 1\n├─ nugget: 0\n├─ nu: 2.5\n└─ ball: MetricBall([4 2])", m.String())

	p, err := NewPower(1, 0, 1.5)
	require.NoError(t, err)
	a.Equal("PowerVariogram\n├─ sill: 1\n├─ nugget: 0\n└─ exponent: 1.5", p.String())

	n, err := NewNugget(1, 0.3)
	require.NoError(t, err)
	a.Equal("NuggetEffect\n├─ sill: 1\n└─ nugget: 0.3", n.String())
}

func TestParseModelType(t *testing.T) {
	a := assert.New(t)

	m, err := ParseModelType(" Gaussian ")
	a.NoError(err)
	a.Equal(Gaussian, m)

	_, err = ParseModelType("kriging")
	a.ErrorIs(err, ErrUnknownModel)
}
