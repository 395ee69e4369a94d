package variogram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelSpec(t *testing.T) {
	a := assert.New(t)

	spec, err := ParseModelSpec([]byte(`
model: Matern
sill: 2
nugget: 0.1
ranges: [10, 5]
rotation: 30
params:
  nu: "1.5"
`))
	require.NoError(t, err)
	a.Equal(Matern, spec.Model)

	v, err := spec.Build()
	require.NoError(t, err)

	m, ok := v.(*MaternVariogram)
	require.True(t, ok)
	a.Equal(1.5, m.Nu())
	a.Equal(2.0, m.Sill())
	a.Equal(0.1, m.Nugget())
	a.Equal([]float64{10, 5}, m.Ball().Ranges())
	a.Equal(30.0, m.Ball().(*Ball).Rotation().Degrees)
	a.False(IsIsotropic(m))
}

func TestModelSpecErrors(t *testing.T) {
	cases := map[string]error{
		"model: kriging\n":                                          ErrUnknownModel,
		"model: matern\nsill: 1\nranges: [1]\n":                     ErrInvalidParameter,
		"model: matern\nsill: 1\nranges: [1]\nparams: {nu: soft}\n": ErrInvalidParameter,
		"model: power\nsill: 1\n":                                   ErrInvalidParameter,
		"model: gaussian\nsill: 1\n":                                ErrInvalidParameter,
		"model: gaussian\nsill: 1\nranges: [1, 2, 3]\nrotation: 5\n": ErrInvalidParameter,
		"model: spherical\nsill: 1\nnugget: 2\nranges: [1]\n":       ErrInvalidParameter,
	}
	for doc, want := range cases {
		spec, err := ParseModelSpec([]byte(doc))
		if err == nil {
			_, err = spec.Build()
		}
		assert.ErrorIs(t, err, want, doc)
	}

	_, err := ParseModelSpec([]byte("model: [gaussian"))
	assert.Error(t, err)
}

func TestModelSpecRoundTrip(t *testing.T) {
	a := assert.New(t)

	rotated, err := (&ModelSpec{Model: Gaussian, Sill: 1, Ranges: []float64{4, 2}, Rotation: 45}).Build()
	require.NoError(t, err)
	models := append(catalog(t), rotated)

	for _, v := range models {
		data, err := SpecOf(v).Marshal()
		require.NoError(t, err)

		spec, err := ParseModelSpec(data)
		require.NoError(t, err, string(data))
		back, err := spec.Build()
		require.NoError(t, err, string(data))

		a.Equal(v.String(), back.String())
		for _, h := range []float64{0, 0.5, 3, 12} {
			a.Equal(mustAt(t, v, h), mustAt(t, back, h), "%s at %v", v.Kind(), h)
		}
	}
}

func TestSpecOfPower(t *testing.T) {
	a := assert.New(t)

	v, err := NewPower(2, 0.5, 0.75)
	require.NoError(t, err)

	spec := SpecOf(v)
	a.Equal(Power, spec.Model)
	a.Empty(spec.Ranges)
	a.Equal(map[string]interface{}{"exponent": 0.75}, spec.Params)
}
