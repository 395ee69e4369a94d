package variogram

import (
	"fmt"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/flywave/go-variogram/geometry"
)

const (
	paramNu       = "nu"
	paramExponent = "exponent"
)

// ModelSpec is the document form of a model:
//
//	model: matern
//	sill: 2
//	nugget: 0.1
//	ranges: [10, 5]
//	rotation: 30
//	params:
//	  nu: 1.5
//
// Rotation, in degrees, applies to two ranges only. Params values may be
// numbers or numeric strings.
type ModelSpec struct {
	Model    ModelType              `yaml:"model"`
	Sill     float64                `yaml:"sill"`
	Nugget   float64                `yaml:"nugget"`
	Ranges   []float64              `yaml:"ranges,omitempty"`
	Rotation float64                `yaml:"rotation,omitempty"`
	Params   map[string]interface{} `yaml:"params,omitempty"`
}

func ParseModelSpec(data []byte) (*ModelSpec, error) {
	var spec ModelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, err
	}
	kind, err := ParseModelType(string(spec.Model))
	if err != nil {
		return nil, err
	}
	spec.Model = kind
	return &spec, nil
}

func (s *ModelSpec) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func (s *ModelSpec) param(name string) (float64, error) {
	raw, ok := s.Params[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s needs %s", ErrInvalidParameter, s.Model, name)
	}
	p, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %v", ErrInvalidParameter, s.Model, name, err)
	}
	return p, nil
}

func (s *ModelSpec) ball() (MetricBall, error) {
	if s.Rotation != 0 {
		if len(s.Ranges) != 2 {
			return nil, fmt.Errorf("%w: rotation needs two ranges, got %d", ErrInvalidParameter, len(s.Ranges))
		}
		b, err := NewRotatedBall([2]float64{s.Ranges[0], s.Ranges[1]}, geometry.Rotator{Degrees: s.Rotation})
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	b, err := NewBall(s.Ranges...)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Build constructs the model the document describes.
func (s *ModelSpec) Build() (Variogram, error) {
	kind, err := ParseModelType(string(s.Model))
	if err != nil {
		return nil, err
	}

	var ball MetricBall
	if kind.Ranged() {
		if ball, err = s.ball(); err != nil {
			return nil, err
		}
	}

	var params []float64
	switch kind {
	case Matern, Power:
		name := paramNu
		if kind == Power {
			name = paramExponent
		}
		p, err := s.param(name)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}

	return New(kind, s.Sill, s.Nugget, ball, params...)
}

// SpecOf is the inverse of Build.
func SpecOf(v Variogram) *ModelSpec {
	spec := &ModelSpec{
		Model:  v.Kind(),
		Sill:   v.Sill(),
		Nugget: v.Nugget(),
	}
	if b := v.Ball(); b != nil {
		spec.Ranges = b.Ranges()
		if rb, ok := b.(*Ball); ok {
			spec.Rotation = rb.Rotation().Degrees
		}
	}
	switch m := v.(type) {
	case *MaternVariogram:
		spec.Params = map[string]interface{}{paramNu: m.Nu()}
	case *PowerVariogram:
		spec.Params = map[string]interface{}{paramExponent: m.Exponent()}
	}
	return spec
}
