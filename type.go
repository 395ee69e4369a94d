package variogram

import (
	"fmt"
	"strings"
)

type ModelType string

const (
	Gaussian       ModelType = "gaussian"
	Exponential    ModelType = "exponential"
	Spherical      ModelType = "spherical"
	Matern         ModelType = "matern"
	Cubic          ModelType = "cubic"
	Pentaspherical ModelType = "pentaspherical"
	SineHole       ModelType = "sinehole"
	Power          ModelType = "power"
	Nugget         ModelType = "nugget"
	Circular       ModelType = "circular"
)

var modelTypes = []ModelType{
	Gaussian, Exponential, Spherical, Matern, Cubic,
	Pentaspherical, SineHole, Power, Nugget, Circular,
}

// ModelTypes lists every supported variant.
func ModelTypes() []ModelType {
	return append([]ModelType(nil), modelTypes...)
}

func ParseModelType(s string) (ModelType, error) {
	m := ModelType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range modelTypes {
		if t == m {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

// Stationary reports whether the family is second-order stationary. It
// depends on the family only, never on chosen parameters.
func (t ModelType) Stationary() bool {
	return t != Power
}

// Ranged reports whether the family needs a metric ball.
func (t ModelType) Ranged() bool {
	return t != Power && t != Nugget
}

func (t ModelType) title() string {
	switch t {
	case Gaussian:
		return "GaussianVariogram"
	case Exponential:
		return "ExponentialVariogram"
	case Spherical:
		return "SphericalVariogram"
	case Matern:
		return "MaternVariogram"
	case Cubic:
		return "CubicVariogram"
	case Pentaspherical:
		return "PentasphericalVariogram"
	case SineHole:
		return "SineHoleVariogram"
	case Power:
		return "PowerVariogram"
	case Nugget:
		return "NuggetEffect"
	case Circular:
		return "CircularVariogram"
	}
	return string(t)
}
