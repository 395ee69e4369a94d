package variogram

import "errors"

var (
	// ErrInvalidParameter is returned by model and ball constructors.
	ErrInvalidParameter = errors.New("variogram: invalid parameter")

	// ErrInvalidLag is returned for a negative or NaN lag.
	ErrInvalidLag = errors.New("variogram: invalid lag")

	// ErrEmptyDomain is returned when a pairwise matrix is requested over
	// zero elements.
	ErrEmptyDomain = errors.New("variogram: empty domain")

	// ErrIncompatibleGeometry is returned when a geometry produces no
	// samples, or when a value is neither a point nor a geometry.
	ErrIncompatibleGeometry = errors.New("variogram: incompatible geometry")

	ErrDimensionMismatch = errors.New("variogram: dimension mismatch")

	ErrNotStationary = errors.New("variogram: model is not second-order stationary")

	ErrUnknownModel = errors.New("variogram: unknown model")
)
