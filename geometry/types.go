// Package geometry holds the spatial entities a variogram is evaluated on:
// points, which expose their coordinates, and regions, which reduce
// themselves to a finite deterministic set of sample points.
package geometry

import (
	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"
)

// Point is a location in some ambient space.
type Point interface {
	Coordinates() []float64
}

// Geometry is a spatial region. Discretize must return the same non-empty
// sequence of points every time it is called on the same value.
type Geometry interface {
	Discretize() []Point
}

type Coords []float64

func (c Coords) Coordinates() []float64 {
	return c
}

type Point2 vec2d.T

func (p Point2) Coordinates() []float64 {
	return []float64{p[0], p[1]}
}

type Point3 vec3d.T

func (p Point3) Coordinates() []float64 {
	return []float64{p[0], p[1], p[2]}
}

// Single wraps a point as a geometry whose sample is the point itself.
type Single struct {
	Point Point
}

func (s Single) Discretize() []Point {
	return []Point{s.Point}
}

// Samples is a geometry given directly by its sample points.
type Samples []Point

func (s Samples) Discretize() []Point {
	return s
}
