package geometry

import (
	"math"

	vec2d "github.com/flywave/go3d/float64/vec2"
)

type Convex struct {
	vertices []vec2d.T
	hull     []vec2d.T
	edges    []Edge
}

type Edge struct {
	Start  vec2d.T
	End    vec2d.T
	Normal vec2d.T
}

func NewConvex(vertices []vec2d.T) *Convex {
	return &Convex{vertices: vertices}
}

func (c *Convex) Rect() vec2d.Rect {
	r := vec2d.Rect{Min: vec2d.MaxVal, Max: vec2d.MinVal}
	hull := c.Hull()
	for i := range hull {
		r.Extend(&hull[i])
	}
	return r
}

func (c *Convex) Hull() []vec2d.T {
	if c.hull == nil && len(c.vertices) > 0 {
		minX, maxX := c.getExtremePoints()
		c.hull = append(c.quickHull(c.vertices, maxX, minX), c.quickHull(c.vertices, minX, maxX)...)
	}

	return c.hull
}

func (c *Convex) Edges() []Edge {
	if c.edges == nil {
		hull := c.Hull()
		r := Rotator{90}
		for i, start := range hull {
			nextIndex := i + 1
			if len(hull) <= nextIndex {
				nextIndex = 0
			}
			end := hull[nextIndex]
			normal := r.RotateVector(vec2d.Sub(&start, &end))
			normal.Normalize()
			c.edges = append(c.edges, Edge{
				start,
				end,
				normal})
		}
	}
	return c.edges
}

// InHull reports whether point lies strictly inside the hull.
func (c *Convex) InHull(point vec2d.T) bool {
	edges := c.Edges()
	if len(edges) < 3 {
		return false
	}
	for _, edge := range edges {
		if !OnTheRight(Subtract(point, edge.Start), Subtract(edge.End, edge.Start)) {
			return false
		}
	}

	return true
}

func (c *Convex) quickHull(points []vec2d.T, start, end vec2d.T) []vec2d.T {
	lhs, distances := c.lhsPoints(points, start, end)
	if len(lhs) == 0 {
		return []vec2d.T{end}
	}

	farthestPoint := farthest(lhs, distances)

	return append(
		c.quickHull(lhs, farthestPoint, end),
		c.quickHull(lhs, start, farthestPoint)...)
}

func Subtract(lhs vec2d.T, rhs vec2d.T) vec2d.T {
	return vec2d.T{lhs[0] - rhs[0], lhs[1] - rhs[1]}
}

func OnTheRight(v vec2d.T, o vec2d.T) bool {
	return Cross(v, o) < 0
}

func Cross(lhs, rhs vec2d.T) float64 {
	return (lhs[0] * rhs[1]) - (lhs[1] * rhs[0])
}

func (c *Convex) getExtremePoints() (minX, maxX vec2d.T) {
	minX = vec2d.T{math.MaxFloat64, 0}
	maxX = vec2d.T{-math.MaxFloat64, 0}

	for _, p := range c.vertices {
		if p[0] < minX[0] {
			minX = p
		}

		if maxX[0] < p[0] {
			maxX = p
		}
	}

	return minX, maxX
}

// lhsPoints keeps the input order so the hull is the same on every call.
func (c *Convex) lhsPoints(points []vec2d.T, start, end vec2d.T) ([]vec2d.T, []float64) {
	var lhs []vec2d.T
	var distances []float64

	vLine := vec2d.Sub(&end, &start)
	for _, point := range points {
		vPoint := vec2d.Sub(&point, &start)
		if d := Cross(vLine, vPoint); d > 0 {
			lhs = append(lhs, point)
			distances = append(distances, d)
		}
	}

	return lhs, distances
}

func farthest(points []vec2d.T, distances []float64) (farthestPoint vec2d.T) {
	maxDistance := -math.MaxFloat64
	for i, d := range distances {
		if maxDistance < d {
			maxDistance = d
			farthestPoint = points[i]
		}
	}

	return farthestPoint
}
