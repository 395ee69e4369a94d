package geometry

import (
	vec2d "github.com/flywave/go3d/float64/vec2"
	vec3d "github.com/flywave/go3d/float64/vec3"
)

func cellSize(min, max float64, n int) float64 {
	return (max - min) / float64(n)
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Rect is a planar rectangle sampled at the centres of an Nx by Ny grid of
// equal cells, row by row from the minimum corner.
type Rect struct {
	Bounds vec2d.Rect
	Nx, Ny int
}

func NewRect(min, max vec2d.T, nx, ny int) Rect {
	return Rect{Bounds: vec2d.Rect{Min: min, Max: max}, Nx: nx, Ny: ny}
}

func (r Rect) Discretize() []Point {
	nx, ny := atLeastOne(r.Nx), atLeastOne(r.Ny)
	dx := cellSize(r.Bounds.Min[0], r.Bounds.Max[0], nx)
	dy := cellSize(r.Bounds.Min[1], r.Bounds.Max[1], ny)

	ret := make([]Point, 0, nx*ny)
	for y := 0; y < ny; y++ {
		latitude := r.Bounds.Min[1] + dy*(float64(y)+0.5)
		for x := 0; x < nx; x++ {
			longitude := r.Bounds.Min[0] + dx*(float64(x)+0.5)
			ret = append(ret, Point2{longitude, latitude})
		}
	}
	return ret
}

// Box is the three dimensional counterpart of Rect.
type Box struct {
	Bounds     vec3d.Box
	Nx, Ny, Nz int
}

func NewBox(min, max vec3d.T, nx, ny, nz int) Box {
	return Box{Bounds: vec3d.Box{Min: min, Max: max}, Nx: nx, Ny: ny, Nz: nz}
}

func (b Box) Discretize() []Point {
	nx, ny, nz := atLeastOne(b.Nx), atLeastOne(b.Ny), atLeastOne(b.Nz)
	dx := cellSize(b.Bounds.Min[0], b.Bounds.Max[0], nx)
	dy := cellSize(b.Bounds.Min[1], b.Bounds.Max[1], ny)
	dz := cellSize(b.Bounds.Min[2], b.Bounds.Max[2], nz)

	ret := make([]Point, 0, nx*ny*nz)
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			for x := 0; x < nx; x++ {
				ret = append(ret, Point3{
					b.Bounds.Min[0] + dx*(float64(x)+0.5),
					b.Bounds.Min[1] + dy*(float64(y)+0.5),
					b.Bounds.Min[2] + dz*(float64(z)+0.5),
				})
			}
		}
	}
	return ret
}

// Segment is a straight line from A to B sampled at the centres of N equal
// pieces.
type Segment struct {
	A, B vec3d.T
	N    int
}

func (s Segment) Discretize() []Point {
	n := atLeastOne(s.N)
	d := vec3d.Sub(&s.B, &s.A)

	ret := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		t := (float64(i) + 0.5) / float64(n)
		p := d.Scaled(t)
		p.Add(&s.A)
		ret = append(ret, Point3(p))
	}
	return ret
}

// Hull is the convex hull of Vertices, sampled at the centres of an Nx by
// Ny grid over its bounding rectangle that fall inside the hull. A hull too
// thin to contain any centre is sampled at its vertex centroid.
type Hull struct {
	Vertices []vec2d.T
	Nx, Ny   int
}

func (h Hull) Discretize() []Point {
	if len(h.Vertices) == 0 {
		return nil
	}
	c := NewConvex(h.Vertices)
	cells := Rect{Bounds: c.Rect(), Nx: h.Nx, Ny: h.Ny}.Discretize()

	ret := make([]Point, 0, len(cells))
	for _, p := range cells {
		if c.InHull(vec2d.T(p.(Point2))) {
			ret = append(ret, p)
		}
	}
	if len(ret) > 0 {
		return ret
	}

	var centroid vec2d.T
	for i := range h.Vertices {
		centroid.Add(&h.Vertices[i])
	}
	centroid.Scale(1 / float64(len(h.Vertices)))
	return []Point{Point2(centroid)}
}
