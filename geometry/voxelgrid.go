package geometry

import (
	"errors"

	vec3d "github.com/flywave/go3d/float64/vec3"
)

var errNoPoint = errors.New("geometry: no point")

type voxelGrid struct {
	LeafSize vec3d.T
}

type voxel struct {
	sum vec3d.T
	num int
}

func newVoxelGrid(leafSize vec3d.T) *voxelGrid {
	return &voxelGrid{LeafSize: leafSize}
}

func minMaxVec3(ra []vec3d.T) (vec3d.T, vec3d.T, error) {
	if len(ra) == 0 {
		return vec3d.T{}, vec3d.T{}, errNoPoint
	}
	min, max := ra[0], ra[0]
	for i := 1; i < len(ra); i++ {
		v := ra[i]
		for k := range v {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}
	return min, max, nil
}

// cells returns the number of leaves along one axis; a non-positive leaf
// collapses the axis into a single cell.
func (f *voxelGrid) cells(extent float64, axis int) int {
	if f.LeafSize[axis] <= 0 {
		return 1
	}
	return int(extent/f.LeafSize[axis]) + 1
}

func (f *voxelGrid) cell(offset float64, axis int) int {
	if f.LeafSize[axis] <= 0 {
		return 0
	}
	return int(offset / f.LeafSize[axis])
}

// Filter replaces the points falling in each occupied voxel by their
// centroid. Voxels are visited in index order.
func (f *voxelGrid) Filter(pc []vec3d.T) ([]vec3d.T, error) {
	min, max, err := minMaxVec3(pc)
	if err != nil {
		return nil, err
	}

	size := vec3d.Sub(&max, &min)
	xs, ys, zs := f.cells(size[0], 0), f.cells(size[1], 1), f.cells(size[2], 2)
	voxels := make([]voxel, xs*ys*zs)

	for i := range pc {
		p := vec3d.Sub(&pc[i], &min)
		x, y, z := f.cell(p[0], 0), f.cell(p[1], 1), f.cell(p[2], 2)
		v := &voxels[x+xs*(y+ys*z)]
		v.num++
		v.sum.Add(&p)
	}

	newPc := make([]vec3d.T, 0, len(pc))
	for i := range voxels {
		v := &voxels[i]
		if v.num == 0 {
			continue
		}
		c := v.sum.Scaled(1.0 / float64(v.num))
		c.Add(&min)
		newPc = append(newPc, c)
	}

	return newPc, nil
}

// Cloud is a region given by a scattered point set, optionally thinned to
// one centroid per voxel of size Leaf before sampling.
type Cloud struct {
	Points []vec3d.T
	Leaf   vec3d.T
}

func (c Cloud) Discretize() []Point {
	pts := c.Points
	if c.Leaf != (vec3d.T{}) {
		filtered, err := newVoxelGrid(c.Leaf).Filter(c.Points)
		if err != nil {
			return nil
		}
		pts = filtered
	}
	ret := make([]Point, len(pts))
	for i := range pts {
		ret[i] = Point3(pts[i])
	}
	return ret
}
