package isosurface

import (
	"math"

	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

// minArea2 is the squared cross product length below which a fan triangle
// contributes its raw, unnormalized cross product.
const minArea2 = 1e-12

// normals computes unit vertex normals and unit polygon normals. Normals
// point toward increasing sample values and are corrected for aspect.
// Vertices without polygons get a zero normal.
func (m *mesher) normals(aspect ms3.Vec, workers int) (vertex, polygon []ms3.Vec) {
	acc := make([]r3.Vec, len(m.verts))
	polyAcc := make([]r3.Vec, m.numPolys())
	for p := range polyAcc {
		poly := m.polygon(p)
		v0 := vec64(m.verts[poly[0]])
		var sum r3.Vec
		for k := 2; k < len(poly); k++ {
			a := r3.Sub(vec64(m.verts[poly[k]]), v0)
			b := r3.Sub(vec64(m.verts[poly[k-1]]), v0)
			c := r3.Cross(a, b)
			if l2 := r3.Norm2(c); l2 > minArea2 {
				c = r3.Scale(1/math.Sqrt(l2), c)
			}
			acc[poly[0]] = r3.Add(acc[poly[0]], c)
			acc[poly[k-1]] = r3.Add(acc[poly[k-1]], c)
			acc[poly[k]] = r3.Add(acc[poly[k]], c)
			sum = r3.Add(sum, c)
		}
		polyAcc[p] = sum
	}
	inv := r3.Vec{X: 1 / float64(aspect.X), Y: 1 / float64(aspect.Y), Z: 1 / float64(aspect.Z)}
	vertex = make([]ms3.Vec, len(acc))
	parallelFor(workers, len(acc), func(lo, hi int) {
		for v := lo; v < hi; v++ {
			vertex[v] = unitCorrected(acc[v], inv)
		}
	})
	polygon = make([]ms3.Vec, len(polyAcc))
	for p, n := range polyAcc {
		polygon[p] = unitCorrected(n, inv)
	}
	return vertex, polygon
}

// unitCorrected scales n by inv component wise and normalizes it. A zero
// vector stays zero.
func unitCorrected(n, inv r3.Vec) ms3.Vec {
	n = r3.Vec{X: n.X * inv.X, Y: n.Y * inv.Y, Z: n.Z * inv.Z}
	l := r3.Norm(n)
	if l == 0 {
		return ms3.Vec{}
	}
	n = r3.Scale(1/l, n)
	return ms3.Vec{X: float32(n.X), Y: float32(n.Y), Z: float32(n.Z)}
}

func vec64(v ms3.Vec) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}
