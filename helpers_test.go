package isosurface

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/soypat/glgl/math/ms3"
)

func funcGrid(t testing.TB, dims V3i, fn func(x, y, z float64) float64) Grid {
	t.Helper()
	data := make([]float32, dims.Prod())
	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				data[i+dims[0]*(j+dims[1]*k)] = float32(fn(float64(i), float64(j), float64(k)))
			}
		}
	}
	g, err := NewGrid(dims, data)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// sphereGrid samples the distance to the grid center.
func sphereGrid(t testing.TB, n int) Grid {
	c := float64(n-1) / 2
	return funcGrid(t, V3i{n, n, n}, func(x, y, z float64) float64 {
		return math.Sqrt((x-c)*(x-c) + (y-c)*(y-c) + (z-c)*(z-c))
	})
}

func torusGrid(t testing.TB, n int, R, r float64) Grid {
	c := float64(n-1) / 2
	return funcGrid(t, V3i{n, n, n}, func(x, y, z float64) float64 {
		q := math.Hypot(x-c, y-c) - R
		return math.Hypot(q, z-c) - r
	})
}

func gyroidGrid(t testing.TB, n int) Grid {
	s := 2 * math.Pi / float64(n-1) * 1.5
	return funcGrid(t, V3i{n, n, n}, func(x, y, z float64) float64 {
		x, y, z = x*s, y*s, z*s
		return math.Sin(x)*math.Cos(y) + math.Sin(y)*math.Cos(z) + math.Sin(z)*math.Cos(x)
	})
}

// noiseGrid returns uniform noise in [-1,1). With border set the outermost
// samples are -1 so any surface is closed.
func noiseGrid(t testing.TB, rng *rand.Rand, dims V3i, border bool) Grid {
	return funcGrid(t, dims, func(x, y, z float64) float64 {
		if border {
			for axis, v := range [3]float64{x, y, z} {
				if v == 0 || int(v) == dims[axis]-1 {
					return -1
				}
			}
		}
		return 2*rng.Float64() - 1
	})
}

func mustExtract(t testing.TB, g Grid, p Params) *Surface {
	t.Helper()
	s, err := Extract(g, p)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

type directedEdge struct{ a, b int32 }

func directedEdges(s *Surface) map[directedEdge]int {
	edges := make(map[directedEdge]int)
	for p := 0; p < s.NumPolygons(); p++ {
		poly := s.Polygon(p)
		for i := range poly {
			edges[directedEdge{poly[i], poly[(i+1)%len(poly)]}] = p
		}
	}
	return edges
}

type checkOpts struct {
	// closed requires every polygon edge to be shared with opposite
	// direction by another polygon.
	closed bool
	// smooth requires adjacent polygon normals within 90 degrees.
	smooth bool
}

// checkSurface verifies the structural properties every surface must have.
func checkSurface(t *testing.T, s *Surface, opts checkOpts) {
	t.Helper()
	nv := s.NumVertices()
	for p := 0; p < s.NumPolygons(); p++ {
		poly := s.Polygon(p)
		if len(poly) < 3 {
			t.Fatalf("polygon %d has %d vertices", p, len(poly))
		}
		for _, v := range poly {
			if v < 0 || int(v) >= nv {
				t.Fatalf("polygon %d references vertex %d of %d", p, v, nv)
			}
			if !containsIdx(s.VertexPolygons(int(v)), int32(p)) {
				t.Fatalf("vertex %d does not list polygon %d", v, p)
			}
		}
	}
	for v := 0; v < nv; v++ {
		vp := s.VertexPolygons(v)
		if !sort.SliceIsSorted(vp, func(i, j int) bool { return vp[i] < vp[j] }) {
			t.Fatalf("vertex %d polygon list not sorted: %v", v, vp)
		}
		for _, p := range vp {
			if !containsIdx(s.Polygon(int(p)), int32(v)) {
				t.Fatalf("polygon %d does not list vertex %d", p, v)
			}
		}
	}

	edges := make(map[directedEdge]int)
	for p := 0; p < s.NumPolygons(); p++ {
		poly := s.Polygon(p)
		for i := range poly {
			e := directedEdge{poly[i], poly[(i+1)%len(poly)]}
			if q, ok := edges[e]; ok {
				t.Fatalf("directed edge %v in polygons %d and %d", e, q, p)
			}
			edges[e] = p
		}
	}
	for e, p := range edges {
		q, ok := edges[directedEdge{e.b, e.a}]
		if !ok {
			if opts.closed {
				t.Fatalf("open edge %v of polygon %d", e, p)
			}
			continue
		}
		if opts.smooth && dot(s.PolygonNormal(p), s.PolygonNormal(q)) <= 0 {
			t.Errorf("polygons %d and %d normals differ by 90 degrees or more", p, q)
		}
	}

	checkStrip(t, s)
}

// checkStrip decodes the strip and compares it with the polygon table. Every
// strip triangle must appear once and belong to exactly one polygon.
func checkStrip(t *testing.T, s *Surface) {
	t.Helper()
	want := 0
	for p := 0; p < s.NumPolygons(); p++ {
		want += len(s.Polygon(p)) - 2
	}
	tris := stripTriangles(s.strip)
	if len(tris) != want {
		t.Fatalf("strip has %d triangles, polygons fan into %d", len(tris), want)
	}
	seen := make(map[[3]int32]bool)
	for _, tri := range tris {
		key := tri
		sort.Slice(key[:], func(i, j int) bool { return key[i] < key[j] })
		if seen[key] {
			t.Fatalf("triangle %v emitted twice", tri)
		}
		seen[key] = true
		var owners int
		wound := false
		for _, p := range s.VertexPolygons(int(tri[0])) {
			poly := s.Polygon(int(p))
			i0, i1, i2 := indexOf(poly, tri[0]), indexOf(poly, tri[1]), indexOf(poly, tri[2])
			if i1 < 0 || i2 < 0 {
				continue
			}
			owners++
			n := len(poly)
			if (i1-i0+n)%n < (i2-i0+n)%n {
				wound = true
			}
		}
		if owners != 1 {
			t.Fatalf("triangle %v belongs to %d polygons", tri, owners)
		}
		if !wound {
			t.Fatalf("triangle %v winds against its polygon", tri)
		}
	}
}

func stripTriangles(strip []int32) [][3]int32 {
	var tris [][3]int32
	for i := 0; i+2 < len(strip); i++ {
		a, b, c := strip[i], strip[i+1], strip[i+2]
		if a == b || b == c || a == c {
			continue
		}
		if i%2 == 1 {
			a, b = b, a
		}
		tris = append(tris, [3]int32{a, b, c})
	}
	return tris
}

// interiorOpenEdges counts polygon edges without a reverse twin that do not
// lie in a boundary plane of a grid of the given dimensions. Surface
// coordinates must be grid coordinates.
func interiorOpenEdges(s *Surface, dims V3i) int {
	edges := directedEdges(s)
	open := 0
	for e := range edges {
		if _, ok := edges[directedEdge{e.b, e.a}]; ok {
			continue
		}
		a, b := s.Vertex(int(e.a)), s.Vertex(int(e.b))
		ca, cb := [3]float32{a.X, a.Y, a.Z}, [3]float32{b.X, b.Y, b.Z}
		boundary := false
		for axis := 0; axis < 3; axis++ {
			hi := float32(dims[axis] - 1)
			if ca[axis] == cb[axis] && (ca[axis] == 0 || ca[axis] == hi) {
				boundary = true
			}
		}
		if !boundary {
			open++
		}
	}
	return open
}

func containsIdx(s []int32, v int32) bool {
	return indexOf(s, v) >= 0
}

func dot(a, b ms3.Vec) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
