package isosurface

import "github.com/soypat/glgl/math/ms3"

// Surface is an extracted isosurface. Vertex coordinates are in output
// space: grid coordinates scaled by Params.Aspect with Params.LowLevel
// added to z.
type Surface struct {
	X, Y, Z    []float32
	NX, NY, NZ []float32
	// Strip is the triangle strip index stream, truncated to Params.MaxStrip.
	// Triangle i is Strip[i], Strip[i+1], Strip[i+2] with reversed winding
	// for odd i. Triangles with a repeated index join strips and are
	// skipped.
	Strip []int32
	// StripLen is the length of the generated strip before truncation.
	StripLen int

	polys     []int32
	vertPolys [][]int32
	polyNorm  []ms3.Vec
	strip     []int32
}

// Truncated reports whether Strip is shorter than the generated strip.
func (s *Surface) Truncated() bool { return len(s.Strip) < s.StripLen }

// NumVertices returns the number of vertices.
func (s *Surface) NumVertices() int { return len(s.X) }

// NumPolygons returns the number of polygons.
func (s *Surface) NumPolygons() int { return len(s.polyNorm) }

// Polygon returns the vertex indices of polygon i. The winding is such that
// the polygon normal points toward increasing sample values.
// The returned slice must not be modified.
func (s *Surface) Polygon(i int) []int32 { return polygonAt(s.polys, i) }

// VertexPolygons returns the polygons sharing vertex v in ascending order.
// The returned slice must not be modified.
func (s *Surface) VertexPolygons(v int) []int32 { return s.vertPolys[v] }

// PolygonNormal returns the unit normal of polygon i.
func (s *Surface) PolygonNormal(i int) ms3.Vec { return s.polyNorm[i] }

// Vertex returns the position of vertex i.
func (s *Surface) Vertex(i int) ms3.Vec {
	return ms3.Vec{X: s.X[i], Y: s.Y[i], Z: s.Z[i]}
}

// Normal returns the unit normal of vertex i. Vertices only produced next to
// missing samples have a zero normal.
func (s *Surface) Normal(i int) ms3.Vec {
	return ms3.Vec{X: s.NX[i], Y: s.NY[i], Z: s.NZ[i]}
}

// Triangles decodes the full, untruncated strip and appends its triangles
// to dst. Triangles wind counter clockwise seen from the side of increasing
// sample values, the usual outward winding when samples below the isovalue
// are the solid.
func (s *Surface) Triangles(dst []ms3.Triangle) []ms3.Triangle {
	for i := 0; i+2 < len(s.strip); i++ {
		a, b, c := s.strip[i], s.strip[i+1], s.strip[i+2]
		if a == b || b == c || a == c {
			continue
		}
		if i%2 == 1 {
			a, b = b, a
		}
		// Polygon order winds clockwise seen from above the isovalue.
		dst = append(dst, ms3.Triangle{s.Vertex(int(a)), s.Vertex(int(c)), s.Vertex(int(b))})
	}
	return dst
}
