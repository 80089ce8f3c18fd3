// Package render turns extracted isosurfaces into triangles and writes them
// as binary STL.
package render

import (
	"io"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface"
)

// Renderer streams triangles. ReadTriangles returns io.EOF once all
// triangles have been read.
type Renderer interface {
	ReadTriangles(dst []ms3.Triangle) (n int, err error)
}

// stripRenderer decodes the strip of a surface incrementally.
type stripRenderer struct {
	s   *isosurface.Surface
	pos int // index of the next strip triangle
}

// NewStripRenderer returns a Renderer decoding s.Strip. Triangles wind
// counter clockwise seen from the side of increasing sample values. A
// truncated strip renders only the triangles it still holds.
func NewStripRenderer(s *isosurface.Surface) Renderer {
	return &stripRenderer{s: s}
}

func (r *stripRenderer) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	strip := r.s.Strip
	for n < len(dst) && r.pos+2 < len(strip) {
		i := r.pos
		r.pos++
		a, b, c := strip[i], strip[i+1], strip[i+2]
		if a == b || b == c || a == c {
			continue
		}
		if i%2 == 1 {
			a, b = b, a
		}
		dst[n] = ms3.Triangle{r.s.Vertex(int(a)), r.s.Vertex(int(c)), r.s.Vertex(int(b))}
		n++
	}
	if r.pos+2 >= len(strip) {
		err = io.EOF
	}
	return n, err
}

// polygonRenderer fans each polygon of a surface around its first vertex.
type polygonRenderer struct {
	s    *isosurface.Surface
	poly int
	k    int // next fan triangle of poly, starting at 2
}

// NewPolygonRenderer returns a Renderer that triangulates the polygons of s
// directly as fans, ignoring the strip. It yields as many triangles as the
// strip with the same winding, though polygons with more than three vertices
// are split along different diagonals.
func NewPolygonRenderer(s *isosurface.Surface) Renderer {
	return &polygonRenderer{s: s, k: 2}
}

func (r *polygonRenderer) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	for n < len(dst) && r.poly < r.s.NumPolygons() {
		poly := r.s.Polygon(r.poly)
		if r.k >= len(poly) {
			r.poly++
			r.k = 2
			continue
		}
		v0 := r.s.Vertex(int(poly[0]))
		dst[n] = ms3.Triangle{v0, r.s.Vertex(int(poly[r.k])), r.s.Vertex(int(poly[r.k-1]))}
		n++
		r.k++
	}
	if r.poly >= r.s.NumPolygons() {
		err = io.EOF
	}
	return n, err
}

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, 1024)
	buf := make([]ms3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
