package isosurface

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface/internal/mctab"
)

// edgeCache maps crossed grid edges near the sweep front to vertex indices.
// X and Y edges are kept for the z planes below and above the current slab,
// Z edges for the rows at the rear and front of the current cube row.
// Empty entries hold -1.
type edgeCache struct {
	nx, cx int
	x      [2][]int32 // ny*cx entries per plane, indexed j*cx + i.
	y      [2][]int32 // cy*nx entries per plane, indexed j*nx + i.
	z      [2][]int32 // nx entries per row, indexed i.
	below  int
	rear   int
}

func newEdgeCache(dims V3i) *edgeCache {
	nx, ny := dims[0], dims[1]
	cx, cy := nx-1, ny-1
	ec := &edgeCache{nx: nx, cx: cx}
	for p := 0; p < 2; p++ {
		ec.x[p] = make([]int32, ny*cx)
		ec.y[p] = make([]int32, cy*nx)
		ec.z[p] = make([]int32, nx)
		clear32(ec.x[p])
		clear32(ec.y[p])
	}
	return ec
}

// nextSlab retires the below plane when the sweep enters slab k.
func (ec *edgeCache) nextSlab(k int) {
	if k > 0 {
		ec.below ^= 1
	}
	above := ec.below ^ 1
	clear32(ec.x[above])
	clear32(ec.y[above])
	clear32(ec.z[0])
	clear32(ec.z[1])
	ec.rear = 0
}

// nextRow retires the rear row when the sweep enters row j of a slab.
func (ec *edgeCache) nextRow(j int) {
	if j > 0 {
		ec.rear ^= 1
	}
	clear32(ec.z[ec.rear^1])
}

// slot returns the cache entry of edge e of cube (i,j) in the current slab.
func (ec *edgeCache) slot(e, i, j int) *int32 {
	below, above := ec.below, ec.below^1
	rear, front := ec.rear, ec.rear^1
	switch e {
	case 0:
		return &ec.x[below][j*ec.cx+i]
	case 1:
		return &ec.y[below][j*ec.nx+i+1]
	case 2:
		return &ec.x[below][(j+1)*ec.cx+i]
	case 3:
		return &ec.y[below][j*ec.nx+i]
	case 4:
		return &ec.x[above][j*ec.cx+i]
	case 5:
		return &ec.y[above][j*ec.nx+i+1]
	case 6:
		return &ec.x[above][(j+1)*ec.cx+i]
	case 7:
		return &ec.y[above][j*ec.nx+i]
	case 8:
		return &ec.z[rear][i]
	case 9:
		return &ec.z[rear][i+1]
	case 10:
		return &ec.z[front][i+1]
	case 11:
		return &ec.z[front][i]
	}
	panic("bug: bad edge number")
}

func clear32(s []int32) {
	for i := range s {
		s[i] = -1
	}
}

// mesher turns classification codes into shared vertices and polygons.
type mesher struct {
	g        Grid
	iso      float32
	off      [8]int
	maxVerts int

	// verts are vertex positions in grid coordinates.
	verts []ms3.Vec
	// polys stores polygon vertex indices with a stride of
	// mctab.MaxPolyVerts, unused entries set to -1.
	polys []int32
	// vertPolys lists the polygons of each vertex in ascending order.
	vertPolys [][]int32
}

func newMesher(g Grid, iso float32, maxVerts, npoly int) *mesher {
	return &mesher{
		g:        g,
		iso:      iso,
		off:      g.cornerOffsets(),
		maxVerts: maxVerts,
		polys:    make([]int32, 0, npoly*mctab.MaxPolyVerts),
	}
}

func (m *mesher) numPolys() int { return len(m.polys) / mctab.MaxPolyVerts }

// polygon returns the vertex indices of polygon p.
func (m *mesher) polygon(p int) []int32 { return polygonAt(m.polys, p) }

// polygonAt returns record p of a polygon table with a stride of
// mctab.MaxPolyVerts, cut at the first unused entry.
func polygonAt(polys []int32, p int) []int32 {
	rec := polys[p*mctab.MaxPolyVerts : (p+1)*mctab.MaxPolyVerts]
	for n, v := range rec {
		if v < 0 {
			return rec[:n]
		}
	}
	return rec
}

// run sweeps the cubes k outer, j middle, i inner.
func (m *mesher) run(codes []uint16) error {
	cubes := m.g.Cubes()
	cache := newEdgeCache(m.g.Dims)
	var ev [12]int32
	ci := 0
	for k := 0; k < cubes[2]; k++ {
		cache.nextSlab(k)
		for j := 0; j < cubes[1]; j++ {
			cache.nextRow(j)
			for i := 0; i < cubes[0]; i++ {
				code := codes[ci]
				ci++
				switch code {
				case 0x00, 0xff:
					continue
				case mctab.Invalid:
					if err := m.partial(cache, i, j, k); err != nil {
						return err
					}
					continue
				}
				row := mctab.Cases[code]
				for e := 0; e < 12; e++ {
					if !row.Crossed(e) {
						continue
					}
					s := cache.slot(e, i, j)
					if *s < 0 {
						v, err := m.interpolate(e, i, j, k)
						if err != nil {
							return err
						}
						*s = v
					}
					ev[e] = *s
				}
				if err := m.addPolygons(row, &ev); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// partial handles a cube with a missing corner: crossed edges between two
// present samples get vertices so neighbors can share them, no polygons are
// produced.
func (m *mesher) partial(cache *edgeCache, i, j, k int) error {
	base := m.g.Index(i, j, k)
	for e, ends := range mctab.EdgeCorners {
		va := m.g.Data[base+m.off[ends[0]]]
		vb := m.g.Data[base+m.off[ends[1]]]
		if math32.IsNaN(va) || math32.IsNaN(vb) || (va > m.iso) == (vb > m.iso) {
			continue
		}
		s := cache.slot(e, i, j)
		if *s >= 0 {
			continue
		}
		v, err := m.interpolate(e, i, j, k)
		if err != nil {
			return err
		}
		*s = v
	}
	return nil
}

// interpolate creates the vertex where edge e of cube (i,j,k) meets the
// isovalue.
func (m *mesher) interpolate(e, i, j, k int) (int32, error) {
	ends := mctab.EdgeCorners[e]
	base := m.g.Index(i, j, k)
	va := m.g.Data[base+m.off[ends[0]]]
	vb := m.g.Data[base+m.off[ends[1]]]
	t := math32.Max(0, math32.Min(1, (m.iso-va)/(vb-va)))
	c := mctab.Corners[ends[0]]
	p := ms3.Vec{X: float32(i + c[0]), Y: float32(j + c[1]), Z: float32(k + c[2])}
	switch mctab.EdgeAxis[e] {
	case 0:
		p.X += t
	case 1:
		p.Y += t
	default:
		p.Z += t
	}
	return m.addVertex(p)
}

// centroid creates a vertex at the mean position of verts.
func (m *mesher) centroid(verts []int32) (int32, error) {
	var sum ms3.Vec
	for _, v := range verts {
		sum = ms3.Add(sum, m.verts[v])
	}
	return m.addVertex(ms3.Scale(1/float32(len(verts)), sum))
}

func (m *mesher) addVertex(p ms3.Vec) (int32, error) {
	if len(m.verts) >= m.maxVerts {
		return -1, fmt.Errorf("%w: surface needs more than %d vertices", ErrVertexCapacity, m.maxVerts)
	}
	m.verts = append(m.verts, p)
	m.vertPolys = append(m.vertPolys, nil)
	return int32(len(m.verts) - 1), nil
}

// addPolygons expands the edge numbers of a case row into vertex indices
// and records the polygons in both cross reference tables. A ring becomes a
// fan of triangles around a new vertex at its centroid.
func (m *mesher) addPolygons(row mctab.Case, ev *[12]int32) error {
	var buf [mctab.MaxRingVerts]int32
	k := 0
	for p := 0; p < int(row.NList); p++ {
		n := row.PolySize(p)
		poly := buf[:n]
		for v := range poly {
			poly[v] = ev[row.Edge(k+v)]
		}
		k += n
		if !row.IsRing(p) {
			m.addPolygon(poly...)
			continue
		}
		c, err := m.centroid(poly)
		if err != nil {
			return err
		}
		for v := range poly {
			m.addPolygon(c, poly[v], poly[(v+1)%n])
		}
	}
	return nil
}

func (m *mesher) addPolygon(poly ...int32) {
	pi := int32(m.numPolys())
	start := len(m.polys)
	for n := 0; n < mctab.MaxPolyVerts; n++ {
		m.polys = append(m.polys, -1)
	}
	for v, vi := range poly {
		m.polys[start+v] = vi
		m.vertPolys[vi] = append(m.vertPolys[vi], pi)
	}
}
