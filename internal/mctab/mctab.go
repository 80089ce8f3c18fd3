// Package mctab holds the marching cubes case table and the cube geometry it
// is expressed in.
//
// Cube corners are numbered
//
//	c0 (0,0,0)  c1 (1,0,0)  c2 (1,1,0)  c3 (0,1,0)
//	c4 (0,0,1)  c5 (1,0,1)  c6 (1,1,1)  c7 (0,1,1)
//
// and bit n of a classification code is set when corner n lies above the
// isovalue. Polygons in the table wind so that the normal
// (v[k]-v[0]) x (v[k-1]-v[0]) points toward increasing scalar values.
//
// Apart from rings, no listed polygon holds more than one crossing segment of
// a cube face, so no triangle of any triangulation lies in a face plane.
// Where a connected
// ambiguous face makes that impossible with edge vertices alone, the row
// marks a ring: a closed loop of edges fanned into triangles around a vertex
// added at the loop's centroid.
package mctab

const (
	// NumBase is the number of rows addressed directly by an 8 bit code.
	NumBase = 256
	// Invalid is the classification of a cube with a missing corner sample.
	Invalid = 0xffff
	// MaxPolys is the largest number of polygons a row produces, ring
	// triangles included.
	MaxPolys = 12
	// MaxListed is the largest number of polygons listed in a row.
	MaxListed = 4
	// MaxPolyVerts is the largest vertex count of a produced polygon.
	MaxPolyVerts = 6
	// MaxRingVerts is the largest edge count of a ring.
	MaxRingVerts = 12
	// NumTopologies is the number of distinct topology classes.
	NumTopologies = 14
)

// Case is one row of the case table.
type Case struct {
	// Topology is the class of the base code under the cube symmetry
	// group and complement.
	Topology uint8
	// NPoly is the number of polygons produced, counting each triangle of
	// a ring.
	NPoly uint8
	// NList is the number of polygons listed in Sizes and Order.
	NList uint8
	// Ring is one plus the index of the listed polygon that is a ring, zero
	// when the row has none.
	Ring uint8
	// Edges has bit e set when cube edge e is crossed.
	Edges uint16
	// Sizes packs listed polygon vertex counts, 4 bits each.
	Sizes uint16
	// Order packs the edge numbers of all listed polygons, 4 bits each and
	// 16 per word, polygons stored back to back. Polygons split along an
	// interior diagonal repeat its end edges.
	Order [2]uint64
	// Code is the corner sign pattern this row was built from.
	Code uint8
	// Flip has bit f set when ambiguous face f connects its above corners.
	Flip uint8
}

// Crossed reports whether edge e is cut by the surface.
func (c Case) Crossed(e int) bool { return c.Edges&(1<<e) != 0 }

// PolySize returns the vertex count of the i'th listed polygon.
func (c Case) PolySize(i int) int { return int(c.Sizes>>(4*i)) & 0xf }

// IsRing reports whether listed polygon i is a ring.
func (c Case) IsRing(i int) bool { return int(c.Ring) == i+1 }

// Edge returns the k'th packed edge number counting across all listed
// polygons.
func (c Case) Edge(k int) int { return int(c.Order[k>>4]>>(4*(k&15))) & 0xf }

// Ambiguity lists the ambiguous faces of a base code and where its
// disambiguated variants start in Cases.
type Ambiguity struct {
	NFaces uint8
	// Faces packs face numbers, 3 bits each.
	Faces uint32
	// Base is the Cases index of the variant selected by face mask 1.
	Base uint16
}

// Face returns the k'th ambiguous face.
func (a Ambiguity) Face(k int) int { return int(a.Faces>>(3*k)) & 0x7 }

// Variant returns the Cases index for a non-zero face mask, where bit k of
// mask flips a.Face(k).
func (a Ambiguity) Variant(mask uint) int {
	if mask == 0 || mask >= 1<<a.NFaces {
		panic("bug: bad ambiguity mask")
	}
	return int(a.Base) + int(mask) - 1
}

// AmbiguousTopology reports whether a topology class contains ambiguous faces.
func AmbiguousTopology(t uint8) bool {
	switch t {
	case 3, 7, 9, 11, 12, 13:
		return true
	}
	return false
}

// Corners are the unit cube corner offsets.
var Corners = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// EdgeCorners gives the corner at each end of an edge. The first corner is
// the one with the lower coordinate along the edge axis.
var EdgeCorners = [12][2]uint8{
	{0, 1}, {1, 2}, {3, 2}, {0, 3},
	{4, 5}, {5, 6}, {7, 6}, {4, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// EdgeAxis is the axis (0=x, 1=y, 2=z) each edge runs along.
var EdgeAxis = [12]uint8{0, 1, 0, 1, 0, 1, 0, 1, 2, 2, 2, 2}

// Face numbering.
const (
	FaceXMin = iota
	FaceXMax
	FaceYMin
	FaceYMax
	FaceZMin
	FaceZMax
)

// FaceCorners lists face corners counter clockwise seen from outside the
// cube. Opposite faces differ only in their lowest bit.
var FaceCorners = [6][4]uint8{
	{0, 4, 7, 3},
	{1, 2, 6, 5},
	{0, 1, 5, 4},
	{3, 7, 6, 2},
	{0, 3, 2, 1},
	{4, 5, 6, 7},
}

// FaceNeighbor is the cube offset of the neighbor sharing each face.
var FaceNeighbor = [6][3]int{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// Opposite returns the face of the neighbor cube that coincides with face f.
func Opposite(f int) int { return f ^ 1 }
