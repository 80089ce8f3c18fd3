package isosurface

import (
	"github.com/chewxy/math32"
	"github.com/soypat/isosurface/internal/mctab"
)

// classifier assigns a case table row to every cube of a grid.
type classifier struct {
	g     Grid
	iso   float32
	cubes V3i
	off   [8]int
	// codes holds one mctab.Cases index per cube, or mctab.Invalid,
	// indexed i + cx*(j + cy*k).
	codes []uint16
	// npoly is the number of polygons the codes produce.
	npoly int
	// kept counts ambiguous faces left with base connectivity because the
	// neighbor is outside the grid or has missing samples.
	kept int
}

func newClassifier(g Grid, iso float32) *classifier {
	cubes := g.Cubes()
	return &classifier{
		g:     g,
		iso:   iso,
		cubes: cubes,
		off:   g.cornerOffsets(),
		codes: make([]uint16, cubes.Prod()),
	}
}

func (c *classifier) cubeIndex(i, j, k int) int {
	return i + c.cubes[0]*(j+c.cubes[1]*k)
}

// run classifies all cubes. Sign codes are computed in parallel over z slabs,
// then ambiguous faces are resolved sequentially in cube order so a cube can
// copy the decision of an already resolved neighbor.
func (c *classifier) run(workers int) {
	parallelFor(workers, c.cubes[2], c.classifySlabs)
	c.resolve()
}

func (c *classifier) classifySlabs(klo, khi int) {
	data := c.g.Data
	for k := klo; k < khi; k++ {
		for j := 0; j < c.cubes[1]; j++ {
			ci := c.cubeIndex(0, j, k)
			base := c.g.Index(0, j, k)
			for i := 0; i < c.cubes[0]; i++ {
				var code uint16
				for n, o := range c.off {
					v := data[base+i+o]
					if math32.IsNaN(v) {
						code = mctab.Invalid
						break
					}
					if v > c.iso {
						code |= 1 << n
					}
				}
				c.codes[ci+i] = code
			}
		}
	}
}

func (c *classifier) resolve() {
	ci := 0
	for k := 0; k < c.cubes[2]; k++ {
		for j := 0; j < c.cubes[1]; j++ {
			for i := 0; i < c.cubes[0]; i++ {
				code := c.codes[ci]
				if code == mctab.Invalid {
					ci++
					continue
				}
				if mctab.AmbiguousTopology(mctab.Cases[code].Topology) {
					code = c.disambiguate(i, j, k, ci, code)
					c.codes[ci] = code
				}
				c.npoly += int(mctab.Cases[code].NPoly)
				ci++
			}
		}
	}
}

// disambiguate returns the variant of code whose connected faces match the
// decisions taken for each ambiguous face of cube (i,j,k).
func (c *classifier) disambiguate(i, j, k, ci int, code uint16) uint16 {
	amb := mctab.Ambiguities[code]
	var mask uint
	for q := 0; q < int(amb.NFaces); q++ {
		connect, ok := c.faceChoice(i, j, k, ci, amb.Face(q))
		if !ok {
			c.kept++
		} else if connect {
			mask |= 1 << q
		}
	}
	if mask == 0 {
		return code
	}
	return uint16(amb.Variant(mask))
}

// faceChoice reports whether ambiguous face f of cube (i,j,k) connects its
// above corners. ok is false when no neighbor can take part in the decision.
func (c *classifier) faceChoice(i, j, k, ci, f int) (connect, ok bool) {
	d := mctab.FaceNeighbor[f]
	ni, nj, nk := i+d[0], j+d[1], k+d[2]
	if !c.cubes.contains(ni, nj, nk) {
		return false, false
	}
	nci := c.cubeIndex(ni, nj, nk)
	ncode := c.codes[nci]
	if ncode == mctab.Invalid {
		return false, false
	}
	if nci < ci {
		// Neighbor already resolved, agree with it on the shared face.
		return mctab.Cases[ncode].Flip&(1<<mctab.Opposite(f)) != 0, true
	}
	return c.saddleAbove(i, j, k, f), true
}

// saddleAbove evaluates the bilinear interpolant of face f at its saddle
// point and reports whether it lies above the isovalue.
func (c *classifier) saddleAbove(i, j, k, f int) bool {
	base := c.g.Index(i, j, k)
	var v [4]float64
	for n, corner := range mctab.FaceCorners[f] {
		v[n] = float64(c.g.Data[base+c.off[corner]])
	}
	// On an ambiguous face v0,v2 and v1,v3 lie on opposite sides of the
	// isovalue so the denominator is never zero.
	saddle := (v[0]*v[2] - v[1]*v[3]) / (v[0] + v[2] - v[1] - v[3])
	return saddle > float64(c.iso)
}
