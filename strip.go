package isosurface

import "github.com/soypat/isosurface/internal/mctab"

// Rotation tables for emitting an n sided polygon as a zig-zag strip.
// ntab[n][r] enters over polygon edge (r, r+1) in polygon order, itab[n][r]
// enters over the same edge reversed. Each entry lists all n polygon
// corners in emission order so that every strip triangle keeps the
// polygon's winding.
var ntab, itab [mctab.MaxPolyVerts + 1][][]uint8

func init() {
	for n := 3; n <= mctab.MaxPolyVerts; n++ {
		ntab[n] = make([][]uint8, n)
		itab[n] = make([][]uint8, n)
		for r := 0; r < n; r++ {
			ntab[n][r] = zigzag(n, r, r, (r+1)%n)
			itab[n][r] = zigzag(n, r, (r+1)%n, r)
		}
	}
}

// zigzag starts with corners first and second, which are r and r+1 in some
// order, then repeatedly appends the unused cyclic neighbor of the
// second to last emitted corner.
func zigzag(n, r, first, second int) []uint8 {
	seq := make([]uint8, 2, n)
	seq[0], seq[1] = uint8(first), uint8(second)
	lo, hi := r, (r+1)%n
	for len(seq) < n {
		if int(seq[len(seq)-2]) == lo {
			lo = (lo + n - 1) % n
			seq = append(seq, uint8(lo))
		} else {
			hi = (hi + 1) % n
			seq = append(seq, uint8(hi))
		}
	}
	return seq
}

type polyState uint8

const (
	unvisited polyState = iota
	inStrip
	consumed
)

// stripifier greedily chains edge adjacent polygons into one triangle strip
// stream. Strips are joined with two repeated indices.
type stripifier struct {
	m     *mesher
	state []polyState
	out   []int32
}

func newStripifier(m *mesher) *stripifier {
	return &stripifier{
		m:     m,
		state: make([]polyState, m.numPolys()),
	}
}

func (s *stripifier) run() []int32 {
	for seed := range s.state {
		if s.state[seed] != unvisited {
			continue
		}
		poly := s.m.polygon(seed)
		n := len(poly)
		// The first triangle of a joined strip starts at an index with the
		// parity of the current length.
		tab := ntab[n]
		if len(s.out)%2 == 1 {
			tab = itab[n]
		}
		rot, next := 0, int32(-1)
		for r := 0; r < n; r++ {
			seq := tab[r]
			if q := s.neighbor(int32(seed), poly[seq[n-2]], poly[seq[n-1]]); q >= 0 {
				rot, next = r, q
				break
			}
		}
		seq := tab[rot]
		if len(s.out) > 0 {
			s.out = append(s.out, s.out[len(s.out)-1], poly[seq[0]])
		}
		s.emit(poly, seq)
		s.state[seed] = consumed
		for cur := next; cur >= 0; {
			cur = s.extend(cur)
		}
	}
	return s.out
}

// extend appends the corners of polygon cur not yet in the strip, entering
// over the last two emitted indices. It returns the next polygon of the
// strip or -1 when the strip ends.
func (s *stripifier) extend(cur int32) int32 {
	s.state[cur] = inStrip
	poly := s.m.polygon(int(cur))
	n := len(poly)
	m := len(s.out)
	ia, ib := indexOf(poly, s.out[m-2]), indexOf(poly, s.out[m-1])
	if ia < 0 || ib < 0 {
		panic("bug: strip entered polygon over a foreign edge")
	}
	var seq []uint8
	if (ia+1)%n == ib {
		seq = ntab[n][ia]
	} else {
		seq = itab[n][ib]
	}
	s.emit(poly, seq[2:])
	s.state[cur] = consumed

	m = len(s.out)
	last := s.out[m-1]
	next := s.neighbor(cur, s.out[m-2], last)
	if next < 0 {
		// Swap the exit edge to the other edge of the last triangle by
		// repeating its first corner.
		alt := s.out[m-3]
		if next = s.neighbor(cur, alt, last); next >= 0 {
			s.out = append(s.out[:m-1], alt, last)
		}
	}
	return next
}

func (s *stripifier) emit(poly []int32, seq []uint8) {
	for _, c := range seq {
		s.out = append(s.out, poly[c])
	}
}

// neighbor returns an unvisited polygon other than p containing vertices a
// and b, or -1. It intersects the sorted polygon lists of a and b.
func (s *stripifier) neighbor(p, a, b int32) int32 {
	la, lb := s.m.vertPolys[a], s.m.vertPolys[b]
	x, y := 0, 0
	for x < len(la) && y < len(lb) {
		switch {
		case la[x] < lb[y]:
			x++
		case la[x] > lb[y]:
			y++
		default:
			if q := la[x]; q != p && s.state[q] == unvisited {
				return q
			}
			x++
			y++
		}
	}
	return -1
}

func indexOf(poly []int32, v int32) int {
	for i, pv := range poly {
		if pv == v {
			return i
		}
	}
	return -1
}
