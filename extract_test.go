package isosurface

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface/internal/mctab"
)

func TestSphereCounts(t *testing.T) {
	g := sphereGrid(t, 5)
	for _, test := range []struct {
		iso          float32
		nv, np, nstr int
		closed       bool
	}{
		{iso: 1.5, nv: 54, np: 56, nstr: 158, closed: true},
		{iso: 1.9, nv: 54, np: 56, nstr: 147, closed: true},
		{iso: 2.5, nv: 72, np: 32, nstr: 105},
		{iso: 3.2, nv: 24, np: 8, nstr: 38},
	} {
		s := mustExtract(t, g, Params{Isovalue: test.iso})
		if s.NumVertices() != test.nv || s.NumPolygons() != test.np || s.StripLen != test.nstr {
			t.Errorf("iso %v: got %d vertices %d polygons strip %d, want %d %d %d", test.iso,
				s.NumVertices(), s.NumPolygons(), s.StripLen, test.nv, test.np, test.nstr)
		}
		if s.Truncated() || len(s.Strip) != s.StripLen {
			t.Errorf("iso %v: unexpected truncation", test.iso)
		}
		checkSurface(t, s, checkOpts{closed: test.closed, smooth: true})
	}
}

func TestSphereNormalsOutward(t *testing.T) {
	s := mustExtract(t, sphereGrid(t, 5), Params{Isovalue: 1.5})
	center := ms3.Vec{X: 2, Y: 2, Z: 2}
	for v := 0; v < s.NumVertices(); v++ {
		n := s.Normal(v)
		if l := ms3.Norm(n); math32.Abs(l-1) > 1e-5 {
			t.Fatalf("vertex %d normal length %v", v, l)
		}
		if dot(ms3.Sub(s.Vertex(v), center), n) <= 0 {
			t.Fatalf("vertex %d normal %v points inward", v, n)
		}
	}
	for p := 0; p < s.NumPolygons(); p++ {
		c := s.Vertex(int(s.Polygon(p)[0]))
		if dot(ms3.Sub(c, center), s.PolygonNormal(p)) <= 0 {
			t.Fatalf("polygon %d normal points inward", p)
		}
	}
}

func TestEdgeReuse(t *testing.T) {
	for _, g := range []Grid{sphereGrid(t, 5), sphereGrid(t, 17), torusGrid(t, 12, 3.3, 1.4)} {
		s := mustExtract(t, g, Params{Isovalue: 1.5})
		seen := make(map[ms3.Vec]int)
		for v := 0; v < s.NumVertices(); v++ {
			p := s.Vertex(v)
			if w, ok := seen[p]; ok {
				t.Fatalf("dims %v: vertices %d and %d both at %v", g.Dims, w, v, p)
			}
			seen[p] = v
			if len(s.VertexPolygons(v)) == 0 {
				t.Fatalf("dims %v: vertex %d has no polygons", g.Dims, v)
			}
		}
	}
}

func TestClosedSurfaces(t *testing.T) {
	for _, n := range []int{9, 17, 33} {
		iso := float32(n-1) / 2 * 0.7
		s := mustExtract(t, sphereGrid(t, n), Params{Isovalue: iso})
		checkSurface(t, s, checkOpts{closed: true, smooth: true})
		if chi := euler(s); chi != 2 {
			t.Errorf("sphere %d: Euler characteristic %d", n, chi)
		}
	}
	s := mustExtract(t, torusGrid(t, 12, 3.3, 1.4), Params{Isovalue: 0})
	if s.NumVertices() != 224 || s.NumPolygons() != 224 {
		t.Errorf("torus: got %d vertices %d polygons, want 224 224", s.NumVertices(), s.NumPolygons())
	}
	checkSurface(t, s, checkOpts{closed: true, smooth: true})
	if chi := euler(s); chi != 0 {
		t.Errorf("torus: Euler characteristic %d", chi)
	}
}

// euler returns V - E + F of a closed surface.
func euler(s *Surface) int {
	return s.NumVertices() - len(directedEdges(s))/2 + s.NumPolygons()
}

func TestGyroidWatertight(t *testing.T) {
	g := gyroidGrid(t, 20)
	s := mustExtract(t, g, Params{Isovalue: 0.1})
	if s.NumPolygons() == 0 {
		t.Fatal("no polygons")
	}
	checkSurface(t, s, checkOpts{smooth: true})
	if open := interiorOpenEdges(s, g.Dims); open != 0 {
		t.Errorf("%d open edges inside the grid", open)
	}
}

func TestNoiseWatertight(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pick := func(choices ...int) int { return choices[rng.Intn(len(choices))] }
	for trial := 0; trial < 60; trial++ {
		dims := V3i{pick(3, 4, 5, 6, 7), pick(3, 4, 5), pick(2, 3, 4, 6)}
		g := noiseGrid(t, rng, dims, false)
		iso := float32(0.6*rng.Float64() - 0.3)
		s := mustExtract(t, g, Params{Isovalue: iso})
		checkSurface(t, s, checkOpts{})
		if open := interiorOpenEdges(s, dims); open != 0 {
			t.Fatalf("dims %v iso %v: %d open edges inside the grid", dims, iso, open)
		}
	}
	for trial := 0; trial < 40; trial++ {
		dims := V3i{pick(5, 6, 7, 8), pick(5, 6), pick(5, 6, 7)}
		s := mustExtract(t, noiseGrid(t, rng, dims, true), Params{})
		checkSurface(t, s, checkOpts{closed: true})
	}
}

func TestAspectInvariance(t *testing.T) {
	g := sphereGrid(t, 5)
	base := mustExtract(t, g, Params{Isovalue: 1.5})
	p := Params{Isovalue: 1.5, Aspect: ms3.Vec{X: 2, Y: 1, Z: 0.5}, LowLevel: 3}
	s := mustExtract(t, g, p)
	if s.NumVertices() != base.NumVertices() || s.NumPolygons() != base.NumPolygons() {
		t.Fatalf("aspect changed counts: %d/%d vs %d/%d", s.NumVertices(), s.NumPolygons(), base.NumVertices(), base.NumPolygons())
	}
	if !reflect.DeepEqual(s.Strip, base.Strip) {
		t.Fatal("aspect changed the strip")
	}
	for v := 0; v < s.NumVertices(); v++ {
		if s.X[v] != 2*base.X[v] || s.Y[v] != base.Y[v] || s.Z[v] != 0.5*base.Z[v]+3 {
			t.Fatalf("vertex %d: got %v from %v", v, s.Vertex(v), base.Vertex(v))
		}
		// Normals scale inversely with the axes.
		n, bn := s.Normal(v), base.Normal(v)
		want := ms3.Unit(ms3.Vec{X: bn.X / 2, Y: bn.Y, Z: bn.Z / 0.5})
		if ms3.Norm(ms3.Sub(n, want)) > 1e-4 {
			t.Fatalf("vertex %d normal %v, want %v", v, n, want)
		}
	}
}

func TestNoSurface(t *testing.T) {
	g := sphereGrid(t, 5)
	for _, iso := range []float32{-1, 10} {
		s := mustExtract(t, g, Params{Isovalue: iso})
		if s.NumVertices() != 0 || s.NumPolygons() != 0 || s.StripLen != 0 || len(s.Strip) != 0 {
			t.Errorf("iso %v: expected empty surface, got %d vertices %d polygons", iso, s.NumVertices(), s.NumPolygons())
		}
		if tris := s.Triangles(nil); len(tris) != 0 {
			t.Errorf("iso %v: %d triangles", iso, len(tris))
		}
	}
}

func TestMissingCorner(t *testing.T) {
	g := sphereGrid(t, 5)
	full := mustExtract(t, g, Params{Isovalue: 3.2})
	data := append([]float32(nil), g.Data...)
	data[0] = math32.NaN()
	gm, err := NewGrid(g.Dims, data)
	if err != nil {
		t.Fatal(err)
	}
	s := mustExtract(t, gm, Params{Isovalue: 3.2})
	if s.NumVertices() != 21 || s.NumPolygons() != 7 {
		t.Errorf("got %d vertices %d polygons, want 21 7", s.NumVertices(), s.NumPolygons())
	}
	if s.NumVertices() >= full.NumVertices() {
		t.Errorf("missing sample did not reduce vertices: %d >= %d", s.NumVertices(), full.NumVertices())
	}
	checkSurface(t, s, checkOpts{})

	// Missing center sample: the eight cubes around it drop their polygons
	// but vertices on their outer edges are still shared with neighbors.
	data = append([]float32(nil), g.Data...)
	data[g.Index(2, 2, 2)] = math32.NaN()
	gm, err = NewGrid(g.Dims, data)
	if err != nil {
		t.Fatal(err)
	}
	s = mustExtract(t, gm, Params{Isovalue: 1.5})
	if s.NumVertices() != 54 || s.NumPolygons() != 48 {
		t.Errorf("center missing: got %d vertices %d polygons, want 54 48", s.NumVertices(), s.NumPolygons())
	}
	checkSurface(t, s, checkOpts{})
}

func TestOrphanVertex(t *testing.T) {
	// Two stacked cubes. The lower one has a missing corner and its only
	// crossings are on edges no valid cube shares.
	nan := math32.NaN()
	data := []float32{
		nan, 1, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	g, err := NewGrid(V3i{2, 2, 3}, data)
	if err != nil {
		t.Fatal(err)
	}
	s := mustExtract(t, g, Params{Isovalue: 0.5})
	if s.NumVertices() != 2 || s.NumPolygons() != 0 || s.StripLen != 0 {
		t.Fatalf("got %d vertices %d polygons strip %d", s.NumVertices(), s.NumPolygons(), s.StripLen)
	}
	want := []ms3.Vec{{X: 1, Y: 0.5}, {X: 1, Z: 0.5}}
	for v, p := range want {
		if s.Vertex(v) != p {
			t.Errorf("vertex %d at %v, want %v", v, s.Vertex(v), p)
		}
		if n := s.Normal(v); n != (ms3.Vec{}) {
			t.Errorf("orphan vertex %d normal %v, want zero", v, n)
		}
		if len(s.VertexPolygons(v)) != 0 {
			t.Errorf("orphan vertex %d has polygons", v)
		}
	}
}

func TestMissingRegion(t *testing.T) {
	g := sphereGrid(t, 9)
	data := append([]float32(nil), g.Data...)
	for k := 3; k < 6; k++ {
		data[g.Index(4, 4, k)] = math32.NaN()
		data[g.Index(0, 4, k)] = math32.NaN()
	}
	gm, err := NewGrid(g.Dims, data)
	if err != nil {
		t.Fatal(err)
	}
	for _, iso := range []float32{1.5, 2.8, 3.5} {
		s := mustExtract(t, gm, Params{Isovalue: iso})
		checkSurface(t, s, checkOpts{})
	}
}

func TestVertexCapacity(t *testing.T) {
	g := sphereGrid(t, 5)
	s, err := Extract(g, Params{Isovalue: 1.5, MaxVertices: 10})
	if !errors.Is(err, ErrVertexCapacity) {
		t.Fatalf("want capacity error, got %v", err)
	}
	if s != nil {
		t.Fatal("surface returned with capacity error")
	}
	if _, err = Extract(g, Params{Isovalue: 1.5, MaxVertices: 54}); err != nil {
		t.Fatalf("exact capacity: %v", err)
	}
	if _, err = Extract(g, Params{Isovalue: 1.5, MaxVertices: 53}); !errors.Is(err, ErrVertexCapacity) {
		t.Fatalf("one short of capacity: got %v", err)
	}
}

func TestInvalidInput(t *testing.T) {
	good := sphereGrid(t, 5)
	for _, test := range []struct {
		name string
		g    Grid
		p    Params
		want error
	}{
		{name: "flat", g: Grid{Dims: V3i{1, 5, 5}, Data: make([]float32, 25)}, want: ErrInvalidGrid},
		{name: "short", g: Grid{Dims: V3i{5, 5, 5}, Data: make([]float32, 124)}, want: ErrInvalidGrid},
		{name: "negative", g: Grid{Dims: V3i{-2, -2, 2}, Data: make([]float32, 8)}, want: ErrInvalidGrid},
		{name: "negative infinity", g: Grid{Dims: V3i{2, 2, 2}, Data: []float32{math32.Inf(-1), 1, 0, 0, 0, 0, 0, 0}}, want: ErrInvalidGrid},
		{name: "positive infinity", g: Grid{Dims: V3i{2, 2, 2}, Data: []float32{0, 0, 0, 0, 0, 0, 0, math32.Inf(1)}}, want: ErrInvalidGrid},
		{name: "nan iso", g: good, p: Params{Isovalue: math32.NaN()}, want: ErrInvalidParams},
		{name: "inf iso", g: good, p: Params{Isovalue: math32.Inf(1)}, want: ErrInvalidParams},
		{name: "nan low", g: good, p: Params{LowLevel: math32.NaN()}, want: ErrInvalidParams},
		{name: "zero aspect", g: good, p: Params{Aspect: ms3.Vec{X: 1, Y: 0, Z: 1}}, want: ErrInvalidParams},
		{name: "negative aspect", g: good, p: Params{Aspect: ms3.Vec{X: -1, Y: 1, Z: 1}}, want: ErrInvalidParams},
		{name: "inf aspect", g: good, p: Params{Aspect: ms3.Vec{X: 1, Y: 1, Z: math32.Inf(1)}}, want: ErrInvalidParams},
		{name: "nan aspect", g: good, p: Params{Aspect: ms3.Vec{X: math32.NaN(), Y: 1, Z: 1}}, want: ErrInvalidParams},
	} {
		s, err := Extract(test.g, test.p)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got error %v, want %v", test.name, err, test.want)
		}
		if s != nil {
			t.Errorf("%s: surface returned with error", test.name)
		}
	}
}

func TestIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	grids := []Grid{sphereGrid(t, 9), gyroidGrid(t, 16), noiseGrid(t, rng, V3i{9, 7, 8}, false)}
	for _, g := range grids {
		first := mustExtract(t, g, Params{Isovalue: 0.05, Workers: 1})
		for _, workers := range []int{1, 3, 8} {
			s := mustExtract(t, g, Params{Isovalue: 0.05, Workers: workers})
			if !reflect.DeepEqual(s, first) {
				t.Fatalf("dims %v: extraction with %d workers differs", g.Dims, workers)
			}
		}
	}
}

func TestStripTruncation(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	g := sphereGrid(t, 5)
	s := mustExtract(t, g, Params{Isovalue: 1.5, MaxStrip: 10})
	if len(s.Strip) != 10 || s.StripLen != 158 || !s.Truncated() {
		t.Fatalf("got strip %d of %d truncated=%v", len(s.Strip), s.StripLen, s.Truncated())
	}
	full := mustExtract(t, g, Params{Isovalue: 1.5})
	if !reflect.DeepEqual(s.Strip, full.Strip[:10]) {
		t.Error("truncated strip is not a prefix of the full strip")
	}
	if got := len(s.Triangles(nil)); got != 104 {
		t.Errorf("decoded %d triangles from untruncated strip, want 104", got)
	}
	if !strings.Contains(buf.String(), "truncated") {
		t.Errorf("missing truncation warning in log:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "polygons=56") {
		t.Errorf("missing classification statistics in log:\n%s", buf.String())
	}
}

func TestTriangles(t *testing.T) {
	s := mustExtract(t, sphereGrid(t, 9), Params{Isovalue: 2.8, Aspect: ms3.Vec{X: 1, Y: 2, Z: 1}})
	tris := s.Triangles(nil)
	want := 0
	for p := 0; p < s.NumPolygons(); p++ {
		want += len(s.Polygon(p)) - 2
	}
	if len(tris) != want {
		t.Fatalf("got %d triangles, want %d", len(tris), want)
	}
	for i, tri := range tris {
		// Stretched sphere: outward is away from the scaled center.
		c := ms3.Scale(1./3, ms3.Add(tri[0], ms3.Add(tri[1], tri[2])))
		n := ms3.Cross(ms3.Sub(tri[1], tri[0]), ms3.Sub(tri[2], tri[0]))
		if dot(n, ms3.Sub(c, ms3.Vec{X: 4, Y: 8, Z: 4})) <= 0 {
			t.Fatalf("triangle %d faces inward", i)
		}
	}
}

func TestSingleCube(t *testing.T) {
	// Corner 0 above: one triangle cutting edges 0, 3 and 8.
	data := []float32{1, 0, 0, 0, 0, 0, 0, 0}
	g, err := NewGrid(V3i{2, 2, 2}, data)
	if err != nil {
		t.Fatal(err)
	}
	s := mustExtract(t, g, Params{Isovalue: 0.5})
	if s.NumVertices() != 3 || s.NumPolygons() != 1 || s.StripLen != 3 {
		t.Fatalf("got %d vertices %d polygons strip %d", s.NumVertices(), s.NumPolygons(), s.StripLen)
	}
	for v := 0; v < 3; v++ {
		p := s.Vertex(v)
		if p.X+p.Y+p.Z != 0.5 {
			t.Errorf("vertex %d at %v not at half edge", v, p)
		}
		// Values increase toward corner 0.
		if n := s.Normal(v); !(n.X < 0 && n.Y < 0 && n.Z < 0) {
			t.Errorf("vertex %d normal %v", v, n)
		}
	}
	checkSurface(t, s, checkOpts{})
}

func TestAmbiguousFaceAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		dims := V3i{6, 5, 4}
		g := noiseGrid(t, rng, dims, false)
		if trial%3 == 0 {
			g.Data[rng.Intn(len(g.Data))] = math32.NaN()
		}
		c := newClassifier(g, 0)
		c.run(2)
		total := 0
		for k := 0; k < c.cubes[2]; k++ {
			for j := 0; j < c.cubes[1]; j++ {
				for i := 0; i < c.cubes[0]; i++ {
					code := c.codes[c.cubeIndex(i, j, k)]
					if code == mctab.Invalid {
						continue
					}
					row := mctab.Cases[code]
					total += int(row.NPoly)
					for f := mctab.FaceXMax; f <= mctab.FaceZMax; f += 2 {
						d := mctab.FaceNeighbor[f]
						ni, nj, nk := i+d[0], j+d[1], k+d[2]
						if !c.cubes.contains(ni, nj, nk) {
							continue
						}
						ncode := c.codes[c.cubeIndex(ni, nj, nk)]
						if ncode == mctab.Invalid {
							continue
						}
						a := row.Flip>>f&1 != 0
						b := mctab.Cases[ncode].Flip>>mctab.Opposite(f)&1 != 0
						if a != b {
							t.Fatalf("cubes (%d,%d,%d) and (%d,%d,%d) disagree on face %d", i, j, k, ni, nj, nk, f)
						}
					}
				}
			}
		}
		if total != c.npoly {
			t.Fatalf("polygon count %d, codes produce %d", c.npoly, total)
		}
	}
}

func TestConnectedFacePieces(t *testing.T) {
	// Two columns of cubes sharing several ambiguous faces, some of them
	// connected. No polygon may put two crossing segments of one face in
	// a single fan.
	data := []float32{
		-3, -1, 1, 2, 1, -3, -2, 2,
		-1, 3, 3, 1, -3, -3, 1, 1,
		-2, -3, -1, 2, -1, -2, -1, 3,
		-2, -3, 3, -3, 2, -1, 3, 1,
	}
	g, err := NewGrid(V3i{2, 4, 4}, data)
	if err != nil {
		t.Fatal(err)
	}
	s := mustExtract(t, g, Params{})
	if s.NumVertices() != 32 || s.NumPolygons() != 12 || s.StripLen != 49 {
		t.Fatalf("got %d vertices %d polygons strip %d, want 32 12 49", s.NumVertices(), s.NumPolygons(), s.StripLen)
	}
	for p := 0; p < s.NumPolygons(); p++ {
		if n := len(s.Polygon(p)); n > mctab.MaxPolyVerts {
			t.Errorf("polygon %d has %d vertices", p, n)
		}
	}
	checkSurface(t, s, checkOpts{})
}

func TestRingCenter(t *testing.T) {
	// The left cube connects its x+ face, leaving a 9 edge loop that no
	// split into face free pieces can cover. It is fanned around a vertex
	// at the loop centroid.
	data := []float32{-2, 3, 2, 3, -2, -1, 3, -2, 2, 3, 2, 1}
	g, err := NewGrid(V3i{3, 2, 2}, data)
	if err != nil {
		t.Fatal(err)
	}
	s := mustExtract(t, g, Params{})
	if s.NumVertices() != 13 || s.NumPolygons() != 11 || s.StripLen != 27 {
		t.Fatalf("got %d vertices %d polygons strip %d, want 13 11 27", s.NumVertices(), s.NumPolygons(), s.StripLen)
	}
	const center = 9
	want := ms3.Vec{X: 28. / 45, Y: 7. / 18, Z: 7. / 18}
	if c := s.Vertex(center); ms3.Norm(ms3.Sub(c, want)) > 1e-5 {
		t.Errorf("center at %v, want %v", c, want)
	}
	vp := s.VertexPolygons(center)
	if len(vp) != 9 {
		t.Fatalf("center in %d polygons, want 9", len(vp))
	}
	for _, p := range vp {
		poly := s.Polygon(int(p))
		if len(poly) != 3 || poly[0] != center {
			t.Errorf("polygon %d = %v, want a triangle from the center", p, poly)
		}
	}
	if n := s.Normal(center); math32.Abs(ms3.Norm(n)-1) > 1e-5 || n.Y < 0.7 || n.Z < 0.7 {
		t.Errorf("center normal %v", n)
	}
	c := newClassifier(g, 0)
	c.run(1)
	if !reflect.DeepEqual(c.codes, []uint16{630, 642}) {
		t.Errorf("codes %v", c.codes)
	}
	if row := mctab.Cases[630]; !row.IsRing(0) || row.NPoly != 9 {
		t.Errorf("row 630: ring %d polygons %d", row.Ring, row.NPoly)
	}
	checkSurface(t, s, checkOpts{})
}

func TestIsolatedAmbiguousCube(t *testing.T) {
	for _, test := range []struct {
		data  []float32
		kept  int
		codes []uint16
	}{
		// Corners 0 and 2 above: face z- is ambiguous with no neighbor.
		{data: []float32{1, 0, 1, 0, 0, 0, 0, 0}, kept: 1, codes: []uint16{0x05}},
		// Corners 0 and 1 above: no ambiguous face.
		{data: []float32{1, 1, 0, 0, 0, 0, 0, 0}, kept: 0, codes: []uint16{0x03}},
	} {
		g, err := NewGrid(V3i{2, 2, 2}, test.data)
		if err != nil {
			t.Fatal(err)
		}
		c := newClassifier(g, 0.5)
		c.run(1)
		if c.kept != test.kept || !reflect.DeepEqual(c.codes, test.codes) {
			t.Errorf("data %v: kept %d codes %v, want %d %v", test.data, c.kept, c.codes, test.kept, test.codes)
		}
		if got := mctab.AmbiguousTopology(mctab.Cases[c.codes[0]].Topology); got != (test.kept > 0) {
			t.Errorf("data %v: ambiguous topology %v", test.data, got)
		}
	}
}

func TestSaddleDecider(t *testing.T) {
	// Face z- of a single cube with corners 0 and 2 above. The saddle value
	// is (a*c - b*d)/(a+c-b-d).
	for _, test := range []struct {
		hi, lo  float32
		connect bool
	}{
		{hi: 1, lo: 0, connect: false}, // saddle 0.5 equals isovalue
		{hi: 2, lo: 0, connect: true},  // saddle 1
		{hi: 1, lo: -1, connect: false},
	} {
		data := []float32{test.hi, test.lo, test.hi, test.lo, 0, 0, 0, 0}
		g, err := NewGrid(V3i{2, 2, 2}, data)
		if err != nil {
			t.Fatal(err)
		}
		c := newClassifier(g, 0.5)
		if got := c.saddleAbove(0, 0, 0, mctab.FaceZMin); got != test.connect {
			t.Errorf("hi %v lo %v: got %v", test.hi, test.lo, got)
		}
	}
}

func BenchmarkExtractSphere(b *testing.B) {
	g := sphereGrid(b, 64)
	iso := float32(math.Floor(63./2*0.8)) + 0.25
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Extract(g, Params{Isovalue: iso}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExtractGyroid(b *testing.B) {
	g := gyroidGrid(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Extract(g, Params{Isovalue: 0.1}); err != nil {
			b.Fatal(err)
		}
	}
}
