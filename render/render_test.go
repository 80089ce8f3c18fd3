package render_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/deadsy/sdfx/obj"
	sdfxrender "github.com/deadsy/sdfx/render"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface"
	"github.com/soypat/isosurface/field"
	"github.com/soypat/isosurface/render"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	benchQuality = 120
)

func TestRenderersAgree(t *testing.T) {
	surf := torusSurface(t, 20)
	fromStrip, err := render.RenderAll(render.NewStripRenderer(surf))
	if err != nil {
		t.Fatal(err)
	}
	fromPolys, err := render.RenderAll(render.NewPolygonRenderer(surf))
	if err != nil {
		t.Fatal(err)
	}
	if len(fromStrip) == 0 || len(fromStrip) != len(fromPolys) {
		t.Fatalf("strip gives %d triangles, polygons %d", len(fromStrip), len(fromPolys))
	}
	for name, tris := range map[string][]ms3.Triangle{"strip": fromStrip, "polygon": fromPolys} {
		if open := openEdges(tris); open != 0 {
			t.Errorf("%s renderer: %d edges without an opposite twin", name, open)
		}
	}
	if whole := surf.Triangles(nil); len(whole) != len(fromStrip) {
		t.Errorf("Surface.Triangles gives %d triangles, renderer %d", len(whole), len(fromStrip))
	}
}

func TestRendererSmallBuffer(t *testing.T) {
	surf := torusSurface(t, 12)
	want := surf.Triangles(nil)
	r := render.NewStripRenderer(surf)
	var got []ms3.Triangle
	buf := make([]ms3.Triangle, 7)
	for {
		n, err := r.ReadTriangles(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatal(err)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d triangles, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("triangle %d differs", i)
		}
	}
}

func TestRenderTruncated(t *testing.T) {
	f, _ := field.Sphere(1)
	f = field.Pad(f, 0.2)
	g, err := isosurface.Sample(f, isosurface.V3i{10, 10, 10})
	if err != nil {
		t.Fatal(err)
	}
	surf, err := isosurface.Extract(g, isosurface.Params{MaxStrip: 5})
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewStripRenderer(surf))
	if err != nil {
		t.Fatal(err)
	}
	if len(model) > 3 {
		t.Errorf("truncated strip of 5 indices rendered %d triangles", len(model))
	}
}

// openEdges counts directed triangle edges whose reverse is missing. A closed
// consistently wound mesh has none.
func openEdges(tris []ms3.Triangle) int {
	edges := make(map[[2]ms3.Vec]int)
	for _, tri := range tris {
		for k := 0; k < 3; k++ {
			edges[[2]ms3.Vec{tri[k], tri[(k+1)%3]}]++
		}
	}
	open := 0
	for e, n := range edges {
		if edges[[2]ms3.Vec{e[1], e[0]}] != n {
			open++
		}
	}
	return open
}

func BenchmarkSDFXBolt(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	output := filepath.Join(b.TempDir(), "sdfx_bolt.stl")
	object, _ := obj.Bolt(&obj.BoltParms{
		Thread:      "npt_1/2",
		Style:       "hex",
		Tolerance:   0.1,
		TotalLength: 20,
		ShankLength: 10,
	})
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, benchQuality, output, &sdfxrender.MarchingCubesOctree{})
	}
}

func BenchmarkTorusUnion(b *testing.B) {
	output := filepath.Join(b.TempDir(), "our_tori.stl")
	t1, _ := field.Torus(6, 2)
	t2, _ := field.Torus(4, 1.5)
	object, err := field.Union(t1, field.Translate(t2, r3.Vec{Z: 4}))
	if err != nil {
		b.Fatal(err)
	}
	object = field.Pad(object, 1)
	dims := isosurface.V3i{benchQuality, benchQuality, benchQuality / 2}
	for i := 0; i < b.N; i++ {
		g, err := isosurface.Sample(object, dims)
		if err != nil {
			b.Fatal(err)
		}
		surf, err := isosurface.Extract(g, isosurface.Params{})
		if err != nil {
			b.Fatal(err)
		}
		if err = render.CreateSTL(output, render.NewStripRenderer(surf)); err != nil {
			b.Fatal(err)
		}
	}
}
