package render_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface"
	"github.com/soypat/isosurface/field"
	"github.com/soypat/isosurface/render"
)

func TestSTLCreateWriteRead(t *testing.T) {
	surf := torusSurface(t, 24)
	path := filepath.Join(t.TempDir(), "torus.stl")
	err := render.CreateSTL(path, render.NewStripRenderer(surf))
	if err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewStripRenderer(surf))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	n, err := render.WriteSTL(&b, model)
	if err != nil {
		t.Fatal(err)
	}
	if n != b.Len() || n != 84+50*len(model) {
		t.Fatalf("WriteSTL reported %d bytes, wrote %d for %d triangles", n, b.Len(), len(model))
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
	got, err := render.ReadBinarySTL(bytes.NewReader(bfile))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("read %d triangles, wrote %d", len(got), len(model))
	}
	for i := range got {
		if got[i] != model[i] {
			t.Fatalf("triangle %d: read %v, wrote %v", i, got[i], model[i])
		}
	}
}

func TestReadBinarySTLErrors(t *testing.T) {
	if _, err := render.ReadBinarySTL(bytes.NewReader(make([]byte, 40))); err == nil {
		t.Error("short header accepted")
	}
	if _, err := render.ReadBinarySTL(bytes.NewReader(make([]byte, 84))); err == nil {
		t.Error("zero triangle count accepted")
	}
	var b bytes.Buffer
	tri := ms3.Triangle{{}, {X: 1}, {Y: 1}}
	if _, err := render.WriteSTL(&b, []ms3.Triangle{tri, tri}); err != nil {
		t.Fatal(err)
	}
	_, err := render.ReadBinarySTL(bytes.NewReader(b.Bytes()[:84+50+20]))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("truncated file: got %v", err)
	}
	if _, err := render.WriteSTL(&b, nil); err == nil {
		t.Error("empty model written")
	}
}

func TestCreateSTLEmpty(t *testing.T) {
	g, err := isosurface.NewGrid(isosurface.V3i{2, 2, 2}, make([]float32, 8))
	if err != nil {
		t.Fatal(err)
	}
	surf, err := isosurface.Extract(g, isosurface.Params{Isovalue: 1})
	if err != nil {
		t.Fatal(err)
	}
	err = render.CreateSTL(filepath.Join(t.TempDir(), "empty.stl"), render.NewStripRenderer(surf))
	if err == nil {
		t.Fatal("expected error for surface without triangles")
	}
}

func torusSurface(t testing.TB, n int) *isosurface.Surface {
	t.Helper()
	f, err := field.Torus(2, 0.75)
	if err != nil {
		t.Fatal(err)
	}
	f = field.Pad(f, 0.5)
	dims := isosurface.V3i{n, n, n / 2}
	g, err := isosurface.Sample(f, dims)
	if err != nil {
		t.Fatal(err)
	}
	step := isosurface.Spacing(f.Bounds(), dims)
	surf, err := isosurface.Extract(g, isosurface.Params{
		Aspect: ms3.Vec{X: float32(step.X), Y: float32(step.Y), Z: float32(step.Z)},
	})
	if err != nil {
		t.Fatal(err)
	}
	return surf
}

