package isosurface

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestGridLayout(t *testing.T) {
	dims := V3i{3, 4, 5}
	data := make([]float32, dims.Prod())
	for i := range data {
		data[i] = float32(i)
	}
	g, err := NewGrid(dims, data)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.At(2, 1, 3); got != float32(2+3*(1+4*3)) {
		t.Errorf("At(2,1,3) = %v", got)
	}
	if got := g.Cubes(); got != (V3i{2, 3, 4}) {
		t.Errorf("Cubes() = %v", got)
	}
	off := g.cornerOffsets()
	if off[6] != 1+3*(1+4) {
		t.Errorf("corner 6 offset %d", off[6])
	}
	for _, bad := range []struct {
		dims V3i
		n    int
	}{
		{V3i{1, 2, 2}, 4},
		{V3i{2, 2, 0}, 0},
		{V3i{2, 2, 2}, 9},
	} {
		if _, err := NewGrid(bad.dims, make([]float32, bad.n)); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("dims %v with %d samples: got %v", bad.dims, bad.n, err)
		}
	}
	data = []float32{0, 1, 2, 3, 4, 5, 6, 7}
	data[5] = math32.Inf(-1)
	if _, err := NewGrid(V3i{2, 2, 2}, data); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("infinite sample: got %v", err)
	}
}

func TestGridRange(t *testing.T) {
	nan := math32.NaN()
	g, err := NewGrid(V3i{2, 2, 2}, []float32{nan, 3, -2, nan, 5, 0, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if min, max := g.Range(); min != -2 || max != 5 {
		t.Errorf("Range() = %v, %v", min, max)
	}
	g.Data = []float32{nan, nan, nan, nan, nan, nan, nan, nan}
	if min, max := g.Range(); !math32.IsNaN(min) || !math32.IsNaN(max) {
		t.Errorf("all missing: Range() = %v, %v", min, max)
	}
}

type planeField struct{ bb r3.Box }

func (f planeField) Evaluate(p r3.Vec) float64 { return p.X + 10*p.Y + 100*p.Z }
func (f planeField) Bounds() r3.Box             { return f.bb }

func TestSample(t *testing.T) {
	f := planeField{bb: r3.Box{Min: r3.Vec{X: -1, Y: 0, Z: 2}, Max: r3.Vec{X: 1, Y: 3, Z: 4}}}
	dims := V3i{3, 4, 5}
	g, err := Sample(f, dims)
	if err != nil {
		t.Fatal(err)
	}
	step := Spacing(f.bb, dims)
	if step != (r3.Vec{X: 1, Y: 1, Z: 0.5}) {
		t.Fatalf("Spacing = %v", step)
	}
	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				p := r3.Vec{X: -1 + float64(i), Y: float64(j), Z: 2 + 0.5*float64(k)}
				if got, want := g.At(i, j, k), float32(f.Evaluate(p)); math.Abs(float64(got-want)) > 1e-4 {
					t.Fatalf("sample (%d,%d,%d) = %v, want %v", i, j, k, got, want)
				}
			}
		}
	}
	if _, err := Sample(f, V3i{3, 1, 3}); !errors.Is(err, ErrInvalidGrid) {
		t.Errorf("degenerate dims: got %v", err)
	}
}

func TestSetLogger(t *testing.T) {
	ctx := context.Background()
	if Logger().Enabled(ctx, slog.LevelError) {
		t.Fatal("default logger should be silent")
	}
	SetLogger(slog.Default())
	if !Logger().Enabled(ctx, slog.LevelError) {
		t.Error("logger not installed")
	}
	SetLogger(nil)
	if Logger().Enabled(ctx, slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
