package isosurface

import (
	"fmt"
	"runtime"

	"gonum.org/v1/gonum/spatial/r3"
)

// Field is a scalar field over a bounded region of space.
type Field interface {
	Evaluate(p r3.Vec) float64
	Bounds() r3.Box
}

// Sample evaluates f at dims evenly spaced points spanning f.Bounds(),
// inclusive of both ends on each axis. Evaluate is called concurrently.
func Sample(f Field, dims V3i) (Grid, error) {
	g := Grid{Dims: dims}
	for axis, n := range dims {
		if n < 2 {
			return Grid{}, fmt.Errorf("%w: dimension %d is %d, need at least 2 samples", ErrInvalidGrid, axis, n)
		}
	}
	bb := f.Bounds()
	step := Spacing(bb, dims)
	g.Data = make([]float32, dims.Prod())
	parallelFor(runtime.GOMAXPROCS(0), dims[2], func(klo, khi int) {
		for k := klo; k < khi; k++ {
			for j := 0; j < dims[1]; j++ {
				for i := 0; i < dims[0]; i++ {
					p := r3.Add(bb.Min, r3.Vec{X: float64(i) * step.X, Y: float64(j) * step.Y, Z: float64(k) * step.Z})
					g.Data[g.Index(i, j, k)] = float32(f.Evaluate(p))
				}
			}
		}
	})
	return g, nil
}

// Spacing returns the distance between adjacent samples along each axis when
// dims samples span bb. Used as Params.Aspect it maps grid coordinates to
// field units, up to the offset bb.Min.
func Spacing(bb r3.Box, dims V3i) r3.Vec {
	size := r3.Sub(bb.Max, bb.Min)
	return r3.Vec{
		X: size.X / float64(dims[0]-1),
		Y: size.Y / float64(dims[1]-1),
		Z: size.Z / float64(dims[2]-1),
	}
}
