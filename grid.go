package isosurface

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/isosurface/internal/mctab"
)

// Grid is a regular lattice of scalar samples. Data is stored with x varying
// fastest so the sample at (i,j,k) is Data[i + nx*(j + ny*k)]. NaN samples
// are treated as missing and never interpolated. Infinite samples are
// invalid.
type Grid struct {
	Dims V3i
	Data []float32
}

// NewGrid returns a validated grid over data. data is not copied.
func NewGrid(dims V3i, data []float32) (Grid, error) {
	g := Grid{Dims: dims, Data: data}
	if err := g.validate(); err != nil {
		return Grid{}, err
	}
	return g, nil
}

func (g Grid) validate() error {
	for axis, n := range g.Dims {
		if n < 2 {
			return fmt.Errorf("%w: dimension %d is %d, need at least 2 samples", ErrInvalidGrid, axis, n)
		}
	}
	if len(g.Data) != g.Dims.Prod() {
		return fmt.Errorf("%w: %d samples for dimensions %v", ErrInvalidGrid, len(g.Data), g.Dims)
	}
	for i, v := range g.Data {
		if math32.IsInf(v, 0) {
			return fmt.Errorf("%w: sample %d is %v", ErrInvalidGrid, i, v)
		}
	}
	return nil
}

// Index returns the offset of sample (i,j,k) in Data.
func (g Grid) Index(i, j, k int) int {
	return i + g.Dims[0]*(j+g.Dims[1]*k)
}

// At returns the sample at (i,j,k).
func (g Grid) At(i, j, k int) float32 {
	return g.Data[g.Index(i, j, k)]
}

// Cubes returns the number of cells along each axis.
func (g Grid) Cubes() V3i {
	return g.Dims.SubScalar(1)
}

// Range returns the smallest and largest samples, ignoring missing ones.
// Both are NaN when every sample is missing.
func (g Grid) Range() (min, max float32) {
	min, max = math32.NaN(), math32.NaN()
	for _, v := range g.Data {
		switch {
		case math32.IsNaN(v):
		case math32.IsNaN(min):
			min, max = v, v
		case v < min:
			min = v
		case v > max:
			max = v
		}
	}
	return min, max
}

// cornerOffsets returns the Data offset of each cube corner relative to the
// cube's lowest corner.
func (g Grid) cornerOffsets() (off [8]int) {
	for n, c := range mctab.Corners {
		off[n] = c[0] + g.Dims[0]*(c[1]+g.Dims[1]*c[2])
	}
	return off
}
