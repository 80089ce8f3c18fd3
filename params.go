package isosurface

import (
	"fmt"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// Params configures an extraction.
type Params struct {
	// Isovalue is the threshold. A sample strictly greater than Isovalue is
	// above the surface.
	Isovalue float32
	// Aspect scales output coordinates per axis and corrects normals for
	// non uniform sample spacing. The zero value means {1,1,1}.
	Aspect ms3.Vec
	// LowLevel is added to output z coordinates after scaling.
	LowLevel float32
	// MaxVertices caps the number of generated vertices. Zero or negative
	// means 4 vertices per grid sample: one per grid edge plus one ring
	// center per cube, enough for any surface.
	MaxVertices int
	// MaxStrip caps the length of Surface.Strip. The full strip is still
	// generated. Zero or negative means no cap.
	MaxStrip int
	// Workers bounds the goroutines used by the data parallel phases.
	// Zero or negative means runtime.GOMAXPROCS(0).
	Workers int
}

func (p Params) validate() error {
	if math32.IsNaN(p.Isovalue) || math32.IsInf(p.Isovalue, 0) {
		return fmt.Errorf("%w: isovalue %v is not finite", ErrInvalidParams, p.Isovalue)
	}
	if math32.IsNaN(p.LowLevel) || math32.IsInf(p.LowLevel, 0) {
		return fmt.Errorf("%w: low level %v is not finite", ErrInvalidParams, p.LowLevel)
	}
	if p.Aspect == (ms3.Vec{}) {
		return nil
	}
	for axis, a := range [3]float32{p.Aspect.X, p.Aspect.Y, p.Aspect.Z} {
		if !(a > 0) || math32.IsInf(a, 1) {
			return fmt.Errorf("%w: aspect component %d is %v, want positive and finite", ErrInvalidParams, axis, a)
		}
	}
	return nil
}

// withDefaults returns a copy of p with zero valued fields filled in for g.
func (p Params) withDefaults(g Grid) Params {
	if p.Aspect == (ms3.Vec{}) {
		p.Aspect = ms3.Vec{X: 1, Y: 1, Z: 1}
	}
	if p.MaxVertices <= 0 {
		p.MaxVertices = 4 * len(g.Data)
	}
	if p.Workers <= 0 {
		p.Workers = runtime.GOMAXPROCS(0)
	}
	return p
}
