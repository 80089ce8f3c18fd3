package field

import (
	"errors"
	"math"
	"strconv"

	"github.com/soypat/isosurface/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// union is the minimum of several fields.
type union struct {
	fields []Field
	bb     r3.Box
}

// Union returns the union of fields, their pointwise minimum.
func Union(fields ...Field) (Field, error) {
	if len(fields) < 2 {
		return nil, errors.New("union requires at least 2 fields")
	}
	for i, f := range fields {
		if f == nil {
			return nil, errors.New("nil field argument (" + strconv.Itoa(i) + ") to Union")
		}
	}
	bb := d3.Box(fields[0].Bounds())
	for _, f := range fields[1:] {
		bb = bb.Extend(d3.Box(f.Bounds()))
	}
	return &union{fields: fields, bb: r3.Box(bb)}, nil
}

// Evaluate returns the minimum of the united fields.
func (s *union) Evaluate(p r3.Vec) float64 {
	d := math.Inf(1)
	for _, f := range s.fields {
		d = math.Min(d, f.Evaluate(p))
	}
	return d
}

func (s *union) Bounds() r3.Box {
	return s.bb
}

// translate moves a field by an offset.
type translate struct {
	f      Field
	offset r3.Vec
	bb     r3.Box
}

// Translate returns f moved by offset.
func Translate(f Field, offset r3.Vec) Field {
	if f == nil {
		panic("nil Field argument")
	}
	return &translate{
		f:      f,
		offset: offset,
		bb:     r3.Box(d3.Box(f.Bounds()).Translate(offset)),
	}
}

func (s *translate) Evaluate(p r3.Vec) float64 {
	return s.f.Evaluate(r3.Sub(p, s.offset))
}

func (s *translate) Bounds() r3.Box {
	return s.bb
}

// pad enlarges the bounds of a field.
type pad struct {
	Field
	bb r3.Box
}

// Pad returns f with its bounds grown by margin on every side. Sampling a
// padded distance field keeps the surface off the grid boundary so the
// extracted mesh is closed.
func Pad(f Field, margin float64) Field {
	if f == nil {
		panic("nil Field argument")
	}
	return &pad{
		Field: f,
		bb:    r3.Box(d3.Box(f.Bounds()).Enlarge(d3.Elem(2 * margin))),
	}
}

func (s *pad) Bounds() r3.Box {
	return s.bb
}
