// Package field provides analytic scalar fields to sample onto isosurface
// grids. Distance fields are negative inside the shape.
package field

import (
	"errors"
	"math"

	"github.com/soypat/isosurface/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Field is a scalar field over a bounded region.
type Field interface {
	Evaluate(p r3.Vec) float64
	Bounds() r3.Box
}

// sphere is a sphere centered at the origin.
type sphere struct {
	radius float64
	bb     r3.Box
}

// Sphere returns the exact distance field of a sphere.
func Sphere(radius float64) (Field, error) {
	if radius <= 0 {
		return nil, errors.New("radius <= 0")
	}
	d := d3.Elem(radius)
	return &sphere{
		radius: radius,
		bb:     r3.Box{Min: r3.Scale(-1, d), Max: d},
	}, nil
}

// Evaluate returns the minimum distance to a sphere.
func (s *sphere) Evaluate(p r3.Vec) float64 {
	return r3.Norm(p) - s.radius
}

func (s *sphere) Bounds() r3.Box {
	return s.bb
}

// box is a box with optionally rounded edges centered at the origin.
type box struct {
	size  r3.Vec
	round float64
	bb    r3.Box
}

// Box returns the distance field of a box of the given size. Edges are
// rounded when round > 0.
func Box(size r3.Vec, round float64) (Field, error) {
	if d3.LTEZero(size) {
		return nil, errors.New("size <= 0")
	}
	if round < 0 {
		return nil, errors.New("round < 0")
	}
	size = r3.Scale(0.5, size)
	if round > d3.Min(size) {
		return nil, errors.New("round exceeds half the smallest side")
	}
	return &box{
		size:  r3.Sub(size, d3.Elem(round)),
		round: round,
		bb:    r3.Box{Min: r3.Scale(-1, size), Max: size},
	}, nil
}

// Evaluate returns the minimum distance to a box.
func (s *box) Evaluate(p r3.Vec) float64 {
	d := r3.Sub(d3.AbsElem(p), s.size)
	outside := r3.Norm(d3.MaxElem(d, r3.Vec{}))
	inside := math.Min(d3.Max(d), 0)
	return outside + inside - s.round
}

func (s *box) Bounds() r3.Box {
	return s.bb
}

// torus lies in the xy plane around the z axis.
type torus struct {
	greater, ring float64
	bb            r3.Box
}

// Torus returns the exact distance field of a torus around the z axis.
// greaterRadius is measured from the axis to the center of the ring.
func Torus(greaterRadius, ringRadius float64) (Field, error) {
	if greaterRadius <= 0 || ringRadius <= 0 {
		return nil, errors.New("invalid torus parameter")
	} else if ringRadius >= greaterRadius {
		return nil, errors.New("too large torus ring radius")
	}
	R := greaterRadius + ringRadius
	return &torus{
		greater: greaterRadius,
		ring:    ringRadius,
		bb: r3.Box{
			Min: r3.Vec{X: -R, Y: -R, Z: -ringRadius},
			Max: r3.Vec{X: R, Y: R, Z: ringRadius},
		},
	}, nil
}

func (s *torus) Evaluate(p r3.Vec) float64 {
	q := math.Hypot(p.X, p.Y) - s.greater
	return math.Hypot(q, p.Z) - s.ring
}

func (s *torus) Bounds() r3.Box {
	return s.bb
}

// gyroid is a triply periodic minimal surface clipped to a box.
type gyroid struct {
	k  float64
	bb r3.Box
}

// Gyroid returns the gyroid field sin(x)cos(y) + sin(y)cos(z) + sin(z)cos(x)
// with the given spatial period, bounded by a box of the given size centered
// at the origin. It is not a distance field.
func Gyroid(size r3.Vec, period float64) (Field, error) {
	if d3.LTEZero(size) {
		return nil, errors.New("size <= 0")
	}
	if period <= 0 {
		return nil, errors.New("period <= 0")
	}
	size = r3.Scale(0.5, size)
	return &gyroid{
		k:  2 * math.Pi / period,
		bb: r3.Box{Min: r3.Scale(-1, size), Max: size},
	}, nil
}

func (s *gyroid) Evaluate(p r3.Vec) float64 {
	p = r3.Scale(s.k, p)
	sin, cos := d3.SinElem(p), d3.CosElem(p)
	return sin.X*cos.Y + sin.Y*cos.Z + sin.Z*cos.X
}

func (s *gyroid) Bounds() r3.Box {
	return s.bb
}
