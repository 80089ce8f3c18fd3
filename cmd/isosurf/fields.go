package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/soypat/isosurface"
	"github.com/soypat/isosurface/field"
	"gonum.org/v1/gonum/spatial/r3"
)

var fields = map[string]func() (field.Field, error){
	"sphere": func() (field.Field, error) { return field.Sphere(1) },
	"box":    func() (field.Field, error) { return field.Box(r3.Vec{X: 2, Y: 1.5, Z: 1}, 0.2) },
	"torus":  func() (field.Field, error) { return field.Torus(1.5, 0.5) },
	"gyroid": func() (field.Field, error) { return field.Gyroid(r3.Vec{X: 4, Y: 4, Z: 4}, 2) },
	"tori": func() (field.Field, error) {
		t1, err := field.Torus(1.5, 0.5)
		if err != nil {
			return nil, err
		}
		t2, err := field.Torus(1, 0.35)
		if err != nil {
			return nil, err
		}
		s, err := field.Sphere(0.6)
		if err != nil {
			return nil, err
		}
		return field.Union(t1, field.Translate(t2, r3.Vec{Z: 0.8}), field.Translate(s, r3.Vec{Z: 1.6}))
	},
}

func fieldNames() string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// namedField returns the field registered as name, padded so that distance
// fields produce closed surfaces.
func namedField(name string) (field.Field, error) {
	fn, ok := fields[name]
	if !ok {
		return nil, fmt.Errorf("unknown field %q, want one of %s", name, fieldNames())
	}
	f, err := fn()
	if err != nil {
		return nil, err
	}
	if name == "gyroid" {
		return f, nil // Periodic, cut open by its bounds.
	}
	size := r3.Sub(f.Bounds().Max, f.Bounds().Min)
	return field.Pad(f, 0.05*math.Max(size.X, math.Max(size.Y, size.Z))), nil
}

// dimsFor returns grid dimensions with n samples along the longest side of
// bb and proportionally fewer along the others.
func dimsFor(bb r3.Box, n int) (isosurface.V3i, error) {
	if n < 2 {
		return isosurface.V3i{}, errors.New("need at least 2 samples per axis")
	}
	size := r3.Sub(bb.Max, bb.Min)
	longest := math.Max(size.X, math.Max(size.Y, size.Z))
	if !(longest > 0) {
		return isosurface.V3i{}, errors.New("empty field bounds")
	}
	var dims isosurface.V3i
	for axis, side := range [3]float64{size.X, size.Y, size.Z} {
		dims[axis] = max(2, int(math.Round(float64(n-1)*side/longest))+1)
	}
	return dims, nil
}

// parseDims parses grid dimensions written as nx,ny,nz.
func parseDims(s string) (isosurface.V3i, error) {
	var dims isosurface.V3i
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return dims, fmt.Errorf("dimensions %q: want nx,ny,nz", s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return dims, fmt.Errorf("dimensions %q: %w", s, err)
		}
		dims[i] = v
	}
	return dims, nil
}

// readRaw reads a grid of little endian float32 samples with x varying
// fastest.
func readRaw(path string, dims isosurface.V3i) (isosurface.Grid, error) {
	fp, err := os.Open(path)
	if err != nil {
		return isosurface.Grid{}, err
	}
	defer fp.Close()
	return decodeRaw(bufio.NewReader(fp), dims)
}

func decodeRaw(r io.Reader, dims isosurface.V3i) (isosurface.Grid, error) {
	for _, n := range dims {
		if n < 2 {
			return isosurface.Grid{}, fmt.Errorf("bad raw dimensions %v", dims)
		}
	}
	data := make([]float32, dims.Prod())
	if err := binary.Read(r, binary.LittleEndian, data); err != nil {
		return isosurface.Grid{}, fmt.Errorf("reading %d samples: %w", len(data), err)
	}
	return isosurface.NewGrid(dims, data)
}
