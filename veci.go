package isosurface

import "gonum.org/v1/gonum/spatial/r3"

// V3i is a 3D integer vector used for grid dimensions and cube positions.
type V3i [3]int

// SubScalar subtracts a scalar from each component of the vector.
func (a V3i) SubScalar(b int) V3i {
	return V3i{a[0] - b, a[1] - b, a[2] - b}
}

// AddScalar adds a scalar to each component of the vector.
func (a V3i) AddScalar(b int) V3i {
	return V3i{a[0] + b, a[1] + b, a[2] + b}
}

// Add adds two vectors. Return v = a + b.
func (a V3i) Add(b V3i) V3i {
	return V3i{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Prod returns the product of the components.
func (a V3i) Prod() int {
	return a[0] * a[1] * a[2]
}

// ToV3 converts V3i (integer) to r3.Vec (float).
func (a V3i) ToV3() r3.Vec {
	return r3.Vec{X: float64(a[0]), Y: float64(a[1]), Z: float64(a[2])}
}

// contains reports whether (i,j,k) lies in [0,a) on every axis.
func (a V3i) contains(i, j, k int) bool {
	return i >= 0 && j >= 0 && k >= 0 && i < a[0] && j < a[1] && k < a[2]
}
