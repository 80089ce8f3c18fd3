package isosurface

import "errors"

var (
	// ErrInvalidGrid is returned when grid dimensions or the sample buffer
	// are malformed.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrInvalidParams is returned for a non finite isovalue or a bad aspect ratio.
	ErrInvalidParams = errors.New("invalid extraction parameters")
	// ErrVertexCapacity is returned when the surface needs more vertices
	// than Params.MaxVertices allows. No surface is produced.
	ErrVertexCapacity = errors.New("vertex capacity exceeded")
)
