package isosurface

import "log/slog"

// Extract computes the isosurface of g at p.Isovalue. It classifies every
// cube, generates one vertex per crossed grid edge, computes normals and
// stitches the polygons into a single triangle strip stream.
//
// Extract returns ErrInvalidGrid or ErrInvalidParams for malformed input and
// ErrVertexCapacity when the surface needs more than p.MaxVertices vertices.
// No surface is returned with an error.
func Extract(g Grid, p Params) (*Surface, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	p = p.withDefaults(g)
	log := Logger()

	c := newClassifier(g, p.Isovalue)
	c.run(p.Workers)
	log.Debug("classified cubes", slog.Any("dims", g.Dims), slog.Int("polygons", c.npoly))
	if c.kept > 0 {
		log.Debug("ambiguous faces without neighbor kept base connectivity", slog.Int("faces", c.kept))
	}

	m := newMesher(g, p.Isovalue, p.MaxVertices, c.npoly)
	if err := m.run(c.codes); err != nil {
		return nil, err
	}
	if m.numPolys() != c.npoly {
		panic("bug: polygon count differs from classification")
	}
	vn, pn := m.normals(p.Aspect, p.Workers)
	strip := newStripifier(m).run()
	log.Debug("generated surface", slog.Int("vertices", len(m.verts)), slog.Int("strip", len(strip)))

	s := &Surface{
		X:         make([]float32, len(m.verts)),
		Y:         make([]float32, len(m.verts)),
		Z:         make([]float32, len(m.verts)),
		NX:        make([]float32, len(m.verts)),
		NY:        make([]float32, len(m.verts)),
		NZ:        make([]float32, len(m.verts)),
		StripLen:  len(strip),
		polys:     m.polys,
		vertPolys: m.vertPolys,
		polyNorm:  pn,
		strip:     strip,
	}
	for v, pos := range m.verts {
		s.X[v] = pos.X * p.Aspect.X
		s.Y[v] = pos.Y * p.Aspect.Y
		s.Z[v] = pos.Z*p.Aspect.Z + p.LowLevel
		s.NX[v], s.NY[v], s.NZ[v] = vn[v].X, vn[v].Y, vn[v].Z
	}
	s.Strip = strip
	if p.MaxStrip > 0 && len(strip) > p.MaxStrip {
		s.Strip = append([]int32(nil), strip[:p.MaxStrip]...)
		log.Warn("triangle strip truncated", slog.Int("len", len(strip)), slog.Int("max", p.MaxStrip))
	}
	return s, nil
}
