/*
Package isosurface extracts polygonal isosurfaces from regular 3D scalar
grids and packs them into triangle strips ready for rendering.

Extraction runs four phases in order:

  - cube classification, resolving ambiguous cube faces consistently with
    the neighboring cube;
  - vertex generation, creating exactly one vertex per crossed grid edge;
  - normal calculation;
  - stripification, chaining edge adjacent polygons into strips.

A minimal use:

	g, err := isosurface.NewGrid(isosurface.V3i{nx, ny, nz}, samples)
	if err != nil {
		return err
	}
	surf, err := isosurface.Extract(g, isosurface.Params{Isovalue: 0.5})
	if err != nil {
		return err
	}
	tris := surf.Triangles(nil)
*/
package isosurface
