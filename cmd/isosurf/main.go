// Command isosurf extracts an isosurface from an analytic field or a raw
// float32 volume and writes it as a binary STL file, optionally with a PNG
// preview.
//
// Usage:
//
//	isosurf -field torus -n 96 -o torus.stl -png torus.png
//	isosurf -raw volume.f32 -dims 128,128,64 -iso 0.3 -o volume.stl
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurface"
	"github.com/soypat/isosurface/render"
)

type config struct {
	field    string
	n        int
	raw      string
	dims     string
	iso      float64
	output   string
	png      string
	maxStrip int
	workers  int
	verbose  bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.field, "field", "torus", "analytic field to sample: "+fieldNames())
	flag.IntVar(&cfg.n, "n", 64, "samples along the longest axis of the field bounds")
	flag.StringVar(&cfg.raw, "raw", "", "read samples from a raw little endian float32 file instead of a field")
	flag.StringVar(&cfg.dims, "dims", "", "grid dimensions of the raw file as nx,ny,nz")
	flag.Float64Var(&cfg.iso, "iso", 0, "isovalue")
	flag.StringVar(&cfg.output, "o", "isosurface.stl", "output STL file")
	flag.StringVar(&cfg.png, "png", "", "optional PNG preview file")
	flag.IntVar(&cfg.maxStrip, "maxstrip", 0, "truncate the triangle strip to this many indices, 0 for no limit")
	flag.IntVar(&cfg.workers, "workers", 0, "goroutines for parallel phases, 0 for GOMAXPROCS")
	flag.BoolVar(&cfg.verbose, "v", false, "log extraction statistics")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	isosurface.SetLogger(log)
	if err := run(log, cfg); err != nil {
		log.Error("isosurf failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(log *slog.Logger, cfg config) error {
	var (
		grid   isosurface.Grid
		params = isosurface.Params{
			Isovalue: float32(cfg.iso),
			MaxStrip: cfg.maxStrip,
			Workers:  cfg.workers,
		}
		err error
	)
	if cfg.raw != "" {
		dims, err := parseDims(cfg.dims)
		if err != nil {
			return err
		}
		grid, err = readRaw(cfg.raw, dims)
		if err != nil {
			return err
		}
	} else {
		f, err := namedField(cfg.field)
		if err != nil {
			return err
		}
		bb := f.Bounds()
		dims, err := dimsFor(bb, cfg.n)
		if err != nil {
			return err
		}
		grid, err = isosurface.Sample(f, dims)
		if err != nil {
			return err
		}
		step := isosurface.Spacing(bb, dims)
		params.Aspect = ms3.Vec{X: float32(step.X), Y: float32(step.Y), Z: float32(step.Z)}
		params.LowLevel = float32(bb.Min.Z)
	}
	lo, hi := grid.Range()
	log.Info("grid ready", slog.Any("dims", grid.Dims), slog.Float64("min", float64(lo)), slog.Float64("max", float64(hi)))

	surf, err := isosurface.Extract(grid, params)
	if err != nil {
		return err
	}
	if surf.NumPolygons() == 0 {
		return errors.New("isovalue does not cut the grid, no surface")
	}
	log.Info("surface extracted",
		slog.Int("vertices", surf.NumVertices()),
		slog.Int("polygons", surf.NumPolygons()),
		slog.Int("strip", surf.StripLen),
		slog.Bool("truncated", surf.Truncated()),
	)

	if err = render.CreateSTL(cfg.output, render.NewStripRenderer(surf)); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.output, err)
	}
	log.Info("wrote STL", slog.String("path", cfg.output))
	if cfg.png == "" {
		return nil
	}
	if err = stlToPNG(cfg.output, cfg.png, defaultView); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	log.Info("wrote preview", slog.String("path", cfg.png))
	return nil
}
