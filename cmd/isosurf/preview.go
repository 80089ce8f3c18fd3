package main

import (
	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
)

type viewConfig struct {
	up, eyepos, lookat fauxgl.Vector
	near, far          float64
}

var defaultView = viewConfig{
	up:     fauxgl.V(0, 0, 1),
	eyepos: fauxgl.V(2.5, 2.5, 2),
	lookat: fauxgl.V(0, 0, 0),
	near:   1,
	far:    10,
}

// stlToPNG renders the STL file with phong shading into a PNG image.
func stlToPNG(stlName, outputname string, view viewConfig) error {
	mesh, err := fauxgl.LoadSTL(stlName)
	if err != nil {
		return err
	}
	const (
		width, height = 1280, 960 // output width and height in pixels
		scale         = 2         // supersampling
		fovy          = 30        // vertical field of view in degrees
	)
	var (
		light = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color = fauxgl.HexColor("#468966")
	)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(view.eyepos, view.lookat, view.up).Perspective(fovy, aspect, view.near, view.far)
	shader := fauxgl.NewPhongShader(matrix, light, view.eyepos)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	image := context.Image()
	image = resize.Resize(width, height, image, resize.Bilinear)
	return fauxgl.SavePNG(outputname, image)
}
