// Package render projects a search tree and its scene onto the XY plane and
// draws them to an image.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"

	"github.com/markus-exler/go-rrt/rrt"
	"github.com/markus-exler/go-rrt/scene"
	"github.com/markus-exler/go-rrt/spatial"
)

const (
	defaultWidth  = 800
	defaultHeight = 800
)

var (
	backgroundColor = color.RGBA{255, 255, 255, 255}
	obstacleColor   = color.RGBA{60, 60, 60, 255}
	edgeColor       = color.RGBA{120, 160, 220, 255}
	pathColor       = color.RGBA{220, 60, 60, 255}
	targetColor     = color.RGBA{60, 180, 60, 255}
)

// Options control the projected image.
type Options struct {
	Width, Height int
}

// TreeImage draws the obstacles, every tree edge, the target region, and the
// found path, in that order, scaled to the search bounds.
func TreeImage(t *rrt.Tree, sc *scene.Scene, bounds spatial.Bounds, opts Options) image.Image {
	if opts.Width == 0 {
		opts.Width = defaultWidth
	}
	if opts.Height == 0 {
		opts.Height = defaultHeight
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(backgroundColor)
	dc.Clear()

	size := bounds.Size()
	scaleX := float64(opts.Width) / size.X
	scaleY := float64(opts.Height) / size.Y
	toPixel := func(v r3.Vector) (float64, float64) {
		return (v.X - bounds.Min.X) * scaleX, (v.Y - bounds.Min.Y) * scaleY
	}

	dc.SetColor(obstacleColor)
	if sc != nil {
		for _, sp := range sc.Spheres {
			x, y := toPixel(sp.Center)
			dc.DrawCircle(x, y, sp.Radius*scaleX)
			dc.Fill()
		}
		for _, b := range sc.Boxes {
			x0, y0 := toPixel(b.Min)
			x1, y1 := toPixel(b.Max)
			dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
			dc.Fill()
		}
	}

	dc.SetColor(edgeColor)
	dc.SetLineWidth(1)
	for _, e := range t.Edges() {
		x0, y0 := toPixel(e.From)
		x1, y1 := toPixel(e.To)
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
	}

	if sc != nil {
		dc.SetColor(targetColor)
		x, y := toPixel(sc.Target.Center)
		dc.DrawCircle(x, y, sc.Target.Radius*scaleX)
		dc.Fill()
	}

	if path := t.Path(); len(path) > 1 {
		dc.SetColor(pathColor)
		dc.SetLineWidth(3)
		for i := 1; i < len(path); i++ {
			x0, y0 := toPixel(path[i-1])
			x1, y1 := toPixel(path[i])
			dc.DrawLine(x0, y0, x1, y1)
			dc.Stroke()
		}
	}

	return dc.Image()
}

// SavePNG renders the tree and writes it to path.
func SavePNG(path string, t *rrt.Tree, sc *scene.Scene, bounds spatial.Bounds, opts Options) error {
	return gg.SavePNG(path, TreeImage(t, sc, bounds, opts))
}
