// Package render rasterizes the board sprites and the launcher placeholder.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"play-and-learn/internal/models"
)

// ShadowOffset is how far the drop shadow sits below and right of a sprite
const ShadowOffset = 3

var shadowColor = color.NRGBA{A: 30}

// circle control point distance for a quarter arc
const kappa = 0.5522847

// tracePath adds the outline of kind inside the square (x, y, s) to z.
func tracePath(z *vector.Rasterizer, kind models.ShapeType, x, y, s float32) {
	switch kind {
	case models.Circle:
		ellipse(z, x+s/2, y+s/2, s/2, s/2)
	case models.Square:
		z.MoveTo(x, y)
		z.LineTo(x+s, y)
		z.LineTo(x+s, y+s)
		z.LineTo(x, y+s)
		z.ClosePath()
	case models.Triangle:
		z.MoveTo(x+s/2, y)
		z.LineTo(x+s, y+s)
		z.LineTo(x, y+s)
		z.ClosePath()
	case models.Star:
		cx, cy, r := float64(x+s/2), float64(y+s/2), float64(s/2)
		for i := 0; i < 10; i++ {
			rad := r
			if i%2 == 1 {
				rad = r / 2
			}
			a := math.Pi*float64(i)/5 - math.Pi/2
			px, py := float32(cx+rad*math.Cos(a)), float32(cy+rad*math.Sin(a))
			if i == 0 {
				z.MoveTo(px, py)
			} else {
				z.LineTo(px, py)
			}
		}
		z.ClosePath()
	case models.Heart:
		z.MoveTo(x+s/2, y+s/4)
		z.CubeTo(x+s/2, y, x, y, x, y+s/4)
		z.CubeTo(x, y+s/2, x+s/2, y+3*s/4, x+s/2, y+s)
		z.CubeTo(x+s/2, y+3*s/4, x+s, y+s/2, x+s, y+s/4)
		z.CubeTo(x+s, y, x+s/2, y, x+s/2, y+s/4)
		z.ClosePath()
	case models.Diamond:
		z.MoveTo(x+s/2, y)
		z.LineTo(x+s, y+s/2)
		z.LineTo(x+s/2, y+s)
		z.LineTo(x, y+s/2)
		z.ClosePath()
	}
}

func ellipse(z *vector.Rasterizer, cx, cy, rx, ry float32) {
	kx, ky := rx*kappa, ry*kappa
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
}

func fill(dst draw.Image, c color.Color, trace func(z *vector.Rasterizer)) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	trace(z)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Sprite draws a filled shape of edge size with its drop shadow. The image
// is size+ShadowOffset pixels square; the shape occupies the top-left size×size.
func Sprite(kind models.ShapeType, c color.Color, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size+ShadowOffset, size+ShadowOffset))
	s := float32(size)
	fill(img, shadowColor, func(z *vector.Rasterizer) {
		tracePath(z, kind, ShadowOffset, ShadowOffset, s)
	})
	fill(img, c, func(z *vector.Rasterizer) {
		tracePath(z, kind, 0, 0, s)
	})
	return img
}

// Outline draws the target silhouette of kind as a stroke of the given width.
func Outline(kind models.ShapeType, c color.Color, size, stroke int) *image.RGBA {
	s, w := float32(size), float32(stroke)
	outer := coverage(size, func(z *vector.Rasterizer) {
		tracePath(z, kind, 0, 0, s)
	})
	if 2*w < s {
		inner := coverage(size, func(z *vector.Rasterizer) {
			tracePath(z, kind, w, w, s-2*w)
		})
		for i, a := range inner.Pix {
			if outer.Pix[i] > a {
				outer.Pix[i] -= a
			} else {
				outer.Pix[i] = 0
			}
		}
	}
	img := image.NewRGBA(outer.Bounds())
	draw.DrawMask(img, img.Bounds(), image.NewUniform(c), image.Point{}, outer, image.Point{}, draw.Over)
	return img
}

func coverage(size int, trace func(z *vector.Rasterizer)) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	fill(mask, color.Opaque, trace)
	return mask
}

// Faded returns c with its alpha scaled to a in [0,255]
func Faded(c color.NRGBA, a uint8) color.NRGBA {
	c.A = uint8(uint16(c.A) * uint16(a) / 255)
	return c
}
