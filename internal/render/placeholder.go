package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Launcher picture size
const (
	PictureWidth  = 350
	PictureHeight = 280
)

// Rows trimmed from the top and bottom of a loaded background image
const CropMargin = 50

var (
	gradientFrom = color.NRGBA{R: 255, G: 182, B: 193, A: 255}
	gradientTo   = color.NRGBA{R: 255, G: 218, B: 185, A: 255}
	faceColor    = color.NRGBA{R: 255, G: 107, B: 107, A: 255}
)

// Placeholder draws the stand-in picture used when no background image is
// available: a diagonal gradient, a smiling face and the caption.
func Placeholder(caption string) *image.RGBA {
	const w, h = PictureWidth, PictureHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// gradient projected on the top-left to bottom-right diagonal
	norm := float64(w*w + h*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			t := float64(x*w+y*h) / norm
			img.SetRGBA(x, y, lerpColor(gradientFrom, gradientTo, t))
		}
	}

	fill(img, faceColor, func(z *vector.Rasterizer) {
		ellipse(z, 132.5, 92.5, 12.5, 12.5)
		ellipse(z, 217.5, 92.5, 12.5, 12.5)
	})
	fill(img, faceColor, func(z *vector.Rasterizer) {
		smile(z, 175, 170, 50, 30, 4)
	})

	drawCaption(img, caption, 240, faceColor)
	return img
}

// smile traces the lower half of an ellipse as a band of half-width hw.
func smile(z *vector.Rasterizer, cx, cy, rx, ry, hw float64) {
	const steps = 32
	point := func(a, grow float64) (float32, float32) {
		return float32(cx + (rx+grow)*math.Cos(a)), float32(cy + (ry+grow)*math.Sin(a))
	}
	z.MoveTo(point(0, hw))
	for i := 1; i <= steps; i++ {
		z.LineTo(point(math.Pi*float64(i)/steps, hw))
	}
	for i := steps; i >= 0; i-- {
		z.LineTo(point(math.Pi*float64(i)/steps, -hw))
	}
	z.ClosePath()
}

// drawCaption renders text centered at baseline y, twice the size of the
// 7x13 bitmap face.
func drawCaption(dst draw.Image, text string, baseline int, c color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	if width == 0 {
		return
	}
	small := image.NewRGBA(image.Rect(0, 0, width, face.Height))
	d := font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	const scale = 2
	bw, bh := width*scale, face.Height*scale
	x := (dst.Bounds().Dx() - bw) / 2
	y := baseline - face.Ascent*scale
	xdraw.NearestNeighbor.Scale(dst, image.Rect(x, y, x+bw, y+bh), small, small.Bounds(), draw.Over, nil)
}

// FitPicture crops CropMargin rows off the top and bottom of src, when it is
// tall enough, and scales the rest to the launcher picture size.
func FitPicture(src image.Image) *image.RGBA {
	b := src.Bounds()
	if b.Dy() > 2*CropMargin {
		b = image.Rect(b.Min.X, b.Min.Y+CropMargin, b.Max.X, b.Max.Y-CropMargin)
	}
	dst := image.NewRGBA(image.Rect(0, 0, PictureWidth, PictureHeight))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func lerpColor(a, b color.NRGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
