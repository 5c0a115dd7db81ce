package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	PictureAreaWidth  = 350
	PictureAreaHeight = 280
)

var frameColor = color.NRGBA{R: 255, G: 182, B: 193, A: 255}

// PictureFrame shows the launcher picture inside a rounded border
type PictureFrame struct {
	container  *fyne.Container
	image      *canvas.Image
	background *canvas.Rectangle
	hasImage   bool
}

// NewPictureFrame creates an empty frame
func NewPictureFrame() *PictureFrame {
	pf := &PictureFrame{}
	pf.createComponents()
	pf.setupLayout()
	return pf
}

func (pf *PictureFrame) createComponents() {
	pf.background = canvas.NewRectangle(color.White)
	pf.background.StrokeColor = frameColor
	pf.background.StrokeWidth = 4
	pf.background.CornerRadius = 20
	pf.background.SetMinSize(fyne.NewSize(PictureAreaWidth+16, PictureAreaHeight+16))

	pf.image = canvas.NewImageFromImage(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	pf.image.FillMode = canvas.ImageFillContain
	pf.image.ScaleMode = canvas.ImageScaleSmooth
	pf.image.SetMinSize(fyne.NewSize(PictureAreaWidth, PictureAreaHeight))
}

func (pf *PictureFrame) setupLayout() {
	pf.container = container.NewStack(
		pf.background,
		container.NewPadded(pf.image),
	)
}

// SetImage replaces the displayed picture
func (pf *PictureFrame) SetImage(img image.Image) {
	if img == nil {
		return
	}
	fyne.Do(func() {
		pf.image.Image = img
		pf.hasImage = true
		pf.image.Refresh()
	})
}

// HasImage reports whether a picture was set
func (pf *PictureFrame) HasImage() bool {
	return pf.hasImage
}

// GetContainer returns the frame container
func (pf *PictureFrame) GetContainer() *fyne.Container {
	return pf.container
}
