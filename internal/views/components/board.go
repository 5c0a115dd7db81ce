package components

import (
	"image"
	"image/color"
	"slices"

	"play-and-learn/internal/models"
	"play-and-learn/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	BoardWidth  = 800
	BoardHeight = 680

	outlineStroke = 3
	outlineAlpha  = 180
)

var (
	boardColor   = color.NRGBA{R: 255, G: 250, B: 240, A: 255}
	dividerColor = color.NRGBA{R: 255, G: 182, B: 193, A: 160}
)

type spriteKey struct {
	kind  models.ShapeType
	color models.Color
}

// Board is the drag-and-drop play field. It renders a models.Board and
// reports pointer input in board coordinates; it never changes the state
// itself.
type Board struct {
	widget.BaseWidget

	state models.Board

	pressHandler   func(models.Point)
	dragHandler    func(models.Point)
	releaseHandler func(models.Point)

	pressed bool
	last    fyne.Position

	sprites  map[spriteKey]image.Image
	outlines map[spriteKey]image.Image
}

var (
	_ desktop.Mouseable = (*Board)(nil)
	_ fyne.Draggable    = (*Board)(nil)
)

func NewBoard() *Board {
	b := &Board{
		sprites:  make(map[spriteKey]image.Image),
		outlines: make(map[spriteKey]image.Image),
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetHandlers sets the pointer callbacks
func (b *Board) SetHandlers(press, drag, release func(models.Point)) {
	b.pressHandler = press
	b.dragHandler = drag
	b.releaseHandler = release
}

// SetState replaces the rendered board
func (b *Board) SetState(state models.Board) {
	b.state = state
	b.Refresh()
}

// State returns the rendered board
func (b *Board) State() models.Board {
	return b.state
}

func (b *Board) sprite(kind models.ShapeType, c models.Color) image.Image {
	key := spriteKey{kind, c}
	if img, ok := b.sprites[key]; ok {
		return img
	}
	img := render.Sprite(kind, c.NRGBA(), models.ShapeSize)
	b.sprites[key] = img
	return img
}

func (b *Board) outline(kind models.ShapeType, c models.Color) image.Image {
	key := spriteKey{kind, c}
	if img, ok := b.outlines[key]; ok {
		return img
	}
	img := render.Outline(kind, render.Faded(c.NRGBA(), outlineAlpha), models.ShapeSize, outlineStroke)
	b.outlines[key] = img
	return img
}

func toPoint(p fyne.Position) models.Point {
	return models.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (b *Board) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pressed = true
	b.last = ev.Position
	if b.pressHandler != nil {
		b.pressHandler(toPoint(ev.Position))
	}
}

func (b *Board) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	b.last = ev.Position
	b.release()
}

func (b *Board) Dragged(ev *fyne.DragEvent) {
	b.last = ev.Position
	if b.pressed && b.dragHandler != nil {
		b.dragHandler(toPoint(ev.Position))
	}
}

func (b *Board) DragEnd() {
	b.release()
}

// release fires once per press, whichever of MouseUp and DragEnd arrives first
func (b *Board) release() {
	if !b.pressed {
		return
	}
	b.pressed = false
	if b.releaseHandler != nil {
		b.releaseHandler(toPoint(b.last))
	}
}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{
		board:      b,
		background: canvas.NewRectangle(boardColor),
		divider:    canvas.NewLine(dividerColor),
	}
	r.divider.StrokeWidth = 2
	r.Refresh()
	return r
}

type boardRenderer struct {
	board      *Board
	background *canvas.Rectangle
	divider    *canvas.Line
	targets    []*canvas.Image
	shapes     []*canvas.Image
	keys       []spriteKey
	objects    []fyne.CanvasObject
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.divider.Position1 = fyne.NewPos(size.Width/2, 20)
	r.divider.Position2 = fyne.NewPos(size.Width/2, size.Height-20)
	r.place()
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(BoardWidth, BoardHeight)
}

func (r *boardRenderer) Refresh() {
	state := r.board.state
	if keys := spriteKeys(state); !slices.Equal(keys, r.keys) {
		r.keys = keys
		r.rebuild(state)
	}
	r.place()
	r.order(state)
	canvas.Refresh(r.board)
}

func (r *boardRenderer) rebuild(state models.Board) {
	r.targets = make([]*canvas.Image, len(state.Targets))
	for i, t := range state.Targets {
		r.targets[i] = newSpriteImage(r.board.outline(t.Type, t.Color))
	}
	r.shapes = make([]*canvas.Image, len(state.Shapes))
	for i, s := range state.Shapes {
		r.shapes[i] = newSpriteImage(r.board.sprite(s.Type, s.Color))
	}
}

func spriteKeys(state models.Board) []spriteKey {
	keys := make([]spriteKey, 0, len(state.Targets)+len(state.Shapes))
	for _, t := range state.Targets {
		keys = append(keys, spriteKey{t.Type, t.Color})
	}
	for _, s := range state.Shapes {
		keys = append(keys, spriteKey{s.Type, s.Color})
	}
	return keys
}

func newSpriteImage(img image.Image) *canvas.Image {
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillStretch
	ci.ScaleMode = canvas.ImageScaleSmooth
	b := img.Bounds()
	ci.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	return ci
}

func (r *boardRenderer) place() {
	state := r.board.state
	for i, t := range state.Targets {
		if i < len(r.targets) {
			r.targets[i].Move(fyne.NewPos(float32(t.Bounds.X), float32(t.Bounds.Y)))
		}
	}
	for i, s := range state.Shapes {
		if i < len(r.shapes) {
			r.shapes[i].Move(fyne.NewPos(float32(s.Pos.X), float32(s.Pos.Y)))
		}
	}
}

// order stacks targets under shapes with the dragged shape on top
func (r *boardRenderer) order(state models.Board) {
	objs := make([]fyne.CanvasObject, 0, 2+len(r.targets)+len(r.shapes))
	objs = append(objs, r.background, r.divider)
	for _, t := range r.targets {
		objs = append(objs, t)
	}
	for i, s := range r.shapes {
		if i != state.Dragging {
			objs = append(objs, s)
		}
	}
	if state.Dragging >= 0 && state.Dragging < len(r.shapes) {
		objs = append(objs, r.shapes[state.Dragging])
	}
	r.objects = objs
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardRenderer) Destroy() {}
