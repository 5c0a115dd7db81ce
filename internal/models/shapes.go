package models

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"play-and-learn/internal/anim"
)

// Point is a position in board coordinates (top-left origin, pixels).
type Point = anim.Point

// ShapeSize is the edge length of every shape and target zone.
const ShapeSize = 70

// ShapeType enumerates the drawable shape kinds
type ShapeType int

const (
	Circle ShapeType = iota
	Square
	Triangle
	Star
	Heart
	Diamond
)

var shapeTypeNames = [...]string{"CIRCLE", "SQUARE", "TRIANGLE", "STAR", "HEART", "DIAMOND"}

// AllShapeTypes returns every shape kind in board order
func AllShapeTypes() []ShapeType {
	return []ShapeType{Circle, Square, Triangle, Star, Heart, Diamond}
}

func (s ShapeType) String() string {
	if s < 0 || int(s) >= len(shapeTypeNames) {
		return fmt.Sprintf("ShapeType(%d)", int(s))
	}
	return shapeTypeNames[s]
}

// Label returns the capitalized name shown above target zones
func (s ShapeType) Label() string {
	name := s.String()
	return name[:1] + strings.ToLower(name[1:])
}

// Color enumerates the shape palette
type Color int

const (
	Red Color = iota
	Green
	Blue
	Orange
	Purple
	Yellow
)

var colorNames = [...]string{"red", "green", "blue", "orange", "purple", "yellow"}

var palette = [...]color.NRGBA{
	{R: 255, G: 107, B: 107, A: 255},
	{R: 76, G: 175, B: 80, A: 255},
	{R: 33, G: 150, B: 243, A: 255},
	{R: 255, G: 152, B: 0, A: 255},
	{R: 156, G: 39, B: 176, A: 255},
	{R: 255, G: 193, B: 7, A: 255},
}

// AllColors returns every palette color in board order
func AllColors() []Color {
	return []Color{Red, Green, Blue, Orange, Purple, Yellow}
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// NRGBA returns the display color. Unknown values render mid grey.
func (c Color) NRGBA() color.NRGBA {
	if c < 0 || int(c) >= len(palette) {
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return palette[c]
}

// Rect is an axis-aligned rectangle. Contains is half-open like image.Rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Min returns the top-left corner
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// ShapeState is the per-shape interaction state
type ShapeState int

const (
	AtOrigin ShapeState = iota
	Dragging
	Returning
	Matched
)

func (s ShapeState) String() string {
	switch s {
	case AtOrigin:
		return "at_origin"
	case Dragging:
		return "dragging"
	case Returning:
		return "returning"
	case Matched:
		return "matched"
	default:
		return fmt.Sprintf("ShapeState(%d)", int(s))
	}
}

// Shape is a draggable piece on the board
type Shape struct {
	Type   ShapeType
	Color  Color
	Pos    Point // current top-left
	Origin Point
	State  ShapeState
	Target int // index of the bound target, -1 while unbound

	returnFrom    Point
	returnElapsed time.Duration
}

// NewShape places a shape at its origin
func NewShape(kind ShapeType, c Color, origin Point) Shape {
	return Shape{
		Type:   kind,
		Color:  c,
		Pos:    origin,
		Origin: origin,
		State:  AtOrigin,
		Target: -1,
	}
}

// Bounds returns the shape's hit box at its current position
func (s Shape) Bounds() Rect {
	return Rect{X: s.Pos.X, Y: s.Pos.Y, W: ShapeSize, H: ShapeSize}
}

// IsMatched reports whether the shape is bound to a target
func (s Shape) IsMatched() bool {
	return s.State == Matched
}

// Target is a drop zone expecting one particular type/color pair
type Target struct {
	Type     ShapeType
	Color    Color
	Bounds   Rect
	Occupied bool
}

// NewTarget creates an empty target zone at pos
func NewTarget(kind ShapeType, c Color, pos Point) Target {
	return Target{
		Type:   kind,
		Color:  c,
		Bounds: Rect{X: pos.X, Y: pos.Y, W: ShapeSize, H: ShapeSize},
	}
}

// CanMatch is the binding rule: same type, same color, target still free.
func CanMatch(s Shape, t Target) bool {
	return s.Type == t.Type && s.Color == t.Color && !t.Occupied
}
