package models

import (
	"fmt"
	"math/rand/v2"
	"time"

	"play-and-learn/internal/anim"
)

// Board layout of the standard easy-mode game
const (
	ShapeColumnX  = 80
	TargetColumnX = 650
	FirstRowY     = 80
	RowSpacing    = 100
)

// Board is the full state of one shape-matching session.
type Board struct {
	Shapes    []Shape
	Targets   []Target
	Matches   int
	Completed bool
	Dragging  int // index of the dragged shape, -1 when idle
	Return    anim.ReturnConfig
}

// NewBoard builds a board from explicit pieces.
func NewBoard(shapes []Shape, targets []Target, cfg anim.ReturnConfig) (Board, error) {
	if len(shapes) == 0 {
		return Board{}, fmt.Errorf("board needs at least one shape")
	}
	if len(targets) < len(shapes) {
		return Board{}, fmt.Errorf("board has %d targets for %d shapes", len(targets), len(shapes))
	}
	b := Board{
		Shapes:   append([]Shape(nil), shapes...),
		Targets:  append([]Target(nil), targets...),
		Dragging: -1,
		Return:   cfg,
	}
	return b, nil
}

// StandardBoard lays out the six classic shapes on the left and their
// targets on the right, with target rows shuffled by rng.
func StandardBoard(rng *rand.Rand, cfg anim.ReturnConfig) Board {
	kinds := AllShapeTypes()
	colors := AllColors()

	shapes := make([]Shape, len(kinds))
	for i := range kinds {
		shapes[i] = NewShape(kinds[i], colors[i], Point{X: ShapeColumnX, Y: rowY(i)})
	}

	order := rng.Perm(len(kinds))
	targets := make([]Target, len(kinds))
	for row, idx := range order {
		targets[row] = NewTarget(kinds[idx], colors[idx], Point{X: TargetColumnX, Y: rowY(row)})
	}

	b, _ := NewBoard(shapes, targets, cfg)
	return b
}

func rowY(i int) float64 {
	return float64(FirstRowY + i*RowSpacing)
}

// Total is the number of shapes that must be matched to finish
func (b Board) Total() int {
	return len(b.Shapes)
}

// Progress returns the matched fraction in [0,1]
func (b Board) Progress() float64 {
	if len(b.Shapes) == 0 {
		return 0
	}
	return float64(b.Matches) / float64(len(b.Shapes))
}

// Animating reports whether any shape is still easing back to its origin
func (b Board) Animating() bool {
	for _, s := range b.Shapes {
		if s.State == Returning {
			return true
		}
	}
	return false
}

// DraggedShape returns the shape being dragged, if any
func (b Board) DraggedShape() (Shape, bool) {
	if b.Dragging < 0 || b.Dragging >= len(b.Shapes) {
		return Shape{}, false
	}
	return b.Shapes[b.Dragging], true
}

func (b Board) clone() Board {
	c := b
	c.Shapes = append([]Shape(nil), b.Shapes...)
	c.Targets = append([]Target(nil), b.Targets...)
	return c
}

// BoardEvent is an input to ReduceBoard
type BoardEvent interface {
	boardEvent()
}

// Press is a pointer press at a board position
type Press struct{ At Point }

// Drag is pointer movement while the button is held
type Drag struct{ At Point }

// Release is the pointer button going up
type Release struct{ At Point }

// Tick advances returning shapes by Elapsed
type Tick struct{ Elapsed time.Duration }

func (Press) boardEvent()   {}
func (Drag) boardEvent()    {}
func (Release) boardEvent() {}
func (Tick) boardEvent()    {}

// EffectKind classifies what a transition wants the outside world to do
type EffectKind int

const (
	EffectPickedUp EffectKind = iota
	EffectMatched
	EffectMismatched
	EffectReturned
	EffectCompleted
)

func (k EffectKind) String() string {
	switch k {
	case EffectPickedUp:
		return "picked_up"
	case EffectMatched:
		return "matched"
	case EffectMismatched:
		return "mismatched"
	case EffectReturned:
		return "returned"
	case EffectCompleted:
		return "completed"
	default:
		return fmt.Sprintf("EffectKind(%d)", int(k))
	}
}

// BoardEffect is emitted by ReduceBoard. Shape and Target are -1 when not relevant.
type BoardEffect struct {
	Kind   EffectKind
	Shape  int
	Target int
}

// ReduceBoard applies one event and returns the next state. The input board
// is never modified.
func ReduceBoard(b Board, ev BoardEvent) (Board, []BoardEffect) {
	next := b.clone()
	var effects []BoardEffect

	switch e := ev.(type) {
	case Press:
		effects = next.press(e.At)
	case Drag:
		next.drag(e.At)
	case Release:
		effects = next.release(e.At)
	case Tick:
		effects = next.tick(e.Elapsed)
	}
	return next, effects
}

func (b *Board) press(at Point) []BoardEffect {
	if b.Completed || b.Dragging >= 0 {
		return nil
	}
	for i := range b.Shapes {
		s := &b.Shapes[i]
		if s.IsMatched() || !s.Bounds().Contains(at) {
			continue
		}
		s.State = Dragging
		s.returnElapsed = 0
		b.Dragging = i
		return []BoardEffect{{Kind: EffectPickedUp, Shape: i, Target: -1}}
	}
	return nil
}

func (b *Board) drag(at Point) {
	if b.Completed || b.Dragging < 0 {
		return
	}
	half := float64(ShapeSize) / 2
	b.Shapes[b.Dragging].Pos = Point{X: at.X - half, Y: at.Y - half}
}

func (b *Board) release(at Point) []BoardEffect {
	if b.Dragging < 0 {
		return nil
	}
	i := b.Dragging
	b.Dragging = -1
	s := &b.Shapes[i]

	for j := range b.Targets {
		t := &b.Targets[j]
		if !t.Bounds.Contains(at) || !CanMatch(*s, *t) {
			continue
		}
		s.Pos = t.Bounds.Min()
		s.State = Matched
		s.Target = j
		t.Occupied = true
		b.Matches++

		effects := []BoardEffect{{Kind: EffectMatched, Shape: i, Target: j}}
		if b.Matches >= len(b.Shapes) && !b.Completed {
			b.Completed = true
			effects = append(effects, BoardEffect{Kind: EffectCompleted, Shape: -1, Target: -1})
		}
		return effects
	}

	s.State = Returning
	s.returnFrom = s.Pos
	s.returnElapsed = 0
	return []BoardEffect{{Kind: EffectMismatched, Shape: i, Target: -1}}
}

func (b *Board) tick(elapsed time.Duration) []BoardEffect {
	var effects []BoardEffect
	for i := range b.Shapes {
		s := &b.Shapes[i]
		if s.State != Returning {
			continue
		}
		s.returnElapsed += elapsed
		pos, done := anim.ReturnToOrigin(s.returnFrom, s.Origin, s.returnElapsed, b.Return)
		s.Pos = pos
		if done {
			s.Pos = s.Origin
			s.State = AtOrigin
			effects = append(effects, BoardEffect{Kind: EffectReturned, Shape: i, Target: -1})
		}
	}
	return effects
}
