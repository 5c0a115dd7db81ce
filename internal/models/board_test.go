package models

import (
	"math/rand/v2"
	"testing"
	"time"

	"play-and-learn/internal/anim"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func center(r Rect) Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// dragTo presses on shape i, drags to the point and releases there.
func dragTo(t *testing.T, b Board, i int, to Point) (Board, []BoardEffect) {
	t.Helper()
	b, effects := ReduceBoard(b, Press{At: center(b.Shapes[i].Bounds())})
	if b.Dragging != i {
		t.Fatalf("press did not pick shape %d (dragging=%d, effects=%v)", i, b.Dragging, effects)
	}
	b, _ = ReduceBoard(b, Drag{At: to})
	return ReduceBoard(b, Release{At: to})
}

func singleBoard(t *testing.T, s Shape, tg Target) Board {
	t.Helper()
	b, err := NewBoard([]Shape{s}, []Target{tg}, anim.DefaultReturn())
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

func TestCanMatch_AllCombinations(t *testing.T) {
	for _, st := range AllShapeTypes() {
		for _, sc := range AllColors() {
			for _, tt := range AllShapeTypes() {
				for _, tc := range AllColors() {
					for _, occupied := range []bool{false, true} {
						s := NewShape(st, sc, Point{X: 80, Y: 80})
						tg := NewTarget(tt, tc, Point{X: 650, Y: 80})
						tg.Occupied = occupied

						want := st == tt && sc == tc && !occupied
						if got := CanMatch(s, tg); got != want {
							t.Errorf("CanMatch(%v/%v, %v/%v occupied=%v) = %v, want %v",
								st, sc, tt, tc, occupied, got, want)
						}
					}
				}
			}
		}
	}
}

func TestReduceBoard_MatchAllCombinations(t *testing.T) {
	for _, st := range AllShapeTypes() {
		for _, sc := range AllColors() {
			for _, tt := range AllShapeTypes() {
				for _, tc := range AllColors() {
					b := singleBoard(t,
						NewShape(st, sc, Point{X: 80, Y: 80}),
						NewTarget(tt, tc, Point{X: 650, Y: 80}))

					next, effects := dragTo(t, b, 0, center(b.Targets[0].Bounds))
					want := st == tt && sc == tc
					if got := next.Shapes[0].IsMatched(); got != want {
						t.Errorf("%v/%v onto %v/%v matched=%v, want %v", st, sc, tt, tc, got, want)
					}
					if next.Targets[0].Occupied != want {
						t.Errorf("%v/%v onto %v/%v occupied=%v, want %v", st, sc, tt, tc, next.Targets[0].Occupied, want)
					}
					if len(effects) == 0 {
						t.Errorf("%v/%v onto %v/%v produced no effects", st, sc, tt, tc)
					}
				}
			}
		}
	}
}

func TestReduceBoard_RedCircleOntoRedCircle(t *testing.T) {
	b := StandardBoard(newRand(1), anim.DefaultReturn())
	target := -1
	for j, tg := range b.Targets {
		if tg.Type == Circle && tg.Color == Red {
			target = j
		}
	}
	if target < 0 {
		t.Fatal("no red circle target on the standard board")
	}
	if b.Shapes[0].Type != Circle || b.Shapes[0].Color != Red {
		t.Fatalf("shape 0 is %v/%v, want red circle", b.Shapes[0].Type, b.Shapes[0].Color)
	}

	next, effects := dragTo(t, b, 0, center(b.Targets[target].Bounds))

	if !next.Shapes[0].IsMatched() {
		t.Error("shape should be matched")
	}
	if !next.Targets[target].Occupied {
		t.Error("target should be occupied")
	}
	if next.Matches != b.Matches+1 {
		t.Errorf("Matches %d, want %d", next.Matches, b.Matches+1)
	}
	if next.Shapes[0].Pos != next.Targets[target].Bounds.Min() {
		t.Errorf("shape at %v, want snapped to %v", next.Shapes[0].Pos, next.Targets[target].Bounds.Min())
	}
	if len(effects) != 1 || effects[0].Kind != EffectMatched || effects[0].Target != target {
		t.Errorf("effects %v, want one matched effect on target %d", effects, target)
	}
	if b.Shapes[0].IsMatched() || b.Matches != 0 {
		t.Error("ReduceBoard modified its input")
	}
}

func TestReduceBoard_RedCircleOntoBlueCircleReturns(t *testing.T) {
	cfg := anim.DefaultReturn()
	origin := Point{X: 80, Y: 80}
	b := singleBoard(t, NewShape(Circle, Red, origin), NewTarget(Circle, Blue, Point{X: 650, Y: 80}))

	drop := center(b.Targets[0].Bounds)
	next, effects := dragTo(t, b, 0, drop)
	if len(effects) != 1 || effects[0].Kind != EffectMismatched {
		t.Fatalf("effects %v, want one mismatched effect", effects)
	}
	if next.Shapes[0].State != Returning {
		t.Fatalf("state %v, want returning", next.Shapes[0].State)
	}
	if next.Targets[0].Occupied {
		t.Error("target must stay free")
	}

	released := next.Shapes[0].Pos
	budget := anim.ReturnDuration(released, origin, cfg)
	var returned bool
	for elapsed := time.Duration(0); elapsed <= budget; elapsed += cfg.Frame {
		var fx []BoardEffect
		next, fx = ReduceBoard(next, Tick{Elapsed: cfg.Frame})
		for _, e := range fx {
			if e.Kind == EffectReturned {
				returned = true
			}
		}
		if returned {
			break
		}
	}
	if !returned {
		t.Fatal("shape never reported returning home")
	}
	if next.Shapes[0].Pos != origin {
		t.Errorf("shape at %v, want exact origin %v", next.Shapes[0].Pos, origin)
	}
	if next.Shapes[0].State != AtOrigin {
		t.Errorf("state %v, want at origin", next.Shapes[0].State)
	}
	if next.Animating() {
		t.Error("board should be idle")
	}
}

func TestReduceBoard_OccupiedTargetRejects(t *testing.T) {
	tg := NewTarget(Square, Green, Point{X: 650, Y: 80})
	tg.Occupied = true
	b := singleBoard(t, NewShape(Square, Green, Point{X: 80, Y: 80}), tg)

	next, effects := dragTo(t, b, 0, center(tg.Bounds))
	if next.Shapes[0].IsMatched() {
		t.Error("occupied target accepted a shape")
	}
	if len(effects) != 1 || effects[0].Kind != EffectMismatched {
		t.Errorf("effects %v, want mismatched", effects)
	}
}

func TestReduceBoard_ReleaseOutsideTargets(t *testing.T) {
	b := StandardBoard(newRand(7), anim.DefaultReturn())
	next, effects := dragTo(t, b, 2, Point{X: 400, Y: 400})
	if len(effects) != 1 || effects[0].Kind != EffectMismatched {
		t.Fatalf("effects %v, want mismatched", effects)
	}
	if next.Matches != 0 {
		t.Errorf("Matches %d, want 0", next.Matches)
	}
}

func TestReduceBoard_PressMissesAndMatchedShapes(t *testing.T) {
	b := StandardBoard(newRand(3), anim.DefaultReturn())

	next, effects := ReduceBoard(b, Press{At: Point{X: 400, Y: 10}})
	if next.Dragging != -1 || effects != nil {
		t.Errorf("press on empty space picked %d (%v)", next.Dragging, effects)
	}

	// match shape 0, then pressing its new spot must not pick it up again
	target := targetFor(b, 0)
	next, _ = dragTo(t, b, 0, center(b.Targets[target].Bounds))
	next, effects = ReduceBoard(next, Press{At: center(next.Targets[target].Bounds)})
	if next.Dragging != -1 || effects != nil {
		t.Errorf("matched shape was picked up again (dragging=%d)", next.Dragging)
	}
}

func TestReduceBoard_DragCentersShape(t *testing.T) {
	b := StandardBoard(newRand(4), anim.DefaultReturn())
	b, _ = ReduceBoard(b, Press{At: center(b.Shapes[1].Bounds())})
	b, _ = ReduceBoard(b, Drag{At: Point{X: 300, Y: 300}})
	want := Point{X: 300 - ShapeSize/2, Y: 300 - ShapeSize/2}
	if b.Shapes[1].Pos != want {
		t.Errorf("Pos %v, want %v", b.Shapes[1].Pos, want)
	}
	if s, ok := b.DraggedShape(); !ok || s.Type != Square {
		t.Errorf("DraggedShape = %v, %v; want square", s.Type, ok)
	}
}

func targetFor(b Board, shape int) int {
	for j, tg := range b.Targets {
		if CanMatch(b.Shapes[shape], tg) {
			return j
		}
	}
	return -1
}

func TestReduceBoard_CompletionFiresOnce(t *testing.T) {
	b := StandardBoard(newRand(11), anim.DefaultReturn())
	completions := 0

	for i := range b.Shapes {
		var effects []BoardEffect
		b, effects = dragTo(t, b, i, center(b.Targets[targetFor(b, i)].Bounds))
		for _, e := range effects {
			if e.Kind == EffectCompleted {
				completions++
			}
		}
		if b.Matches > b.Total() {
			t.Fatalf("Matches %d exceeds total %d", b.Matches, b.Total())
		}
	}

	if !b.Completed {
		t.Fatal("board should be completed")
	}
	if completions != 1 {
		t.Errorf("completion fired %d times, want 1", completions)
	}
	if b.Progress() != 1 {
		t.Errorf("Progress %v, want 1", b.Progress())
	}

	// further input is ignored
	for _, ev := range []BoardEvent{
		Press{At: center(b.Targets[0].Bounds)},
		Release{At: center(b.Targets[0].Bounds)},
		Tick{Elapsed: time.Second},
	} {
		var effects []BoardEffect
		b, effects = ReduceBoard(b, ev)
		if len(effects) != 0 {
			t.Errorf("%T after completion produced %v", ev, effects)
		}
	}
	if b.Matches != b.Total() {
		t.Errorf("Matches %d, want %d", b.Matches, b.Total())
	}
}

func TestStandardBoard_Layout(t *testing.T) {
	b := StandardBoard(newRand(5), anim.DefaultReturn())
	if b.Total() != 6 {
		t.Fatalf("Total %d, want 6", b.Total())
	}
	seen := map[[2]int]bool{}
	for i, s := range b.Shapes {
		want := Point{X: ShapeColumnX, Y: float64(FirstRowY + i*RowSpacing)}
		if s.Origin != want || s.Pos != want {
			t.Errorf("shape %d at %v, want %v", i, s.Pos, want)
		}
		if targetFor(b, i) < 0 {
			t.Errorf("shape %d (%v/%v) has no target", i, s.Type, s.Color)
		}
	}
	for j, tg := range b.Targets {
		key := [2]int{int(tg.Type), int(tg.Color)}
		if seen[key] {
			t.Errorf("duplicate target %v/%v", tg.Type, tg.Color)
		}
		seen[key] = true
		if tg.Bounds.X != TargetColumnX || tg.Bounds.Y != float64(FirstRowY+j*RowSpacing) {
			t.Errorf("target %d at %v", j, tg.Bounds.Min())
		}
	}
}

func TestNewBoard_Validation(t *testing.T) {
	if _, err := NewBoard(nil, nil, anim.DefaultReturn()); err == nil {
		t.Error("empty board should fail")
	}
	shapes := []Shape{NewShape(Circle, Red, Point{}), NewShape(Star, Orange, Point{Y: 100})}
	if _, err := NewBoard(shapes, []Target{NewTarget(Circle, Red, Point{X: 650})}, anim.DefaultReturn()); err == nil {
		t.Error("fewer targets than shapes should fail")
	}
}
