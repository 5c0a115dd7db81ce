// Package anim holds frame interpolation functions. Every function takes the
// elapsed time since the animation started, so callers are free to drive them
// from any scheduler or from a test clock.
package anim

import (
	"math"
	"time"
)

// Point is a position in board coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// ReturnConfig parameterizes the return-to-origin easing.
type ReturnConfig struct {
	Frame     time.Duration // length of one easing step
	Step      float64       // fraction of the remaining distance covered per frame
	Tolerance float64       // per-axis distance under which the position snaps
}

// DefaultReturn matches the classic 20ms / 10% / 5px feel.
func DefaultReturn() ReturnConfig {
	return ReturnConfig{
		Frame:     20 * time.Millisecond,
		Step:      0.1,
		Tolerance: 5,
	}
}

// Frames returns how many whole frames fit in elapsed.
func Frames(elapsed, frame time.Duration) int {
	if frame <= 0 || elapsed <= 0 {
		return 0
	}
	return int(elapsed / frame)
}

// ReturnToOrigin computes where a released shape sits after elapsed time on
// its way from start back to origin. Each frame covers cfg.Step of the
// remaining distance; once both axes are within cfg.Tolerance the result is
// exactly origin and done is true.
func ReturnToOrigin(start, origin Point, elapsed time.Duration, cfg ReturnConfig) (Point, bool) {
	if withinTolerance(start, origin, cfg.Tolerance) {
		return origin, true
	}
	if cfg.Step <= 0 {
		return start, false
	}
	if cfg.Step >= 1 {
		return origin, true
	}

	n := Frames(elapsed, cfg.Frame)
	remaining := math.Pow(1-cfg.Step, float64(n))
	pos := origin.Add(start.Sub(origin).Scale(remaining))

	if withinTolerance(pos, origin, cfg.Tolerance) {
		return origin, true
	}
	return pos, false
}

// ReturnDuration is the time ReturnToOrigin needs to snap for the given
// distance. Mismatch events report it as return_ms.
func ReturnDuration(start, origin Point, cfg ReturnConfig) time.Duration {
	d := math.Max(math.Abs(start.X-origin.X), math.Abs(start.Y-origin.Y))
	if d < cfg.Tolerance || cfg.Step <= 0 || cfg.Step >= 1 || cfg.Tolerance <= 0 {
		return 0
	}
	// smallest n with d*(1-step)^n < tolerance
	n := math.Floor(math.Log(cfg.Tolerance/d)/math.Log(1-cfg.Step)) + 1
	return time.Duration(n) * cfg.Frame
}

func withinTolerance(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}

// Pulse is a triangle wave between lo and hi, starting at hi and falling
// first. period is the time of one full hi -> lo -> hi cycle.
func Pulse(elapsed, period time.Duration, lo, hi float64) float64 {
	if period <= 0 {
		return hi
	}
	phase := float64(elapsed%period) / float64(period)
	if phase < 0.5 {
		return hi - (hi-lo)*phase*2
	}
	return lo + (hi-lo)*(phase-0.5)*2
}

// FadeIn returns an opacity rising linearly from 0 to 1 over duration.
func FadeIn(elapsed, duration time.Duration) float64 {
	return clamp01(progress(elapsed, duration))
}

// FadeOut returns an opacity falling linearly from 1 to 0 over duration.
func FadeOut(elapsed, duration time.Duration) float64 {
	return clamp01(1 - progress(elapsed, duration))
}

func progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return float64(elapsed) / float64(duration)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
