package wallpaper

import (
	"math"
	"time"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist is the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Viewport is the size of the visible surface in pixels.
type Viewport struct {
	Width, Height float64
}

func (vp Viewport) Center() Vec2 {
	return Vec2{X: vp.Width / 2, Y: vp.Height / 2}
}

// Echo is a snapshot of the smoothed pointer position left behind by fast motion.
type Echo struct {
	ID        uint64
	Position  Vec2
	Timestamp time.Time
}

// Age returns how long the echo has existed at now.
func (e Echo) Age(now time.Time) time.Duration {
	return now.Sub(e.Timestamp)
}

type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
