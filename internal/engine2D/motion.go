package engine2D

import "hero-spotlight/internal/wallpaper"

// MotionFilter exponentially smooths a delayed position toward the raw pointer.
// With a factor in (0,1] each step lands on the segment between the previous
// position and the target, so the position never overshoots.
type MotionFilter struct {
	Factor   float64
	position wallpaper.Vec2
}

func NewMotionFilter(factor float64) *MotionFilter {
	return &MotionFilter{Factor: factor}
}

// Step moves the smoothed position one tick toward target and returns it.
func (f *MotionFilter) Step(target wallpaper.Vec2) wallpaper.Vec2 {
	f.position = f.position.Add(target.Sub(f.position).Scale(f.Factor))
	return f.position
}

func (f *MotionFilter) Position() wallpaper.Vec2 {
	return f.position
}

func (f *MotionFilter) Reset(p wallpaper.Vec2) {
	f.position = p
}

// Speed is the lag between the raw pointer and the smoothed position. It stands
// in for velocity: the faster the pointer moves, the further the filter trails.
func Speed(raw, smoothed wallpaper.Vec2) float64 {
	return raw.Dist(smoothed)
}
