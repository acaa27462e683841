package engine2D

import (
	"testing"

	"hero-spotlight/internal/wallpaper"
)

func between(v, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}

func TestMotionFilterStepStaysBetween(t *testing.T) {
	cases := []struct {
		name   string
		start  wallpaper.Vec2
		target wallpaper.Vec2
	}{
		{"rightward", wallpaper.Vec2{X: 0, Y: 0}, wallpaper.Vec2{X: 100, Y: 40}},
		{"leftward", wallpaper.Vec2{X: 500, Y: 300}, wallpaper.Vec2{X: -20, Y: 10}},
		{"one_axis", wallpaper.Vec2{X: 10, Y: 10}, wallpaper.Vec2{X: 10, Y: 900}},
		{"equal", wallpaper.Vec2{X: 7, Y: 7}, wallpaper.Vec2{X: 7, Y: 7}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewMotionFilter(0.15)
			f.Reset(c.start)
			prev := c.start
			for i := 0; i < 30; i++ {
				next := f.Step(c.target)
				if !between(next.X, prev.X, c.target.X) || !between(next.Y, prev.Y, c.target.Y) {
					t.Fatalf("step %d: %v not between %v and %v", i, next, prev, c.target)
				}
				if next.Dist(c.target) > prev.Dist(c.target) {
					t.Fatalf("step %d moved away from target", i)
				}
				prev = next
			}
		})
	}
}

func TestMotionFilterFirstStep(t *testing.T) {
	f := NewMotionFilter(0.15)
	got := f.Step(wallpaper.Vec2{X: 100, Y: -200})
	want := wallpaper.Vec2{X: 15, Y: -30}
	if got.Dist(want) > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestMotionFilterConverges(t *testing.T) {
	f := NewMotionFilter(0.15)
	target := wallpaper.Vec2{X: 1000, Y: 500}
	initial := f.Position().Dist(target)
	for i := 0; i < 50; i++ {
		f.Step(target)
	}
	if d := f.Position().Dist(target); d >= 0.001*initial {
		t.Errorf("Expected distance below %g after 50 ticks, got %g", 0.001*initial, d)
	}
}

func TestSpeed(t *testing.T) {
	if s := Speed(wallpaper.Vec2{X: 3, Y: 4}, wallpaper.Vec2{}); s != 5 {
		t.Errorf("Expected speed 5, got %g", s)
	}
	if s := Speed(wallpaper.Vec2{X: 9, Y: 9}, wallpaper.Vec2{X: 9, Y: 9}); s != 0 {
		t.Errorf("Expected speed 0, got %g", s)
	}
}
