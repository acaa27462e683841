package debug

import (
	"hero-spotlight/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func (d *DebugOverlay) drawBoundingBoxes(f engine2D.Frame) {
	// Spotlight boundary and centre.
	rl.DrawCircleLines(int32(f.Smoothed.X), int32(f.Smoothed.Y), float32(f.SpotlightRadius), rl.NewColor(255, 255, 0, 255))
	rl.DrawRectangle(int32(f.Smoothed.X-2), int32(f.Smoothed.Y-2), 4, 4, rl.Red)

	// Lag between the raw pointer and the smoothed position, i.e. the speed.
	rl.DrawLineV(vec(f.Pointer.X, f.Pointer.Y), vec(f.Smoothed.X, f.Smoothed.Y), rl.Magenta)

	for _, ring := range f.Echoes {
		col := rl.Fade(rl.NewColor(0, 255, 255, 255), float32(0.2+ring.Opacity))
		rl.DrawCircleLines(int32(ring.Center.X), int32(ring.Center.Y), float32(ring.Radius), col)
		rl.DrawRectangle(int32(ring.Center.X-2), int32(ring.Center.Y-2), 4, 4, col)
	}

	// Parallax direction of the image layer, magnified.
	c := f.Viewport.Center()
	tip := c.Add(f.Offsets.Image.Scale(5))
	rl.DrawLineEx(vec(c.X, c.Y), vec(tip.X, tip.Y), 2, rl.Green)
}
