package debug

import (
	"fmt"
	"runtime"

	"hero-spotlight/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (d *DebugOverlay) lines(f engine2D.Frame) []string {
	return []string{
		fmt.Sprintf("FPS: %.1f (raylib %d)", d.fps, rl.GetFPS()),
		fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000),
		fmt.Sprintf("Viewport: %.0fx%.0f", f.Viewport.Width, f.Viewport.Height),
		fmt.Sprintf("Pointer: %.1f, %.1f", f.Pointer.X, f.Pointer.Y),
		fmt.Sprintf("Smoothed: %.1f, %.1f", f.Smoothed.X, f.Smoothed.Y),
		fmt.Sprintf("Speed: %.1f px", f.Speed),
		fmt.Sprintf("Echoes: %d (swept %d)", len(f.Echoes), d.sweeps),
		fmt.Sprintf("Parallax: %.2f, %.2f", f.Offsets.Image.X, f.Offsets.Image.Y),
		fmt.Sprintf("Heap Alloc: %.2f MB", float64(d.memStats.HeapAlloc)/1024/1024),
		fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()),
		"[F8] hide  [B] outlines",
	}
}

func (d *DebugOverlay) drawPerformance(f engine2D.Frame) {
	lines := d.lines(f)
	width := int32(300)
	height := int32(len(lines)*d.lineHeight + 10)
	rl.DrawRectangle(5, 5, width, height, rl.Fade(rl.Black, 0.7))

	y := int32(10)
	for _, line := range lines {
		d.DrawText(line, 12, y, int32(d.fontHeight), rl.White)
		y += int32(d.lineHeight)
	}
}
