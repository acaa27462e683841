package debug

import (
	"os"
	"runtime"
	"time"

	"hero-spotlight/internal/engine2D"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DebugOverlay is toggled with F8. It prints animation state and timing and can
// outline the spotlight, the echoes and the pointer lag.
type DebugOverlay struct {
	ShowBoundingBoxes bool

	fontHeight int
	lineHeight int
	font       rl.Font
	hasFont    bool

	lastUpdateTime time.Time
	frameCount     int
	fps            float64
	memStats       runtime.MemStats
	sweeps         int
}

func NewDebugOverlay() *DebugOverlay {
	d := &DebugOverlay{
		ShowBoundingBoxes: true,
		fontHeight:        16,
		lineHeight:        22,
		lastUpdateTime:    time.Now(),
	}

	fontPaths := []string{
		"/usr/share/fonts/TTF/DejaVuSansMono.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf",
		"/usr/share/fonts/liberation/LiberationMono-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationMono-Regular.ttf",
	}
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			d.font = rl.LoadFontEx(path, 32, nil, 0)
			rl.SetTextureFilter(d.font.Texture, rl.FilterBilinear)
			d.hasFont = true
			break
		}
	}

	return d
}

func (d *DebugOverlay) Update() {
	d.frameCount++
	now := time.Now()
	if now.Sub(d.lastUpdateTime) >= time.Second {
		d.fps = float64(d.frameCount) / now.Sub(d.lastUpdateTime).Seconds()
		d.frameCount = 0
		d.lastUpdateTime = now
		runtime.ReadMemStats(&d.memStats)
	}

	if rl.IsKeyPressed(rl.KeyB) {
		d.ShowBoundingBoxes = !d.ShowBoundingBoxes
	}
}

// CountSweep records how many echoes a sweep removed, for the panel.
func (d *DebugOverlay) CountSweep(removed int) {
	d.sweeps += removed
}

func (d *DebugOverlay) DrawText(text string, x, y, size int32, col rl.Color) {
	if d.hasFont {
		rl.DrawTextEx(d.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, col)
		return
	}
	rl.DrawText(text, x, y, size, col)
}

func (d *DebugOverlay) Draw(f engine2D.Frame) {
	if d.ShowBoundingBoxes {
		d.drawBoundingBoxes(f)
	}
	d.drawPerformance(f)
}

func (d *DebugOverlay) Unload() {
	if d.hasFont {
		rl.UnloadFont(d.font)
		d.hasFont = false
	}
}
