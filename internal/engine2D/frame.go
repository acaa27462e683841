package engine2D

import (
	"math"
	"time"

	"hero-spotlight/internal/wallpaper"
)

type EchoRing struct {
	ID      uint64
	Center  wallpaper.Vec2
	Radius  float64
	Opacity float64
}

// Frame is everything a renderer needs for one picture. Renderers only format
// these values; they never feed anything back into the animation.
type Frame struct {
	Time            time.Time
	Viewport        wallpaper.Viewport
	Pointer         wallpaper.Vec2
	Smoothed        wallpaper.Vec2
	Speed           float64
	SpotlightRadius float64
	CursorRadius    float64
	Offsets         LayerOffsets
	Echoes          []EchoRing
}

// InSpotlight reports whether p falls inside the circular reveal mask.
func (f Frame) InSpotlight(p wallpaper.Vec2) bool {
	return p.Dist(f.Smoothed) <= f.SpotlightRadius
}

// CoverRect places an image so it covers the viewport, centred, then zooms it
// about the centre and shifts it by offset. The shift happens before the zoom,
// so it is scaled as well.
func CoverRect(imageWidth, imageHeight float64, viewport wallpaper.Viewport, zoom float64, offset wallpaper.Vec2) wallpaper.Rect {
	if imageWidth <= 0 || imageHeight <= 0 {
		return wallpaper.Rect{}
	}
	scale := math.Max(viewport.Width/imageWidth, viewport.Height/imageHeight) * zoom
	w := imageWidth * scale
	h := imageHeight * scale
	return wallpaper.Rect{
		X:      (viewport.Width-w)/2 + offset.X*zoom,
		Y:      (viewport.Height-h)/2 + offset.Y*zoom,
		Width:  w,
		Height: h,
	}
}

// GridLines returns the positions of the grid lines along one axis of length
// extent, shifted by offset and covering the full extent.
func GridLines(extent, size, offset float64) []float64 {
	if size <= 0 {
		return nil
	}
	start := math.Mod(offset, size)
	if start > 0 {
		start -= size
	}
	lines := make([]float64, 0, int(extent/size)+2)
	for p := start; p <= extent; p += size {
		lines = append(lines, p)
	}
	return lines
}
