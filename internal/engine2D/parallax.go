package engine2D

import "hero-spotlight/internal/wallpaper"

// ParallaxOffset maps the pointer position to a small offset per axis: zero at the
// viewport centre and ±strength/2 at the edges. A zero dimension yields an
// infinite offset on that axis.
func ParallaxOffset(pointer wallpaper.Vec2, viewport wallpaper.Viewport, strength float64) wallpaper.Vec2 {
	return wallpaper.Vec2{
		X: (pointer.X/viewport.Width - 0.5) * strength,
		Y: (pointer.Y/viewport.Height - 0.5) * strength,
	}
}

// LayerOffsets holds the damped offset each visual layer is translated by.
type LayerOffsets struct {
	Grid  wallpaper.Vec2
	Image wallpaper.Vec2
	UI    wallpaper.Vec2
}

func UpdateParallax(pointer wallpaper.Vec2, viewport wallpaper.Viewport, cfg wallpaper.ParallaxConfig) LayerOffsets {
	base := ParallaxOffset(pointer, viewport, cfg.Strength)
	return LayerOffsets{
		Grid:  ParallaxOffset(pointer, viewport, cfg.GridStrength).Scale(cfg.GridDamping),
		Image: base.Scale(cfg.ImageDamping),
		UI:    base.Scale(cfg.UIDamping),
	}
}
