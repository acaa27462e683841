package gl

import (
	"image"

	"hero-spotlight/internal/engine2D"
	"hero-spotlight/internal/utils"
	"hero-spotlight/internal/wallpaper"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws a Frame in this order: grid, base image with dark text, echo
// rings, the reveal image with light text clipped to the spotlight, and the
// cursor ring.
type Renderer struct {
	Base   Layer
	Reveal Layer

	cfg          wallpaper.Config
	spotlight    SpotlightShader
	revealTarget rl.RenderTexture2D
	targetW      int32
	targetH      int32
}

func NewRenderer(cfg wallpaper.Config) *Renderer {
	r := &Renderer{
		cfg:       cfg,
		spotlight: LoadSpotlightShader(),
	}
	if !r.spotlight.Valid() {
		utils.Error("Spotlight shader failed to compile; the reveal layer will not be masked")
	}
	return r
}

func (r *Renderer) Apply(cfg wallpaper.Config) {
	r.cfg = cfg
}

// SetImages replaces both background layers. A nil image leaves that layer empty.
func (r *Renderer) SetImages(base, reveal image.Image) {
	r.Base.Unload()
	r.Reveal.Unload()
	r.Base = LoadLayer(base)
	r.Reveal = LoadLayer(reveal)
}

func (r *Renderer) ensureTarget(w, h int32) {
	if r.targetW == w && r.targetH == h && r.revealTarget.ID != 0 {
		return
	}
	if r.revealTarget.ID != 0 {
		rl.UnloadRenderTexture(r.revealTarget)
	}
	r.revealTarget = rl.LoadRenderTexture(w, h)
	r.targetW, r.targetH = w, h
	utils.Debug("Reveal target resized to %dx%d", w, h)
}

func (r *Renderer) Draw(f engine2D.Frame) {
	rl.ClearBackground(rl.White)

	r.drawGrid(f)
	r.drawImage(r.Base, f)
	r.drawUI(f, rl.Black)
	r.drawEchoes(f)
	r.drawReveal(f)
	r.drawCursor(f)
}

func (r *Renderer) drawGrid(f engine2D.Frame) {
	col := rl.Fade(rl.Black, float32(r.cfg.Render.GridAlpha))
	w, h := float32(f.Viewport.Width), float32(f.Viewport.Height)
	for _, x := range engine2D.GridLines(f.Viewport.Width, r.cfg.Render.GridSize, f.Offsets.Grid.X) {
		rl.DrawLineEx(rl.NewVector2(float32(x), 0), rl.NewVector2(float32(x), h), 1, col)
	}
	for _, y := range engine2D.GridLines(f.Viewport.Height, r.cfg.Render.GridSize, f.Offsets.Grid.Y) {
		rl.DrawLineEx(rl.NewVector2(0, float32(y)), rl.NewVector2(w, float32(y)), 1, col)
	}
}

func (r *Renderer) drawImage(layer Layer, f engine2D.Frame) {
	if !layer.Loaded() {
		return
	}
	iw, ih := layer.Size()
	dst := engine2D.CoverRect(iw, ih, f.Viewport, r.cfg.Render.ImageZoom, f.Offsets.Image)
	rl.DrawTexturePro(
		*layer.Texture,
		rl.NewRectangle(0, 0, float32(iw), float32(ih)),
		rl.NewRectangle(float32(dst.X), float32(dst.Y), float32(dst.Width), float32(dst.Height)),
		rl.NewVector2(0, 0),
		0,
		rl.White,
	)
}

func (r *Renderer) drawUI(f engine2D.Frame, col rl.Color) {
	ui := r.cfg.UI
	if ui.Title == "" && ui.Subtitle == "" {
		return
	}
	size := int32(ui.FontSize)
	subSize := max(size/4, 10)
	center := f.Viewport.Center().Add(f.Offsets.UI)

	if ui.Title != "" {
		tw := rl.MeasureText(ui.Title, size)
		rl.DrawText(ui.Title, int32(center.X)-tw/2, int32(center.Y)-size, size, col)
	}
	if ui.Subtitle != "" {
		sw := rl.MeasureText(ui.Subtitle, subSize)
		rl.DrawText(ui.Subtitle, int32(center.X)-sw/2, int32(center.Y)+subSize, subSize, col)
	}
}

func (r *Renderer) drawEchoes(f engine2D.Frame) {
	for _, ring := range f.Echoes {
		if ring.Opacity <= 0 {
			continue
		}
		col := rl.Fade(rl.Black, float32(r.cfg.Render.RingAlpha*ring.Opacity))
		center := rl.NewVector2(float32(ring.Center.X), float32(ring.Center.Y))
		rl.DrawRing(center, float32(ring.Radius)-1, float32(ring.Radius), 0, 360, 96, col)
	}
}

func (r *Renderer) drawReveal(f engine2D.Frame) {
	w, h := int32(f.Viewport.Width), int32(f.Viewport.Height)
	if w <= 0 || h <= 0 {
		return
	}
	r.ensureTarget(w, h)

	rl.BeginTextureMode(r.revealTarget)
	rl.ClearBackground(rl.Blank)
	r.drawImage(r.Reveal, f)
	r.drawUI(f, rl.White)
	rl.EndTextureMode()

	masked := r.spotlight.Valid()
	if masked {
		rl.BeginShaderMode(r.spotlight.Shader)
		r.spotlight.Set(f.Smoothed, f.SpotlightRadius, f.Viewport.Height)
	}
	// Render textures are stored upside down.
	src := rl.NewRectangle(0, 0, float32(w), -float32(h))
	dst := rl.NewRectangle(0, 0, float32(w), float32(h))
	rl.DrawTexturePro(r.revealTarget.Texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	if masked {
		rl.EndShaderMode()
	}
}

func (r *Renderer) drawCursor(f engine2D.Frame) {
	col := rl.Fade(rl.Black, float32(r.cfg.Render.CursorAlpha))
	center := rl.NewVector2(float32(f.Pointer.X), float32(f.Pointer.Y))
	radius := float32(f.CursorRadius)
	rl.DrawRing(center, radius-1, radius, 0, 360, 32, col)
}

func (r *Renderer) Unload() {
	r.Base.Unload()
	r.Reveal.Unload()
	if r.revealTarget.ID != 0 {
		rl.UnloadRenderTexture(r.revealTarget)
	}
	r.spotlight.Unload()
}
