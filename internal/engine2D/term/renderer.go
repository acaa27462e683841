// Package term renders frames onto a character grid. Every cell samples the
// scene at its centre pixel, so the layering matches the window renderer at a
// much coarser resolution.
package term

import (
	"image"
	"image/color"

	"hero-spotlight/internal/convert"
	"hero-spotlight/internal/engine2D"
	"hero-spotlight/internal/wallpaper"

	"github.com/gdamore/tcell/v2"
)

// maxImageSide bounds the images kept for sampling. A terminal never has more
// cells than this along an axis, and sampling a full photo per cell is slow.
const maxImageSide = 512

// Cell is one composed character.
type Cell struct {
	Rune rune
	Fg   color.RGBA
	Bg   color.RGBA
}

type Renderer struct {
	screen tcell.Screen
	cfg    wallpaper.Config
	base   image.Image
	reveal image.Image
}

func NewRenderer(screen tcell.Screen, cfg wallpaper.Config) *Renderer {
	return &Renderer{screen: screen, cfg: cfg}
}

func (r *Renderer) Apply(cfg wallpaper.Config) {
	r.cfg = cfg
}

// SetImages replaces both background layers. A nil image leaves that layer empty.
func (r *Renderer) SetImages(base, reveal image.Image) {
	r.base = convert.Downsample(base, maxImageSide)
	r.reveal = convert.Downsample(reveal, maxImageSide)
}

// Viewport is the screen size in virtual pixels.
func (r *Renderer) Viewport() wallpaper.Viewport {
	cols, rows := r.screen.Size()
	return wallpaper.Viewport{
		Width:  float64(cols) * r.cfg.Terminal.CellWidth,
		Height: float64(rows) * r.cfg.Terminal.CellHeight,
	}
}

// CellCenter maps a cell to the virtual pixel at its centre. Mouse events use
// it as well so the pointer sits where the cell is drawn.
func (r *Renderer) CellCenter(col, row int) wallpaper.Vec2 {
	return wallpaper.Vec2{
		X: (float64(col) + 0.5) * r.cfg.Terminal.CellWidth,
		Y: (float64(row) + 0.5) * r.cfg.Terminal.CellHeight,
	}
}

func (r *Renderer) Draw(f engine2D.Frame) {
	cols, rows := r.screen.Size()
	cells := r.Compose(f, cols, rows)
	for y, line := range cells {
		for x, c := range line {
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(c.Fg.R), int32(c.Fg.G), int32(c.Fg.B))).
				Background(tcell.NewRGBColor(int32(c.Bg.R), int32(c.Bg.G), int32(c.Bg.B)))
			r.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	r.screen.Show()
}

// Compose builds the cell grid for f without touching the screen.
func (r *Renderer) Compose(f engine2D.Frame, cols, rows int) [][]Cell {
	render := r.cfg.Render
	cells := make([][]Cell, rows)
	for y := range cells {
		cells[y] = make([]Cell, cols)
		for x := range cells[y] {
			p := r.CellCenter(x, y)
			bg, ok := r.sample(r.base, p, f)
			if !ok {
				bg = r.gridColor(p, f)
			}
			for _, ring := range f.Echoes {
				if onRing(p, ring.Center, ring.Radius, r.cfg.Terminal.CellHeight/2) {
					bg = blend(bg, black, render.RingAlpha*ring.Opacity)
				}
			}
			// The reveal layer covers the rings; an empty reveal lets them show.
			if f.InSpotlight(p) {
				if c, ok := r.sample(r.reveal, p, f); ok {
					bg = c
				}
			}
			if onRing(p, f.Pointer, f.CursorRadius, r.cfg.Terminal.CellWidth/2) {
				bg = blend(bg, black, render.CursorAlpha)
			}
			cells[y][x] = Cell{Rune: ' ', Fg: bg, Bg: bg}
		}
	}
	r.placeText(cells, f)
	return cells
}

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// sample reads the image pixel under p. It reports false where the layer is
// empty, so the layer beneath shows through.
func (r *Renderer) sample(img image.Image, p wallpaper.Vec2, f engine2D.Frame) (color.RGBA, bool) {
	if img == nil {
		return color.RGBA{}, false
	}
	b := img.Bounds()
	dst := engine2D.CoverRect(float64(b.Dx()), float64(b.Dy()), f.Viewport, r.cfg.Render.ImageZoom, f.Offsets.Image)
	if !dst.Contains(p) {
		return color.RGBA{}, false
	}
	x := b.Min.X + int((p.X-dst.X)/dst.Width*float64(b.Dx()))
	y := b.Min.Y + int((p.Y-dst.Y)/dst.Height*float64(b.Dy()))
	c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	c.A = 255
	return c, true
}

// gridColor is the page background: white with faint lines, shifted by the grid
// parallax offset.
func (r *Renderer) gridColor(p wallpaper.Vec2, f engine2D.Frame) color.RGBA {
	render := r.cfg.Render
	cw, ch := r.cfg.Terminal.CellWidth, r.cfg.Terminal.CellHeight
	for _, x := range engine2D.GridLines(f.Viewport.Width, render.GridSize, f.Offsets.Grid.X) {
		if x >= p.X-cw/2 && x < p.X+cw/2 {
			return blend(white, black, render.GridAlpha)
		}
	}
	for _, y := range engine2D.GridLines(f.Viewport.Height, render.GridSize, f.Offsets.Grid.Y) {
		if y >= p.Y-ch/2 && y < p.Y+ch/2 {
			return blend(white, black, render.GridAlpha)
		}
	}
	return white
}

// onRing reports whether a ring's stroke, widened by tolerance on each side,
// passes through the cell centred at p.
func onRing(p, center wallpaper.Vec2, radius, tolerance float64) bool {
	d := p.Dist(center) - radius
	return d >= -tolerance && d < tolerance
}

func (r *Renderer) placeText(cells [][]Cell, f engine2D.Frame) {
	if len(cells) == 0 {
		return
	}
	center := f.Viewport.Center().Add(f.Offsets.UI)
	row := int(center.Y / r.cfg.Terminal.CellHeight)
	col := int(center.X / r.cfg.Terminal.CellWidth)
	r.writeCentered(cells, f, row-1, col, r.cfg.UI.Title)
	r.writeCentered(cells, f, row+1, col, r.cfg.UI.Subtitle)
}

func (r *Renderer) writeCentered(cells [][]Cell, f engine2D.Frame, row, col int, text string) {
	if text == "" || row < 0 || row >= len(cells) {
		return
	}
	runes := []rune(text)
	start := col - len(runes)/2
	for i, ch := range runes {
		x := start + i
		if x < 0 || x >= len(cells[row]) {
			continue
		}
		fg := black
		if f.InSpotlight(r.CellCenter(x, row)) {
			fg = white
		}
		cells[row][x].Rune = ch
		cells[row][x].Fg = fg
	}
}

// blend mixes src toward dst by alpha in [0,1].
func blend(src, dst color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return src
	}
	if alpha > 1 {
		alpha = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*alpha + 0.5)
	}
	return color.RGBA{R: mix(src.R, dst.R), G: mix(src.G, dst.G), B: mix(src.B, dst.B), A: 255}
}
