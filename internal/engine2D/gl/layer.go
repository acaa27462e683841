package gl

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Layer is one uploaded background image.
type Layer struct {
	Texture *rl.Texture2D
}

func LoadLayer(img image.Image) Layer {
	if img == nil {
		return Layer{}
	}
	rlImg := rl.NewImageFromImage(img)
	tex := rl.LoadTextureFromImage(rlImg)
	rl.UnloadImage(rlImg)

	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	return Layer{Texture: &tex}
}

func (l Layer) Loaded() bool {
	return l.Texture != nil && l.Texture.ID != 0
}

func (l Layer) Size() (float64, float64) {
	if l.Texture == nil {
		return 0, 0
	}
	return float64(l.Texture.Width), float64(l.Texture.Height)
}

func (l *Layer) Unload() {
	if l.Texture != nil {
		rl.UnloadTexture(*l.Texture)
		l.Texture = nil
	}
}
