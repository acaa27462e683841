package main

import (
	"image"

	"hero-spotlight/internal/convert"
	"hero-spotlight/internal/utils"
	"hero-spotlight/internal/wallpaper"
)

// loadImages fetches the base and reveal layers. A layer that fails to load is
// left nil; the renderers draw the page background in its place.
func loadImages(assets wallpaper.AssetsConfig) (base, reveal image.Image) {
	src := convert.NewSource(assets.CacheDir)

	var refs []string
	for _, ref := range []string{assets.Base, assets.Reveal} {
		if ref != "" {
			refs = append(refs, ref)
		}
	}
	images, _ := src.LoadAll(refs...)

	i := 0
	if assets.Base != "" {
		base = images[i]
		i++
	}
	if assets.Reveal != "" {
		reveal = images[i]
	}
	return base, reveal
}

// reloadConfig re-reads path after a change on disk. It returns false if the
// file is unreadable or invalid, keeping the current settings.
func reloadConfig(path string) (wallpaper.Config, bool) {
	cfg, err := wallpaper.LoadConfig(path)
	if err != nil {
		utils.Error("Config reload failed, keeping current settings: %v", err)
		return cfg, false
	}
	utils.Info("Config reloaded from %s", path)
	return cfg, true
}
