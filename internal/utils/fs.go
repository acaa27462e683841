package utils

import (
	"os"
	"path/filepath"
)

// AssetsDir is searched for relative asset paths before the working directory.
var AssetsDir = "assets"

func ResolveAssetPath(relPath string) string {
	if filepath.IsAbs(relPath) {
		return relPath
	}

	localPath := filepath.Join(AssetsDir, relPath)
	if _, err := os.Stat(localPath); err == nil {
		return localPath
	}

	return relPath
}

// DefaultCacheDir is where downloaded assets are kept between runs.
func DefaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "hero-spotlight")
	}
	return filepath.Join("tmp", "cache")
}
