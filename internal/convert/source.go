package convert

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"hero-spotlight/internal/utils"
)

// Source resolves asset references to bytes. A reference is one of
//
//	https://host/image.jpg        downloaded once into CacheDir
//	path/to/scene.pkg#entry.tex   an entry inside a Wallpaper Engine package
//	path/to/image.png             a local file, searched in assets/ first
type Source struct {
	CacheDir string
	Client   *http.Client
}

func NewSource(cacheDir string) *Source {
	if cacheDir == "" {
		cacheDir = utils.DefaultCacheDir()
	}
	return &Source{
		CacheDir: cacheDir,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *Source) Read(ref string) ([]byte, error) {
	switch {
	case ref == "":
		return nil, fmt.Errorf("empty asset reference")
	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		return s.fetch(ref)
	case strings.Contains(ref, ".pkg#"):
		i := strings.Index(ref, ".pkg#")
		pkg, err := OpenPkg(utils.ResolveAssetPath(ref[:i+4]))
		if err != nil {
			return nil, err
		}
		return pkg.ReadFile(ref[i+5:])
	default:
		return os.ReadFile(utils.ResolveAssetPath(ref))
	}
}

func (s *Source) Load(ref string) (image.Image, error) {
	data, err := s.Read(ref)
	if err != nil {
		return nil, err
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	return img, nil
}

// LoadAll loads every reference concurrently. Results and errors are indexed
// like refs; a failed load leaves a nil image and a non-nil error.
func (s *Source) LoadAll(refs ...string) ([]image.Image, []error) {
	images := make([]image.Image, len(refs))
	errs := make([]error, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref string) {
			defer wg.Done()
			images[i], errs[i] = s.Load(ref)
			if errs[i] != nil {
				utils.Error("Failed to load asset %s: %v", ref, errs[i])
				return
			}
			b := images[i].Bounds()
			utils.Info("Loaded asset %s (%dx%d)", ref, b.Dx(), b.Dy())
		}(i, ref)
	}
	wg.Wait()
	return images, errs
}

// CachePath is where a downloaded reference is stored.
func (s *Source) CachePath(ref string) string {
	sum := sha1.Sum([]byte(ref))
	ext := ""
	if u, err := url.Parse(ref); err == nil {
		ext = strings.ToLower(path.Ext(u.Path))
	}
	return filepath.Join(s.CacheDir, hex.EncodeToString(sum[:8])+ext)
}

func (s *Source) fetch(ref string) ([]byte, error) {
	cached := s.CachePath(ref)
	if data, err := os.ReadFile(cached); err == nil {
		utils.Debug("Asset cache hit: %s -> %s", ref, cached)
		return data, nil
	}

	utils.Info("Downloading %s", ref)
	resp, err := s.Client.Get(ref)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: %s", ref, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", ref, err)
	}

	if err := os.MkdirAll(s.CacheDir, 0755); err != nil {
		utils.Warn("Cannot create cache dir %s: %v", s.CacheDir, err)
		return data, nil
	}
	if err := os.WriteFile(cached, data, 0644); err != nil {
		utils.Warn("Failed to cache %s: %v", ref, err)
	}
	return data, nil
}
