package convert

import (
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestSourceLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "base.png")
	if err := os.WriteFile(path, encodePNG(t, 2, 2, color.White), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := NewSource(t.TempDir()).Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
}

func TestSourcePkgEntry(t *testing.T) {
	pkg := writePkg(t, map[string][]byte{
		"scene.json":       []byte("{}"),
		"materials/bg.png": encodePNG(t, 5, 4, color.Black),
	}, []string{"scene.json", "materials/bg.png"})

	img, err := NewSource(t.TempDir()).Load(pkg + "#materials/bg.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 4 {
		t.Errorf("Expected 5x4, got %v", b)
	}
}

func TestSourceDownloadIsCached(t *testing.T) {
	var hits atomic.Int32
	body := encodePNG(t, 3, 3, color.White)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/hero.png" {
			http.NotFound(w, r)
			return
		}
		w.Write(body)
	}))

	src := NewSource(t.TempDir())
	ref := srv.URL + "/hero.png"
	if _, err := src.Load(ref); err != nil {
		t.Fatalf("first Load: %v", err)
	}
	if filepath.Ext(src.CachePath(ref)) != ".png" {
		t.Errorf("cache path should keep the extension: %s", src.CachePath(ref))
	}
	srv.Close()

	if _, err := src.Load(ref); err != nil {
		t.Fatalf("second Load should come from the cache: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("Expected 1 request, got %d", hits.Load())
	}
}

func TestSourceDownloadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := NewSource(t.TempDir()).Load(srv.URL + "/missing.jpg"); err == nil {
		t.Error("Expected an error for a 404")
	}
}

func TestSourceLoadAll(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	if err := os.WriteFile(good, encodePNG(t, 1, 1, color.White), 0644); err != nil {
		t.Fatal(err)
	}

	images, errs := NewSource(dir).LoadAll(good, filepath.Join(dir, "missing.png"), "")
	if images[0] == nil || errs[0] != nil {
		t.Errorf("first asset should load, err=%v", errs[0])
	}
	for i := 1; i < 3; i++ {
		if images[i] != nil || errs[i] == nil {
			t.Errorf("asset %d should fail, got image=%v err=%v", i, images[i], errs[i])
		}
	}
}
