package convert

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writePkg(t *testing.T, files map[string][]byte, order []string) string {
	t.Helper()
	var b bytes.Buffer
	str := func(s string) {
		binary.Write(&b, binary.LittleEndian, uint32(len(s)))
		b.WriteString(s)
	}

	str("PKGV0019")
	binary.Write(&b, binary.LittleEndian, uint32(len(order)))
	var offset uint32
	for _, name := range order {
		str(name)
		binary.Write(&b, binary.LittleEndian, offset)
		binary.Write(&b, binary.LittleEndian, uint32(len(files[name])))
		offset += uint32(len(files[name]))
	}
	for _, name := range order {
		b.Write(files[name])
	}

	path := filepath.Join(t.TempDir(), "scene.pkg")
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOpenPkg(t *testing.T) {
	files := map[string][]byte{
		"scene.json":             []byte(`{"objects":[]}`),
		"materials/backdrop.tex": []byte("TEXV0005 fake"),
		"empty.txt":              {},
	}
	order := []string{"scene.json", "materials/backdrop.tex", "empty.txt"}
	path := writePkg(t, files, order)

	pkg, err := OpenPkg(path)
	if err != nil {
		t.Fatalf("OpenPkg: %v", err)
	}
	if pkg.Version != "PKGV0019" {
		t.Errorf("Expected version PKGV0019, got %q", pkg.Version)
	}

	var names []string
	for _, e := range pkg.Entries {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff(order, names); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}

	for _, name := range order {
		got, err := pkg.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", name, err)
		}
		if !bytes.Equal(got, files[name]) {
			t.Errorf("ReadFile(%s) = %q, want %q", name, got, files[name])
		}
	}

	if _, err := pkg.ReadFile("missing.tex"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected ErrNotExist for a missing entry, got %v", err)
	}
}

func TestOpenPkgTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pkg")
	if err := os.WriteFile(path, []byte{8, 0, 0, 0, 'P', 'K'}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenPkg(path); err == nil {
		t.Error("Expected an error for a truncated package")
	}
}

func TestOpenPkgHugeFileCount(t *testing.T) {
	var b bytes.Buffer
	binary.Write(&b, binary.LittleEndian, uint32(8))
	b.WriteString("PKGV0019")
	binary.Write(&b, binary.LittleEndian, uint32(0xFFFFFFFF))

	path := filepath.Join(t.TempDir(), "corrupt.pkg")
	if err := os.WriteFile(path, b.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenPkg(path); err == nil {
		t.Error("Expected an error for a file count the package cannot hold")
	}
}
