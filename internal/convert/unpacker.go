package convert

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"hero-spotlight/internal/utils"
)

type FileEntry struct {
	Name   string
	Offset uint32
	Size   uint32
}

// Pkg is the index of a Wallpaper Engine scene.pkg archive.
type Pkg struct {
	Path    string
	Version string
	Entries []FileEntry
	dataPos int64
}

func readPkgString(r io.Reader) (string, error) {
	var size uint32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return "", err
	}
	if size > 1<<16 {
		return "", fmt.Errorf("pkg string length %d out of range", size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func OpenPkg(path string) (*Pkg, error) {
	utils.Debug("Unpacker: Opening package %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	version, err := readPkgString(f)
	if err != nil {
		return nil, fmt.Errorf("read pkg version: %w", err)
	}

	var fileCount uint32
	if err := binary.Read(f, binary.LittleEndian, &fileCount); err != nil {
		return nil, fmt.Errorf("read pkg file count: %w", err)
	}
	utils.Debug("Unpacker: %s version %s, %d files", path, version, fileCount)

	// The count comes from the file; cap the up-front allocation.
	entries := make([]FileEntry, 0, min(fileCount, 4096))
	for i := uint32(0); i < fileCount; i++ {
		name, err := readPkgString(f)
		if err != nil {
			return nil, fmt.Errorf("read pkg entry %d: %w", i, err)
		}
		var offset, size uint32
		if err := binary.Read(f, binary.LittleEndian, &offset); err != nil {
			return nil, err
		}
		if err := binary.Read(f, binary.LittleEndian, &size); err != nil {
			return nil, err
		}
		entries = append(entries, FileEntry{Name: name, Offset: offset, Size: size})
	}

	dataPos, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}

	return &Pkg{Path: path, Version: version, Entries: entries, dataPos: dataPos}, nil
}

func (p *Pkg) Lookup(name string) (FileEntry, bool) {
	for _, e := range p.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return FileEntry{}, false
}

// ReadFile returns the contents of a single entry.
func (p *Pkg) ReadFile(name string) ([]byte, error) {
	entry, ok := p.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w in %s", name, os.ErrNotExist, p.Path)
	}

	f, err := os.Open(p.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, entry.Size)
	if _, err := f.ReadAt(buf, p.dataPos+int64(entry.Offset)); err != nil {
		return nil, fmt.Errorf("read %s from %s: %w", name, p.Path, err)
	}
	return buf, nil
}
