package convert

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"hero-spotlight/internal/utils"

	"github.com/mauserzjeh/dxt"
	"github.com/pierrec/lz4/v4"
)

var (
	ErrNotTexture        = errors.New("not a TEXV0005 texture")
	ErrUnsupportedFormat = errors.New("unsupported texture format")
)

const texMagic = "TEXV0005"

// Wallpaper Engine pixel formats.
const (
	FormatRGBA8888 uint32 = 0
	FormatDXT5     uint32 = 4
	FormatDXT3     uint32 = 6
	FormatDXT1     uint32 = 7
	FormatRG88     uint32 = 8
	FormatR8       uint32 = 9
)

type texReader struct {
	r   *bytes.Reader
	err error
}

func (t *texReader) uint32() uint32 {
	var v uint32
	if t.err == nil {
		t.err = binary.Read(t.r, binary.LittleEndian, &v)
	}
	return v
}

// tag reads a fixed eight byte magic followed by a NUL terminator.
func (t *texReader) tag() string {
	b := make([]byte, 9)
	if t.err == nil {
		_, t.err = io.ReadFull(t.r, b)
	}
	return string(bytes.Trim(b, "\x00"))
}

func (t *texReader) bytes(n uint32) []byte {
	if t.err != nil {
		return nil
	}
	if int64(n) > int64(t.r.Len()) {
		t.err = io.ErrUnexpectedEOF
		return nil
	}
	b := make([]byte, n)
	_, t.err = io.ReadFull(t.r, b)
	return b
}

func IsTexture(data []byte) bool {
	return bytes.HasPrefix(data, []byte(texMagic))
}

// DecodeTex decodes the first mipmap of a Wallpaper Engine texture.
func DecodeTex(data []byte) (image.Image, error) {
	if !IsTexture(data) {
		return nil, ErrNotTexture
	}
	t := &texReader{r: bytes.NewReader(data)}

	t.tag()
	t.tag()
	format := t.uint32()
	t.uint32() // flags
	t.uint32() // texture width
	t.uint32() // texture height
	imgW := t.uint32()
	imgH := t.uint32()
	t.uint32()
	container := t.tag()
	imageCount := t.uint32()
	if container == "TEXB0003" {
		t.uint32()
	}
	if t.err != nil {
		return nil, fmt.Errorf("read texture header: %w", t.err)
	}
	utils.Debug("Texture: format %d, %dx%d, container %s", format, imgW, imgH, container)

	if imageCount == 0 {
		return nil, fmt.Errorf("no image found in texture")
	}

	mipmapCount := t.uint32()
	if mipmapCount == 0 {
		return nil, fmt.Errorf("no mipmap found in texture")
	}
	mW := t.uint32()
	mH := t.uint32()
	var isLZ4 bool
	var decompressedSize uint32
	if container != "TEXB0001" {
		isLZ4 = t.uint32() == 1
		decompressedSize = t.uint32()
	}
	size := t.uint32()
	payload := t.bytes(size)
	if t.err != nil {
		return nil, fmt.Errorf("read mipmap: %w", t.err)
	}

	if isLZ4 {
		utils.Debug("Texture: decompressing LZ4 %d -> %d", size, decompressedSize)
		out := make([]byte, decompressedSize)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		payload = out[:n]
	}

	pix, err := decodePixels(format, payload, mW, mH)
	if err != nil {
		return nil, err
	}

	rgba := &image.RGBA{
		Pix:    pix,
		Stride: int(mW * 4),
		Rect:   image.Rect(0, 0, int(mW), int(mH)),
	}
	if imgW == 0 || imgH == 0 || imgW > mW || imgH > mH {
		return rgba, nil
	}
	return rgba.SubImage(image.Rect(0, 0, int(imgW), int(imgH))), nil
}

func decodePixels(format uint32, data []byte, w, h uint32) ([]byte, error) {
	pixels := int(w) * int(h)
	blocks := int((w+3)/4) * int((h+3)/4)

	switch {
	case format == FormatRGBA8888 && len(data) >= pixels*4:
		return data[:pixels*4], nil
	case format == FormatDXT5 && len(data) >= blocks*16:
		return dxt.DecodeDXT5(data, uint(w), uint(h))
	case format == FormatDXT3 && len(data) >= blocks*16:
		return dxt.DecodeDXT3(data, uint(w), uint(h))
	case format == FormatDXT1 && len(data) >= blocks*8:
		return dxt.DecodeDXT1(data, uint(w), uint(h))
	case format == FormatR8 && len(data) >= pixels:
		pix := make([]byte, pixels*4)
		for i := 0; i < pixels; i++ {
			v := data[i]
			pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = v, v, v, 255
		}
		return pix, nil
	case format == FormatRG88 && len(data) >= pixels*2:
		pix := make([]byte, pixels*4)
		for i := 0; i < pixels; i++ {
			v, a := data[i*2], data[i*2+1]
			pix[i*4], pix[i*4+1], pix[i*4+2], pix[i*4+3] = v, v, v, a
		}
		return pix, nil
	}
	return nil, fmt.Errorf("%w: format %d with %d bytes for %dx%d", ErrUnsupportedFormat, format, len(data), w, h)
}
