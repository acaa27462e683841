package convert

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"testing"

	"github.com/pierrec/lz4/v4"
)

type texSpec struct {
	container    string
	format       uint32
	mipW, mipH   uint32
	imgW, imgH   uint32
	payload      []byte
	compressed   bool
	uncompressed uint32
}

func buildTex(spec texSpec) []byte {
	var b bytes.Buffer
	tag := func(s string) {
		b.WriteString(s)
		b.WriteByte(0)
	}
	u32 := func(v uint32) { binary.Write(&b, binary.LittleEndian, v) }

	if spec.container == "" {
		spec.container = "TEXB0003"
	}
	if spec.imgW == 0 {
		spec.imgW, spec.imgH = spec.mipW, spec.mipH
	}

	tag("TEXV0005")
	tag("TEXI0001")
	u32(spec.format)
	u32(0)
	u32(spec.mipW)
	u32(spec.mipH)
	u32(spec.imgW)
	u32(spec.imgH)
	u32(0)
	tag(spec.container)
	u32(1)
	if spec.container == "TEXB0003" {
		u32(0)
	}
	u32(1)
	u32(spec.mipW)
	u32(spec.mipH)
	if spec.container != "TEXB0001" {
		if spec.compressed {
			u32(1)
		} else {
			u32(0)
		}
		u32(spec.uncompressed)
	}
	u32(uint32(len(spec.payload)))
	b.Write(spec.payload)
	return b.Bytes()
}

func solidRGBA(w, h int, r, g, bl, a byte) []byte {
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, bl, a
	}
	return pix
}

func rgbaAt(img image.Image, x, y int) [4]uint8 {
	r, g, b, a := img.At(x, y).RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func TestDecodeTexRGBA(t *testing.T) {
	for _, container := range []string{"TEXB0001", "TEXB0002", "TEXB0003"} {
		t.Run(container, func(t *testing.T) {
			data := buildTex(texSpec{
				container: container,
				format:    FormatRGBA8888,
				mipW:      4,
				mipH:      4,
				payload:   solidRGBA(4, 4, 10, 20, 30, 255),
			})
			img, err := DecodeTex(data)
			if err != nil {
				t.Fatalf("DecodeTex: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
				t.Errorf("Expected 4x4, got %v", b)
			}
			if got := rgbaAt(img, 3, 3); got != [4]uint8{10, 20, 30, 255} {
				t.Errorf("unexpected pixel %v", got)
			}
		})
	}
}

func TestDecodeTexLZ4(t *testing.T) {
	raw := solidRGBA(16, 16, 200, 100, 50, 255)
	compressed := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, compressed, nil)
	if err != nil || n == 0 {
		t.Fatalf("CompressBlock: n=%d err=%v", n, err)
	}

	img, err := DecodeTex(buildTex(texSpec{
		format:       FormatRGBA8888,
		mipW:         16,
		mipH:         16,
		imgW:         10,
		imgH:         6,
		payload:      compressed[:n],
		compressed:   true,
		uncompressed: uint32(len(raw)),
	}))
	if err != nil {
		t.Fatalf("DecodeTex: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 6 {
		t.Errorf("Expected the image to be cropped to 10x6, got %v", b)
	}
	if got := rgbaAt(img, 5, 5); got != [4]uint8{200, 100, 50, 255} {
		t.Errorf("unexpected pixel %v", got)
	}
}

func TestDecodeTexDXT1(t *testing.T) {
	// One 4x4 block, both endpoints pure red in RGB565, all indices zero.
	block := []byte{0x00, 0xF8, 0x00, 0x00, 0, 0, 0, 0}
	img, err := DecodeTex(buildTex(texSpec{format: FormatDXT1, mipW: 4, mipH: 4, payload: block}))
	if err != nil {
		t.Fatalf("DecodeTex: %v", err)
	}
	px := rgbaAt(img, 1, 2)
	if px[0] < 240 || px[1] > 8 || px[2] > 8 || px[3] != 255 {
		t.Errorf("Expected opaque red, got %v", px)
	}
}

func TestDecodeTexDXT3(t *testing.T) {
	// One 4x4 block: explicit alpha 0xF everywhere, then a red DXT1-style color block.
	block := []byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0xF8, 0x00, 0x00, 0, 0, 0, 0,
	}
	img, err := DecodeTex(buildTex(texSpec{format: FormatDXT3, mipW: 4, mipH: 4, payload: block}))
	if err != nil {
		t.Fatalf("DecodeTex: %v", err)
	}
	px := rgbaAt(img, 3, 1)
	if px[0] < 240 || px[1] > 8 || px[2] > 8 || px[3] != 255 {
		t.Errorf("Expected opaque red, got %v", px)
	}
}

func TestDecodeTexGrayscale(t *testing.T) {
	img, err := DecodeTex(buildTex(texSpec{format: FormatR8, mipW: 2, mipH: 2, payload: []byte{0, 64, 128, 255}}))
	if err != nil {
		t.Fatalf("DecodeTex R8: %v", err)
	}
	if got := rgbaAt(img, 0, 1); got != [4]uint8{128, 128, 128, 255} {
		t.Errorf("unexpected R8 pixel %v", got)
	}

	img, err = DecodeTex(buildTex(texSpec{format: FormatRG88, mipW: 1, mipH: 1, payload: []byte{90, 128}}))
	if err != nil {
		t.Fatalf("DecodeTex RG88: %v", err)
	}
	if got := rgbaAt(img, 0, 0); got[3] != 128 {
		t.Errorf("Expected alpha from the second channel, got %v", got)
	}
}

func TestDecodeTexErrors(t *testing.T) {
	if _, err := DecodeTex([]byte("\x89PNG....")); !errors.Is(err, ErrNotTexture) {
		t.Errorf("Expected ErrNotTexture, got %v", err)
	}

	_, err := DecodeTex(buildTex(texSpec{format: 99, mipW: 4, mipH: 4, payload: make([]byte, 16)}))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for an unknown format, got %v", err)
	}

	_, err = DecodeTex(buildTex(texSpec{format: FormatDXT3, mipW: 4, mipH: 4, payload: make([]byte, 8)}))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat for a short DXT3 block, got %v", err)
	}

	full := buildTex(texSpec{format: FormatRGBA8888, mipW: 4, mipH: 4, payload: solidRGBA(4, 4, 1, 1, 1, 1)})
	if _, err := DecodeTex(full[:len(full)-10]); err == nil {
		t.Error("Expected an error for a truncated texture")
	}
}
