package codec

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TGotwig/sic/internal/imageval"
)

func createTestImage(width, height int) *imageval.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: 128,
				A: 255,
			})
		}
	}
	return imageval.FromImage(img)
}

func TestFormatByName(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		ok     bool
	}{
		{"bmp", FormatBMP, true},
		{"gif", FormatGIF, true},
		{"jpeg", FormatJPEG, true},
		{"jpg", FormatJPEG, true},
		{"JPG", FormatJPEG, true},
		{"png", FormatPNG, true},
		{"tiff", FormatTIFF, true},
		{"tif", FormatTIFF, true},
		{"webp", FormatUnknown, false},
		{"", FormatUnknown, false},
	}

	for _, tt := range tests {
		format, ok := FormatByName(tt.name)
		if format != tt.format || ok != tt.ok {
			t.Errorf("FormatByName(%q): got (%v, %v), want (%v, %v)",
				tt.name, format, ok, tt.format, tt.ok)
		}
	}
}

func TestFormatByExtension(t *testing.T) {
	tests := []struct {
		path   string
		format Format
		ok     bool
	}{
		{"out.png", FormatPNG, true},
		{filepath.Join("some", "dir", "photo.JPG"), FormatJPEG, true},
		{"archive.tar.gz", FormatUnknown, false},
		{"noextension", FormatUnknown, false},
		{"trailing.", FormatUnknown, false},
	}

	for _, tt := range tests {
		format, ok := FormatByExtension(tt.path)
		if format != tt.format || ok != tt.ok {
			t.Errorf("FormatByExtension(%q): got (%v, %v), want (%v, %v)",
				tt.path, format, ok, tt.format, tt.ok)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	// Lossless formats must reproduce every pixel.
	for _, format := range []Format{FormatBMP, FormatPNG, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			src := createTestImage(32, 24)

			var buf bytes.Buffer
			if err := Encode(&buf, src, format, EncodeOptions{}); err != nil {
				t.Fatalf("encode: %v", err)
			}

			decoded, detected, err := Decode(&buf)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if detected != format {
				t.Errorf("detected format: got %v, want %v", detected, format)
			}
			if !imageval.Equal(src, decoded) {
				t.Error("round trip altered pixels")
			}
		})
	}
}

func TestEncodeJPEGRespectsQuality(t *testing.T) {
	src := createTestImage(64, 64)

	var low, high bytes.Buffer
	if err := Encode(&low, src, FormatJPEG, EncodeOptions{JPEGQuality: 10}); err != nil {
		t.Fatalf("encode low quality: %v", err)
	}
	if err := Encode(&high, src, FormatJPEG, EncodeOptions{JPEGQuality: 95}); err != nil {
		t.Fatalf("encode high quality: %v", err)
	}
	if low.Len() >= high.Len() {
		t.Errorf("quality 10 produced %d bytes, quality 95 produced %d; expected the former to be smaller",
			low.Len(), high.Len())
	}
}

func TestEncodeGIF(t *testing.T) {
	src := createTestImage(16, 16)

	var buf bytes.Buffer
	if err := Encode(&buf, src, FormatGIF, EncodeOptions{}); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	if _, detected, err := Decode(&buf); err != nil || detected != FormatGIF {
		t.Errorf("decode gif: got (%v, %v)", detected, err)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	src := createTestImage(4, 4)

	err := Encode(&bytes.Buffer{}, src, FormatUnknown, EncodeOptions{})
	if err == nil {
		t.Fatal("encoding an unknown format should fail")
	}
	if !strings.Contains(err.Error(), "unsupported output format") {
		t.Errorf("error message: %v", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, format, err := Decode(strings.NewReader("not an image"))
	if err == nil {
		t.Fatal("decoding garbage should fail")
	}
	if format != FormatUnknown {
		t.Errorf("format on failure: got %v, want %v", format, FormatUnknown)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("decoding a missing file should fail")
	}
}
