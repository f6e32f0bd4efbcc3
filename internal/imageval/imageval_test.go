package imageval

import (
	"image"
	"image/color"
	"testing"
)

// createColorImage fills an NRGBA buffer with a single color.
func createColorImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func createGrayImage(width, height int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

func TestFromImageClassification(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want Kind
	}{
		{"gray", image.NewGray(image.Rect(0, 0, 4, 4)), Gray},
		{"gray16", image.NewGray16(image.Rect(0, 0, 4, 4)), Gray},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 4, 4)), RGBA},
		{"rgba", image.NewRGBA(image.Rect(0, 0, 4, 4)), RGBA},
		{"nrgba64", image.NewNRGBA64(image.Rect(0, 0, 4, 4)), RGBA},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio444), RGB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromImage(tt.img)
			if v.Kind() != tt.want {
				t.Errorf("kind: got %v, want %v", v.Kind(), tt.want)
			}
		})
	}
}

func TestKindProperties(t *testing.T) {
	if Gray.HasColor() || Gray.HasAlpha() {
		t.Error("gray should carry neither color nor alpha")
	}
	if !RGB.HasColor() || RGB.HasAlpha() {
		t.Error("rgb should carry color but not alpha")
	}
	if !RGBA.HasColor() || !RGBA.HasAlpha() {
		t.Error("rgba should carry color and alpha")
	}
}

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b, want Kind
	}{
		{Gray, Gray, Gray},
		{Gray, RGB, RGB},
		{Gray, RGBA, RGBA},
		{RGB, RGBA, RGBA},
		{RGBA, Gray, RGBA},
	}
	for _, tt := range tests {
		if got := Promote(tt.a, tt.b); got != tt.want {
			t.Errorf("Promote(%v, %v): got %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestConversionsAreTotal(t *testing.T) {
	// Every variant converts to every variant without failing; converting
	// there and back preserves dimensions.
	sources := map[string]*Image{
		"gray": FromGray(createGrayImage(8, 6, 128)),
		"rgba": FromImage(createColorImage(8, 6, color.NRGBA{200, 100, 50, 180})),
	}
	targets := []Kind{Gray, RGB, RGBA}

	for name, src := range sources {
		for _, target := range targets {
			converted := src.Convert(target)
			if converted.Kind() != target {
				t.Errorf("%s -> %v: got kind %v", name, target, converted.Kind())
			}
			if converted.Width() != 8 || converted.Height() != 6 {
				t.Errorf("%s -> %v: dimensions changed to %dx%d", name, target,
					converted.Width(), converted.Height())
			}
			back := converted.Convert(src.Kind())
			if back.Kind() != src.Kind() {
				t.Errorf("%s -> %v -> back: got kind %v", name, target, back.Kind())
			}
		}
	}
}

func TestConvertSameKindReturnsReceiver(t *testing.T) {
	v := FromGray(createGrayImage(4, 4, 10))
	if v.Convert(Gray) != v {
		t.Error("converting to the current variant should be a no-op")
	}
}

func TestConvertGrayRoundTripIsLossless(t *testing.T) {
	// Widening gray to color and narrowing back must reproduce the exact
	// buffer: the gray channel is replicated, and luminance of replicated
	// channels is the channel value.
	src := FromGray(createGrayImage(5, 5, 77))
	round := src.Convert(RGBA).Convert(Gray)
	if !Equal(src, round) {
		t.Error("gray -> rgba -> gray changed pixel content")
	}
}

func TestConvertToGrayUsesLuminance(t *testing.T) {
	v := FromImage(createColorImage(2, 2, color.NRGBA{255, 0, 0, 255})).Convert(Gray)
	r, _, _, _ := v.At(0, 0).RGBA()
	// 0.299 * 255 rounds to 76.
	if got := uint8(r >> 8); got != 76 {
		t.Errorf("red luminance: got %d, want 76", got)
	}
}

func TestRGBVariantIsOpaque(t *testing.T) {
	translucent := createColorImage(3, 3, color.NRGBA{10, 20, 30, 40})
	v := FromImage(translucent).Convert(RGB)
	_, _, _, a := v.At(1, 1).RGBA()
	if a != 0xFFFF {
		t.Errorf("rgb variant alpha: got %#x, want opaque", a)
	}
}

func TestConvertToRGBLeavesSourceIntact(t *testing.T) {
	buf := createColorImage(3, 3, color.NRGBA{10, 20, 30, 40})
	src := FromImage(buf)

	opaque := src.Convert(RGB)
	if _, _, _, a := opaque.At(0, 0).RGBA(); a != 0xFFFF {
		t.Errorf("converted alpha: got %#x, want opaque", a)
	}

	// The conversion must not reach back into the source's buffer.
	if _, _, _, a := src.At(0, 0).RGBA(); a>>8 != 40 {
		t.Errorf("source alpha after Convert: got %d, want 40", a>>8)
	}
	if buf.Pix[3] != 40 {
		t.Errorf("source buffer alpha byte: got %d, want 40", buf.Pix[3])
	}
}

func TestEqualAcrossVariants(t *testing.T) {
	gray := FromGray(createGrayImage(4, 4, 90))
	widened := gray.Convert(RGB)
	if !Equal(gray, widened) {
		t.Error("a gray image should equal its own widening")
	}

	other := FromGray(createGrayImage(4, 4, 91))
	if Equal(gray, other) {
		t.Error("images with different pixel content should not be equal")
	}

	smaller := FromGray(createGrayImage(3, 4, 90))
	if Equal(gray, smaller) {
		t.Error("images with different dimensions should not be equal")
	}
}
