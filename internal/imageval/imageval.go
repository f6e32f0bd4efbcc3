package imageval

import (
	"image"
	"image/color"
	"image/draw"
)

// Kind tags the active pixel-format variant of an Image.
type Kind int

const (
	// Gray is 8-bit single-channel grayscale.
	Gray Kind = iota
	// RGB is 8-bit color without transparency.
	RGB
	// RGBA is 8-bit color with an alpha channel.
	RGBA
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case Gray:
		return "gray"
	case RGB:
		return "rgb"
	case RGBA:
		return "rgba"
	default:
		return "unknown"
	}
}

// HasColor reports whether the variant carries color channels.
func (k Kind) HasColor() bool { return k != Gray }

// HasAlpha reports whether the variant carries an alpha channel.
func (k Kind) HasAlpha() bool { return k == RGBA }

// Promote returns the narrowest variant both kinds can be converted to
// without information loss.
func Promote(a, b Kind) Kind {
	if a == RGBA || b == RGBA {
		return RGBA
	}
	if a == RGB || b == RGB {
		return RGB
	}
	return Gray
}

// Image is the pipeline's image value: one active variant wrapping a
// width x height pixel buffer.
type Image struct {
	kind  Kind
	gray  *image.Gray  // set when kind == Gray
	nrgba *image.NRGBA // set when kind == RGB or RGBA
}

// FromImage classifies a decoded image into a variant. Grayscale buffer
// types map to Gray, buffer types with an alpha channel map to RGBA, and
// everything else (e.g. JPEG's YCbCr) maps to RGB.
func FromImage(img image.Image) *Image {
	switch src := img.(type) {
	case *image.Gray:
		return &Image{kind: Gray, gray: src}
	case *image.Gray16:
		return &Image{kind: Gray, gray: toGray(src)}
	case *image.NRGBA:
		return &Image{kind: RGBA, nrgba: src}
	case *image.RGBA, *image.NRGBA64, *image.RGBA64:
		return &Image{kind: RGBA, nrgba: toNRGBA(img)}
	default:
		v := &Image{kind: RGB, nrgba: toNRGBA(img)}
		forceOpaque(v.nrgba)
		return v
	}
}

// FromGray wraps a grayscale buffer as a Gray variant.
func FromGray(g *image.Gray) *Image {
	return &Image{kind: Gray, gray: g}
}

// Kind returns the active variant tag.
func (v *Image) Kind() Kind { return v.kind }

// Bounds returns the pixel bounds of the active buffer.
func (v *Image) Bounds() image.Rectangle { return v.Std().Bounds() }

// Width returns the image width in pixels.
func (v *Image) Width() int { return v.Bounds().Dx() }

// Height returns the image height in pixels.
func (v *Image) Height() int { return v.Bounds().Dy() }

// Std exposes the active buffer as a standard image.Image for use with
// pixel-processing libraries.
func (v *Image) Std() image.Image {
	if v.kind == Gray {
		return v.gray
	}
	return v.nrgba
}

// Convert returns an Image in the requested variant. Converting to the
// current variant returns the receiver unchanged. All conversions succeed;
// narrowing to Gray reduces color via luminance weighting and drops alpha,
// which callers request explicitly (the engine never narrows on its own).
func (v *Image) Convert(k Kind) *Image {
	if v.kind == k {
		return v
	}
	switch k {
	case Gray:
		return &Image{kind: Gray, gray: toGray(v.Std())}
	case RGB:
		buf := toNRGBA(v.Std())
		if buf == v.nrgba {
			// toNRGBA aliases an origin-anchored NRGBA source;
			// forceOpaque edits in place, so it needs its own buffer.
			buf = cloneNRGBA(buf)
		}
		forceOpaque(buf)
		return &Image{kind: RGB, nrgba: buf}
	default:
		return &Image{kind: RGBA, nrgba: toNRGBA(v.Std())}
	}
}

// At returns the color at (x, y) from the active buffer.
func (v *Image) At(x, y int) color.Color { return v.Std().At(x, y) }

// Equal reports whether two images share dimensions and have identical
// pixel content. Both operands are promoted to a common variant first, so
// a Gray image and its RGB widening compare equal.
func Equal(a, b *Image) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	common := Promote(a.kind, b.kind)
	ca, cb := a.Convert(common), b.Convert(common)
	if common == Gray {
		return bytesEqual(ca.gray.Pix, cb.gray.Pix)
	}
	return bytesEqual(ca.nrgba.Pix, cb.nrgba.Pix)
}

func bytesEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// toGray reduces any image to an 8-bit grayscale buffer using BT.601
// luminance weights.
func toGray(src image.Image) *image.Gray {
	bounds := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			lum := 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
			dst.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{Y: uint8(lum + 0.5)})
		}
	}
	return dst
}

// toNRGBA copies any image into an NRGBA buffer anchored at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	if buf, ok := src.(*image.NRGBA); ok && buf.Bounds().Min == (image.Point{}) {
		return buf
	}
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// forceOpaque sets every alpha byte to 0xFF, maintaining the RGB variant's
// opacity invariant.
func forceOpaque(buf *image.NRGBA) {
	for i := 3; i < len(buf.Pix); i += 4 {
		buf.Pix[i] = 0xFF
	}
}
