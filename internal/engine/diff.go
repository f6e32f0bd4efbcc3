package engine

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/TGotwig/sic/internal/imageval"
)

// diff renders the difference between the current image and another one.
// The canvas covers the larger of the two sizes. Pixels that match in both
// images become fully transparent; differing pixels are painted on a hue
// ramp from blue (barely different) to red (maximally different), and
// pixels present in only one image count as maximally different.
//
// Both operands are promoted to a common alpha-carrying variant before
// comparison, so a grayscale image can be diffed against a color one.
func diff(img, other *imageval.Image) *imageval.Image {
	a := img.Convert(imageval.RGBA)
	b := other.Convert(imageval.RGBA)

	w := a.Width()
	if b.Width() > w {
		w = b.Width()
	}
	h := a.Height()
	if b.Height() > h {
		h = b.Height()
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			inA := x < a.Width() && y < a.Height()
			inB := x < b.Width() && y < b.Height()

			switch {
			case inA && inB:
				d := pixelDistance(a.At(x, y), b.At(x, y))
				if d == 0 {
					out.SetNRGBA(x, y, color.NRGBA{})
					continue
				}
				out.SetNRGBA(x, y, rampColor(d))
			default:
				out.SetNRGBA(x, y, rampColor(1))
			}
		}
	}

	return imageval.FromImage(out)
}

// pixelDistance returns the normalized euclidean distance between two
// colors over their RGBA components, in [0, 1].
func pixelDistance(p, q color.Color) float64 {
	pr, pg, pb, pa := p.RGBA()
	qr, qg, qb, qa := q.RGBA()

	dr := float64(pr>>8) - float64(qr>>8)
	dg := float64(pg>>8) - float64(qg>>8)
	db := float64(pb>>8) - float64(qb>>8)
	da := float64(pa>>8) - float64(qa>>8)

	return math.Sqrt(dr*dr+dg*dg+db*db+da*da) / (2 * 255)
}

// rampColor maps a difference magnitude in (0, 1] to an opaque highlight
// color: hue 240 (blue) for the smallest differences down to hue 0 (red)
// for the largest.
func rampColor(d float64) color.NRGBA {
	if d > 1 {
		d = 1
	}
	c := colorful.Hsv(240*(1-d), 1, 1)
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}
}
