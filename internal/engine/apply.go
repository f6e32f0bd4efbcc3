package engine

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/convolution"
	"github.com/disintegration/imaging"

	"github.com/TGotwig/sic/internal/imageval"
	"github.com/TGotwig/sic/internal/ops"
)

// resampleFilters maps sampling-filter operand names to resamplers.
var resampleFilters = map[string]imaging.ResampleFilter{
	"catmullrom": imaging.CatmullRom,
	"gaussian":   imaging.Gaussian,
	"lanczos3":   imaging.Lanczos,
	"nearest":    imaging.NearestNeighbor,
	"triangle":   imaging.Linear,
}

// apply executes a single node against img and returns the next image
// value. Pixel transforms go through the processing libraries, which widen
// to RGBA buffers internally; the result is narrowed back to the variant
// the pipeline carries so that only declared effects change it.
func (e *Engine) apply(node ops.Node, spec ops.Spec, img *imageval.Image, env *environment) (*imageval.Image, error) {
	keep := img.Kind()
	if spec.Effect == ops.EffectGray {
		keep = imageval.Gray
	}
	src := img.Std()

	switch node.Kind {
	case ops.Blur:
		return finish(imaging.Blur(src, node.Operand(0).Float()), keep), nil

	case ops.Brighten:
		return finish(imaging.AdjustBrightness(src, float64(node.Operand(0).Int())), keep), nil

	case ops.Contrast:
		return finish(imaging.AdjustContrast(src, node.Operand(0).Float()), keep), nil

	case ops.Crop:
		return crop(img, node, keep)

	case ops.Diff:
		if e.loader == nil {
			return nil, ErrNoLoader
		}
		other, err := e.loader(node.Operand(0).Str())
		if err != nil {
			return nil, err
		}
		return diff(img, other), nil

	case ops.Filter3x3:
		kernel := convolution.Kernel{Matrix: make([]float64, 9), Width: 3, Height: 3}
		for i := 0; i < 9; i++ {
			kernel.Matrix[i] = node.Operand(i).Float()
		}
		return finish(convolution.Convolve(src, &kernel, nil), keep), nil

	case ops.FlipHorizontal:
		return finish(imaging.FlipH(src), keep), nil

	case ops.FlipVertical:
		return finish(imaging.FlipV(src), keep), nil

	case ops.Grayscale:
		return img.Convert(imageval.Gray), nil

	case ops.HueRotate:
		return finish(adjust.Hue(src, node.Operand(0).Int()), keep), nil

	case ops.Invert:
		return finish(imaging.Invert(src), keep), nil

	case ops.Resize:
		return resize(src, node.Operand(0).Uint(), node.Operand(1).Uint(), env, keep)

	case ops.Rotate:
		return rotate(src, node.Operand(0).Uint(), keep)

	case ops.Rotate90:
		return rotate(src, 90, keep)

	case ops.Rotate180:
		return rotate(src, 180, keep)

	case ops.Rotate270:
		return rotate(src, 270, keep)

	case ops.PreserveAspectRatio:
		env.preserveAspect = node.Operand(0).Bool()
		return img, nil

	case ops.SamplingFilter:
		env.filter = resampleFilters[node.Operand(0).Str()]
		return img, nil

	case ops.SetOutputFormat:
		env.outputFormat = node.Operand(0).Str()
		return img, nil

	case ops.Sharpen:
		return finish(imaging.Sharpen(src, node.Operand(0).Float()), keep), nil

	case ops.Unsharpen:
		return finish(unsharpen(src, node.Operand(0).Float(), node.Operand(1).Int()), keep), nil

	default:
		return nil, fmt.Errorf("operation %q has no interpretation", node.Kind)
	}
}

// finish wraps a library result buffer and narrows it back to the variant
// the pipeline carries.
func finish(result image.Image, keep imageval.Kind) *imageval.Image {
	return imageval.FromImage(result).Convert(keep)
}

func crop(img *imageval.Image, node ops.Node, keep imageval.Kind) (*imageval.Image, error) {
	x1, y1 := node.Operand(0).Uint(), node.Operand(1).Uint()
	x2, y2 := node.Operand(2).Uint(), node.Operand(3).Uint()

	if x1 > img.Width() || y1 > img.Height() || x2 > img.Width() || y2 > img.Height() {
		return nil, ErrOutOfBounds
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, ErrEmptyRect
	}
	return finish(imaging.Crop(img.Std(), image.Rect(x1, y1, x2, y2)), keep), nil
}

func resize(src image.Image, w, h int, env *environment, keep imageval.Kind) (*imageval.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrZeroDimension
	}
	if env.preserveAspect {
		return finish(imaging.Fit(src, w, h, env.filter), keep), nil
	}
	return finish(imaging.Resize(src, w, h, env.filter), keep), nil
}

// unsharpen sharpens by adding back each channel's difference against a
// gaussian blur, but only where that difference exceeds the threshold. A
// high threshold restricts sharpening to strong edges; threshold zero
// sharpens everywhere.
func unsharpen(src image.Image, sigma float64, threshold int) *image.NRGBA {
	sharpened := imaging.Clone(src)
	blurred := imaging.Blur(src, sigma)
	for i := range sharpened.Pix {
		d := int(sharpened.Pix[i]) - int(blurred.Pix[i])
		if d > threshold || -d > threshold {
			sharpened.Pix[i] = clampUint8(int(sharpened.Pix[i]) + d)
		}
	}
	return sharpened
}

func clampUint8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// rotate turns the image clockwise by the given angle. The imaging library
// counts counter-clockwise, hence the swapped quarter turns.
func rotate(src image.Image, angle int, keep imageval.Kind) (*imageval.Image, error) {
	switch angle {
	case 90:
		return finish(imaging.Rotate270(src), keep), nil
	case 180:
		return finish(imaging.Rotate180(src), keep), nil
	case 270:
		return finish(imaging.Rotate90(src), keep), nil
	default:
		return nil, fmt.Errorf("unsupported rotation angle %d", angle)
	}
}
