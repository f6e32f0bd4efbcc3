// Package codec is the I/O collaborator at the pipeline's edges: it decodes
// source bytes into an image value and encodes the final image value into a
// target format. The engine itself never touches encoded bytes.
package codec

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/TGotwig/sic/internal/imageval"
)

// Format identifies an image encoding.
type Format string

const (
	FormatBMP     Format = "bmp"
	FormatGIF     Format = "gif"
	FormatJPEG    Format = "jpeg"
	FormatPNG     Format = "png"
	FormatTIFF    Format = "tiff"
	FormatUnknown Format = "unknown"
)

// DefaultFormat is used when neither an output extension nor an explicit
// format selects one. BMP mirrors the historical default of the tool.
const DefaultFormat = FormatBMP

// EncodeOptions carries format-specific encoding parameters.
type EncodeOptions struct {
	// JPEGQuality is 1-100; 0 selects the encoder default.
	JPEGQuality int
}

type encodeFunc func(w io.Writer, img image.Image, opts EncodeOptions) error

// encoders is the static format registry, assembled once and read-only.
var encoders = map[Format]encodeFunc{
	FormatBMP: func(w io.Writer, img image.Image, _ EncodeOptions) error {
		return bmp.Encode(w, img)
	},
	FormatGIF: func(w io.Writer, img image.Image, _ EncodeOptions) error {
		return gif.Encode(w, img, nil)
	},
	FormatJPEG: func(w io.Writer, img image.Image, opts EncodeOptions) error {
		var jpegOpts *jpeg.Options
		if opts.JPEGQuality > 0 {
			jpegOpts = &jpeg.Options{Quality: opts.JPEGQuality}
		}
		return jpeg.Encode(w, img, jpegOpts)
	},
	FormatPNG: func(w io.Writer, img image.Image, _ EncodeOptions) error {
		return png.Encode(w, img)
	},
	FormatTIFF: func(w io.Writer, img image.Image, _ EncodeOptions) error {
		return tiff.Encode(w, img, nil)
	},
}

// FormatByName resolves a user-supplied format name, accepting the "jpg"
// alias for JPEG.
func FormatByName(name string) (Format, bool) {
	switch strings.ToLower(name) {
	case "bmp":
		return FormatBMP, true
	case "gif":
		return FormatGIF, true
	case "jpeg", "jpg":
		return FormatJPEG, true
	case "png":
		return FormatPNG, true
	case "tiff", "tif":
		return FormatTIFF, true
	default:
		return FormatUnknown, false
	}
}

// FormatByExtension determines the output format from a file path's
// extension.
func FormatByExtension(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatUnknown, false
	}
	return FormatByName(ext)
}

// Decode reads and decodes an image from r, classifying it into a pipeline
// image value. The format is detected from the byte stream, not from any
// file name.
func Decode(r io.Reader) (*imageval.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, FormatUnknown, errors.Wrap(err, "decode image")
	}
	format, ok := FormatByName(name)
	if !ok {
		format = FormatUnknown
	}
	return imageval.FromImage(img), format, nil
}

// DecodeFile opens and decodes the image at path. The engine uses this as
// its loader for operations that reference a second image.
func DecodeFile(path string) (*imageval.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open image %s", path)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", path)
	}
	return img, nil
}

// Encode serialises the image value to w in the given format.
func Encode(w io.Writer, img *imageval.Image, format Format, opts EncodeOptions) error {
	enc, ok := encoders[format]
	if !ok {
		return errors.Errorf("unsupported output format %q", format)
	}
	if err := enc(w, img.Std(), opts); err != nil {
		return errors.Wrapf(err, "encode %s", format)
	}
	return nil
}
