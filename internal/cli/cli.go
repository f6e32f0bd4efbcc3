// Package cli implements the run procedure behind the sic binary: it wires
// the codec, parser, and engine together and owns all file and stream I/O
// the core packages deliberately avoid.
package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/TGotwig/sic/internal/codec"
	"github.com/TGotwig/sic/internal/engine"
	"github.com/TGotwig/sic/internal/imageval"
	"github.com/TGotwig/sic/internal/ops"
	"github.com/TGotwig/sic/internal/parse"
)

// Options describes one conversion.
type Options struct {
	// Input is the source file path; empty means stdin.
	Input string
	// Output is the destination file path; empty means stdout.
	Output string
	// Script is a ';'-separated operation script. Mutually exclusive with
	// Tokens; Script wins when both are set.
	Script string
	// Tokens are pre-split operation tokens from the command line.
	Tokens []string
	// ForcedFormat overrides output format detection by extension.
	ForcedFormat string
	// JPEGQuality is 1-100; 0 selects the encoder default.
	JPEGQuality int
}

// Run performs a single parse-then-execute conversion.
func Run(opts Options) error {
	pipeline, err := buildPipeline(opts)
	if err != nil {
		return err
	}

	img, err := readInput(opts.Input)
	if err != nil {
		return err
	}

	eng := engine.New(engine.WithLoader(codec.DecodeFile))
	result, err := eng.Run(pipeline, img)
	if err != nil {
		return err
	}

	format := determineFormat(result, opts)
	logrus.WithFields(logrus.Fields{
		"operations": len(pipeline),
		"format":     format,
		"width":      result.Image.Width(),
		"height":     result.Image.Height(),
		"variant":    result.Image.Kind().String(),
	}).Debug("pipeline complete")

	return writeOutput(opts.Output, result.Image, format, codec.EncodeOptions{
		JPEGQuality: opts.JPEGQuality,
	})
}

func buildPipeline(opts Options) (ops.Pipeline, error) {
	if opts.Script != "" {
		return parse.ParseScript(opts.Script)
	}
	return parse.Parse(opts.Tokens)
}

func readInput(path string) (*imageval.Image, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open input %s", path)
		}
		defer f.Close()
		r = f
	}

	img, format, err := codec.Decode(r)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"format":  format,
		"width":   img.Width(),
		"height":  img.Height(),
		"variant": img.Kind().String(),
	}).Debug("input decoded")
	return img, nil
}

// determineFormat picks the output encoding. A set-output-format
// instruction in the pipeline is the most specific request and wins; then
// the forced format flag, then the output file extension. Without any of
// those the historical BMP default applies, with a warning since it is
// rarely what users want.
func determineFormat(result *engine.Result, opts Options) codec.Format {
	if result.OutputFormat != "" {
		if f, ok := codec.FormatByName(result.OutputFormat); ok {
			return f
		}
	}
	if opts.ForcedFormat != "" {
		if f, ok := codec.FormatByName(opts.ForcedFormat); ok {
			return f
		}
		logrus.WithField("format", opts.ForcedFormat).Warn("unrecognized output format, falling back")
	}
	if f, ok := codec.FormatByExtension(opts.Output); ok {
		return f
	}
	logrus.Warn("no output format selected, defaulting to bmp; use --output-format to pick one")
	return codec.DefaultFormat
}

func writeOutput(path string, img *imageval.Image, format codec.Format, opts codec.EncodeOptions) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "create output %s", path)
		}
		defer f.Close()
		w = f
	}
	return codec.Encode(w, img, format, opts)
}
