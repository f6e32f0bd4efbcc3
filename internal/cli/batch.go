package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/TGotwig/sic/internal/codec"
)

// BatchOptions describes a glob conversion over many images.
type BatchOptions struct {
	// Pattern is a filepath glob selecting the input images.
	Pattern string
	// OutputDir receives one output per input, named after the input with
	// the extension of the selected format.
	OutputDir string
	// Workers caps concurrent conversions; 0 means no cap beyond the
	// number of inputs.
	Workers int

	Script       string
	Tokens       []string
	ForcedFormat string
	JPEGQuality  int
}

// RunBatch converts every image matching the glob. Images are independent,
// so conversions run in parallel across files; within one file the
// parse-then-execute sequence stays strictly sequential. The first failing
// conversion cancels the remaining ones.
func RunBatch(ctx context.Context, opts BatchOptions) error {
	matches, err := filepath.Glob(opts.Pattern)
	if err != nil {
		return errors.Wrapf(err, "bad glob pattern %q", opts.Pattern)
	}
	if len(matches) == 0 {
		return errors.Errorf("no files match %q", opts.Pattern)
	}

	// The pipeline is parsed once up front so a malformed operation chain
	// fails before any file is touched.
	if _, err := buildPipeline(Options{Script: opts.Script, Tokens: opts.Tokens}); err != nil {
		return err
	}

	group, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		group.SetLimit(opts.Workers)
	}

	for _, input := range matches {
		input := input
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			output := outputPath(opts, input)
			logrus.WithFields(logrus.Fields{"input": input, "output": output}).Info("converting")
			err := Run(Options{
				Input:        input,
				Output:       output,
				Script:       opts.Script,
				Tokens:       opts.Tokens,
				ForcedFormat: opts.ForcedFormat,
				JPEGQuality:  opts.JPEGQuality,
			})
			return errors.Wrapf(err, "convert %s", input)
		})
	}

	return group.Wait()
}

// outputPath places the converted file in the output directory, swapping
// the extension when a target format is known.
func outputPath(opts BatchOptions, input string) string {
	base := filepath.Base(input)
	if f, ok := codec.FormatByName(opts.ForcedFormat); ok {
		ext := filepath.Ext(base)
		base = strings.TrimSuffix(base, ext) + "." + string(f)
	}
	return filepath.Join(opts.OutputDir, base)
}
