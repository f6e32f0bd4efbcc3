package engine

import (
	"github.com/disintegration/imaging"

	"github.com/TGotwig/sic/internal/imageval"
	"github.com/TGotwig/sic/internal/ops"
)

// Loader resolves a path operand to a decoded image value. The CLI layer
// wires this to the codec package; tests supply fakes.
type Loader func(path string) (*imageval.Image, error)

// Engine executes pipelines. An Engine is stateless across runs and safe to
// reuse; per-run state lives in the run's environment.
type Engine struct {
	loader Loader
}

// Option configures an Engine.
type Option func(*Engine)

// WithLoader installs the loader used by operations that reference a second
// image.
func WithLoader(l Loader) Option {
	return func(e *Engine) { e.loader = l }
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is a successful pipeline run.
type Result struct {
	// Image is the final image value, ready for the encoding collaborator.
	Image *imageval.Image
	// OutputFormat is the format name selected by a set-output-format
	// instruction, or empty when the pipeline did not choose one.
	OutputFormat string
}

// environment is the per-run interpreter state adjusted by modifier
// instructions.
type environment struct {
	preserveAspect bool
	filter         imaging.ResampleFilter
	outputFormat   string
}

func newEnvironment() *environment {
	return &environment{filter: imaging.Lanczos}
}

// Run applies each node of the pipeline in order to img and returns the
// final image value. An empty pipeline returns img unchanged. On the first
// failure Run returns an *Error locating the failing node; the input image
// must then be considered consumed.
func (e *Engine) Run(pipeline ops.Pipeline, img *imageval.Image) (*Result, error) {
	env := newEnvironment()
	current := img

	for i, node := range pipeline {
		spec := ops.SpecOf(node.Kind)
		current = upgrade(current, spec.Requires)

		next, err := e.apply(node, spec, current, env)
		if err != nil {
			return nil, &Error{Index: i, Kind: node.Kind, Cause: err}
		}
		current = next
	}

	return &Result{Image: current, OutputFormat: env.outputFormat}, nil
}

// upgrade converts the image to a variant satisfying the requirement. The
// conversion widens only; a requirement that is already met leaves the
// image untouched.
func upgrade(img *imageval.Image, req ops.Requirement) *imageval.Image {
	switch req {
	case ops.RequireColor:
		if !img.Kind().HasColor() {
			return img.Convert(imageval.RGB)
		}
	case ops.RequireAlpha:
		if !img.Kind().HasAlpha() {
			return img.Convert(imageval.RGBA)
		}
	}
	return img
}
