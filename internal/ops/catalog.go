package ops

import "github.com/TGotwig/sic/internal/operand"

// FilterNames lists the accepted resize sampling filters, matching the
// resamplers offered by the imaging library.
var FilterNames = []string{"catmullrom", "gaussian", "lanczos3", "nearest", "triangle"}

// FormatNames lists the accepted output encoding formats.
var FormatNames = []string{"bmp", "gif", "jpeg", "jpg", "png", "tiff"}

// OperandSpec declares one operand of an operation.
type OperandSpec struct {
	// Name labels the operand in diagnostics, e.g. "sigma" or "width".
	Name string
	// Type is the operand's value type.
	Type operand.Type
	// Check optionally narrows the accepted values; nil accepts any value
	// of the type.
	Check operand.Check
}

// Spec is the catalog entry for one operation kind.
type Spec struct {
	Kind     Kind
	Operands []OperandSpec
	// Requires is the pixel-format precondition the engine enforces.
	Requires Requirement
	// Effect is the variant transition the operation performs.
	Effect Effect
	// Modifier marks environment modifiers: instructions that adjust how
	// later operations run instead of transforming pixels themselves.
	Modifier bool
}

// Arity returns the fixed number of operand tokens the operation consumes.
func (s Spec) Arity() int { return len(s.Operands) }

var catalog map[string]Spec

func init() {
	specs := []Spec{
		{Kind: Blur, Operands: []OperandSpec{
			{Name: "sigma", Type: operand.Float, Check: operand.Positive()},
		}},
		{Kind: Brighten, Operands: []OperandSpec{
			{Name: "amount", Type: operand.Int, Check: operand.InRange(-100, 100)},
		}},
		{Kind: Contrast, Operands: []OperandSpec{
			{Name: "amount", Type: operand.Float, Check: operand.InRange(-100, 100)},
		}},
		{Kind: Crop, Operands: []OperandSpec{
			{Name: "x1", Type: operand.Uint},
			{Name: "y1", Type: operand.Uint},
			{Name: "x2", Type: operand.Uint},
			{Name: "y2", Type: operand.Uint},
		}},
		{Kind: Diff, Requires: RequireAlpha, Operands: []OperandSpec{
			{Name: "path", Type: operand.Path},
		}},
		{Kind: Filter3x3, Requires: RequireColor, Operands: filterKernelOperands()},
		{Kind: FlipHorizontal},
		{Kind: FlipVertical},
		{Kind: Grayscale, Effect: EffectGray},
		{Kind: HueRotate, Requires: RequireColor, Operands: []OperandSpec{
			{Name: "degrees", Type: operand.Int},
		}},
		{Kind: Invert},
		{Kind: PreserveAspectRatio, Modifier: true, Operands: []OperandSpec{
			{Name: "flag", Type: operand.Bool},
		}},
		{Kind: Resize, Operands: []OperandSpec{
			{Name: "width", Type: operand.Uint, Check: operand.Positive()},
			{Name: "height", Type: operand.Uint, Check: operand.Positive()},
		}},
		{Kind: Rotate, Operands: []OperandSpec{
			{Name: "angle", Type: operand.Uint, Check: operand.IntOneOf(90, 180, 270)},
		}},
		{Kind: Rotate90},
		{Kind: Rotate180},
		{Kind: Rotate270},
		{Kind: SamplingFilter, Modifier: true, Operands: []OperandSpec{
			{Name: "name", Type: operand.Choice, Check: operand.StringOneOf(FilterNames...)},
		}},
		{Kind: SetOutputFormat, Modifier: true, Operands: []OperandSpec{
			{Name: "format", Type: operand.Choice, Check: operand.StringOneOf(FormatNames...)},
		}},
		{Kind: Sharpen, Operands: []OperandSpec{
			{Name: "sigma", Type: operand.Float, Check: operand.Positive()},
		}},
		{Kind: Unsharpen, Operands: []OperandSpec{
			{Name: "sigma", Type: operand.Float},
			{Name: "threshold", Type: operand.Int},
		}},
	}

	catalog = make(map[string]Spec, len(specs))
	for _, s := range specs {
		catalog[s.Kind.String()] = s
	}
}

func filterKernelOperands() []OperandSpec {
	cells := make([]OperandSpec, 9)
	names := [9]string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	for i := range cells {
		cells[i] = OperandSpec{Name: names[i], Type: operand.Float}
	}
	return cells
}

// Lookup resolves an operation name to its catalog entry. Names are
// case-sensitive.
func Lookup(name string) (Spec, bool) {
	s, ok := catalog[name]
	return s, ok
}

// SpecOf returns the catalog entry for a kind. It panics on a kind that is
// not in the catalog, which cannot happen for Nodes produced by Bind.
func SpecOf(k Kind) Spec {
	s, ok := catalog[k.String()]
	if !ok {
		panic("ops: no spec for kind " + k.String())
	}
	return s
}

// Names returns all operation names in the catalog. Intended for help text;
// the slice is freshly allocated per call.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}
