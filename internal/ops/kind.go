package ops

// Kind identifies one operation in the closed vocabulary.
type Kind int

const (
	Blur Kind = iota
	Brighten
	Contrast
	Crop
	Diff
	Filter3x3
	FlipHorizontal
	FlipVertical
	Grayscale
	HueRotate
	Invert
	PreserveAspectRatio
	Resize
	Rotate
	Rotate90
	Rotate180
	Rotate270
	SamplingFilter
	SetOutputFormat
	Sharpen
	Unsharpen
)

var kindNames = map[Kind]string{
	Blur:                "blur",
	Brighten:            "brighten",
	Contrast:            "contrast",
	Crop:                "crop",
	Diff:                "diff",
	Filter3x3:           "filter3x3",
	FlipHorizontal:      "flip-horizontal",
	FlipVertical:        "flip-vertical",
	Grayscale:           "grayscale",
	HueRotate:           "hue-rotate",
	Invert:              "invert",
	PreserveAspectRatio: "preserve-aspect-ratio",
	Resize:              "resize",
	Rotate:              "rotate",
	Rotate90:            "rotate90",
	Rotate180:           "rotate180",
	Rotate270:           "rotate270",
	SamplingFilter:      "sampling-filter",
	SetOutputFormat:     "set-output-format",
	Sharpen:             "sharpen",
	Unsharpen:           "unsharpen",
}

// String returns the operation's canonical kebab-case name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Requirement declares the pixel-format variant an operation needs before it
// can run. The engine upgrades the image when the requirement is unmet;
// upgrades are monotonic and persist for the rest of the pipeline.
type Requirement int

const (
	// RequireNone runs on any variant.
	RequireNone Requirement = iota
	// RequireColor needs color channels; Gray input is upgraded to RGB.
	RequireColor
	// RequireAlpha needs an alpha channel; input is upgraded to RGBA.
	RequireAlpha
)

// Effect declares the variant transition an operation performs.
type Effect int

const (
	// EffectKeep leaves the variant as it was when the operation started
	// (after any requirement upgrade).
	EffectKeep Effect = iota
	// EffectGray narrows the image to the grayscale variant. This is the
	// only downgrade in the vocabulary and only happens when the user asked
	// for it by name.
	EffectGray
)
