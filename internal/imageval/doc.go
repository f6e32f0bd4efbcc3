// Package imageval defines the in-memory image representation passed through
// an operation pipeline.
//
// An Image is a tagged union over the supported pixel-format variants:
//
//   - Gray: 8-bit grayscale, backed by *image.Gray
//   - RGB: 8-bit color without transparency, backed by *image.NRGBA with
//     every alpha byte forced to 0xFF
//   - RGBA: 8-bit color with transparency, backed by *image.NRGBA
//
// Conversions between variants are total: they never fail for lack of
// information. Narrowing to Gray uses ITU-R BT.601 luminance weights
// (0.299*R + 0.587*G + 0.114*B); widening replicates the gray channel and
// fills alpha with full opacity.
//
// The engine owns exactly one Image per pipeline run. Operations replace the
// Image rather than sharing it, so no synchronization is needed within a
// single run.
package imageval
