// Package engine interprets a validated operation pipeline against an image
// value.
//
// Execution is strictly sequential: each node's output is the next node's
// input, and the first failure halts the run with an *Error carrying the
// failing node's index and kind. Before applying a node the engine checks
// the operation's pixel-format requirement and upgrades the image variant
// when it is unmet. Upgrades are monotonic; the only downgrade in the
// vocabulary is the explicit grayscale operation.
//
// The engine performs no file or stream I/O. Operations that reference a
// second image (diff) resolve it through the Loader the caller injects, so
// the engine stays agnostic to file formats and storage.
package engine
