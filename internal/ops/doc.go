// Package ops defines the closed vocabulary of image operations.
//
// Each operation kind declares its name, the ordered operands it takes with
// their types and validity checks, and the pixel-format rule the engine must
// honor before and after applying it. The catalog is assembled once at
// package initialization and is read-only afterwards.
//
// A Node is a parsed, validated invocation of one operation. Nodes are only
// constructed through Spec.Bind, so a Node can never hold operands that
// violate its operation's declaration. A Pipeline is an ordered sequence of
// Nodes; order is significant, each operation consumes the output of the
// previous one.
package ops
