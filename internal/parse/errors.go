package parse

import (
	"fmt"

	"github.com/TGotwig/sic/internal/operand"
	"github.com/TGotwig/sic/internal/ops"
)

// UnknownOperationError reports a token that is not an operation name where
// one was expected.
type UnknownOperationError struct {
	// Name is the unrecognized token.
	Name string
	// Position is the token's 0-based position in the input stream.
	Position int
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q at token %d", e.Name, e.Position)
}

// ArityMismatchError reports an operation invocation with fewer operand
// tokens than its declared arity.
type ArityMismatchError struct {
	Kind ops.Kind
	// Expected is the declared arity; Found is how many tokens remained.
	Expected int
	Found    int
	// Index is the 0-based index of the invocation in the chain.
	Index int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("operation %q at index %d takes %d operand(s), found %d",
		e.Kind, e.Index, e.Expected, e.Found)
}

// InvalidOperandError reports an operand token that failed its type parse
// or validity check.
type InvalidOperandError struct {
	Kind ops.Kind
	// Index is the 0-based index of the invocation in the chain.
	Index int
	// Cause is the underlying operand failure with the expected type and
	// the raw text.
	Cause *operand.Error
}

func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("operation %q at index %d: %v", e.Kind, e.Index, e.Cause)
}

func (e *InvalidOperandError) Unwrap() error { return e.Cause }
