// Package parse compiles raw operation tokens into a validated pipeline.
//
// Input tokens arrive pre-split by the CLI layer: an operation name followed
// by exactly as many operand tokens as the operation declares, repeated for
// each operation in the chain. Parsing is a single left-to-right pass with
// no backtracking; operation boundaries fall out of consuming the declared
// arity of the preceding operation. The first error halts parsing, there is
// no partial recovery.
package parse

import (
	"errors"
	"strings"

	"github.com/TGotwig/sic/internal/operand"
	"github.com/TGotwig/sic/internal/ops"
)

// Parse turns an ordered token stream into a Pipeline or returns the first
// structured error encountered. Parsing the same tokens twice yields
// structurally equal pipelines.
func Parse(tokens []string) (ops.Pipeline, error) {
	pipeline := make(ops.Pipeline, 0, len(tokens))

	pos := 0
	for index := 0; pos < len(tokens); index++ {
		name := tokens[pos]
		spec, ok := ops.Lookup(name)
		if !ok {
			return nil, &UnknownOperationError{Name: name, Position: pos}
		}

		found := len(tokens) - pos - 1
		if found < spec.Arity() {
			return nil, &ArityMismatchError{
				Kind:     spec.Kind,
				Expected: spec.Arity(),
				Found:    found,
				Index:    index,
			}
		}

		node, err := spec.Bind(tokens[pos+1 : pos+1+spec.Arity()])
		if err != nil {
			var opErr *operand.Error
			if errors.As(err, &opErr) {
				return nil, &InvalidOperandError{Kind: spec.Kind, Index: index, Cause: opErr}
			}
			return nil, err
		}

		pipeline = append(pipeline, node)
		pos += 1 + spec.Arity()
	}

	return pipeline, nil
}

// ParseScript parses a script string of statements separated by ';', e.g.
// "blur 1; resize 100 100". Empty statements are allowed and skipped, so
// trailing separators and "blur 1;; blur 2" are valid.
func ParseScript(script string) (ops.Pipeline, error) {
	return Parse(SplitScript(script))
}

// SplitScript flattens a script into the token stream Parse expects.
// Statements are split on ';' and then on whitespace. Quoted operands keep
// their quotes for the operand layer to strip; whitespace inside quotes is
// not supported, matching the shell-style splitting of the CLI form.
func SplitScript(script string) []string {
	var tokens []string
	for _, stmt := range strings.Split(script, ";") {
		tokens = append(tokens, strings.Fields(stmt)...)
	}
	return tokens
}
