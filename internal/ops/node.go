package ops

import (
	"strings"

	"github.com/TGotwig/sic/internal/operand"
)

// Node is a parsed, validated operation invocation: a kind plus its bound
// operand values. Nodes are constructed exclusively by Spec.Bind, so the
// operands always satisfy the kind's declaration.
type Node struct {
	Kind     Kind
	Operands []operand.Value
}

// Operand returns the i-th bound operand value.
func (n Node) Operand(i int) operand.Value { return n.Operands[i] }

// Bind parses and validates raw operand tokens against the spec, producing
// a Node. The number of tokens must equal the spec's arity; the parser
// guarantees this by construction. A failed parse or check surfaces the
// *operand.Error unchanged so callers can attach positional context.
func (s Spec) Bind(raws []string) (Node, error) {
	values := make([]operand.Value, len(s.Operands))
	for i, spec := range s.Operands {
		v, err := operand.Parse(raws[i], spec.Type)
		if err != nil {
			return Node{}, err
		}
		if spec.Check != nil {
			if err := spec.Check(raws[i], v); err != nil {
				return Node{}, err
			}
		}
		values[i] = v
	}
	return Node{Kind: s.Kind, Operands: values}, nil
}

// Pipeline is an immutable ordered sequence of operation nodes, applied
// left to right.
type Pipeline []Node

// String renders the pipeline as a readable chain for logs, e.g.
// "resize -> grayscale".
func (p Pipeline) String() string {
	names := make([]string, len(p))
	for i, n := range p {
		names[i] = n.Kind.String()
	}
	return strings.Join(names, " -> ")
}
