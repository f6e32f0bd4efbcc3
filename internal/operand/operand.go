// Package operand provides typed parsing and validation of raw textual
// operation arguments.
//
// Every image operation declares the operands it takes as a fixed, ordered
// list of (name, type, check) triples. This package turns a single raw token
// into a typed Value or rejects it with an *Error describing what was
// expected. Range violations are errors, never clamps; clamping pixel values
// during execution is an operation's own documented behaviour, not the
// operand layer's.
package operand

import (
	"fmt"
	"strconv"
	"strings"
)

// Type enumerates the value kinds an operand may have.
type Type int

const (
	// Int is a signed integer, e.g. a brighten amount.
	Int Type = iota
	// Uint is an unsigned integer, e.g. a crop coordinate.
	Uint
	// Float is a decimal number, e.g. a blur sigma.
	Float
	// Bool accepts exactly "true" or "false".
	Bool
	// Choice is a string restricted to an enumerated set by a check.
	Choice
	// Path is a file path; surrounding single or double quotes are removed.
	Path
)

// String returns a human-readable description of the type, used in error
// messages.
func (t Type) String() string {
	switch t {
	case Int:
		return "integer"
	case Uint:
		return "unsigned integer"
	case Float:
		return "number"
	case Bool:
		return "boolean (true|false)"
	case Choice:
		return "choice"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Error reports a raw token that could not be parsed or validated.
type Error struct {
	// Expected describes the expected value, e.g. "number" or
	// "one of 90, 180, 270".
	Expected string
	// Raw is the offending token as given.
	Raw string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid operand %q: expected %s", e.Raw, e.Expected)
}

// Value is a parsed, typed operand. A Value is only ever constructed by
// Parse, so holding one implies the raw text satisfied its declared type.
type Value struct {
	typ Type
	i   int64
	u   uint64
	f   float64
	b   bool
	s   string
}

// Type returns the value's declared type.
func (v Value) Type() Type { return v.typ }

// Int returns the signed integer payload.
func (v Value) Int() int { return int(v.i) }

// Uint returns the unsigned integer payload as an int for convenient use
// with image geometry.
func (v Value) Uint() int { return int(v.u) }

// Float returns the numeric payload.
func (v Value) Float() float64 { return v.f }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Str returns the string payload of a Choice or Path value.
func (v Value) Str() string { return v.s }

// Parse converts a raw token into a typed Value.
func Parse(raw string, t Type) (Value, error) {
	switch t {
	case Int:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, &Error{Expected: t.String(), Raw: raw}
		}
		return Value{typ: t, i: n, f: float64(n)}, nil
	case Uint:
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return Value{}, &Error{Expected: t.String(), Raw: raw}
		}
		return Value{typ: t, u: n, f: float64(n)}, nil
	case Float:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, &Error{Expected: t.String(), Raw: raw}
		}
		return Value{typ: t, f: f}, nil
	case Bool:
		switch raw {
		case "true":
			return Value{typ: t, b: true}, nil
		case "false":
			return Value{typ: t, b: false}, nil
		default:
			return Value{}, &Error{Expected: t.String(), Raw: raw}
		}
	case Choice:
		if raw == "" {
			return Value{}, &Error{Expected: "non-empty choice", Raw: raw}
		}
		return Value{typ: t, s: raw}, nil
	case Path:
		p := unquote(raw)
		if p == "" {
			return Value{}, &Error{Expected: "non-empty path", Raw: raw}
		}
		return Value{typ: t, s: p}, nil
	default:
		return Value{}, &Error{Expected: "supported operand type", Raw: raw}
	}
}

// unquote strips one matching pair of surrounding single or double quotes.
// Script statements hand paths through verbatim, so `diff "/my/path"` must
// resolve to /my/path.
func unquote(raw string) string {
	if len(raw) >= 2 {
		if (strings.HasPrefix(raw, `"`) && strings.HasSuffix(raw, `"`)) ||
			(strings.HasPrefix(raw, `'`) && strings.HasSuffix(raw, `'`)) {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}

// Check is a validity predicate applied to a Value after type conversion.
// A failed check reports the same *Error shape as a failed parse.
type Check func(raw string, v Value) error

// Positive requires a numeric value strictly greater than zero.
func Positive() Check {
	return func(raw string, v Value) error {
		if v.Float() <= 0 {
			return &Error{Expected: fmt.Sprintf("%s greater than zero", v.Type()), Raw: raw}
		}
		return nil
	}
}

// InRange requires a numeric value within [lo, hi] inclusive.
func InRange(lo, hi float64) Check {
	return func(raw string, v Value) error {
		if v.Float() < lo || v.Float() > hi {
			return &Error{
				Expected: fmt.Sprintf("%s in [%v, %v]", v.Type(), lo, hi),
				Raw:      raw,
			}
		}
		return nil
	}
}

// IntOneOf requires the value to be one of an enumerated set of integers.
func IntOneOf(allowed ...int) Check {
	return func(raw string, v Value) error {
		for _, a := range allowed {
			if v.Float() == float64(a) {
				return nil
			}
		}
		return &Error{Expected: "one of " + joinInts(allowed), Raw: raw}
	}
}

// StringOneOf requires the value to be one of an enumerated set of strings.
func StringOneOf(allowed ...string) Check {
	return func(raw string, v Value) error {
		for _, a := range allowed {
			if v.Str() == a {
				return nil
			}
		}
		return &Error{Expected: "one of " + strings.Join(allowed, ", "), Raw: raw}
	}
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
