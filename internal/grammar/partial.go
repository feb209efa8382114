package grammar

import (
	"strings"

	"braces.dev/errtrace"
)

// Delimited returns a codec of value sequences joined by delim.
// The delimiter is additionally escaped inside every element,
// decoding splits on every raw delimiter, keeping empty elements.
func Delimited[T any](delim byte, child Codec[T]) Codec[[]T] {
	return delimited[T]{delim, child.Escaping(delim)}
}

type delimited[T any] struct {
	delim byte
	child Codec[T]
}

func (e delimited[T]) Encode(vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = e.child.Encode(v)
	}
	return strings.Join(parts, string(e.delim))
}

func (e delimited[T]) Decode(s string) ([]T, error) {
	parts := strings.Split(s, string(e.delim))
	vs := make([]T, len(parts))
	for i, p := range parts {
		v, err := e.child.Decode(p)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		vs[i] = v
	}
	return vs, nil
}

func (e delimited[T]) Escaping(c byte) Codec[[]T] {
	return delimited[T]{e.delim, e.child.Escaping(c)}
}

// Substituted returns an encoding that writes every orig character as repl.
// The replacement is additionally escaped by the child, so a raw repl always decodes to orig.
func Substituted(orig, repl byte, child Encoding) Encoding {
	return substituted{orig, repl, child.Escaping(repl)}
}

type substituted struct {
	orig, repl byte
	child      Encoding
}

func (e substituted) Encode(s string) string {
	parts := strings.Split(s, string(e.orig))
	for i, p := range parts {
		parts[i] = e.child.Encode(p)
	}
	return strings.Join(parts, string(e.repl))
}

func (e substituted) Decode(s string) (string, error) {
	parts := strings.Split(s, string(e.repl))
	for i, p := range parts {
		v, err := e.child.Decode(p)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		parts[i] = v
	}
	return strings.Join(parts, string(e.orig)), nil
}

func (e substituted) Escaping(c byte) Encoding {
	return substituted{e.orig, e.repl, e.child.Escaping(c)}
}

// Specified returns an encoding that escapes every byte of the literal value
// and defers any other value to the child.
func Specified(literal string, child Encoding) Encoding {
	return specified{literal, child}
}

type specified struct {
	literal string
	child   Encoding
}

func (e specified) Encode(s string) string {
	if s == e.literal {
		return EncodeEverything.Encode(s)
	}
	return e.child.Encode(s)
}

func (e specified) Decode(s string) (string, error) {
	return errtrace.Wrap2(e.child.Decode(s))
}

func (e specified) Escaping(c byte) Encoding {
	return specified{e.literal, e.child.Escaping(c)}
}

// Transform is an injective conversion between T and a string.
type Transform[T any] struct {
	To   func(v T) string
	From func(s string) (T, error)
}

// Transforming returns a codec of T values that converts them with tr
// and encodes the resulting strings with the child.
func Transforming[T any](child Encoding, tr Transform[T]) Codec[T] {
	return transforming[T]{child, tr}
}

type transforming[T any] struct {
	child Encoding
	tr    Transform[T]
}

func (e transforming[T]) Encode(v T) string { return e.child.Encode(e.tr.To(v)) }

func (e transforming[T]) Decode(s string) (T, error) {
	str, err := e.child.Decode(s)
	if err != nil {
		var zero T
		return zero, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(e.tr.From(str))
}

func (e transforming[T]) Escaping(c byte) Codec[T] {
	return transforming[T]{e.child.Escaping(c), e.tr}
}
