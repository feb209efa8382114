package uri

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/grammar"
)

type segmentKind uint8

const (
	segEmpty segmentKind = iota
	segValue
	segDot
	segDotDot
)

// Segment is one "/"-separated part of a path.
// It is either a value, or one of the [Dot], [DotDot] and [Empty] markers.
// The zero value is [Empty].
type Segment struct {
	kind  segmentKind
	value string
}

var (
	// Empty is the segment without characters, e.g. between "//".
	Empty = Segment{kind: segEmpty}
	// Dot is the "." segment referring to the current hierarchy level.
	Dot = Segment{kind: segDot}
	// DotDot is the ".." segment referring to the parent hierarchy level.
	DotDot = Segment{kind: segDotDot}
)

// SegmentOf returns the segment holding the decoded value v.
// The values "." and ".." are ordinary values and are encoded as "%2E" and "%2E%2E",
// the navigation markers are [Dot] and [DotDot].
// Invalid UTF-8 in v is replaced with U+FFFD.
func SegmentOf(v string) Segment {
	if v == "" {
		return Empty
	}
	return Segment{kind: segValue, value: grammar.ValidUTF8(v)}
}

// SegmentFrom converts v to a segment with tr.
func SegmentFrom[T any](v T, tr Transform[T]) Segment { return SegmentOf(tr.To(v)) }

// SegmentAs converts the value of s back to T with tr.
func SegmentAs[T any](s Segment, tr Transform[T]) (T, error) {
	v, ok := s.Value()
	if !ok {
		var zero T
		return zero, errtrace.Wrap(NewInvalidArgumentError("segment %q has no value", s))
	}
	return errtrace.Wrap2(tr.From(v))
}

// ParseSegment decodes the encoded segment s.
func ParseSegment[T ~string | ~[]byte](s T) (Segment, error) {
	return errtrace.Wrap2(segmentCodec{segmentEnc}.Decode(string(s)))
}

// Value returns the decoded value of a value segment.
// The [Empty], [Dot] and [DotDot] markers have no value.
func (s Segment) Value() (string, bool) {
	if s.kind != segValue {
		return "", false
	}
	return s.value, true
}

// IsEmpty reports whether s is the [Empty] segment.
func (s Segment) IsEmpty() bool { return s.kind == segEmpty }

// IsDot reports whether s is the [Dot] marker.
func (s Segment) IsDot() bool { return s.kind == segDot }

// IsDotDot reports whether s is the [DotDot] marker.
func (s Segment) IsDotDot() bool { return s.kind == segDotDot }

// String returns the encoded segment.
func (s Segment) String() string { return segmentCodec{segmentEnc}.Encode(s) }

func (s Segment) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(s.String()))
	default:
		fmt.Fprint(f, s.String())
	}
}

// Equal reports whether the segment equals the provided value, accepting Segment and *Segment.
func (s Segment) Equal(val any) bool {
	switch v := val.(type) {
	case Segment:
		return s == v
	case *Segment:
		return v != nil && s == *v
	default:
		return false
	}
}

// Transform is an injective conversion between T and a decoded string.
// It is used by the typed helpers, e.g. [SegmentFrom] and [QueryAs].
type Transform[T any] = grammar.Transform[T]

var segmentEnc = grammar.Specified(".", grammar.Specified("..", grammar.Percent(grammar.PChar)))

// segmentCodec writes the dot markers raw and value segments percent-encoded.
type segmentCodec struct {
	enc grammar.Encoding
}

func (c segmentCodec) Encode(s Segment) string {
	switch s.kind {
	case segEmpty:
		return ""
	case segDot:
		return "."
	case segDotDot:
		return ".."
	default:
		return c.enc.Encode(s.value)
	}
}

func (c segmentCodec) Decode(s string) (Segment, error) {
	switch s {
	case "":
		return Empty, nil
	case ".":
		return Dot, nil
	case "..":
		return DotDot, nil
	}
	v, err := c.enc.Decode(s)
	if err != nil {
		return Segment{}, errtrace.Wrap(err)
	}
	return SegmentOf(v), nil
}

func (c segmentCodec) Escaping(b byte) grammar.Codec[Segment] {
	return segmentCodec{c.enc.Escaping(b)}
}

var segmentsCodec = grammar.Delimited[Segment]('/', segmentCodec{segmentEnc})
