package uri

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/ioutil"
	"github.com/ghettovoice/urin/internal/util"
)

// Path is the hierarchical part of a reference: an ordered list of segments
// that is either absolute (starts with "/") or rootless.
// Dot segments are removed on construction, see RFC 3986 Section 5.2.4.
// The zero value is the empty rootless path.
type Path struct {
	abs  bool
	segs []Segment
}

// EmptyPath is the rootless path without segments.
var EmptyPath = Path{}

// AbsPath returns the normalized absolute path of the given segments.
// Dot segments that would climb above the root are dropped.
func AbsPath(segs ...Segment) Path {
	return Path{abs: true, segs: normalize(segs, true)}
}

// RootlessPath returns the normalized rootless path of the given segments.
// Leading ".." segments are kept.
func RootlessPath(segs ...Segment) Path {
	return Path{segs: normalize(segs, false)}
}

// AbsPathOf returns the absolute path of value segments, see [SegmentOf].
func AbsPathOf(vals ...string) Path { return AbsPath(segmentsOf(vals)...) }

// RootlessPathOf returns the rootless path of value segments, see [SegmentOf].
func RootlessPathOf(vals ...string) Path { return RootlessPath(segmentsOf(vals)...) }

func segmentsOf(vals []string) []Segment {
	segs := make([]Segment, len(vals))
	for i, v := range vals {
		segs[i] = SegmentOf(v)
	}
	return segs
}

// ParsePath parses the encoded path s.
// A path starting with "/" is absolute, any other path is rootless.
func ParsePath[T ~string | ~[]byte](s T) (Path, error) {
	str := string(s)
	if str == "" {
		return EmptyPath, nil
	}
	abs := str[0] == '/'
	if abs {
		str = str[1:]
	}
	segs, err := segmentsCodec.Decode(str)
	if err != nil {
		return Path{}, errtrace.Wrap(err)
	}
	if abs {
		return AbsPath(segs...), nil
	}
	return RootlessPath(segs...), nil
}

// normalize removes dot segments.
// A trailing dot segment leaves an empty last segment, so "a/b/.." becomes "a/".
func normalize(segs []Segment, abs bool) []Segment {
	out := make([]Segment, 0, len(segs))
	for i, s := range segs {
		last := i == len(segs)-1
		switch s.kind {
		case segDot:
			if !last {
				continue
			}
			if len(out) > 0 {
				out = append(out, Empty)
			} else if !abs {
				out = append(out, Dot)
			}
		case segDotDot:
			if n := len(out); n > 0 && out[n-1].kind != segDotDot {
				out = out[:n-1]
				if last {
					out = append(out, Empty)
				}
			} else if !abs {
				out = append(out, DotDot)
			}
		default:
			out = append(out, s)
		}
	}
	if abs && len(out) == 1 && out[0].kind == segEmpty {
		out = out[:0]
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// merge appends the segments of ref to all but the last segment of base.
func merge(base, ref Path, abs bool) Path {
	segs := make([]Segment, 0, len(base.segs)+len(ref.segs))
	if n := len(base.segs); n > 0 {
		segs = append(segs, base.segs[:n-1]...)
	}
	segs = append(segs, ref.segs...)
	if abs {
		return AbsPath(segs...)
	}
	return RootlessPath(segs...)
}

// IsAbsolute reports whether the path starts with "/".
func (p Path) IsAbsolute() bool { return p.abs }

// IsEmpty reports whether p is the rootless path without segments.
func (p Path) IsEmpty() bool { return !p.abs && len(p.segs) == 0 }

// Segments returns a copy of the path segments.
func (p Path) Segments() []Segment { return slices.Clone(p.segs) }

// renderTo writes the encoded path.
// A "./" prefix is added when the path would otherwise be read as an authority,
// or when its first segment would be read as a scheme in a relative reference.
func (p Path) renderTo(w io.Writer, hasAuthority, relative bool) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	var first string
	if len(p.segs) > 0 {
		first = segmentCodec{segmentEnc}.Encode(p.segs[0])
	}
	if p.abs {
		cw.WriteString("/")
		if len(p.segs) > 0 && p.segs[0].kind == segEmpty && !hasAuthority {
			cw.WriteString("./")
		}
	} else if len(p.segs) > 0 && (p.segs[0].kind == segEmpty || relative && strings.Contains(first, ":")) {
		cw.WriteString("./")
	}
	cw.WriteString(segmentsCodec.Encode(p.segs))
	return errtrace.Wrap2(cw.Result())
}

// RenderTo writes the encoded path as it appears in a relative reference without authority.
func (p Path) RenderTo(w io.Writer) (num int, err error) {
	return errtrace.Wrap2(p.renderTo(w, false, true))
}

// String returns the encoded path as it appears in a relative reference without authority.
func (p Path) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (p Path) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			p.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, p.String())
			return
		}

		type hideMethods Path
		type Path hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Path(p))
		return
	}
}

// Equal reports whether the path equals the provided value, accepting Path and *Path.
func (p Path) Equal(val any) bool {
	var other Path
	switch v := val.(type) {
	case Path:
		other = v
	case *Path:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return p.abs == other.abs && slices.Equal(p.segs, other.segs)
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Path) UnmarshalText(text []byte) error {
	p1, err := ParsePath(text)
	if err != nil {
		*p = Path{}
		return errtrace.Wrap(err)
	}
	*p = p1
	return nil
}
