package uri

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/constraints"
	"github.com/ghettovoice/urin/internal/grammar"
	"github.com/ghettovoice/urin/internal/ioutil"
	"github.com/ghettovoice/urin/internal/util"
)

// Reference is either a [*URI] or a [*RelativeRef].
type Reference interface {
	// Authority returns the authority, if present.
	Authority() (Authority, bool)
	// Path returns the path, it is [EmptyPath] when the reference has none.
	Path() Path
	// Query returns the query, if present.
	Query() (Query, bool)
	// Fragment returns the fragment, if present.
	Fragment() (Fragment, bool)
	// RenderTo writes the encoded reference to w.
	RenderTo(w io.Writer) (int, error)
	// String returns the encoded reference.
	String() string

	isReference()
}

// Parts holds the optional components of a reference.
// Nil fields are absent components, the zero Path is the empty path.
type Parts struct {
	Authority *Authority
	Path      Path
	Query     *Query
	Fragment  *Fragment
}

// parts is the common body of URI and RelativeRef.
type parts struct {
	auth     Authority
	hasAuth  bool
	path     Path
	query    Query
	hasQuery bool
	frag     Fragment
	hasFrag  bool
}

func newParts(p *Parts) parts {
	if p == nil {
		return parts{}
	}
	var ps parts
	if p.Authority != nil {
		ps.auth, ps.hasAuth = *p.Authority, true
	}
	if p.Query != nil {
		ps.query, ps.hasQuery = *p.Query, true
	}
	if p.Fragment != nil {
		ps.frag, ps.hasFrag = *p.Fragment, true
	}
	return ps.withPath(p.Path)
}

func (ps parts) withPath(p Path) parts {
	ps.path = p
	// a path following an authority is either empty or absolute
	if ps.hasAuth && !p.abs && len(p.segs) > 0 {
		ps.path = AbsPath(p.segs...)
	}
	return ps
}

func (ps *parts) Authority() (Authority, bool) { return ps.auth, ps.hasAuth }

func (ps *parts) Path() Path { return ps.path }

func (ps *parts) Query() (Query, bool) { return ps.query, ps.hasQuery }

func (ps *parts) Fragment() (Fragment, bool) { return ps.frag, ps.hasFrag }

func (ps *parts) renderTo(cw *ioutil.CountingWriter, relative bool) {
	if ps.hasAuth {
		cw.WriteString("//")
		cw.Call(ps.auth.RenderTo)
	}
	cw.Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(ps.path.renderTo(w, ps.hasAuth, relative))
	})
	if ps.hasQuery {
		cw.WriteString("?")
		cw.WriteString(ps.query.enc)
	}
	if ps.hasFrag {
		cw.WriteString("#")
		cw.WriteString(ps.frag.enc)
	}
}

func (ps *parts) equal(other *parts) bool {
	return ps.hasAuth == other.hasAuth && ps.auth == other.auth &&
		ps.path.Equal(other.path) &&
		ps.hasQuery == other.hasQuery && ps.query == other.query &&
		ps.hasFrag == other.hasFrag && ps.frag == other.frag
}

func (ps *parts) isValid() bool { return !ps.hasAuth || ps.auth.IsValid() }

// URI is an RFC 3986 URI: a scheme followed by the optional authority,
// the path, the optional query and the optional fragment.
type URI struct {
	scheme Scheme
	parts
}

// NewURI returns the URI of the given scheme and parts.
// A rootless path following an authority becomes absolute,
// the port equal to the default port of the scheme is dropped.
func NewURI(scheme Scheme, p *Parts) *URI {
	u := &URI{scheme: scheme, parts: newParts(p)}
	if u.hasAuth {
		u.auth = u.auth.normalize(scheme)
	}
	return u
}

// ParseURI parses the URI s.
func ParseURI[T constraints.Byteseq](s T) (*URI, error) {
	node, err := grammar.ParseURI(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	c := grammar.Split(node)
	scheme, err := ParseScheme(c.Scheme)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	p, err := buildParts(c)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return NewURI(scheme, p), nil
}

// Scheme returns the scheme of the URI.
func (u *URI) Scheme() Scheme { return u.scheme }

// WithPath returns a copy of the URI with the path replaced by p.
// A rootless path becomes absolute when the URI has an authority.
func (u *URI) WithPath(p Path) *URI {
	return &URI{scheme: u.scheme, parts: u.parts.withPath(p)}
}

func (*URI) isReference() {}

// RenderTo writes the encoded URI to w.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(u.scheme.name)
	cw.WriteString(":")
	u.renderTo(cw, false)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the encoded URI.
func (u *URI) Render() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the encoded URI.
func (u *URI) String() string {
	if u == nil {
		return "<nil>"
	}
	return u.Render()
}

func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Equal reports whether the URI equals the provided value, accepting URI and *URI.
// URIs are compared by their normalized components.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.scheme == other.scheme && u.parts.equal(&other.parts)
}

// IsValid reports whether the URI has a valid scheme and authority.
func (u *URI) IsValid() bool { return u != nil && u.scheme.IsValid() && u.isValid() }

func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}
	return slog.StringValue(u.String())
}

func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.Render()), nil
}

func (u *URI) UnmarshalText(text []byte) error {
	u1, err := ParseURI(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = *u1
	return nil
}

// RelativeRef is an RFC 3986 relative reference: a URI without scheme.
type RelativeRef struct {
	parts
}

// NewRelativeRef returns the relative reference of the given parts.
// A rootless path following an authority becomes absolute.
func NewRelativeRef(p *Parts) *RelativeRef {
	return &RelativeRef{newParts(p)}
}

// ParseRelativeRef parses the relative reference s.
// The empty string is the relative reference with the empty path.
func ParseRelativeRef[T constraints.Byteseq](s T) (*RelativeRef, error) {
	if len(s) == 0 {
		return &RelativeRef{}, nil
	}
	node, err := grammar.ParseRelativeRef(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	c := grammar.Split(node)
	if !c.HasAuthority && !strings.HasPrefix(c.Path, "/") {
		if first, _, _ := strings.Cut(c.Path, "/"); strings.Contains(first, ":") {
			return nil, errtrace.Wrap(newMalformedInputErr(
				"first segment of a relative path must not contain \":\" [%s]", string(s),
			))
		}
	}
	p, err := buildParts(c)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return NewRelativeRef(p), nil
}

func (*RelativeRef) isReference() {}

// WithPath returns a copy of the relative reference with the path replaced by p.
// A rootless path becomes absolute when the reference has an authority.
func (r *RelativeRef) WithPath(p Path) *RelativeRef {
	return &RelativeRef{r.parts.withPath(p)}
}

// RenderTo writes the encoded relative reference to w.
func (r *RelativeRef) RenderTo(w io.Writer) (num int, err error) {
	if r == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	r.renderTo(cw, true)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the encoded relative reference.
func (r *RelativeRef) Render() string {
	if r == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	r.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the encoded relative reference.
func (r *RelativeRef) String() string {
	if r == nil {
		return "<nil>"
	}
	return r.Render()
}

func (r *RelativeRef) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			r.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, r.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(r.String()))
		return
	default:
		type hideMethods RelativeRef
		type RelativeRef hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*RelativeRef)(r))
		return
	}
}

// Equal reports whether the relative reference equals the provided value,
// accepting RelativeRef and *RelativeRef.
func (r *RelativeRef) Equal(val any) bool {
	var other *RelativeRef
	switch v := val.(type) {
	case RelativeRef:
		other = &v
	case *RelativeRef:
		other = v
	default:
		return false
	}

	if r == other {
		return true
	} else if r == nil || other == nil {
		return false
	}
	return r.parts.equal(&other.parts)
}

// IsValid reports whether the relative reference has a valid authority.
func (r *RelativeRef) IsValid() bool { return r != nil && r.isValid() }

func (r *RelativeRef) LogValue() slog.Value {
	if r == nil {
		return slog.Value{}
	}
	return slog.StringValue(r.String())
}

func (r *RelativeRef) MarshalText() ([]byte, error) {
	return []byte(r.Render()), nil
}

func (r *RelativeRef) UnmarshalText(text []byte) error {
	r1, err := ParseRelativeRef(text)
	if err != nil {
		*r = RelativeRef{}
		return errtrace.Wrap(err)
	}
	*r = *r1
	return nil
}

// ParseReference parses s as a URI when it starts with a scheme,
// and as a relative reference otherwise.
func ParseReference[T constraints.Byteseq](s T) (Reference, error) {
	if _, err := grammar.ParseURI(s); err == nil {
		u, err := ParseURI(s)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return u, nil
	}
	r, err := ParseRelativeRef(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return r, nil
}

func buildParts(c grammar.Components) (*Parts, error) {
	var p Parts
	if c.HasAuthority {
		a, err := ParseAuthority(c.Authority)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		p.Authority = &a
	}

	var err error
	if p.Path, err = ParsePath(c.Path); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if c.HasQuery {
		q, err := ParseQuery(c.Query)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		p.Query = &q
	}
	if c.HasFragment {
		f, err := ParseFragment(c.Fragment)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		p.Fragment = &f
	}
	return &p, nil
}
