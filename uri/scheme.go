package uri

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/errorutil"
	"github.com/ghettovoice/urin/internal/grammar"
	"github.com/ghettovoice/urin/internal/util"
)

// Scheme is the lower-cased scheme name of a URI.
// A scheme may carry a default port that is dropped from authorities of its URIs.
type Scheme struct {
	name    string
	defPort Port
	hasDef  bool
}

var (
	HTTP  = MustSchemeWithDefaultPort("http", MustPort(80))
	HTTPS = MustSchemeWithDefaultPort("https", MustPort(443))
)

var knownSchemes = map[string]Scheme{
	HTTP.name:  HTTP,
	HTTPS.name: HTTPS,
}

// NewScheme returns the scheme with the given name.
// The name must start with a letter followed by letters, digits, "+", "-" or ".".
func NewScheme(name string) (Scheme, error) {
	if err := validateScheme(name); err != nil {
		return Scheme{}, errtrace.Wrap(NewInvalidArgumentError(err))
	}
	return Scheme{name: util.LCase(name)}, nil
}

// MustScheme is like [NewScheme] but panics on error.
func MustScheme(name string) Scheme { return util.Must2(NewScheme(name)) }

// NewSchemeWithDefaultPort returns the scheme with the given name and default port.
func NewSchemeWithDefaultPort(name string, port Port) (Scheme, error) {
	s, err := NewScheme(name)
	if err != nil {
		return Scheme{}, errtrace.Wrap(err)
	}
	s.defPort, s.hasDef = port, true
	return s, nil
}

// MustSchemeWithDefaultPort is like [NewSchemeWithDefaultPort] but panics on error.
func MustSchemeWithDefaultPort(name string, port Port) Scheme {
	return util.Must2(NewSchemeWithDefaultPort(name, port))
}

// ParseScheme parses a scheme name.
// Names of the predefined schemes get their default ports.
func ParseScheme[T ~string | ~[]byte](s T) (Scheme, error) {
	str := string(s)
	if err := validateScheme(str); err != nil {
		return Scheme{}, errtrace.Wrap(err)
	}
	name := util.LCase(str)
	if known, ok := knownSchemes[name]; ok {
		return known, nil
	}
	return Scheme{name: name}, nil
}

func validateScheme(s string) error {
	if s == "" {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, "scheme must contain at least one character"))
	}
	if !grammar.Alpha.Contains(s[0]) {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme,
			fmt.Sprintf("character 1 must be %s in scheme [%s]", grammar.Alpha, s)))
	}
	if err := grammar.SchemeTail.Verify(s[1:], "scheme"); err != nil {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidScheme, err))
	}
	return nil
}

// Name returns the lower-cased scheme name.
func (s Scheme) Name() string { return s.name }

// DefaultPort returns the default port of the scheme.
func (s Scheme) DefaultPort() (Port, bool) { return s.defPort, s.hasDef }

// URI returns a URI of this scheme, see [NewURI].
func (s Scheme) URI(parts *Parts) *URI { return NewURI(s, parts) }

func (s Scheme) String() string { return s.name }

func (s Scheme) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(s.name))
	default:
		fmt.Fprint(f, s.name)
	}
}

// Equal reports whether the scheme equals the provided value, accepting Scheme and *Scheme.
// Schemes are compared by name and default port.
func (s Scheme) Equal(val any) bool {
	switch v := val.(type) {
	case Scheme:
		return s == v
	case *Scheme:
		return v != nil && s == *v
	default:
		return false
	}
}

// IsValid reports whether the scheme has a valid name.
func (s Scheme) IsValid() bool { return validateScheme(s.name) == nil }

// IsZero reports whether the scheme is the zero value.
func (s Scheme) IsZero() bool { return s == Scheme{} }

func (s Scheme) MarshalText() ([]byte, error) {
	return []byte(s.name), nil
}

func (s *Scheme) UnmarshalText(text []byte) error {
	s1, err := ParseScheme(text)
	if err != nil {
		*s = Scheme{}
		return errtrace.Wrap(err)
	}
	*s = s1
	return nil
}
