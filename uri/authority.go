package uri

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/ioutil"
	"github.com/ghettovoice/urin/internal/util"
)

// Authority is the "[ userinfo "@" ] host [ ":" port ]" component of a reference.
// Authority values are comparable.
type Authority struct {
	userInfo    UserInfo
	hasUserInfo bool
	host        Host
	port        Port
	hasPort     bool
}

// NewAuthority returns an authority with the given host and neither user information nor port.
func NewAuthority(host Host) Authority { return Authority{host: host} }

// WithUserInfo returns a copy of the authority with the user information set.
func (a Authority) WithUserInfo(ui UserInfo) Authority {
	a.userInfo, a.hasUserInfo = ui, true
	return a
}

// WithoutUserInfo returns a copy of the authority without user information.
func (a Authority) WithoutUserInfo() Authority {
	a.userInfo, a.hasUserInfo = UserInfo{}, false
	return a
}

// WithPort returns a copy of the authority with the port set.
func (a Authority) WithPort(p Port) Authority {
	a.port, a.hasPort = p, true
	return a
}

// WithoutPort returns a copy of the authority without port.
func (a Authority) WithoutPort() Authority {
	a.port, a.hasPort = Port{}, false
	return a
}

// ParseAuthority parses the encoded authority s.
func ParseAuthority[T ~string | ~[]byte](s T) (Authority, error) {
	str := string(s)

	var a Authority
	if i := strings.LastIndexByte(str, '@'); i >= 0 {
		ui, err := ParseUserInfo(str[:i])
		if err != nil {
			return Authority{}, errtrace.Wrap(err)
		}
		a.userInfo, a.hasUserInfo = ui, true
		str = str[i+1:]
	}

	hostStr, portStr, hasPort, err := splitHostPort(str)
	if err != nil {
		return Authority{}, errtrace.Wrap(err)
	}
	if a.host, err = ParseHost(hostStr); err != nil {
		return Authority{}, errtrace.Wrap(err)
	}
	if hasPort {
		if a.port, err = ParsePort(portStr); err != nil {
			return Authority{}, errtrace.Wrap(err)
		}
		a.hasPort = true
	}
	return a, nil
}

func splitHostPort(s string) (host, port string, hasPort bool, err error) {
	if !strings.HasPrefix(s, "[") {
		host, port, hasPort = strings.Cut(s, ":")
		return host, port, hasPort, nil
	}
	i := strings.LastIndexByte(s, ']')
	if i < 0 {
		return "", "", false, errtrace.Wrap(newInvalidHostErr("unclosed IP literal [%s]", s))
	}
	host, rest := s[:i+1], s[i+1:]
	switch {
	case rest == "":
		return host, "", false, nil
	case rest[0] == ':':
		return host, rest[1:], true, nil
	default:
		return "", "", false, errtrace.Wrap(newMalformedInputErr("unexpected %q after IP literal in authority [%s]", rest, s))
	}
}

// UserInfo returns the user information, if present.
func (a Authority) UserInfo() (UserInfo, bool) { return a.userInfo, a.hasUserInfo }

// Host returns the host.
func (a Authority) Host() Host { return a.host }

// Port returns the port, if present.
func (a Authority) Port() (Port, bool) { return a.port, a.hasPort }

// normalize drops the port that equals the default port of the scheme.
func (a Authority) normalize(s Scheme) Authority {
	if dp, ok := s.DefaultPort(); ok && a.hasPort && a.port == dp {
		return a.WithoutPort()
	}
	return a
}

// RenderTo writes the encoded authority to w.
func (a Authority) RenderTo(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if a.hasUserInfo {
		cw.WriteString(a.userInfo.String())
		cw.WriteString("@")
	}
	cw.WriteString(a.host.String())
	if a.hasPort {
		cw.WriteString(":")
		cw.WriteString(a.port.String())
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the encoded authority.
func (a Authority) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	a.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

func (a Authority) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			a.RenderTo(f) //nolint:errcheck
			return
		}
		fmt.Fprint(f, a.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(a.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, a.String())
			return
		}

		type hideMethods Authority
		type Authority hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Authority(a))
		return
	}
}

// Equal reports whether the authority equals the provided value, accepting Authority and *Authority.
func (a Authority) Equal(val any) bool {
	switch v := val.(type) {
	case Authority:
		return a == v
	case *Authority:
		return v != nil && a == *v
	default:
		return false
	}
}

// IsValid reports whether the authority has a valid host.
func (a Authority) IsValid() bool { return a.host.IsValid() }

func (a Authority) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Authority) UnmarshalText(text []byte) error {
	a1, err := ParseAuthority(text)
	if err != nil {
		*a = Authority{}
		return errtrace.Wrap(err)
	}
	*a = a1
	return nil
}
