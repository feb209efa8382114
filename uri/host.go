package uri

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/urin/internal/errorutil"
	"github.com/ghettovoice/urin/internal/grammar"
	"github.com/ghettovoice/urin/internal/util"
)

// HostKind is the address form of a [Host].
type HostKind uint8

const (
	// HostRegName is a registered name, e.g. "www.example.com".
	HostRegName HostKind = iota
	// HostIPv4 is a dotted-decimal IPv4 address.
	HostIPv4
	// HostIPv6 is a bracketed IPv6 address of eight hexadectets.
	HostIPv6
	// HostIPv6v4 is a bracketed IPv6 address of six hexadectets followed by an IPv4 address.
	HostIPv6v4
	// HostIPvFuture is a bracketed "vX.addr" literal.
	HostIPvFuture
)

func (k HostKind) String() string {
	switch k {
	case HostRegName:
		return "reg-name"
	case HostIPv4:
		return "IPv4"
	case HostIPv6:
		return "IPv6"
	case HostIPv6v4:
		return "IPv6v4"
	case HostIPvFuture:
		return "IPvFuture"
	default:
		return "HostKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Host is the host of an authority.
// Host values are comparable, two hosts are equal when == holds.
// The zero value is the empty registered name.
type Host struct {
	kind    HostKind
	name    string
	version string
	v4      [4]Octet
	v6      [8]Hexadectet
}

var (
	LocalHost       = RegName("localhost")
	LoopbackIPv4    = IPv4(127, 0, 0, 1)
	LoopbackIPv6    = IPv6(0, 0, 0, 0, 0, 0, 0, 1)
	UnspecifiedIPv6 = IPv6(0, 0, 0, 0, 0, 0, 0, 0)
)

// RegName returns a registered name host, lower-cased.
// A name in the dotted-decimal IPv4 form is returned as an IPv4 host.
func RegName(name string) Host {
	if h, ok := parseIPv4(name); ok {
		return h
	}
	return Host{kind: HostRegName, name: util.LCase(name)}
}

// IPv4 returns an IPv4 address host.
func IPv4(o1, o2, o3, o4 Octet) Host {
	return Host{kind: HostIPv4, v4: [4]Octet{o1, o2, o3, o4}}
}

// IPv6 returns an IPv6 address host.
func IPv6(h1, h2, h3, h4, h5, h6, h7, h8 Hexadectet) Host {
	return Host{kind: HostIPv6, v6: [8]Hexadectet{h1, h2, h3, h4, h5, h6, h7, h8}}
}

// IPv6WithV4 returns an IPv6 address host whose last 32 bits are written in the IPv4 form.
func IPv6WithV4(h1, h2, h3, h4, h5, h6 Hexadectet, o1, o2, o3, o4 Octet) Host {
	return Host{
		kind: HostIPv6v4,
		v6:   [8]Hexadectet{h1, h2, h3, h4, h5, h6},
		v4:   [4]Octet{o1, o2, o3, o4},
	}
}

// IPvFuture returns an IPvFuture literal host.
// The version must be one or more hex digits and the address one or more
// unreserved, sub-delims or ":" characters. Both are lower-cased.
func IPvFuture(version, address string) (Host, error) {
	if err := validateIPvFuture(version, address); err != nil {
		return Host{}, errtrace.Wrap(NewInvalidArgumentError(err))
	}
	return Host{kind: HostIPvFuture, version: util.LCase(version), name: util.LCase(address)}, nil
}

// MustIPvFuture is like [IPvFuture] but panics on error.
func MustIPvFuture(version, address string) Host { return util.Must2(IPvFuture(version, address)) }

func validateIPvFuture(version, address string) error {
	if version == "" {
		return errtrace.Wrap(newInvalidHostErr("IPvFuture version must contain at least one character"))
	}
	if err := grammar.HexDigit.Verify(version, "IPvFuture version"); err != nil {
		return errtrace.Wrap(err)
	}
	if address == "" {
		return errtrace.Wrap(newInvalidHostErr("IPvFuture address must contain at least one character"))
	}
	return errtrace.Wrap(grammar.IPvFuture.Verify(address, "IPvFuture address"))
}

// HostFromAddr converts an IP address to a host.
// IPv4-mapped IPv6 addresses keep the trailing IPv4 form.
// Zoned addresses are rejected since URIs have no zone syntax.
func HostFromAddr(addr netip.Addr) (Host, error) {
	switch {
	case !addr.IsValid():
		return Host{}, errtrace.Wrap(NewInvalidArgumentError("invalid IP address"))
	case addr.Zone() != "":
		return Host{}, errtrace.Wrap(NewInvalidArgumentError("IP address zone is not supported [%s]", addr))
	case addr.Is4():
		b := addr.As4()
		return IPv4(Octet(b[0]), Octet(b[1]), Octet(b[2]), Octet(b[3])), nil
	}

	b := addr.As16()
	var hs [8]Hexadectet
	for i := range hs {
		hs[i] = Hexadectet(b[2*i])<<8 | Hexadectet(b[2*i+1])
	}
	if addr.Is4In6() {
		return IPv6WithV4(hs[0], hs[1], hs[2], hs[3], hs[4], hs[5],
			Octet(b[12]), Octet(b[13]), Octet(b[14]), Octet(b[15])), nil
	}
	return Host{kind: HostIPv6, v6: hs}, nil
}

// ParseHost parses the encoded host of an authority.
// Address forms are tried in order: IPv4, IPv6, IPv6 with trailing IPv4,
// IPvFuture and finally the percent-encoded registered name.
func ParseHost[T ~string | ~[]byte](s T) (Host, error) {
	str := string(s)
	if h, ok := parseIPv4(str); ok {
		return h, nil
	}
	if strings.HasPrefix(str, "[") && strings.HasSuffix(str, "]") && len(str) > 1 {
		lit := str[1 : len(str)-1]
		if hs, ok := parseHexadectets(lit, 8); ok {
			h := Host{kind: HostIPv6}
			copy(h.v6[:], hs)
			return h, nil
		}
		if h, ok := parseIPv6WithV4(lit); ok {
			return h, nil
		}
		if h, ok, err := parseIPvFuture(lit); ok {
			if err != nil {
				return Host{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, err))
			}
			return h, nil
		}
		return Host{}, errtrace.Wrap(newInvalidHostErr("invalid IP literal %q", str))
	}

	name, err := grammar.Percent(grammar.RegName).Decode(str)
	if err != nil {
		return Host{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost, err))
	}
	return RegName(name), nil
}

func parseIPv4(s string) (Host, bool) {
	var h Host
	for i := range h.v4 {
		if i > 0 {
			if s == "" || s[0] != '.' {
				return Host{}, false
			}
			s = s[1:]
		}
		n := 0
		for n < len(s) && n < 4 && '0' <= s[n] && s[n] <= '9' {
			n++
		}
		if n == 0 || n > 3 || (n > 1 && s[0] == '0') {
			return Host{}, false
		}
		v, _ := strconv.Atoi(s[:n])
		if v > 0xFF {
			return Host{}, false
		}
		h.v4[i] = Octet(v)
		s = s[n:]
	}
	if s != "" {
		return Host{}, false
	}
	h.kind = HostIPv4
	return h, true
}

// parseHexadectets parses exactly n colon-separated hexadectets,
// expanding a single "::" to the missing zero hexadectets.
func parseHexadectets(s string, n int) ([]Hexadectet, bool) {
	head, tail, elided := strings.Cut(s, "::")
	if !elided {
		hs, ok := splitHexadectets(s)
		return hs, ok && len(hs) == n
	}

	hh, ok := splitHexadectets(head)
	if !ok {
		return nil, false
	}
	th, ok := splitHexadectets(tail)
	if !ok || len(hh)+len(th) > n-1 {
		return nil, false
	}
	hs := make([]Hexadectet, n)
	copy(hs, hh)
	copy(hs[n-len(th):], th)
	return hs, true
}

func splitHexadectets(s string) ([]Hexadectet, bool) {
	if s == "" {
		return nil, true
	}
	parts := strings.Split(s, ":")
	hs := make([]Hexadectet, len(parts))
	for i, p := range parts {
		if p == "" || len(p) > 4 || !grammar.HexDigit.ContainsAll(p) {
			return nil, false
		}
		v, _ := strconv.ParseUint(p, 16, 16)
		hs[i] = Hexadectet(v)
	}
	return hs, true
}

func parseIPv6WithV4(s string) (Host, bool) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return Host{}, false
	}
	v4, ok := parseIPv4(s[i+1:])
	if !ok {
		return Host{}, false
	}
	head := s[:i]
	if i > 0 && s[i-1] == ':' {
		head = s[:i+1]
	}
	hs, ok := parseHexadectets(head, 6)
	if !ok {
		return Host{}, false
	}
	h := Host{kind: HostIPv6v4, v4: v4.v4}
	copy(h.v6[:], hs)
	return h, true
}

// parseIPvFuture reports ok when s has the "v" version prefix,
// a non-nil error means the literal is an IPvFuture with invalid parts.
func parseIPvFuture(s string) (Host, bool, error) {
	if s == "" || (s[0] != 'v' && s[0] != 'V') {
		return Host{}, false, nil
	}
	version, address, found := strings.Cut(s[1:], ".")
	if !found {
		return Host{}, true, errtrace.Wrap(newMalformedInputErr("IPvFuture literal must contain \".\" [%s]", s))
	}
	if err := validateIPvFuture(version, address); err != nil {
		return Host{}, true, errtrace.Wrap(err)
	}
	return Host{kind: HostIPvFuture, version: util.LCase(version), name: util.LCase(address)}, true, nil
}

// Kind returns the address form of the host.
func (h Host) Kind() HostKind { return h.kind }

// Name returns the decoded registered name.
func (h Host) Name() (string, bool) { return h.name, h.kind == HostRegName }

// Octets returns the IPv4 address, or the trailing IPv4 part of the IPv6v4 form.
func (h Host) Octets() ([4]Octet, bool) {
	return h.v4, h.kind == HostIPv4 || h.kind == HostIPv6v4
}

// Hexadectets returns the eight hexadectets of the IPv6 form or the six of the IPv6v4 form.
func (h Host) Hexadectets() ([]Hexadectet, bool) {
	switch h.kind {
	case HostIPv6:
		return h.v6[:], true
	case HostIPv6v4:
		return h.v6[:6], true
	default:
		return nil, false
	}
}

// Future returns the version and the address of the IPvFuture form.
func (h Host) Future() (version, address string, ok bool) {
	return h.version, h.name, h.kind == HostIPvFuture
}

// Addr converts IPv4 and IPv6 hosts to [netip.Addr].
func (h Host) Addr() (netip.Addr, bool) {
	switch h.kind {
	case HostIPv4:
		return netip.AddrFrom4([4]byte{byte(h.v4[0]), byte(h.v4[1]), byte(h.v4[2]), byte(h.v4[3])}), true
	case HostIPv6, HostIPv6v4:
		var b [16]byte
		for i, x := range h.v6 {
			b[2*i], b[2*i+1] = byte(x>>8), byte(x)
		}
		if h.kind == HostIPv6v4 {
			for i, o := range h.v4 {
				b[12+i] = byte(o)
			}
		}
		return netip.AddrFrom16(b), true
	default:
		return netip.Addr{}, false
	}
}

// IsDomainName reports whether the host is a registered name that is also
// a syntactically valid DNS name. No lookup is performed.
func (h Host) IsDomainName() bool {
	if h.kind != HostRegName || h.name == "" {
		return false
	}
	_, ok := dns.IsDomainName(h.name)
	return ok
}

// String returns the encoded host, IP literals are enclosed in brackets.
func (h Host) String() string {
	switch h.kind {
	case HostIPv4:
		return renderIPv4(h.v4)
	case HostIPv6:
		return "[" + elide(h.v6[:]) + "]"
	case HostIPv6v4:
		s := elide(h.v6[:6])
		if !strings.HasSuffix(s, "::") {
			s += ":"
		}
		return "[" + s + renderIPv4(h.v4) + "]"
	case HostIPvFuture:
		return "[v" + h.version + "." + h.name + "]"
	default:
		return grammar.Percent(grammar.RegName).Encode(h.name)
	}
}

func renderIPv4(os [4]Octet) string {
	return os[0].String() + "." + os[1].String() + "." + os[2].String() + "." + os[3].String()
}

// elide joins hexadectets with ":" replacing the first longest run
// of at least two zero hexadectets with "::".
func elide(hs []Hexadectet) string {
	start, size := -1, 1
	for i := 0; i < len(hs); {
		if !hs[i].IsElidable() {
			i++
			continue
		}
		j := i
		for j < len(hs) && hs[j].IsElidable() {
			j++
		}
		if j-i > size {
			start, size = i, j-i
		}
		i = j
	}
	if start < 0 {
		return joinHexadectets(hs)
	}
	return joinHexadectets(hs[:start]) + "::" + joinHexadectets(hs[start+size:])
}

func joinHexadectets(hs []Hexadectet) string {
	parts := make([]string, len(hs))
	for i, h := range hs {
		parts[i] = h.String()
	}
	return strings.Join(parts, ":")
}

func (h Host) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, h.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(h.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, h.String())
			return
		}

		type hideMethods Host
		type Host hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Host(h))
		return
	}
}

// Equal reports whether the host equals the provided value, accepting Host and *Host.
func (h Host) Equal(val any) bool {
	switch v := val.(type) {
	case Host:
		return h == v
	case *Host:
		return v != nil && h == *v
	default:
		return false
	}
}

// IsValid reports whether the host holds a consistent address.
func (h Host) IsValid() bool {
	switch h.kind {
	case HostRegName, HostIPv4, HostIPv6, HostIPv6v4:
		return true
	case HostIPvFuture:
		return validateIPvFuture(h.version, h.name) == nil
	default:
		return false
	}
}

func (h Host) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Host) UnmarshalText(text []byte) error {
	h1, err := ParseHost(text)
	if err != nil {
		*h = Host{}
		return errtrace.Wrap(err)
	}
	*h = h1
	return nil
}
