package uri_test

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urin/internal/errorutil"
	"github.com/ghettovoice/urin/uri"
)

func TestParseHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		wantKind uri.HostKind
		wantStr  string
	}{
		{"empty", "", uri.HostRegName, ""},
		{"reg-name", "www.Example.COM", uri.HostRegName, "www.example.com"},
		{"reg-name escaped", "ex%41mple", uri.HostRegName, "example"},
		{"reg-name escaped space", "a%20b", uri.HostRegName, "a%20b"},
		{"reg-name sub-delims", "a!b$c", uri.HostRegName, "a!b$c"},
		{"ipv4", "127.0.0.1", uri.HostIPv4, "127.0.0.1"},
		{"ipv4 escaped", "%31%32%37.0.0.1", uri.HostIPv4, "127.0.0.1"},
		{"ipv4 out of range", "256.0.0.1", uri.HostRegName, "256.0.0.1"},
		{"ipv4 leading zero", "01.2.3.4", uri.HostRegName, "01.2.3.4"},
		{"ipv4 three parts", "1.2.3", uri.HostRegName, "1.2.3"},
		{"ipv6 loopback", "[::1]", uri.HostIPv6, "[::1]"},
		{"ipv6 unspecified", "[::]", uri.HostIPv6, "[::]"},
		{"ipv6 full", "[2001:DB8:0:0:0:0:0:1]", uri.HostIPv6, "[2001:db8::1]"},
		{"ipv6 leading zeros", "[2001:0db8::0001]", uri.HostIPv6, "[2001:db8::1]"},
		{"ipv6 trailing elision", "[1::]", uri.HostIPv6, "[1::]"},
		{"ipv6 longest run", "[1:0:0:2:0:0:0:3]", uri.HostIPv6, "[1:0:0:2::3]"},
		{"ipv6 first run on tie", "[1:0:0:2:0:0:3:4]", uri.HostIPv6, "[1::2:0:0:3:4]"},
		{"ipv6 no run", "[1:0:2:0:3:0:4:0]", uri.HostIPv6, "[1:0:2:0:3:0:4:0]"},
		{"ipv6 single zero elided", "[1:2:3:4:5:6:7::]", uri.HostIPv6, "[1:2:3:4:5:6:7:0]"},
		{"ipv6v4 mapped", "[::FFFF:192.0.2.1]", uri.HostIPv6v4, "[::ffff:192.0.2.1]"},
		{"ipv6v4 zeros", "[::1.2.3.4]", uri.HostIPv6v4, "[::1.2.3.4]"},
		{"ipv6v4 full", "[1:2:3:4:5:6:1.2.3.4]", uri.HostIPv6v4, "[1:2:3:4:5:6:1.2.3.4]"},
		{"ipv6v4 head elision", "[1::1.2.3.4]", uri.HostIPv6v4, "[1::1.2.3.4]"},
		{"ipvfuture", "[v1F.Some:Thing]", uri.HostIPvFuture, "[v1f.some:thing]"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ParseHost(c.in)
			if err != nil {
				t.Fatalf("uri.ParseHost(%q) error = %v, want nil", c.in, err)
			}
			if got.Kind() != c.wantKind {
				t.Errorf("uri.ParseHost(%q).Kind() = %v, want %v", c.in, got.Kind(), c.wantKind)
			}
			if got.String() != c.wantStr {
				t.Errorf("uri.ParseHost(%q).String() = %q, want %q", c.in, got.String(), c.wantStr)
			}

			again, err := uri.ParseHost(got.String())
			if err != nil {
				t.Fatalf("uri.ParseHost(%q) error = %v, want nil", got.String(), err)
			}
			if diff := cmp.Diff(again, got); diff != "" {
				t.Errorf("re-parsed host mismatch (-got +want):\n%v", diff)
			}
		})
	}
}

func TestParseHost_Error(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"two elisions", "[1::2::3]", uri.ErrInvalidHost},
		{"too many hexadectets", "[1:2:3:4:5:6:7:8:9]", uri.ErrInvalidHost},
		{"too few hexadectets", "[1:2:3:4:5:6:7]", uri.ErrInvalidHost},
		{"long hexadectet", "[12345::]", uri.ErrInvalidHost},
		{"empty literal", "[]", uri.ErrInvalidHost},
		{"ipvfuture without version", "[v.x]", uri.ErrInvalidHost},
		{"ipvfuture bad version", "[vz.x]", uri.ErrInvalidChar},
		{"ipvfuture without dot", "[v1]", uri.ErrMalformedInput},
		{"ipvfuture bad address", "[v1.a/b]", uri.ErrInvalidChar},
		{"unclosed literal", "[::1", uri.ErrInvalidChar},
		{"space", "exa mple", uri.ErrInvalidChar},
		{"bad escape", "ex%zzample", uri.ErrMalformedEscape},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ParseHost(c.in)
			if !errors.Is(err, uri.ErrInvalidHost) || !errors.Is(err, c.wantErr) {
				t.Fatalf("uri.ParseHost(%q) error = %v, want %v", c.in, err, c.wantErr)
			}
			if !errorutil.IsGrammarErr(err) {
				t.Errorf("errorutil.IsGrammarErr(%v) = false, want true", err)
			}
			if got != (uri.Host{}) {
				t.Errorf("uri.ParseHost(%q) = %+v, want zero host", c.in, got)
			}
		})
	}
}

func TestHost_Constructors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		host uri.Host
		want string
	}{
		{"reg-name lower-cased", uri.RegName("WWW.Example.com"), "www.example.com"},
		{"reg-name encoded", uri.RegName("a b/c"), "a%20b%2Fc"},
		{"localhost", uri.LocalHost, "localhost"},
		{"ipv4", uri.IPv4(192, 168, 0, 1), "192.168.0.1"},
		{"loopback ipv4", uri.LoopbackIPv4, "127.0.0.1"},
		{"loopback ipv6", uri.LoopbackIPv6, "[::1]"},
		{"unspecified ipv6", uri.UnspecifiedIPv6, "[::]"},
		{"ipv6", uri.IPv6(0x2001, 0xdb8, 0, 0, 0, 0, 0, 1), "[2001:db8::1]"},
		{"ipv6 no elision", uri.IPv6(1, 2, 3, 4, 5, 6, 7, 8), "[1:2:3:4:5:6:7:8]"},
		{"ipv6 single zero", uri.IPv6(1, 0, 3, 4, 5, 6, 7, 8), "[1:0:3:4:5:6:7:8]"},
		{"ipv6v4", uri.IPv6WithV4(0, 0, 0, 0, 0, 0xffff, 10, 0, 0, 1), "[::ffff:10.0.0.1]"},
		{"ipv6v4 no elision", uri.IPv6WithV4(1, 2, 3, 4, 5, 6, 10, 0, 0, 1), "[1:2:3:4:5:6:10.0.0.1]"},
		{"ipv6v4 all zeros", uri.IPv6WithV4(0, 0, 0, 0, 0, 0, 10, 0, 0, 1), "[::10.0.0.1]"},
		{"ipvfuture", uri.MustIPvFuture("A", "Addr"), "[va.addr]"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.host.String(); got != c.want {
				t.Errorf("host.String() = %q, want %q", got, c.want)
			}
			if !c.host.IsValid() {
				t.Errorf("host.IsValid() = false, want true")
			}
		})
	}
}

func TestRegName_IPv4(t *testing.T) {
	t.Parallel()

	h := uri.RegName("192.168.0.1")
	if h.Kind() != uri.HostIPv4 {
		t.Errorf("uri.RegName(\"192.168.0.1\").Kind() = %v, want %v", h.Kind(), uri.HostIPv4)
	}
	if want := uri.IPv4(192, 168, 0, 1); !h.Equal(want) {
		t.Errorf("uri.RegName(\"192.168.0.1\") = %v, want %v", h, want)
	}
	if _, ok := h.Name(); ok {
		t.Errorf("h.Name() ok = true, want false")
	}
}

func TestIPvFuture_Error(t *testing.T) {
	t.Parallel()

	cases := []struct {
		version, address string
	}{
		{"", "addr"},
		{"x", "addr"},
		{"1", ""},
		{"1", "a/b"},
	}

	for _, c := range cases {
		if _, err := uri.IPvFuture(c.version, c.address); !errors.Is(err, uri.ErrInvalidArgument) {
			t.Errorf("uri.IPvFuture(%q, %q) error = %v, want %v", c.version, c.address, err, uri.ErrInvalidArgument)
		}
	}
}

func TestHostFromAddr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		addr     string
		wantKind uri.HostKind
		wantStr  string
	}{
		{"10.0.0.1", uri.HostIPv4, "10.0.0.1"},
		{"2001:db8::1", uri.HostIPv6, "[2001:db8::1]"},
		{"::", uri.HostIPv6, "[::]"},
		{"::ffff:1.2.3.4", uri.HostIPv6v4, "[::ffff:1.2.3.4]"},
	}

	for _, c := range cases {
		t.Run(c.addr, func(t *testing.T) {
			t.Parallel()

			addr := netip.MustParseAddr(c.addr)
			h, err := uri.HostFromAddr(addr)
			if err != nil {
				t.Fatalf("uri.HostFromAddr(%v) error = %v, want nil", addr, err)
			}
			if h.Kind() != c.wantKind || h.String() != c.wantStr {
				t.Errorf("uri.HostFromAddr(%v) = %v (%v), want %v (%v)", addr, h, h.Kind(), c.wantStr, c.wantKind)
			}
			got, ok := h.Addr()
			if !ok || got != addr {
				t.Errorf("h.Addr() = (%v, %v), want (%v, true)", got, ok, addr)
			}
		})
	}
}

func TestHostFromAddr_Error(t *testing.T) {
	t.Parallel()

	for _, addr := range []netip.Addr{{}, netip.MustParseAddr("fe80::1%eth0")} {
		if _, err := uri.HostFromAddr(addr); !errors.Is(err, uri.ErrInvalidArgument) {
			t.Errorf("uri.HostFromAddr(%v) error = %v, want %v", addr, err, uri.ErrInvalidArgument)
		}
	}
}

func TestHost_Addr_RegName(t *testing.T) {
	t.Parallel()

	if _, ok := uri.LocalHost.Addr(); ok {
		t.Errorf("uri.LocalHost.Addr() ok = true, want false")
	}
	if _, ok := uri.MustIPvFuture("1", "x").Addr(); ok {
		t.Errorf("IPvFuture Addr() ok = true, want false")
	}
}

func TestHost_IsDomainName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		host uri.Host
		want bool
	}{
		{uri.RegName("www.example.com"), true},
		{uri.LocalHost, true},
		{uri.RegName(""), false},
		{uri.RegName("a..b"), false},
		{uri.LoopbackIPv4, false},
		{uri.LoopbackIPv6, false},
	}

	for _, c := range cases {
		if got := c.host.IsDomainName(); got != c.want {
			t.Errorf("%v.IsDomainName() = %v, want %v", c.host, got, c.want)
		}
	}
}

func TestHost_Accessors(t *testing.T) {
	t.Parallel()

	h := uri.IPv6WithV4(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	hs, ok := h.Hexadectets()
	if diff := cmp.Diff(hs, []uri.Hexadectet{1, 2, 3, 4, 5, 6}); !ok || diff != "" {
		t.Errorf("h.Hexadectets() mismatch (-got +want):\n%v", diff)
	}
	os, ok := h.Octets()
	if !ok || os != [4]uri.Octet{7, 8, 9, 10} {
		t.Errorf("h.Octets() = (%v, %v), want ([7 8 9 10], true)", os, ok)
	}

	v, a, ok := uri.MustIPvFuture("7", "x:y").Future()
	if !ok || v != "7" || a != "x:y" {
		t.Errorf("Future() = (%q, %q, %v), want (\"7\", \"x:y\", true)", v, a, ok)
	}
}

func TestHost_UnmarshalText(t *testing.T) {
	t.Parallel()

	var h uri.Host
	if err := h.UnmarshalText([]byte("[2001:db8::7]")); err != nil {
		t.Fatalf("h.UnmarshalText() error = %v, want nil", err)
	}
	if want := uri.IPv6(0x2001, 0xdb8, 0, 0, 0, 0, 0, 7); h != want {
		t.Errorf("h = %v, want %v", h, want)
	}
	if err := h.UnmarshalText([]byte("[bad")); !errors.Is(err, uri.ErrInvalidHost) {
		t.Errorf("h.UnmarshalText() error = %v, want %v", err, uri.ErrInvalidHost)
	}
	if h != (uri.Host{}) {
		t.Errorf("h = %+v, want zero host", h)
	}
}
