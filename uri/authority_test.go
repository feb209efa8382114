package uri_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urin/uri"
)

func TestParseAuthority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want uri.Authority
		str  string
	}{
		{"host", "example.com", uri.NewAuthority(uri.RegName("example.com")), "example.com"},
		{"empty", "", uri.NewAuthority(uri.RegName("")), ""},
		{
			"host and port",
			"Example.com:8080",
			uri.NewAuthority(uri.RegName("example.com")).WithPort(uri.MustPort(8080)),
			"example.com:8080",
		},
		{
			"empty port",
			"example.com:",
			uri.NewAuthority(uri.RegName("example.com")).WithPort(uri.EmptyPort),
			"example.com:",
		},
		{
			"port leading zeros",
			"example.com:0080",
			uri.NewAuthority(uri.RegName("example.com")).WithPort(uri.MustPort(80)),
			"example.com:80",
		},
		{
			"user info",
			"us%65r:pa%3Ass@example.com",
			uri.NewAuthority(uri.RegName("example.com")).WithUserInfo(uri.NewUserInfo("user:pa:ss")),
			"user:pa:ss@example.com",
		},
		{
			"empty user info",
			"@example.com",
			uri.NewAuthority(uri.RegName("example.com")).WithUserInfo(uri.NewUserInfo("")),
			"@example.com",
		},
		{
			"ipv6 and port",
			"[::1]:5060",
			uri.NewAuthority(uri.LoopbackIPv6).WithPort(uri.MustPort(5060)),
			"[::1]:5060",
		},
		{
			"everything",
			"a%20b@[2001:db8::7]:0",
			uri.NewAuthority(uri.IPv6(0x2001, 0xdb8, 0, 0, 0, 0, 0, 7)).
				WithUserInfo(uri.NewUserInfo("a b")).
				WithPort(uri.MustPort(0)),
			"a%20b@[2001:db8::7]:0",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.ParseAuthority(c.in)
			if err != nil {
				t.Fatalf("uri.ParseAuthority(%q) error = %v, want nil", c.in, err)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.ParseAuthority(%q) mismatch (-got +want):\n%v", c.in, diff)
			}
			if s := got.String(); s != c.str {
				t.Errorf("authority.String() = %q, want %q", s, c.str)
			}
		})
	}
}

func TestParseAuthority_Error(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		wantErr error
	}{
		{"example.com:port", uri.ErrInvalidPort},
		{"example.com:80:80", uri.ErrInvalidPort},
		{"[::1]x", uri.ErrMalformedInput},
		{"[::1", uri.ErrInvalidHost},
		{"[::1::2]:80", uri.ErrInvalidHost},
		{"us er@example.com", uri.ErrInvalidChar},
		{"user%zz@example.com", uri.ErrMalformedEscape},
	}

	for _, c := range cases {
		if _, err := uri.ParseAuthority(c.in); !errors.Is(err, c.wantErr) {
			t.Errorf("uri.ParseAuthority(%q) error = %v, want %v", c.in, err, c.wantErr)
		}
	}
}

func TestAuthority_Accessors(t *testing.T) {
	t.Parallel()

	a := uri.NewAuthority(uri.LocalHost).WithUserInfo(uri.NewUserInfo("joe")).WithPort(uri.MustPort(22))
	if ui, ok := a.UserInfo(); !ok || ui.Value() != "joe" {
		t.Errorf("a.UserInfo() = (%v, %v), want (joe, true)", ui, ok)
	}
	if p, ok := a.Port(); !ok || p != uri.MustPort(22) {
		t.Errorf("a.Port() = (%v, %v), want (22, true)", p, ok)
	}
	if a.Host() != uri.LocalHost {
		t.Errorf("a.Host() = %v, want %v", a.Host(), uri.LocalHost)
	}

	b := a.WithoutUserInfo().WithoutPort()
	if !b.Equal(uri.NewAuthority(uri.LocalHost)) {
		t.Errorf("b = %v, want %v", b, uri.LocalHost)
	}
	if got := fmt.Sprintf("%s|%q", a, a); got != `joe@localhost:22|"joe@localhost:22"` {
		t.Errorf("fmt.Sprintf(%%s|%%q) = %s", got)
	}
}

func TestParsePort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    string
		wantInt int
		hasInt  bool
	}{
		{"", "", 0, false},
		{"80", "80", 80, true},
		{"0080", "80", 80, true},
		{"000", "0", 0, true},
		{"65536", "65536", 65536, true},
	}

	for _, c := range cases {
		p, err := uri.ParsePort(c.in)
		if err != nil {
			t.Fatalf("uri.ParsePort(%q) error = %v, want nil", c.in, err)
		}
		if p.String() != c.want {
			t.Errorf("uri.ParsePort(%q) = %q, want %q", c.in, p, c.want)
		}
		if n, ok := p.Int(); n != c.wantInt || ok != c.hasInt {
			t.Errorf("uri.ParsePort(%q).Int() = (%d, %v), want (%d, %v)", c.in, n, ok, c.wantInt, c.hasInt)
		}
	}

	if _, err := uri.ParsePort("8o"); !errors.Is(err, uri.ErrInvalidPort) || !errors.Is(err, uri.ErrInvalidChar) {
		t.Errorf("uri.ParsePort(\"8o\") error = %v, want %v", err, uri.ErrInvalidPort)
	}
	if _, err := uri.NewPort(-1); !errors.Is(err, uri.ErrInvalidArgument) || !errors.Is(err, uri.ErrOutOfRange) {
		t.Errorf("uri.NewPort(-1) error = %v, want %v", err, uri.ErrInvalidArgument)
	}
}

func TestParseUserInfo(t *testing.T) {
	t.Parallel()

	ui, err := uri.ParseUserInfo("alice:s%65cr%C3%A9t")
	if err != nil {
		t.Fatalf("uri.ParseUserInfo() error = %v, want nil", err)
	}
	if got, want := ui.Value(), "alice:secrét"; got != want {
		t.Errorf("ui.Value() = %q, want %q", got, want)
	}
	if got, want := ui.String(), "alice:secr%C3%A9t"; got != want {
		t.Errorf("ui.String() = %q, want %q", got, want)
	}
	if got, want := uri.NewUserInfo("a@b/c").String(), "a%40b%2Fc"; got != want {
		t.Errorf("uri.NewUserInfo(\"a@b/c\").String() = %q, want %q", got, want)
	}
}
