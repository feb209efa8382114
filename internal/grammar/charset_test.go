package grammar_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/urin/internal/grammar"
)

func TestCharSet_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		set  grammar.CharSet
		want string
	}{
		{"single range", grammar.Digit, "0-9"},
		{"union", grammar.Alpha, "a-z, or A-Z"},
		{"unreserved", grammar.Unreserved, "a-z, A-Z, 0-9, -, ., _, or ~"},
		{"removed", grammar.Digit.Remove('5'), "not 5 and 0-9"},
		{"removed absent", grammar.Digit.Remove('x'), "0-9"},
		{"all", grammar.All, "any character"},
		{"none", grammar.None, "no character"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.set.String(); got != c.want {
				t.Errorf("set.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestCharSet_Contains(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		set  grammar.CharSet
		in   string
		out  string
	}{
		{"alpha", grammar.Alpha, "azAZ", "09-@[`{"},
		{"hex digit", grammar.HexDigit, "09afAF", "gG:/"},
		{"sub-delims", grammar.SubDelims, "!$&'()*+,;=", "-._~:@/?#[]"},
		{"pchar", grammar.PChar, "aZ9-._~!$&'()*+,;=:@", "/?#[]% \x80"},
		{"query or fragment", grammar.QueryOrFragment, "/?:@", "#[] %"},
		{"scheme tail", grammar.SchemeTail, "a1+-.", "_:~"},
		{"removed", grammar.PChar.Remove(':'), "@", ":"},
		{"all", grammar.All, "\x00 %\xff", ""},
		{"none", grammar.None, "", "a\x00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			for i := range len(c.in) {
				if !c.set.Contains(c.in[i]) {
					t.Errorf("set(%q).Contains(%q) = false, want true", c.set, c.in[i])
				}
			}
			for i := range len(c.out) {
				if c.set.Contains(c.out[i]) {
					t.Errorf("set(%q).Contains(%q) = true, want false", c.set, c.out[i])
				}
			}
			if !c.set.ContainsAll(c.in) {
				t.Errorf("set(%q).ContainsAll(%q) = false, want true", c.set, c.in)
			}
		})
	}

	var zero grammar.CharSet
	if zero.Contains('a') {
		t.Error("zero CharSet contains 'a'")
	}
}

func TestCharSet_Verify(t *testing.T) {
	t.Parallel()

	if err := grammar.Digit.Verify("8080", "port"); err != nil {
		t.Errorf("grammar.Digit.Verify(\"8080\", \"port\") error = %v, want nil", err)
	}

	err := grammar.Digit.Verify("80a0", "port")
	if !errors.Is(err, grammar.ErrInvalidChar) {
		t.Fatalf("grammar.Digit.Verify(\"80a0\", \"port\") error = %v, want %v", err, grammar.ErrInvalidChar)
	}
	if got, want := err.Error(), "invalid character: character 3 must be 0-9 in port [80a0]"; got != want {
		t.Errorf("grammar.Digit.Verify(\"80a0\", \"port\") error = %q, want %q", got, want)
	}
}
