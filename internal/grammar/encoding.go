package grammar

//go:generate go tool mockgen -destination=../testutil/encmock/codec.go -package=encmock . Codec

import (
	"strings"
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/util"
)

// Codec converts values of type T to and from their percent-encoded form.
type Codec[T any] interface {
	// Encode returns the percent-encoded form of v.
	Encode(v T) string
	// Decode parses the percent-encoded form s.
	Decode(s string) (T, error)
	// Escaping returns a codec that additionally percent-encodes c.
	Escaping(c byte) Codec[T]
}

// Encoding is a codec of plain strings.
type Encoding = Codec[string]

// Percent returns an encoding that leaves characters from set unescaped
// and percent-encodes every other UTF-8 byte.
// Invalid UTF-8 sequences are encoded as U+FFFD, so every encoded string decodes.
func Percent(set CharSet) Encoding { return percentEncoding{set} }

// EncodeEverything escapes every byte.
var EncodeEverything = Percent(None)

type percentEncoding struct {
	set CharSet
}

const upperhex = "0123456789ABCDEF"

func (e percentEncoding) Encode(s string) string {
	s = ValidUTF8(s)
	n := 0
	for i := range len(s) {
		if !e.set.Contains(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	sb.Grow(len(s) + 2*n)
	for i := range len(s) {
		c := s[i]
		if e.set.Contains(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

func (e percentEncoding) Decode(s string) (string, error) {
	if !needsDecode(s) && e.set.ContainsAll(s) {
		return s, nil
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	var buf [utf8.UTFMax]byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			if !e.set.Contains(c) {
				return "", errtrace.Wrap(newInvalidCharErr("invalid character %q at %d - must be %s", c, i+1, e.set))
			}
			sb.WriteByte(c)
			continue
		}

		b, err := escapedByte(s, i)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		n := seqLen(b)
		if n == 0 {
			return "", errtrace.Wrap(newInvalidUTF8Err(
				"first byte of a percent-encoded character must begin 0, 110, 1110 or 11110, but was %08b", b,
			))
		}
		buf[0] = b
		for j := 1; j < n; j++ {
			if buf[j], err = escapedByte(s, i+3*j); err != nil {
				return "", errtrace.Wrap(newMalformedEscapeErr("incomplete %d-byte sequence at %d", n, i+1))
			}
			if buf[j]&0xC0 != 0x80 {
				return "", errtrace.Wrap(newInvalidUTF8Err("byte %08b at %d is not a continuation byte", buf[j], i+3*j+1))
			}
		}
		if !utf8.Valid(buf[:n]) {
			return "", errtrace.Wrap(newInvalidUTF8Err("% X at %d", buf[:n], i+1))
		}
		sb.Write(buf[:n])
		i += 3*n - 1
	}
	return sb.String(), nil
}

func (e percentEncoding) Escaping(c byte) Encoding {
	return percentEncoding{e.set.Remove(c)}
}

// ValidUTF8 returns s with each run of invalid UTF-8 bytes replaced by U+FFFD.
func ValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

func needsDecode(s string) bool {
	for i := range len(s) {
		if s[i] == '%' {
			return true
		}
	}
	return false
}

// escapedByte decodes the percent triplet starting at s[i].
func escapedByte(s string, i int) (byte, error) {
	if i+2 >= len(s) || s[i] != '%' || !ishex(s[i+1]) || !ishex(s[i+2]) {
		return 0, errtrace.Wrap(newMalformedEscapeErr("cannot extract a percent-encoded byte from %q at %d", s, i+1))
	}
	return unhex(s[i+1])<<4 | unhex(s[i+2]), nil
}

func seqLen(b byte) int {
	switch {
	case b&0x80 == 0:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// NormalizeEscapes returns the percent-encoded s with upper-case hex digits
// and unreserved characters decoded, see RFC 3986 Section 6.2.2.
// Malformed triplets are left as is.
func NormalizeEscapes(s string) string {
	if !needsDecode(s) {
		return s
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i := 0; i < len(s); i++ {
		b, err := escapedByte(s, i)
		if err != nil {
			sb.WriteByte(s[i])
			continue
		}
		if Unreserved.Contains(b) {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(upperhex[b>>4])
			sb.WriteByte(upperhex[b&15])
		}
		i += 2
	}
	return sb.String()
}
