package uri

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/util"
)

// Octet is one decimal part of an IPv4 address.
type Octet uint8

// NewOctet returns the octet n or an invalid-argument error if n is not in the range 0-255.
func NewOctet(n int) (Octet, error) {
	if n < 0 || n > 0xFF {
		return 0, errtrace.Wrap(newOutOfRangeErr("argument must be in the range 0-255 but was [%d]", n))
	}
	return Octet(n), nil
}

// MustOctet is like [NewOctet] but panics on error.
func MustOctet(n int) Octet { return util.Must2(NewOctet(n)) }

func (o Octet) String() string { return strconv.Itoa(int(o)) }

// Hexadectet is one 16-bit group of an IPv6 address.
type Hexadectet uint16

// NewHexadectet returns the hexadectet n or an invalid-argument error if n is not in the range 0x0-0xFFFF.
func NewHexadectet(n int) (Hexadectet, error) {
	if n < 0 || n > 0xFFFF {
		return 0, errtrace.Wrap(newOutOfRangeErr("argument must be in the range 0x0-0xFFFF but was [%#x]", n))
	}
	return Hexadectet(n), nil
}

// MustHexadectet is like [NewHexadectet] but panics on error.
func MustHexadectet(n int) Hexadectet { return util.Must2(NewHexadectet(n)) }

// String returns lower-case hex digits without leading zeros.
func (h Hexadectet) String() string { return strconv.FormatUint(uint64(h), 16) }

// IsElidable reports whether the hexadectet may be part of a "::" run.
func (h Hexadectet) IsElidable() bool { return h == 0 }
