package uri

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/errorutil"
	"github.com/ghettovoice/urin/internal/grammar"
	"github.com/ghettovoice/urin/internal/util"
)

// Port is the decimal port of an authority.
// It is kept as a digit string, so the empty port of "host:" is representable.
type Port struct {
	digits string
}

// EmptyPort is the port of an authority ending with ":".
var EmptyPort = Port{}

// NewPort returns the port n or an invalid-argument error if n is negative.
func NewPort(n int) (Port, error) {
	if n < 0 {
		return Port{}, errtrace.Wrap(newOutOfRangeErr("port must not be negative but was [%d]", n))
	}
	return Port{strconv.Itoa(n)}, nil
}

// MustPort is like [NewPort] but panics on error.
func MustPort(n int) Port { return util.Must2(NewPort(n)) }

// ParsePort parses the digits of a port.
// Leading zeros are insignificant and dropped.
func ParsePort[T ~string | ~[]byte](s T) (Port, error) {
	str := string(s)
	if err := validatePort(str); err != nil {
		return Port{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, err))
	}
	return Port{trimZeros(str)}, nil
}

func validatePort(s string) error {
	return grammar.Digit.Verify(s, "port") //errtrace:skip
}

func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" && s != "" {
		return "0"
	}
	return t
}

// Int returns the numeric value of the port and false for the empty port
// or a port that does not fit into int.
func (p Port) Int() (int, bool) {
	if p.digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(p.digits)
	return n, err == nil
}

// IsEmpty reports whether the port has no digits.
func (p Port) IsEmpty() bool { return p.digits == "" }

func (p Port) String() string { return p.digits }

func (p Port) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.digits))
	default:
		fmt.Fprint(f, p.digits)
	}
}

// Equal reports whether the port equals the provided value, accepting Port and *Port.
func (p Port) Equal(val any) bool {
	switch v := val.(type) {
	case Port:
		return p == v
	case *Port:
		return v != nil && p == *v
	default:
		return false
	}
}
