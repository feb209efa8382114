package uri

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/grammar"
)

var userInfoEnc = grammar.Percent(grammar.UserInfo)

// UserInfo is the decoded user information of an authority.
type UserInfo struct {
	value string
}

// NewUserInfo returns user information holding the decoded value v.
// Invalid UTF-8 in v is replaced with U+FFFD.
func NewUserInfo(v string) UserInfo { return UserInfo{grammar.ValidUTF8(v)} }

// ParseUserInfo decodes the encoded user information s.
func ParseUserInfo[T ~string | ~[]byte](s T) (UserInfo, error) {
	v, err := userInfoEnc.Decode(string(s))
	if err != nil {
		return UserInfo{}, errtrace.Wrap(err)
	}
	return UserInfo{v}, nil
}

// Value returns the decoded user information.
func (ui UserInfo) Value() string { return ui.value }

// String returns the encoded user information.
func (ui UserInfo) String() string { return userInfoEnc.Encode(ui.value) }

func (ui UserInfo) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(ui.String()))
	default:
		fmt.Fprint(f, ui.String())
	}
}

// Equal reports whether the user information equals the provided value, accepting UserInfo and *UserInfo.
func (ui UserInfo) Equal(val any) bool {
	switch v := val.(type) {
	case UserInfo:
		return ui == v
	case *UserInfo:
		return v != nil && ui == *v
	default:
		return false
	}
}
