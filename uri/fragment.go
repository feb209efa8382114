package uri

import (
	"fmt"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/grammar"
	"github.com/ghettovoice/urin/internal/util"
)

var fragmentEnc = grammar.Percent(grammar.QueryOrFragment)

// Fragment is the fragment component of a reference.
// Like [Query], it keeps the normalized encoded form.
type Fragment struct {
	enc string
}

// NewFragment returns the fragment holding the decoded value v.
// Invalid UTF-8 in v is replaced with U+FFFD.
func NewFragment(v string) Fragment { return Fragment{fragmentEnc.Encode(v)} }

// FragmentFrom converts v to a fragment with tr.
func FragmentFrom[T any](v T, tr Transform[T]) Fragment {
	return Fragment{grammar.Transforming(fragmentEnc, tr).Encode(v)}
}

// FragmentAs converts the value of f back to T with tr.
func FragmentAs[T any](f Fragment, tr Transform[T]) (T, error) {
	return errtrace.Wrap2(grammar.Transforming(fragmentEnc, tr).Decode(f.enc))
}

// ParseFragment validates the encoded fragment s.
func ParseFragment[T ~string | ~[]byte](s T) (Fragment, error) {
	str := string(s)
	if _, err := fragmentEnc.Decode(str); err != nil {
		return Fragment{}, errtrace.Wrap(err)
	}
	return Fragment{grammar.NormalizeEscapes(str)}, nil
}

// Value returns the decoded fragment.
func (fr Fragment) Value() string { return util.Must2(fragmentEnc.Decode(fr.enc)) }

// String returns the encoded fragment.
func (fr Fragment) String() string { return fr.enc }

func (fr Fragment) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(fr.enc))
	default:
		fmt.Fprint(f, fr.enc)
	}
}

// Equal reports whether the fragment equals the provided value, accepting Fragment and *Fragment.
// Like [Query.Equal], it compares the normalized encoded forms.
func (fr Fragment) Equal(val any) bool {
	switch v := val.(type) {
	case Fragment:
		return fr == v
	case *Fragment:
		return v != nil && fr == *v
	default:
		return false
	}
}
