package grammar

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/util"
)

// CharSet is an immutable named set of single-byte characters.
// The zero value is an empty set without description.
type CharSet struct {
	tbl   *[256]bool
	items []string
}

// Range returns a set of characters from lo to hi inclusive.
func Range(lo, hi byte, desc string) CharSet {
	var tbl [256]bool
	for c := int(lo); c <= int(hi); c++ {
		tbl[c] = true
	}
	return CharSet{&tbl, []string{desc}}
}

// Chars returns a set of the given characters, each described by itself.
func Chars(chars string) CharSet {
	var tbl [256]bool
	items := make([]string, 0, len(chars))
	for i := range len(chars) {
		tbl[chars[i]] = true
		items = append(items, chars[i:i+1])
	}
	return CharSet{&tbl, items}
}

func fillSet(v bool, desc string) CharSet {
	var tbl [256]bool
	if v {
		for i := range tbl {
			tbl[i] = true
		}
	}
	return CharSet{&tbl, []string{desc}}
}

var (
	AlphaLower = Range('a', 'z', "a-z")
	AlphaUpper = Range('A', 'Z', "A-Z")
	Alpha      = AlphaLower.Or(AlphaUpper)
	Digit      = Range('0', '9', "0-9")
	HexDigit   = Digit.Or(Range('A', 'F', "A-F"), Range('a', 'f', "a-f"))
	Unreserved = Alpha.Or(Digit, Chars("-._~"))
	SubDelims  = Chars("!$&'()*+,;=")
	// PChar is the set of characters allowed unescaped in a path segment.
	PChar = Unreserved.Or(SubDelims, Chars(":@"))
	// QueryOrFragment is the set of characters allowed unescaped in a query or a fragment.
	QueryOrFragment = PChar.Or(Chars("/?"))
	// UserInfo is the set of characters allowed unescaped in a user info.
	UserInfo = Unreserved.Or(SubDelims, Chars(":"))
	// RegName is the set of characters allowed unescaped in a registered name.
	RegName = Unreserved.Or(SubDelims)
	// IPvFuture is the set of characters allowed in the address part of IPvFuture literal.
	IPvFuture = Unreserved.Or(SubDelims, Chars(":"))
	// SchemeTail is the set of characters allowed after the first scheme character.
	SchemeTail = Alpha.Or(Digit, Chars("+-."))

	All  = fillSet(true, "any character")
	None = fillSet(false, "no character")
)

// Contains reports whether c is a member of the set.
func (s CharSet) Contains(c byte) bool { return s.tbl != nil && s.tbl[c] }

// ContainsAll reports whether every byte of str is a member of the set.
func (s CharSet) ContainsAll(str string) bool {
	for i := range len(str) {
		if !s.Contains(str[i]) {
			return false
		}
	}
	return true
}

// Or returns the union of s and the others.
func (s CharSet) Or(others ...CharSet) CharSet {
	var tbl [256]bool
	if s.tbl != nil {
		tbl = *s.tbl
	}
	items := append([]string(nil), s.items...)
	for _, o := range others {
		if o.tbl != nil {
			for i, v := range o.tbl {
				tbl[i] = tbl[i] || v
			}
		}
		items = append(items, o.items...)
	}
	return CharSet{&tbl, items}
}

// Remove returns the set without c.
func (s CharSet) Remove(c byte) CharSet {
	if !s.Contains(c) {
		return s
	}
	tbl := *s.tbl
	tbl[c] = false
	return CharSet{&tbl, []string{"not " + string(c) + " and " + s.String()}}
}

// String returns the human-readable description of the set, e.g. "a-z, A-Z, or 0-9".
func (s CharSet) String() string {
	switch len(s.items) {
	case 0:
		return ""
	case 1:
		return s.items[0]
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i, it := range s.items {
		if i > 0 {
			sb.WriteString(", ")
			if i == len(s.items)-1 {
				sb.WriteString("or ")
			}
		}
		sb.WriteString(it)
	}
	return sb.String()
}

// Verify checks that every character of value belongs to the set.
// The returned error names the 1-based position of the first offending character
// and the parameter name.
func (s CharSet) Verify(value, param string) error {
	for i := range len(value) {
		if !s.Contains(value[i]) {
			return errtrace.Wrap(newInvalidCharErr(
				"character %d must be %s in %s [%s]", i+1, s, param, value,
			))
		}
	}
	return nil
}

