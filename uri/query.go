package uri

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/grammar"
	"github.com/ghettovoice/urin/internal/util"
)

var queryEnc = grammar.Percent(grammar.QueryOrFragment)

// Query is the query component of a reference.
// It keeps the normalized encoded form, so escaped delimiters such as "%26"
// stay distinct from raw ones. Query values are comparable.
type Query struct {
	enc string
}

// NewQuery returns the query holding the decoded value v.
// Invalid UTF-8 in v is replaced with U+FFFD.
func NewQuery(v string) Query { return Query{queryEnc.Encode(v)} }

// QueryFrom converts v to a query with tr.
func QueryFrom[T any](v T, tr Transform[T]) Query {
	return Query{grammar.Transforming(queryEnc, tr).Encode(v)}
}

// QueryAs converts the value of q back to T with tr.
func QueryAs[T any](q Query, tr Transform[T]) (T, error) {
	return errtrace.Wrap2(grammar.Transforming(queryEnc, tr).Decode(q.enc))
}

// ParseQuery validates the encoded query s.
// Hex digits of escapes are upper-cased and escaped unreserved characters are decoded.
func ParseQuery[T ~string | ~[]byte](s T) (Query, error) {
	str := string(s)
	if _, err := queryEnc.Decode(str); err != nil {
		return Query{}, errtrace.Wrap(err)
	}
	return Query{grammar.NormalizeEscapes(str)}, nil
}

// QueryParam is one "name=value" pair of an HTML form query.
type QueryParam struct {
	Name     string
	Value    string
	HasValue bool
}

// Param returns a form parameter with a value.
func Param(name, value string) QueryParam { return QueryParam{name, value, true} }

// Flag returns a form parameter without a value.
func Flag(name string) QueryParam { return QueryParam{Name: name} }

// formEnc encodes form parameters as "application/x-www-form-urlencoded" does,
// spaces become "+" and the "&", "=" and "+" characters are escaped.
var formEnc = grammar.Delimited('&', grammar.Delimited('=', grammar.Substituted(' ', '+', queryEnc)))

// NewFormQuery returns the query of form parameters joined by "&".
func NewFormQuery(params ...QueryParam) Query {
	parts := make([][]string, len(params))
	for i, p := range params {
		if p.HasValue {
			parts[i] = []string{p.Name, p.Value}
		} else {
			parts[i] = []string{p.Name}
		}
	}
	return Query{formEnc.Encode(parts)}
}

// FormParams splits the query into form parameters.
// The empty query has no parameters.
func (q Query) FormParams() []QueryParam {
	if q.enc == "" {
		return nil
	}
	parts := util.Must2(formEnc.Decode(q.enc))
	params := make([]QueryParam, len(parts))
	for i, p := range parts {
		params[i].Name = p[0]
		if len(p) > 1 {
			params[i].Value, params[i].HasValue = strings.Join(p[1:], "="), true
		}
	}
	return params
}

// Value returns the decoded query.
func (q Query) Value() string { return util.Must2(queryEnc.Decode(q.enc)) }

// String returns the encoded query.
func (q Query) String() string { return q.enc }

func (q Query) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(q.enc))
	default:
		fmt.Fprint(f, q.enc)
	}
}

// Equal reports whether the query equals the provided value, accepting Query and *Query.
// It compares the normalized encoded forms, not the decoded values,
// so "a%2Fb" and "a/b" are different queries.
func (q Query) Equal(val any) bool {
	switch v := val.(type) {
	case Query:
		return q == v
	case *Query:
		return v != nil && q == *v
	default:
		return false
	}
}
