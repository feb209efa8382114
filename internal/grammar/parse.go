package grammar

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"
)

// ParseURI decomposes s with the URI rule.
// The returned node spans the whole input.
func ParseURI[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}
	return errtrace.Wrap2(parse([]byte(s), URI))
}

// ParseRelativeRef decomposes s with the relative-ref rule.
// The returned node spans the whole input.
// Empty input is a valid relative reference, so it is not rejected here.
func ParseRelativeRef[T ~string | ~[]byte](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse([]byte(s), RelativeRef))
}

func parse(s []byte, rule func([]byte, *abnf.Nodes) error) (*abnf.Node, error) {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rule(s, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

// Components holds the raw, still encoded, substrings of a URI or a relative reference.
type Components struct {
	Scheme       string
	HasScheme    bool
	Authority    string
	HasAuthority bool
	Path         string
	Query        string
	HasQuery     bool
	Fragment     string
	HasFragment  bool
}

// Split extracts the raw components from a node returned by
// [ParseURI] or [ParseRelativeRef].
func Split(node *abnf.Node) Components {
	var c Components
	if n, ok := FindNode(node, "scheme"); ok {
		c.Scheme, c.HasScheme = n.String(), true
	}
	if n, ok := FindNode(node, "hier-part"); ok {
		if an, ok := FindNode(n, "authority"); ok {
			c.Authority, c.HasAuthority = an.String(), true
			c.Path = MustFindNode(n, "path-abempty").String()
		} else {
			c.Path = n.String()
		}
	}
	if n, ok := FindNode(node, `"?" query`); ok {
		c.Query, c.HasQuery = MustFindNode(n, "query").String(), true
	}
	if n, ok := FindNode(node, `"#" fragment`); ok {
		c.Fragment, c.HasFragment = MustFindNode(n, "fragment").String(), true
	}
	return c
}
