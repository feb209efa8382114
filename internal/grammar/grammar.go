// Package grammar implements the character sets, the percent-encoding engine
// and the structural ABNF grammar of RFC 3986.
package grammar

//go:generate go tool errtrace -w .

import (
	"fmt"

	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/urin/internal/errorutil"
)

func init() {
	abnf.EnableNodeCache(10 * 1024)
}

// Error is a grammar error.
type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput      Error = "empty input"
	ErrMalformedInput  Error = "malformed input"
	ErrMalformedEscape Error = "malformed percent-encoding"
	ErrInvalidUTF8     Error = "invalid UTF-8 sequence"
	ErrInvalidChar     Error = "invalid character"
	ErrNodeNotFound    Error = "node not found"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func newMalformedEscapeErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedEscape, args...) //errtrace:skip
}

func newInvalidUTF8Err(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidUTF8, args...) //errtrace:skip
}

func newInvalidCharErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidChar, args...) //errtrace:skip
}

// FindNode searches n and its descendants depth-first for the first node with key k.
func FindNode(n *abnf.Node, k string) (*abnf.Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.Key == k {
		return n, true
	}
	for _, c := range n.Children {
		if fn, ok := FindNode(c, k); ok {
			return fn, true
		}
	}
	return nil, false
}

// MustFindNode is like [FindNode] but panics if the node is missing.
func MustFindNode(n *abnf.Node, k string) *abnf.Node {
	fn, ok := FindNode(n, k)
	if !ok {
		panic(fmt.Errorf("find node %q in node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return fn
}
