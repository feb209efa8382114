// Package uri builds, parses, normalizes and resolves Uniform Resource Identifiers
// according to RFC 3986.
//
// # Overview
//
// A reference is either a [*URI], which starts with a scheme, or a [*RelativeRef].
// Both consist of the same optional components:
//
//	  foo://example.com:8042/over/there?name=ferret#nose
//	  \_/   \______________/\_________/ \_________/ \__/
//	   |           |            |            |        |
//	scheme     authority       path        query   fragment
//
// Every component is an immutable value type: [Scheme], [Authority] (with [UserInfo],
// [Host] and [Port]), [Path] of [Segment]s, [Query] and [Fragment].
// Components hold decoded values and are percent-encoded only when rendered,
// so a value never needs to be escaped by hand:
//
//	auth := uri.NewAuthority(uri.RegName("www.example.com"))
//	u := uri.HTTPS.URI(&uri.Parts{
//	    Authority: &auth,
//	    Path:      uri.AbsPathOf("music", "AC/DC", "Back in Black"),
//	})
//	u.String() // "https://www.example.com/music/AC%2FDC/Back%20in%20Black"
//
// # Parsing
//
// [ParseURI], [ParseRelativeRef] and [ParseReference] decompose the input with
// the structural grammar of RFC 3986 and decode every component:
//
//	u, err := uri.ParseURI("HTTP://www.example.com/.././some%20pat%68")
//	// u.String() == "http://www.example.com/some%20path"
//
// Parse errors are grammar errors, see errorutil.IsGrammarErr, wrapping one of
// the sentinels [ErrMalformedInput], [ErrMalformedEscape], [ErrInvalidUTF8],
// [ErrInvalidChar], [ErrInvalidScheme], [ErrInvalidHost] or [ErrInvalidPort].
// Constructors of decoded values, e.g. [NewOctet], return [ErrInvalidArgument].
//
// # Normalization
//
// Values are normalized on construction:
//
//   - scheme names and registered names are lower-cased;
//   - dot segments are removed from paths, see RFC 3986 Section 5.2.4;
//   - a port equal to the default port of the scheme is dropped;
//   - hex digits of escapes in queries and fragments are upper-cased
//     and escaped unreserved characters are decoded.
//
// So equal URIs render equally and [URI.Equal] compares components structurally.
//
// # Resolution
//
// [URI.Resolve] computes the target URI of a reference against a base URI,
// see RFC 3986 Section 5.2.2:
//
//	base, _ := uri.ParseURI("http://www.example.com/child-1")
//	ref, _ := uri.ParseRelativeRef("../child-2?extra-query")
//	base.Resolve(ref).String() // "http://www.example.com/child-2?extra-query"
package uri

//go:generate go tool errtrace -w .
