package grammar

import "github.com/ghettovoice/abnf"

// Structural grammar of RFC 3986 Appendix B, split into the alternatives of
// section 3 so that an authority is recognised only after "//".
// Component contents are validated later by the component parsers,
// so every character class here is the widest class the delimiters allow.

func octets(key string, lo, hi byte) abnf.Operator {
	return abnf.Range(key, []byte{lo}, []byte{hi})
}

func lit(s string) abnf.Operator {
	return abnf.Literal(`"`+s+`"`, []byte(s))
}

var (
	// any octet except ":" / "/" / "?" / "#"
	schemeChar = abnf.AltFirst(
		"scheme-char",
		octets("%x00-22", 0x00, 0x22),
		octets("%x24-2E", 0x24, 0x2E),
		octets("%x30-39", 0x30, 0x39),
		octets("%x3B-3E", 0x3B, 0x3E),
		octets("%x40-FF", 0x40, 0xFF),
	)
	// any octet except "/" / "?" / "#"
	segmentChar = abnf.AltFirst(
		"segment-char",
		octets("%x00-22", 0x00, 0x22),
		octets("%x24-2E", 0x24, 0x2E),
		octets("%x30-3E", 0x30, 0x3E),
		octets("%x40-FF", 0x40, 0xFF),
	)
	// any octet except "#"
	queryChar = abnf.AltFirst(
		"query-char",
		octets("%x00-22", 0x00, 0x22),
		octets("%x24-FF", 0x24, 0xFF),
	)
	anyChar = octets("OCTET", 0x00, 0xFF)

	scheme    = abnf.Repeat1Inf("scheme", schemeChar)
	authority = abnf.Repeat0Inf("authority", segmentChar)
	segment   = abnf.Repeat0Inf("segment", segmentChar)
	segmentNZ = abnf.Repeat1Inf("segment-nz", segmentChar)
	query     = abnf.Repeat0Inf("query", queryChar)
	fragment  = abnf.Repeat0Inf("fragment", anyChar)

	pathSegments = abnf.Repeat0Inf(`*( "/" segment )`, abnf.Concat(`"/" segment`, lit("/"), segment))
	pathAbempty  = abnf.Concat("path-abempty", pathSegments)
	pathAbsolute = abnf.Concat(
		"path-absolute",
		lit("/"),
		abnf.Optional(`[ segment-nz *( "/" segment ) ]`, abnf.Concat(`segment-nz *( "/" segment )`, segmentNZ, pathSegments)),
	)
	pathRootless = abnf.Concat("path-rootless", segmentNZ, pathSegments)

	hierPart = abnf.Optional(
		"hier-part",
		abnf.Alt(
			`"//" authority path-abempty / path-absolute / path-rootless`,
			abnf.Concat(`"//" authority path-abempty`, lit("//"), authority, pathAbempty),
			pathAbsolute,
			pathRootless,
		),
	)

	querySuffix    = abnf.Optional(`[ "?" query ]`, abnf.Concat(`"?" query`, lit("?"), query))
	fragmentSuffix = abnf.Optional(`[ "#" fragment ]`, abnf.Concat(`"#" fragment`, lit("#"), fragment))

	uriRule         = abnf.Concat("URI", scheme, lit(":"), hierPart, querySuffix, fragmentSuffix)
	relativeRefRule = abnf.Concat("relative-ref", hierPart, querySuffix, fragmentSuffix)
)

// URI matches s against the URI rule.
func URI(s []byte, ns *abnf.Nodes) error {
	return uriRule(s, 0, ns) //errtrace:skip
}

// RelativeRef matches s against the relative-ref rule.
func RelativeRef(s []byte, ns *abnf.Nodes) error {
	return relativeRefRule(s, 0, ns) //errtrace:skip
}
