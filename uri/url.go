package uri

import (
	"net/url"

	"braces.dev/errtrace"

	"github.com/ghettovoice/urin/internal/errorutil"
)

// URL converts the URI to [url.URL] by parsing its encoded form.
// The conversion fails when net/url rejects the URI, e.g. for registered names with escaped control or space characters.
func (u *URI) URL() (*url.URL, error) {
	if u == nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrURLConversion, "nil URI"))
	}
	pu, err := url.Parse(u.Render())
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrURLConversion, err))
	}
	return pu, nil
}

// FromURL converts [url.URL] to the URI.
// Relative URLs without scheme are rejected.
func FromURL(pu *url.URL) (*URI, error) {
	if pu == nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrURLConversion, "nil URL"))
	}
	if pu.Scheme == "" {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrURLConversion, "URL has no scheme [%s]", pu))
	}
	u, err := ParseURI(pu.String())
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrURLConversion, err))
	}
	return u, nil
}
