package uri

import (
	"github.com/ghettovoice/urin/internal/errorutil"
	"github.com/ghettovoice/urin/internal/grammar"
)

// Error represents a URI error.
// See [errorutil.Error].
type Error = errorutil.Error

// Construction errors.
const (
	// ErrInvalidArgument is returned by constructors receiving decoded values that are out of range or malformed.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrOutOfRange is wrapped by [ErrInvalidArgument] for numbers outside of the component range.
	ErrOutOfRange Error = "value out of range"
	// ErrURLConversion is returned when a URI cannot be represented as [net/url.URL].
	ErrURLConversion Error = "URL conversion failed"
)

// Grammar errors are returned by the Parse functions.
// All of them satisfy errorutil.IsGrammarErr.
const (
	ErrEmptyInput      = grammar.ErrEmptyInput
	ErrMalformedInput  = grammar.ErrMalformedInput
	ErrMalformedEscape = grammar.ErrMalformedEscape
	ErrInvalidUTF8     = grammar.ErrInvalidUTF8
	ErrInvalidChar     = grammar.ErrInvalidChar

	ErrInvalidScheme grammar.Error = "invalid scheme"
	ErrInvalidHost   grammar.Error = "invalid host"
	ErrInvalidPort   grammar.Error = "invalid port"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}

func newOutOfRangeErr(args ...any) error {
	return NewInvalidArgumentError(errorutil.NewWrapperError(ErrOutOfRange, args...)) //errtrace:skip
}

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func newInvalidHostErr(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidHost, args...) //errtrace:skip
}
