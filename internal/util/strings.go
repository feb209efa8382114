package util

import (
	"strings"
	"sync"
)

// LCase returns s with all letters mapped to lower case.
// Invalid UTF-8 sequences are replaced with U+FFFD.
func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(256)
		return sb
	},
}

// GetStringBuilder takes a builder from the pool.
// The builder must be returned with [FreeStringBuilder] after its string is taken.
func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
