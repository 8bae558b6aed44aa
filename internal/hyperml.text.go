package internal

import (
	"fmt"

	"github.com/spf13/cast"
)

// ToText converts a value to the text written into markup.
// ok is false for nil, which callers treat as "no value".
func ToText(v any) (text string, ok bool) {
	if v == nil {
		return StringValueEmpty, false
	}
	if s, isStr := v.(string); isStr {
		return s, true
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		// cast only knows scalars and Stringers; fall back to the default format
		return fmt.Sprint(v), true
	}
	return s, true
}
