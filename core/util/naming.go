package util

import (
	"strings"
	"unicode"
)

// fieldExceptions are keys whose wire name is the key lowercased as a single
// token instead of its snake_case form.
var fieldExceptions = map[string]struct{}{
	"shareType": {},
}

// NormalizeFields rewrites the keys of data from camelCase to the contract's
// snake_case naming. Values pass through untouched.
//
// Example:
//
//	{marketId: 4, shareType: true} -> {market_id: 4, sharetype: true}
func NormalizeFields(data Fields) Fields {
	out := make(Fields, 0, len(data))
	for _, field := range data {
		out = out.With(NormalizeKey(field.Key), field.Value)
	}
	return out
}

// NormalizeKey returns the wire name of a single key.
func NormalizeKey(key string) string {
	if _, ok := fieldExceptions[key]; ok {
		return strings.ToLower(key)
	}
	return CamelToSnake(key)
}

// CamelToSnake inserts an underscore before every internal uppercase letter
// and lowercases it. Keys without capitals are returned unchanged.
func CamelToSnake(key string) string {
	if strings.IndexFunc(key, unicode.IsUpper) < 0 {
		return key
	}

	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
