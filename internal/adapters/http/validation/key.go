package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeKey reduces a field key to the lower-camel name of its last path
// segment: "$.id" and "$.character.Id" become "id", "items[0].Name" becomes
// "name". Keys without a usable segment are returned trimmed.
func NormalizeKey(key string) string {
	key = strings.TrimPrefix(strings.TrimSpace(key), "$")

	segments := strings.FieldsFunc(key, func(r rune) bool {
		return r == '.' || r == '[' || r == ']'
	})
	if len(segments) == 0 {
		return key
	}

	last := segments[len(segments)-1]
	r, size := utf8.DecodeRuneInString(last)
	return string(unicode.ToLower(r)) + last[size:]
}
