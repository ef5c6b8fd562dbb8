package domain

import "strings"

// NormalizeText coerces an arbitrary decoded JSON value into a trimmed
// string. Non-string values (numbers, objects, nil, ...) become "".
// Empty-after-trim is indistinguishable from absent for every consumer.
func NormalizeText(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
