package normalize

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var (
	listSplitRegex    = regexp.MustCompile(`[\n,;]+`)
	bulletPrefixRegex = regexp.MustCompile(`^\s*[-*•]\s*`)
)

// Lookup returns the value of the first alias present in obj with a non-null
// value.
func Lookup(obj map[string]any, aliases []string) (any, bool) {
	for _, key := range aliases {
		if v, ok := obj[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether any alias is present with a non-null value.
func Has(obj map[string]any, aliases []string) bool {
	_, ok := Lookup(obj, aliases)
	return ok
}

// LookupString is Lookup followed by String.
func LookupString(obj map[string]any, aliases []string) string {
	v, ok := Lookup(obj, aliases)
	if !ok {
		return ""
	}
	return String(v)
}

// String coerces a decoded JSON value to text. Scalars keep their literal
// form; arrays and objects are re-encoded as compact JSON.
func String(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}

// StringList coerces a value to a list of non-empty strings. Arrays keep
// their order and drop blank items; a string is split on newlines, commas and
// semicolons with list bullets removed. Anything else yields an empty,
// non-nil list.
func StringList(v any) []string {
	out := []string{}
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if item == nil {
				continue
			}
			if s := String(item); strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
	case []string:
		for _, s := range val {
			if strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, part := range listSplitRegex.Split(val, -1) {
			if s := strings.TrimSpace(bulletPrefixRegex.ReplaceAllString(part, "")); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
