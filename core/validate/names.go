package validate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsValidName reports whether s is a plausible display name: at least three
// characters after trimming, not starting with a lowercase letter, and
// containing at least one ASCII letter. It rejects fragments such as ")",
// "2." or "s 1-5)" that loose heading matches pick up.
func IsValidName(s string) bool {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) < 3 {
		return false
	}
	if first, _ := utf8.DecodeRuneInString(s); first >= 'a' && first <= 'z' {
		return false
	}
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// IsSuiteAggregate reports whether name denotes a heading that summarises
// several units, which must never become a record of its own.
func IsSuiteAggregate(name string) bool {
	return strings.Contains(strings.ToLower(name), "suite")
}

// ResolveNumber resolves a unit number from a decoded JSON value or text.
// Numbers must be positive integers. Strings yield their first run of digits.
// Anything else, including a missing value, is rejected.
func ResolveNumber(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, n > 0
	case int64:
		return positive(float64(n))
	case float64:
		return positive(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return positive(float64(i))
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return positive(f)
	case string:
		return firstDigitRun(n)
	default:
		return 0, false
	}
}

func positive(f float64) (int, bool) {
	if f < 1 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func firstDigitRun(s string) (int, bool) {
	start := strings.IndexFunc(s, isDigit)
	if start == -1 {
		return 0, false
	}
	end := start
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
