package tags

import "strings"

// Rule maps a literal pattern to a value.
type Rule[T any] struct {
	Pattern string
	Value   T
}

// Vocabulary is an ordered rule list matched case-insensitively by
// substring. The first matching rule wins, so specific patterns must
// precede the general patterns they contain.
type Vocabulary[T any] []Rule[T]

// Match returns the value of the first rule whose pattern occurs in s.
func (v Vocabulary[T]) Match(s string) (T, bool) {
	lower := strings.ToLower(s)
	for _, r := range v {
		if strings.Contains(lower, strings.ToLower(r.Pattern)) {
			return r.Value, true
		}
	}
	var zero T
	return zero, false
}

// MatchOr is Match with a default for unmatched input.
func (v Vocabulary[T]) MatchOr(s string, def T) T {
	if val, ok := v.Match(s); ok {
		return val
	}
	return def
}

// ContainsAny reports whether s contains any of the keywords,
// case-insensitively.
func ContainsAny(s string, keywords ...string) bool {
	lower := strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
