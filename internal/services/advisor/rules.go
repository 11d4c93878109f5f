package advisor

import "strings"

// rule maps a set of keywords to an outcome. A rule matches when the lowercased
// description contains any of its keywords.
type rule[T any] struct {
	keywords []string
	outcome  T
}

func (r rule[T]) matches(description string) bool {
	for _, k := range r.keywords {
		if strings.Contains(description, k) {
			return true
		}
	}
	return false
}

// firstMatch evaluates rules in order and returns the outcome of the first hit.
func firstMatch[T any](rules []rule[T], description string, fallback T) T {
	description = strings.ToLower(description)
	for _, r := range rules {
		if r.matches(description) {
			return r.outcome
		}
	}
	return fallback
}

func contains(description, keyword string) bool {
	return strings.Contains(strings.ToLower(description), keyword)
}
