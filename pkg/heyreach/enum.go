package heyreach

import "strings"

// enumParser maps wire strings onto a closed enumeration. Matching is
// case-insensitive and ignores surrounding whitespace; anything outside the
// synonym table yields the fallback member.
type enumParser[T comparable] struct {
	members  map[string]T
	fallback T
}

func newEnumParser[T comparable](fallback T, synonyms map[T][]string) enumParser[T] {
	members := make(map[string]T)
	for member, tokens := range synonyms {
		for _, token := range tokens {
			members[foldToken(token)] = member
		}
	}
	return enumParser[T]{members: members, fallback: fallback}
}

func (p enumParser[T]) parse(s string) T {
	if member, ok := p.members[foldToken(s)]; ok {
		return member
	}
	return p.fallback
}

func foldToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
