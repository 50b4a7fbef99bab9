// Package keyword implements the keyword predicate shared by run aggregation and
// discussion filtering
// A query is split on whitespace; every token must occur somewhere in the haystack
// (case-insensitive, order-independent, no word boundaries)
package keyword

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// casers are not safe for concurrent use, so each call borrows one
var casePool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// Lower returns the Unicode lower-cased form of s
func Lower(s string) string {
	if s == "" {
		return ""
	}
	c := casePool.Get().(*cases.Caser)
	out := c.String(s)
	casePool.Put(c)
	return out
}

// Tokens lower-cases query and returns its non-empty whitespace separated tokens
func Tokens(query string) []string {
	return strings.Fields(Lower(query))
}

// Matches reports whether every token of query is a substring of haystack
// An empty or all-whitespace query matches everything
func Matches(haystack, query string) bool {
	toks := Tokens(query)
	if len(toks) == 0 {
		return true
	}
	return MatchesTokens(Lower(haystack), toks)
}

// MatchesTokens is Matches for a haystack and tokens that are already lower-cased
func MatchesTokens(lowerHaystack string, toks []string) bool {
	for _, t := range toks {
		if !strings.Contains(lowerHaystack, t) {
			return false
		}
	}
	return true
}
