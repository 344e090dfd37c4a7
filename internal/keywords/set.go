// Package keywords matches fixed keyword lists against free text using a
// single Aho-Corasick pass per lookup.
package keywords

import (
	"strings"
	"sync"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Set is an immutable keyword list. Matching is case-insensitive substring
// matching, so "park" also hits "parkway".
type Set struct {
	words   []string
	mu      sync.Mutex // the matcher keeps per-call state
	matcher *ahocorasick.Matcher
}

// NewSet builds a Set. Words are lower-cased; blanks and duplicates are dropped.
func NewSet(words ...string) *Set {
	seen := make(map[string]bool, len(words))
	s := &Set{}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		s.words = append(s.words, w)
	}
	if len(s.words) > 0 {
		s.matcher = ahocorasick.NewStringMatcher(s.words)
	}
	return s
}

// Words returns the keywords in declaration order.
func (s *Set) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Matches returns each distinct keyword found in any of texts, in
// declaration order.
func (s *Set) Matches(texts ...string) []string {
	if s.matcher == nil {
		return nil
	}
	haystack := []byte(strings.ToLower(strings.Join(texts, " ")))

	s.mu.Lock()
	hits := s.matcher.Match(haystack)
	s.mu.Unlock()

	found := make([]bool, len(s.words))
	for _, idx := range hits {
		if idx >= 0 && idx < len(found) {
			found[idx] = true
		}
	}
	var out []string
	for i, ok := range found {
		if ok {
			out = append(out, s.words[i])
		}
	}
	return out
}

// Count returns how many distinct keywords occur in texts.
func (s *Set) Count(texts ...string) int {
	return len(s.Matches(texts...))
}

// Any reports whether at least one keyword occurs in texts.
func (s *Set) Any(texts ...string) bool {
	return s.Count(texts...) > 0
}

// Contains reports whether word is one of the set's keywords. Unlike Any it
// compares whole values, which suits enum-like inputs such as place types.
func (s *Set) Contains(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	for _, w := range s.words {
		if w == word {
			return true
		}
	}
	return false
}

// AnyWord reports whether a keyword occurs in texts as whole words. Simple
// plurals count, so "bars" and "breweries" match "bar" and "brewery" while
// "barn" and "public" match neither "bar" nor "pub".
func (s *Set) AnyWord(texts ...string) bool {
	tokens := strings.FieldsFunc(strings.ToLower(strings.Join(texts, " ")), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(tokens) == 0 {
		return false
	}
	padded := " " + strings.Join(tokens, " ") + " "
	for _, w := range s.words {
		for _, form := range wordForms(w) {
			if strings.Contains(padded, " "+form+" ") {
				return true
			}
		}
	}
	return false
}

func wordForms(w string) []string {
	forms := []string{w, w + "s", w + "es"}
	if strings.HasSuffix(w, "y") {
		forms = append(forms, strings.TrimSuffix(w, "y")+"ies")
	}
	return forms
}
