// Package thesaurus expands query terms against a legal synonym dictionary.
//
// Expansion is bidirectional on substrings: a token hits an entry when the
// token contains the dictionary term, the term contains the token, or the
// same holds for any of the term's synonyms. A hit adds the term and all of
// its synonyms to the result. Expansion is one hop only; synonyms of
// synonyms are not chased.
package thesaurus

import (
	"sort"
	"strings"

	"github.com/lexbr/precedentes/internal/normalizer"
)

// Thesaurus holds an immutable term -> synonyms dictionary, keyed and stored
// in normalized form.
type Thesaurus struct {
	norm    *normalizer.Normalizer
	entries map[string][]string
}

// New builds a Thesaurus from the default legal dictionary.
func New(norm *normalizer.Normalizer) *Thesaurus {
	return NewWithEntries(norm, defaultDictionary)
}

// NewWithEntries builds a Thesaurus from a custom dictionary. Terms and
// synonyms are normalized once here so lookups never re-normalize corpus
// data.
func NewWithEntries(norm *normalizer.Normalizer, dict map[string][]string) *Thesaurus {
	entries := make(map[string][]string, len(dict))
	for term, syns := range dict {
		nt := norm.Normalize(term)
		if nt == "" {
			continue
		}
		ns := make([]string, 0, len(syns))
		for _, s := range syns {
			if v := norm.Normalize(s); v != "" {
				ns = append(ns, v)
			}
		}
		entries[nt] = ns
	}
	return &Thesaurus{norm: norm, entries: entries}
}

// ExpandTokens expands each token independently and returns the union of all
// hits, duplicate-free and sorted for deterministic output. The input tokens
// themselves are not included.
func (t *Thesaurus) ExpandTokens(tokens []string) []string {
	set := make(map[string]struct{})
	for _, tok := range tokens {
		nt := t.norm.Normalize(tok)
		if nt == "" {
			continue
		}
		for term, syns := range t.entries {
			if t.matches(nt, term, syns) {
				set[term] = struct{}{}
				for _, s := range syns {
					set[s] = struct{}{}
				}
			}
		}
	}
	return sorted(set)
}

// ExpandPhrase is the stricter free-text variant: only entries whose term is
// a substring of the entire normalized phrase (or contains it) are expanded.
// Synonyms do not participate in the matching test, only in the output.
func (t *Thesaurus) ExpandPhrase(phrase string) []string {
	np := t.norm.Normalize(phrase)
	if np == "" {
		return nil
	}

	set := make(map[string]struct{})
	for term, syns := range t.entries {
		if contains(np, term) || contains(term, np) {
			set[term] = struct{}{}
			for _, s := range syns {
				set[s] = struct{}{}
			}
		}
	}
	return sorted(set)
}

// matches reports whether the token hits the entry through the term itself
// or any of its synonyms.
func (t *Thesaurus) matches(token, term string, syns []string) bool {
	if contains(token, term) || contains(term, token) {
		return true
	}
	for _, s := range syns {
		if contains(token, s) || contains(s, token) {
			return true
		}
	}
	return false
}

func contains(haystack, needle string) bool {
	return needle != "" && strings.Contains(haystack, needle)
}

func sorted(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
