// Package normalizer provides text normalization and tokenization for
// Portuguese legal text. Normalization is total and pure: any input maps to a
// lowercase, accent-free, single-spaced string over [a-z0-9 ].
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer normalizes and tokenizes query and corpus text. The stopword set
// is built once at construction so independent instances (e.g. per locale)
// can coexist.
type Normalizer struct {
	stopwords map[string]struct{}
}

// Option is a functional option for configuring Normalizer.
type Option func(*Normalizer)

// WithStopwords replaces the default Portuguese stopword set.
func WithStopwords(words []string) Option {
	return func(n *Normalizer) {
		n.stopwords = make(map[string]struct{}, len(words))
		for _, w := range words {
			n.stopwords[n.Normalize(w)] = struct{}{}
		}
	}
}

// New creates a Normalizer with the default Portuguese stopword set.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{}

	stop := make(map[string]struct{}, len(defaultStopwords))
	for _, w := range defaultStopwords {
		stop[n.Normalize(w)] = struct{}{}
	}
	n.stopwords = stop

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// stripAccents decomposes to NFD and drops the combining marks.
var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lowercases the input, strips diacritics, removes every character
// outside [a-z0-9 ], collapses runs of whitespace and trims. Idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)

	plain, _, err := transform.String(stripAccents, lower)
	if err != nil {
		// The chain cannot fail on valid UTF-8; keep the lowercased text
		// for malformed input rather than erroring out.
		plain = lower
	}

	var sb strings.Builder
	sb.Grow(len(plain))
	lastSpace := true
	for _, r := range plain {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastSpace = false
		default:
			if !lastSpace {
				sb.WriteByte(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimRight(sb.String(), " ")
}

// Tokenize normalizes the text, splits it on whitespace and drops tokens
// shorter than minLen as well as stopwords. Titles use minLen 2, narrative
// context and free-text queries use minLen 3.
func (n *Normalizer) Tokenize(text string, minLen int) []string {
	normalized := n.Normalize(text)
	if normalized == "" {
		return nil
	}

	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minLen {
			continue
		}
		if _, stop := n.stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}

	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// IsStopword reports whether the normalized form of w is in the stopword set.
func (n *Normalizer) IsStopword(w string) bool {
	_, ok := n.stopwords[n.Normalize(w)]
	return ok
}
