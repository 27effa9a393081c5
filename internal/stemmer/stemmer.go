// Package stemmer implements an approximate suffix stripper for Portuguese
// legal vocabulary. It widens recall for morphological variants
// ("rescisória" ~ "rescisão", "habituais" ~ "habitual") and is never used as
// the sole match criterion.
package stemmer

import "strings"

// Suffix classes, each applied in one pass, in this order. Within a class
// suffixes are ordered longest first so the most specific strip wins.
var suffixClasses = [][]string{
	// nominalization
	{"amentos", "imentos", "amento", "imento", "acoes", "icoes", "acao", "icao", "ismos", "ismo"},
	// adjectival
	{"antes", "aveis", "iveis", "ante", "avel", "ivel", "osas", "osos", "osa", "oso"},
	// agentive
	{"adores", "edores", "idores", "adora", "ador", "edora", "edor", "idora", "idor"},
	// quality
	{"idades", "idade", "ancias", "encias", "ancia", "encia", "ezas", "eza"},
	// second agentive class
	{"istas", "ista", "eiras", "eiros", "eira", "eiro"},
	// class / number
	{"ais", "eis", "ois", "al", "el", "il", "ol"},
	// verbal infinitives
	{"ar", "er", "ir"},
	// residual plural
	{"es", "s"},
}

// minStemLen is the shortest remainder a strip may leave behind.
const minStemLen = 3

// Stem strips recognized suffixes from a normalized word. Each suffix class
// is tried once, in order, without iterating to a fixed point. Words shorter
// than three characters are returned unchanged.
func Stem(word string) string {
	if len(word) < minStemLen {
		return word
	}

	for _, class := range suffixClasses {
		for _, suffix := range class {
			if strings.HasSuffix(word, suffix) && len(word)-len(suffix) >= minStemLen {
				word = word[:len(word)-len(suffix)]
				break
			}
		}
	}

	return word
}
