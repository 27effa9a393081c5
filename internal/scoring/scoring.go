// Package scoring implements the precedent scorer/retriever: a multi-factor
// lexical scoring function with court-hierarchy boosting, in two mutually
// exclusive modes (free-text query vs. topic+context).
package scoring

import (
	"sort"
	"strings"

	"github.com/lexbr/precedentes/internal/normalizer"
	"github.com/lexbr/precedentes/internal/repository"
	"github.com/lexbr/precedentes/internal/stemmer"
	"github.com/lexbr/precedentes/internal/thesaurus"
)

const (
	// MaxCandidates bounds the retriever output.
	MaxCandidates = 40

	// contextWindow caps how many narrative-context tokens participate in
	// topic mode.
	contextWindow = 30

	// minTitleTokenLen / minContextTokenLen are the tokenizer length floors
	// for topic titles and for context / free-text queries.
	minTitleTokenLen   = 2
	minContextTokenLen = 3
)

// Free-text mode weights.
const (
	freeTermWeight   = 30 // raw token found in the searchable fields
	freeStemWeight   = 15 // stem found, counted only when the raw token missed
	freePhraseWeight = 20 // at least one phrase-level synonym hit, once
)

// Topic mode weights.
const (
	keywordWeight     = 20
	keywordStemWeight = 15
	tituloWeight      = 15
	teseWeight        = 10
	teseStemWeight    = 8
	contextTermWeight = 3
)

// Filters narrows the candidate set before scoring. SearchTerm switches the
// scorer to free-text mode.
type Filters struct {
	Tipo       []string `json:"tipo,omitempty"`
	Tribunal   []string `json:"tribunal,omitempty"`
	SearchTerm string   `json:"searchTerm,omitempty"`
}

// TipoVinculante is the pseudo-type accepted in Filters.Tipo: it matches any
// binding-precedent-shaped type code.
const TipoVinculante = "vinculante"

// RankedPrecedent is a scored corpus record. Score is internal to the
// pipeline; Similarity is the externally visible relevance in [0,1].
type RankedPrecedent struct {
	repository.Precedent
	Score      int     `json:"-"`
	Similarity float64 `json:"similarity"`
}

// Scorer scores the corpus against a query. Stateless apart from its
// immutable text-processing collaborators; safe for concurrent use.
type Scorer struct {
	norm *normalizer.Normalizer
	thes *thesaurus.Thesaurus
}

// New creates a Scorer.
func New(norm *normalizer.Normalizer, thes *thesaurus.Thesaurus) *Scorer {
	return &Scorer{norm: norm, thes: thes}
}

// FindPrecedents scores every status-valid, filter-matching precedent and
// returns the top MaxCandidates with positive score, descending. Similarity
// is the pure-scoring mapping score/1000 (clamped to 1); the reranked path
// overwrites it.
func (s *Scorer) FindPrecedents(topicTitle, context string, filters Filters, corpus []repository.Precedent) []RankedPrecedent {
	if len(corpus) == 0 {
		return nil
	}

	var ranked []RankedPrecedent
	if strings.TrimSpace(filters.SearchTerm) != "" {
		ranked = s.scoreFreeText(filters, corpus)
	} else {
		ranked = s.scoreTopic(topicTitle, context, filters, corpus)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > MaxCandidates {
		ranked = ranked[:MaxCandidates]
	}

	for i := range ranked {
		ranked[i].Similarity = similarityFromScore(ranked[i].Score)
	}

	return ranked
}

// scoreFreeText implements mode A. The minimum-match gate requires at least
// ceil(n/2) of the n query tokens to hit, unless the whole phrase hit the
// thesaurus, which always qualifies.
func (s *Scorer) scoreFreeText(filters Filters, corpus []repository.Precedent) []RankedPrecedent {
	tokens := s.norm.Tokenize(filters.SearchTerm, minContextTokenLen)
	if len(tokens) == 0 {
		return nil
	}

	phraseTerms := s.thes.ExpandPhrase(filters.SearchTerm)
	minMatches := (len(tokens) + 1) / 2

	var ranked []RankedPrecedent
	for i := range corpus {
		p := &corpus[i]
		if !p.StatusValid() || !s.matchesFilters(p, filters) {
			continue
		}

		fields := s.searchableText(p)

		raw, stem := 0, 0
		for _, tok := range tokens {
			switch {
			case strings.Contains(fields, tok):
				raw++
			case strings.Contains(fields, stemmer.Stem(tok)):
				stem++
			}
		}

		phraseHit := false
		for _, term := range phraseTerms {
			if strings.Contains(fields, term) {
				phraseHit = true
				break
			}
		}

		if raw+stem < minMatches && len(phraseTerms) == 0 {
			continue
		}

		score := raw*freeTermWeight + stem*freeStemWeight
		if phraseHit {
			score += freePhraseWeight
		}
		if score == 0 {
			continue
		}

		score += hierarchyBoost(p)
		ranked = append(ranked, RankedPrecedent{Precedent: *p, Score: score})
	}

	return ranked
}

// scoreTopic implements mode B: title terms (thesaurus-expanded) scored
// against keywords, title and holding; expanded context terms add a small
// bonus. No minimum-match gate; a zero score simply excludes.
func (s *Scorer) scoreTopic(topicTitle, context string, filters Filters, corpus []repository.Precedent) []RankedPrecedent {
	titleTokens := s.norm.Tokenize(topicTitle, minTitleTokenLen)

	contextTokens := s.norm.Tokenize(context, minContextTokenLen)
	if len(contextTokens) > contextWindow {
		contextTokens = contextTokens[:contextWindow]
	}

	titleTerms := union(titleTokens, s.thes.ExpandTokens(titleTokens))
	contextTerms := s.thes.ExpandTokens(contextTokens)

	if len(titleTerms) == 0 && len(contextTerms) == 0 {
		return nil
	}

	var ranked []RankedPrecedent
	for i := range corpus {
		p := &corpus[i]
		if !p.StatusValid() || !s.matchesFilters(p, filters) {
			continue
		}

		keywords := s.norm.Normalize(strings.Join(p.Keywords, " "))
		titulo := s.norm.Normalize(p.Titulo)
		holding := s.norm.Normalize(p.Holding())

		score := 0
		for _, term := range titleTerms {
			st := stemmer.Stem(term)
			switch {
			case keywords != "" && strings.Contains(keywords, term):
				score += keywordWeight
			case keywords != "" && strings.Contains(keywords, st):
				score += keywordStemWeight
			}
			if titulo != "" && strings.Contains(titulo, term) {
				score += tituloWeight
			}
			switch {
			case holding != "" && strings.Contains(holding, term):
				score += teseWeight
			case holding != "" && strings.Contains(holding, st):
				score += teseStemWeight
			}
		}

		for _, term := range contextTerms {
			if (holding != "" && strings.Contains(holding, term)) ||
				(titulo != "" && strings.Contains(titulo, term)) {
				score += contextTermWeight
			}
		}

		if score == 0 {
			continue
		}

		score += hierarchyBoost(p)
		ranked = append(ranked, RankedPrecedent{Precedent: *p, Score: score})
	}

	return ranked
}

// matchesFilters applies the tipo and tribunal allow-lists (AND semantics).
// Empty lists match everything.
func (s *Scorer) matchesFilters(p *repository.Precedent, filters Filters) bool {
	if len(filters.Tribunal) > 0 {
		trib := strings.ToUpper(strings.TrimSpace(p.Tribunal))
		ok := false
		for _, t := range filters.Tribunal {
			if strings.ToUpper(strings.TrimSpace(t)) == trib {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	if len(filters.Tipo) > 0 {
		tipo := s.norm.Normalize(p.TipoProcesso)
		ok := false
		for _, t := range filters.Tipo {
			nt := s.norm.Normalize(t)
			if nt == TipoVinculante && repository.IsBindingType(p.TipoProcesso) {
				ok = true
				break
			}
			if nt != "" && (tipo == nt || strings.Contains(tipo, nt)) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}

// searchableText concatenates the normalized searchable fields of a
// precedent (keywords, title, holding). Missing fields coalesce to "".
func (s *Scorer) searchableText(p *repository.Precedent) string {
	parts := []string{
		strings.Join(p.Keywords, " "),
		p.Titulo,
		p.Holding(),
	}
	return s.norm.Normalize(strings.Join(parts, " "))
}

func similarityFromScore(score int) float64 {
	sim := float64(score) / 1000
	if sim > 1 {
		sim = 1
	}
	if sim < 0 {
		sim = 0
	}
	return sim
}

func union(a, b []string) []string {
	if len(b) == 0 {
		return a
	}
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
