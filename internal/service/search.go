// Package service orchestrates the precedent search pipeline: cache lookup,
// corpus load, scoring, optional LLM reranking and cache store.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lexbr/precedentes/internal/cache"
	"github.com/lexbr/precedentes/internal/repository"
	"github.com/lexbr/precedentes/internal/reranker"
	"github.com/lexbr/precedentes/internal/scoring"
)

// minCandidatesForRerank is the smallest candidate set worth an LLM call.
const minCandidatesForRerank = 4

// SearchService runs the retrieve-then-rerank pipeline. The corpus loader is
// required; cache and reranker are injectable and default to an in-memory
// TTL cache and the no-op reranker.
type SearchService struct {
	corpus   repository.CorpusLoader
	scorer   *scoring.Scorer
	reranker reranker.Reranker
	cache    cache.Cache
	clock    cache.Clock
	logger   *slog.Logger
}

// SearchServiceOption is a functional option for configuring SearchService.
type SearchServiceOption func(*SearchService)

// WithReranker sets the reranking collaborator.
func WithReranker(r reranker.Reranker) SearchServiceOption {
	return func(s *SearchService) {
		if r != nil {
			s.reranker = r
		}
	}
}

// WithCache sets the result cache backend.
func WithCache(c cache.Cache) SearchServiceOption {
	return func(s *SearchService) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithClock injects the clock used for cache timestamps.
func WithClock(clock cache.Clock) SearchServiceOption {
	return func(s *SearchService) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) SearchServiceOption {
	return func(s *SearchService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSearchService creates a SearchService.
func NewSearchService(corpus repository.CorpusLoader, scorer *scoring.Scorer, opts ...SearchServiceOption) *SearchService {
	s := &SearchService{
		corpus:   corpus,
		scorer:   scorer,
		reranker: reranker.Noop{},
		cache:    cache.NewMemory(cache.DefaultTTL),
		clock:    cache.SystemClock,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns the ranked precedents for a topic (title plus optional
// narrative context) or, when filters.SearchTerm is set, for a free-text
// query. Degenerate inputs yield an empty result, never an error; only a
// corpus-load failure propagates. A fresh cache entry short-circuits the
// whole pipeline and is returned verbatim.
func (s *SearchService) Search(ctx context.Context, topic, contexto string, filters scoring.Filters) ([]scoring.RankedPrecedent, error) {
	key := cacheKey(topic, contexto, filters)

	if entry, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("cache lookup failed", "error", err)
	} else if ok {
		return entry.Results, nil
	}

	corpus, err := s.corpus.LoadCorpus(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	if len(corpus) == 0 {
		// Nothing to score; an empty corpus is not cached so a later load
		// can succeed within the TTL window.
		return []scoring.RankedPrecedent{}, nil
	}

	candidates := s.scorer.FindPrecedents(topic, contexto, filters, corpus)

	results := s.rerank(ctx, rerankQuery(topic, contexto, filters), candidates)
	if results == nil {
		results = []scoring.RankedPrecedent{}
	}

	if err := s.cache.Set(ctx, key, cache.Entry{Results: results, StoredAt: s.clock.Now()}); err != nil {
		s.logger.Warn("cache store failed", "error", err)
	}

	return results, nil
}

// rerank applies the LLM reranker to candidate sets large enough to be worth
// the call. A reranker failure degrades to the unreranked top candidates
// with one warning; it never propagates.
func (s *SearchService) rerank(ctx context.Context, query string, candidates []scoring.RankedPrecedent) []scoring.RankedPrecedent {
	if len(candidates) < minCandidatesForRerank {
		return reranker.Truncate(candidates)
	}

	reranked, err := s.reranker.Rerank(ctx, query, candidates)
	if err != nil {
		s.logger.Warn("reranking failed, keeping scorer order", "error", err)
		return reranker.Truncate(candidates)
	}
	if len(reranked) == 0 {
		return reranker.Truncate(candidates)
	}
	return reranked
}

// rerankQuery is the text shown to the reranker as the user's intent.
func rerankQuery(topic, contexto string, filters scoring.Filters) string {
	if strings.TrimSpace(filters.SearchTerm) != "" {
		return filters.SearchTerm
	}
	if contexto == "" {
		return topic
	}
	return topic + "\n" + contexto
}

// cacheKey derives the cache key from the topic, a hash of the narrative
// context and the canonical filter serialization.
func cacheKey(topic, contexto string, filters scoring.Filters) string {
	contextHash := sha256.Sum256([]byte(contexto))

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		// Filters is a plain struct; Marshal cannot fail on it.
		filtersJSON = nil
	}

	h := sha256.New()
	h.Write([]byte(topic))
	h.Write([]byte{0})
	h.Write(contextHash[:])
	h.Write([]byte{0})
	h.Write(filtersJSON)
	return hex.EncodeToString(h.Sum(nil))
}
