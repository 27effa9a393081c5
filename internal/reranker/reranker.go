// Package reranker provides second-pass reordering of a bounded candidate
// set using a more expensive relevance judgment (an LLM call).
//
// Reranking is optional: when no LLM collaborator is configured the engine
// returns the scorer's own ordering. A reranker failure is never surfaced to
// the caller; the orchestrator degrades to the unreranked top candidates.
package reranker

import (
	"context"

	"github.com/lexbr/precedentes/internal/scoring"
)

// TopN is how many candidates the reranking stage returns.
const TopN = 10

// Reranker reorders scored candidates by relevance to the query and returns
// at most TopN of them with updated similarities.
type Reranker interface {
	Rerank(ctx context.Context, query string, candidates []scoring.RankedPrecedent) ([]scoring.RankedPrecedent, error)
}

// Noop is the default reranker: it keeps the scorer's ordering and truncates
// to TopN. It never fails.
type Noop struct{}

// Rerank implements Reranker.
func (Noop) Rerank(_ context.Context, _ string, candidates []scoring.RankedPrecedent) ([]scoring.RankedPrecedent, error) {
	return Truncate(candidates), nil
}

// Truncate bounds a candidate list to TopN without reordering.
func Truncate(candidates []scoring.RankedPrecedent) []scoring.RankedPrecedent {
	if len(candidates) > TopN {
		return candidates[:TopN]
	}
	return candidates
}

var _ Reranker = Noop{}
