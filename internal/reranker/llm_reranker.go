package reranker

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lexbr/precedentes/internal/llm"
	"github.com/lexbr/precedentes/internal/scoring"
)

// similarityStep is the per-position similarity decay in the reranked path:
// position i gets 1 - i*similarityStep.
const similarityStep = 0.05

// holdingPreviewLen caps the holding excerpt in the rerank prompt to keep
// the prompt compact for 40 candidates.
const holdingPreviewLen = 150

// LLMReranker asks an LLM for the TopN most relevant candidate indices,
// most-to-least relevant, as a delimited list. Decoding is always
// deterministic (temperature 0, thinking disabled).
type LLMReranker struct {
	llmClient llm.LLM
	model     string
	maxTokens int
}

// LLMRerankerOption is a functional option for configuring LLMReranker.
type LLMRerankerOption func(*LLMReranker)

// WithModel sets the model to use for reranking.
func WithModel(model string) LLMRerankerOption {
	return func(r *LLMReranker) {
		r.model = model
	}
}

// NewLLMReranker creates an LLM-based reranker.
func NewLLMReranker(llmClient llm.LLM, opts ...LLMRerankerOption) *LLMReranker {
	r := &LLMReranker{
		llmClient: llmClient,
		maxTokens: 128,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rerank builds the indexed candidate prompt, parses the returned index list
// and reorders the candidates. Position i in the new order gets similarity
// 1 - i*0.05. Any failure (transport, empty or unparseable response) is
// returned to the caller, which falls back to the unreranked candidates.
func (r *LLMReranker) Rerank(ctx context.Context, query string, candidates []scoring.RankedPrecedent) ([]scoring.RankedPrecedent, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	prompt := r.buildPrompt(query, candidates)

	opts := llm.GenerateOptions{
		Model:           r.model,
		Temperature:     0.0,
		TopP:            1.0,
		MaxTokens:       r.maxTokens,
		DisableThinking: true,
	}

	response, err := r.llmClient.Generate(ctx, prompt, opts)
	if err != nil {
		return nil, fmt.Errorf("rerank call failed: %w", err)
	}

	indices := parseIndices(response, len(candidates))
	if len(indices) == 0 {
		return nil, fmt.Errorf("rerank response has no usable indices: %q", truncateForError(response))
	}

	reordered := make([]scoring.RankedPrecedent, 0, TopN)
	for _, idx := range indices {
		if len(reordered) == TopN {
			break
		}
		c := candidates[idx]
		c.Similarity = 1 - float64(len(reordered))*similarityStep
		reordered = append(reordered, c)
	}

	return reordered, nil
}

// buildPrompt renders each candidate as one compact indexed line:
// type, number, court, title and the first 150 characters of the holding.
func (r *LLMReranker) buildPrompt(query string, candidates []scoring.RankedPrecedent) string {
	var sb strings.Builder

	sb.WriteString("Você é um assistente jurídico. Avalie a relevância dos precedentes abaixo para a consulta.\n\n")
	sb.WriteString("Consulta: ")
	sb.WriteString(query)
	sb.WriteString("\n\nPrecedentes:\n")

	for i, c := range candidates {
		holding := c.Holding()
		if utf8.RuneCountInString(holding) > holdingPreviewLen {
			holding = string([]rune(holding)[:holdingPreviewLen])
		}
		fmt.Fprintf(&sb, "[%d] %s %s - %s - %s: %s\n", i, c.TipoProcesso, c.Numero, c.Tribunal, c.Titulo, holding)
	}

	fmt.Fprintf(&sb, "\nResponda APENAS com os índices dos %d precedentes mais relevantes, do mais para o menos relevante, separados por vírgula. Exemplo: 3,0,7\n", TopN)

	return sb.String()
}

// parseIndices extracts integers from a delimited list, keeping in-range
// values in order of first appearance.
func parseIndices(response string, numCandidates int) []int {
	fields := strings.FieldsFunc(response, func(r rune) bool {
		return r < '0' || r > '9'
	})

	seen := make(map[int]struct{}, len(fields))
	var indices []int
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		if n < 0 || n >= numCandidates {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		indices = append(indices, n)
	}

	return indices
}

func truncateForError(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 80 {
		return s[:80] + "..."
	}
	return s
}

var _ Reranker = (*LLMReranker)(nil)
