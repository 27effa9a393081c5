package reranker

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/lexbr/precedentes/internal/llm"
	"github.com/lexbr/precedentes/internal/repository"
	"github.com/lexbr/precedentes/internal/scoring"
)

// fakeLLM returns a canned response and records the prompt and options.
type fakeLLM struct {
	response string
	err      error
	prompt   string
	opts     llm.GenerateOptions
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, opts llm.GenerateOptions) (string, error) {
	f.prompt = prompt
	f.opts = opts
	return f.response, f.err
}

func candidates(n int) []scoring.RankedPrecedent {
	out := make([]scoring.RankedPrecedent, n)
	for i := range out {
		out[i] = scoring.RankedPrecedent{
			Precedent: repository.Precedent{
				ID:           string(rune('a' + i)),
				TipoProcesso: "Súmula",
				Tribunal:     "TST",
				Numero:       "331",
				Titulo:       "Terceirização",
				Tese:         strings.Repeat("tese longa sobre terceirização de serviços ", 10),
			},
			Score: 100 - i,
		}
	}
	return out
}

func TestLLMReranker_ReordersByIndices(t *testing.T) {
	fake := &fakeLLM{response: "2, 0, 1"}
	r := NewLLMReranker(fake)

	got, err := r.Rerank(context.Background(), "terceirização", candidates(3))
	if err != nil {
		t.Fatalf("Rerank: %v", err)
	}

	wantIDs := []string{"c", "a", "b"}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, want)
		}
		wantSim := 1 - float64(i)*0.05
		if math.Abs(got[i].Similarity-wantSim) > 1e-9 {
			t.Errorf("position %d: similarity %v, want %v", i, got[i].Similarity, wantSim)
		}
	}
}

func TestLLMReranker_DropsOutOfRangeAndDuplicates(t *testing.T) {
	fake := &fakeLLM{response: "7, 1, 99, 1, -3, 0"}
	r := NewLLMReranker(fake)

	got, err := r.Rerank(context.Background(), "q", candidates(4))
	if err != nil {
		t.Fatalf("Rerank: %v", err)
	}

	wantIDs := []string{"b", "a"}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d results, got %v", len(wantIDs), len(got))
	}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestLLMReranker_BoundsOutputToTopN(t *testing.T) {
	// Model returns more indices than TopN.
	fake := &fakeLLM{response: "0,1,2,3,4,5,6,7,8,9,10,11,12"}
	r := NewLLMReranker(fake)

	got, err := r.Rerank(context.Background(), "q", candidates(13))
	if err != nil {
		t.Fatalf("Rerank: %v", err)
	}
	if len(got) != TopN {
		t.Errorf("expected %d results, got %d", TopN, len(got))
	}
}

func TestLLMReranker_ErrorsPropagateToCaller(t *testing.T) {
	fake := &fakeLLM{err: errors.New("boom")}
	r := NewLLMReranker(fake)

	if _, err := r.Rerank(context.Background(), "q", candidates(5)); err == nil {
		t.Error("expected transport error to propagate")
	}

	fake = &fakeLLM{response: "nenhum índice aqui"}
	r = NewLLMReranker(fake)
	if _, err := r.Rerank(context.Background(), "q", candidates(5)); err == nil {
		t.Error("expected unparseable response to error")
	}
}

func TestLLMReranker_DeterministicDecoding(t *testing.T) {
	fake := &fakeLLM{response: "0"}
	r := NewLLMReranker(fake)

	if _, err := r.Rerank(context.Background(), "q", candidates(2)); err != nil {
		t.Fatalf("Rerank: %v", err)
	}
	if fake.opts.Temperature != 0 {
		t.Errorf("temperature = %v, want 0", fake.opts.Temperature)
	}
	if !fake.opts.DisableThinking {
		t.Error("expected thinking disabled")
	}
}

func TestLLMReranker_PromptIsCompactAndIndexed(t *testing.T) {
	fake := &fakeLLM{response: "0"}
	r := NewLLMReranker(fake)

	cands := candidates(2)
	if _, err := r.Rerank(context.Background(), "terceirização lícita", cands); err != nil {
		t.Fatalf("Rerank: %v", err)
	}

	if !strings.Contains(fake.prompt, "[0]") || !strings.Contains(fake.prompt, "[1]") {
		t.Error("prompt must index every candidate")
	}
	if !strings.Contains(fake.prompt, "terceirização lícita") {
		t.Error("prompt must carry the query")
	}
	// The holding excerpt is capped, so the full tese must not be present.
	if strings.Contains(fake.prompt, cands[0].Tese) {
		t.Error("prompt must truncate the holding text")
	}
}

func TestNoop_TruncatesWithoutReordering(t *testing.T) {
	got, err := Noop{}.Rerank(context.Background(), "q", candidates(15))
	if err != nil {
		t.Fatalf("Rerank: %v", err)
	}
	if len(got) != TopN {
		t.Fatalf("expected %d results, got %d", TopN, len(got))
	}
	for i := 0; i < TopN; i++ {
		if got[i].ID != string(rune('a'+i)) {
			t.Errorf("noop must keep order, position %d got %s", i, got[i].ID)
		}
	}
}

func TestParseIndices(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want []int
	}{
		{"3,0,7", 10, []int{3, 0, 7}},
		{"Os mais relevantes são: 2, 1 e 0.", 5, []int{2, 1, 0}},
		{"", 5, nil},
		{"12, 13", 5, nil},
	}

	for _, tt := range tests {
		got := parseIndices(tt.in, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("parseIndices(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseIndices(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}
