package thesaurus

import (
	"testing"

	"github.com/lexbr/precedentes/internal/normalizer"
)

func newTestThesaurus() *Thesaurus {
	norm := normalizer.New()
	return NewWithEntries(norm, map[string][]string{
		"horas extras": {"jornada extraordinária", "sobrejornada"},
		"dano moral":   {"danos morais", "abalo moral"},
	})
}

func TestExpandTokens_SynonymHit(t *testing.T) {
	th := newTestThesaurus()

	// "sobrejornada" is a synonym; the hit must pull in the term and ALL of
	// its synonyms.
	got := th.ExpandTokens([]string{"sobrejornada"})

	want := map[string]bool{
		"horas extras":           true,
		"jornada extraordinaria": true,
		"sobrejornada":           true,
	}
	if len(got) != len(want) {
		t.Fatalf("ExpandTokens = %v, want keys %v", got, want)
	}
	for _, term := range got {
		if !want[term] {
			t.Errorf("unexpected expansion %q", term)
		}
	}
}

func TestExpandTokens_SubstringBothDirections(t *testing.T) {
	th := newTestThesaurus()

	// Token contained in the term.
	if got := th.ExpandTokens([]string{"moral"}); len(got) == 0 {
		t.Error("token contained in a term should expand")
	}

	// Term contained in the token.
	if got := th.ExpandTokens([]string{"sobrejornadas"}); len(got) == 0 {
		t.Error("synonym contained in the token should expand")
	}
}

func TestExpandTokens_NoHit(t *testing.T) {
	th := newTestThesaurus()

	if got := th.ExpandTokens([]string{"usucapiao"}); got != nil {
		t.Errorf("expected nil for unrelated token, got %v", got)
	}
	if got := th.ExpandTokens(nil); got != nil {
		t.Errorf("expected nil for nil input, got %v", got)
	}
}

func TestExpandTokens_OrderIndependentAndDeduplicated(t *testing.T) {
	th := newTestThesaurus()

	a := th.ExpandTokens([]string{"moral", "sobrejornada"})
	b := th.ExpandTokens([]string{"sobrejornada", "moral"})

	if len(a) != len(b) {
		t.Fatalf("expansion differs by input order: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("expansion differs by input order: %v vs %v", a, b)
			break
		}
	}

	seen := map[string]bool{}
	for _, term := range a {
		if seen[term] {
			t.Errorf("duplicate expansion %q", term)
		}
		seen[term] = true
	}
}

func TestExpandPhrase_WholePhraseOnly(t *testing.T) {
	th := newTestThesaurus()

	// The phrase contains the dictionary term.
	if got := th.ExpandPhrase("Horas Extras habituais"); len(got) == 0 {
		t.Error("phrase containing a term should expand")
	}

	// Phrase contained in a term.
	if got := th.ExpandPhrase("dano"); len(got) == 0 {
		t.Error("phrase contained in a term should expand")
	}

	// Individual words hit different entries but the whole phrase hits none.
	if got := th.ExpandPhrase("extras indevidas de moral"); got != nil {
		t.Errorf("phrase-level expansion must not fall back to tokens, got %v", got)
	}

	if got := th.ExpandPhrase(""); got != nil {
		t.Errorf("expected nil for empty phrase, got %v", got)
	}
}
