// Package repository defines the precedent corpus model and its data access
// interfaces.
package repository

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Precedent is one judicial authority record from the corpus. Field names
// follow the upstream corpus schema (Brazilian labor-law sources).
type Precedent struct {
	ID           string     `json:"id"`
	TipoProcesso string     `json:"tipoProcesso"`
	Tribunal     string     `json:"tribunal"`
	Orgao        string     `json:"orgao,omitempty"`
	Status       string     `json:"status,omitempty"`
	Titulo       string     `json:"titulo"`
	Tese         string     `json:"tese,omitempty"`
	Enunciado    string     `json:"enunciado,omitempty"`
	Keywords     StringList `json:"keywords,omitempty"`
	Numero       string     `json:"numero,omitempty"`
}

// Holding returns the searchable holding text, preferring tese over
// enunciado. Missing fields coalesce to "".
func (p *Precedent) Holding() string {
	if p.Tese != "" {
		return p.Tese
	}
	return p.Enunciado
}

// invalidStatuses permanently exclude a precedent from results regardless of
// score. Compared case-insensitively; an empty status is valid.
var invalidStatuses = map[string]struct{}{
	"cancelada":            {},
	"revogada":             {},
	"convertida":           {},
	"superado":             {},
	"convertida em súmula": {},
	"convertida em sumula": {},
}

// StatusValid reports whether the precedent's lifecycle status still admits
// it into search results.
func (p *Precedent) StatusValid() bool {
	if p.Status == "" {
		return true
	}
	_, invalid := invalidStatuses[strings.ToLower(strings.TrimSpace(p.Status))]
	return !invalid
}

// bindingMarkers identify type codes that behave like a binding-precedent
// category, tolerating the spelling variants seen in the corpus.
var bindingMarkers = []string{
	"vinculante",
	"repetitivo",
	"repetitiva",
	"irr",
}

// IsBindingType classifies a tipoProcesso code as a binding-precedent
// category ("súmula vinculante", "tese vinculante", "recurso repetitivo",
// "IRR" and variants). Binding categories get the heaviest hierarchy boost
// and match the "vinculante" pseudo-type in filters.
func IsBindingType(tipo string) bool {
	t := strings.ToLower(tipo)
	for _, m := range bindingMarkers {
		if strings.Contains(t, m) {
			return true
		}
	}
	return false
}

// CorpusLoader loads the full precedent corpus. The engine keeps the corpus
// in memory for the duration of one search; loaders may serve from a
// database, a file or a fixture. A nil or empty slice is a valid result.
type CorpusLoader interface {
	LoadCorpus(ctx context.Context) ([]Precedent, error)
}
