// Package jsonfile loads the precedent corpus from a JSON file. Intended for
// local development and fixtures; production deployments use the postgres
// loader.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lexbr/precedentes/internal/repository"
)

// Loader implements repository.CorpusLoader from a file on disk. The file is
// re-read on every call so edits show up without a restart.
type Loader struct {
	path string
}

// New creates a Loader for the given path.
func New(path string) *Loader {
	return &Loader{path: path}
}

// LoadCorpus reads and decodes the corpus file. The file holds either a bare
// JSON array of precedents or an object with a "precedentes" array.
func (l *Loader) LoadCorpus(ctx context.Context) ([]repository.Precedent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var corpus []repository.Precedent
	if err := json.Unmarshal(data, &corpus); err == nil {
		return corpus, nil
	}

	var wrapped struct {
		Precedentes []repository.Precedent `json:"precedentes"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode corpus file: %w", err)
	}
	return wrapped.Precedentes, nil
}

var _ repository.CorpusLoader = (*Loader)(nil)
